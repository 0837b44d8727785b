package lyrics

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"twi sample", "Ɔdɔ Ɛyɛ Ŋye", "odo eye nye"},
		{"lowercase twi", "ɔdɔ yɛ", "odo ye"},
		{"plain ascii", "Amazing Grace", "amazing grace"},
		{"already normalized", "odo eye nye", "odo eye nye"},
		{"empty", "", ""},
		{"mixed with digits", "Ɛyɛ 2", "eye 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Ɔdɔ Ɛyɛ Ŋye",
		"Waye me yie, ɔsoro Hene",
		"O'Brien & <Sons>",
		"",
		"ŊŋƆɔƐɛ",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
