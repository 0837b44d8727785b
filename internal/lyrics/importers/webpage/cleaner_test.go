package webpage

import "testing"

func TestClean(t *testing.T) {
	config := DefaultConfig()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "chord lines dropped, verse gap kept",
			in:   "C   G   Am\nWaye me yie\nMedaase\n\nF   C\nNyame ye",
			want: "Waye me yie\nMedaase\n\nNyame ye",
		},
		{
			name: "separator lines become blank",
			in:   "First line\n-----\nSecond line",
			want: "First line\n\nSecond line",
		},
		{
			name: "blank runs collapse",
			in:   "a\n\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "boilerplate cut off",
			in:   "Last verse line\n\nShare this:\nTwitter\nFacebook",
			want: "Last verse line",
		},
		{
			name: "section markers survive",
			in:   "[Chorus]\nHallelujah",
			want: "[Chorus]\nHallelujah",
		},
		{
			name: "leading and trailing blanks trimmed",
			in:   "\n\nOnly line\n\n",
			want: "Only line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.clean(tt.in); got != tt.want {
				t.Errorf("clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHTMLToText(t *testing.T) {
	in := "<p>Line one<br>Line two</p><p>Line three</p>"
	got := htmlToText(in)
	want := "Line one\nLine two\n\nLine three\n"

	if config := DefaultConfig(); config.clean(got) != "Line one\nLine two\n\nLine three" {
		t.Errorf("htmlToText(%q) = %q, cleaned differs from %q", in, got, want)
	}
}
