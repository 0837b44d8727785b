package lyrics

import (
	"reflect"
	"testing"
)

func TestParseSections(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Section
	}{
		{
			name: "chorus then numbered verse",
			in:   "[Chorus]\nHallelujah\n[Verse 2]\nMore words",
			want: []Section{
				{Label: "Chorus", Content: "Hallelujah"},
				{Label: "Verse 2", Content: "More words"},
			},
		},
		{
			name: "text before first marker gets default label",
			in:   "Opening lines here\n[Bridge]\nBridge words",
			want: []Section{
				{Label: "Verse", Content: "Opening lines here"},
				{Label: "Bridge", Content: "Bridge words"},
			},
		},
		{
			name: "no markers at all",
			in:   "Just some lyrics\nOn two lines",
			want: []Section{
				{Label: "Verse", Content: "Just some lyrics\nOn two lines"},
			},
		},
		{
			name: "case insensitive markers with colon",
			in:   "[chorus]:\nNyame ye\n[PRE-CHORUS]\nBuild up",
			want: []Section{
				{Label: "Chorus", Content: "Nyame ye"},
				{Label: "Pre-Chorus", Content: "Build up"},
			},
		},
		{
			name: "empty segment between adjacent markers dropped",
			in:   "[Intro]\n[Verse 1]\nFirst verse",
			want: []Section{
				{Label: "Verse 1", Content: "First verse"},
			},
		},
		{
			name: "unknown marker stays in content",
			in:   "[Chorus]\n[Solo]\nStill chorus text",
			want: []Section{
				{Label: "Chorus", Content: "[Solo]\nStill chorus text"},
			},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "whitespace only",
			in:   "  \n\n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSections(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSections(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
