package lyrics

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitIntoSlides(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		format SlideFormat
		want   []string
	}{
		{
			name:   "two lines over paragraph boundary",
			in:     "Line1\nLine2\n\nLine3\nLine4\nLine5",
			format: FormatTwoLines,
			want:   []string{"Line1\nLine2", "Line3\nLine4", "Line5"},
		},
		{
			name:   "four lines leaves short tail",
			in:     "a\nb\nc\nd\ne\nf",
			format: FormatFourLines,
			want:   []string{"a\nb\nc\nd", "e\nf"},
		},
		{
			name:   "full verse keeps paragraphs whole",
			in:     "a\nb\nc\n\n\nd\ne",
			format: FormatFullVerse,
			want:   []string{"a\nb\nc", "d\ne"},
		},
		{
			name:   "single one-line paragraph",
			in:     "Hallelujah",
			format: FormatTwoLines,
			want:   []string{"Hallelujah"},
		},
		{
			name:   "empty input",
			in:     "",
			format: FormatFourLines,
			want:   nil,
		},
		{
			name:   "whitespace only",
			in:     "\n\n   \n\n",
			format: FormatFullVerse,
			want:   nil,
		},
		{
			name:   "crlf endings",
			in:     "a\r\nb\r\n\r\nc",
			format: FormatTwoLines,
			want:   []string{"a\nb", "c"},
		},
		{
			name:   "surrounding blank lines trimmed",
			in:     "\n\nLine1\nLine2\n\n",
			format: FormatFullVerse,
			want:   []string{"Line1\nLine2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitIntoSlides(tt.in, tt.format)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitIntoSlides(%q, %s) = %q, want %q", tt.in, tt.format, got, tt.want)
			}
		})
	}
}

func TestSplitIntoSlidesPolicyConformance(t *testing.T) {
	in := "one\ntwo\nthree\nfour\nfive\n\nsix\nseven\n\neight"

	for _, tt := range []struct {
		format   SlideFormat
		maxLines int
	}{
		{FormatTwoLines, 2},
		{FormatFourLines, 4},
	} {
		for _, slide := range SplitIntoSlides(in, tt.format) {
			if slide == "" {
				t.Fatalf("%s produced an empty slide", tt.format)
			}
			if n := len(strings.Split(slide, "\n")); n > tt.maxLines {
				t.Errorf("%s slide %q has %d lines, max %d", tt.format, slide, n, tt.maxLines)
			}
		}
	}

	if got, want := len(SplitIntoSlides(in, FormatFullVerse)), 3; got != want {
		t.Errorf("FullVerse slide count = %d, want paragraph count %d", got, want)
	}
}

// Segmentation must neither drop nor duplicate any non-blank line.
func TestSplitIntoSlidesCompleteness(t *testing.T) {
	in := "Waye me yie\nMedaase\n\nƆdɔ yɛ\n\nNyame ye\nOhene pa\nMedaase o\n\nAmen"

	var wantLines []string
	for _, line := range strings.Split(in, "\n") {
		if line != "" {
			wantLines = append(wantLines, line)
		}
	}

	for _, format := range []SlideFormat{FormatTwoLines, FormatFourLines, FormatFullVerse} {
		var gotLines []string
		for _, slide := range SplitIntoSlides(in, format) {
			gotLines = append(gotLines, strings.Split(slide, "\n")...)
		}
		if !reflect.DeepEqual(gotLines, wantLines) {
			t.Errorf("%s: lines %q, want %q", format, gotLines, wantLines)
		}
	}
}

func TestParseSlideFormat(t *testing.T) {
	tests := []struct {
		in   string
		want SlideFormat
	}{
		{"two_lines", FormatTwoLines},
		{"four_lines", FormatFourLines},
		{"full_verse", FormatFullVerse},
		{"", FormatFullVerse},
		{"garbage", FormatFullVerse},
	}

	for _, tt := range tests {
		if got := ParseSlideFormat(tt.in); got != tt.want {
			t.Errorf("ParseSlideFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
