package lyrics

import (
	"strings"
	"testing"
)

func TestFormatForProjection(t *testing.T) {
	song := Song{
		Title:  "Waye Me Yie",
		Artist: "Joe Mettle",
		Lyrics: "Line1\nLine2\n\nLine3\nLine4\nLine5",
	}

	got := FormatForProjection(song, FormatTwoLines)
	want := "Title: Waye Me Yie\n" +
		"Author: Joe Mettle\n" +
		"\n" +
		"Line1\nLine2\n\n\nLine3\nLine4\n\n\nLine5"

	if got != want {
		t.Errorf("FormatForProjection = %q, want %q", got, want)
	}
}

func TestFormatForProjectionMissingArtist(t *testing.T) {
	song := Song{Title: "X", Lyrics: "Y"}

	got := FormatForProjection(song, FormatFullVerse)
	if !strings.Contains(got, "Author: Unknown\n") {
		t.Errorf("missing artist should render placeholder, got %q", got)
	}
	if strings.Contains(got, "null") {
		t.Errorf("payload must never contain a null artist, got %q", got)
	}
}

func TestFormatForProjectionFullVerseDefault(t *testing.T) {
	song := Song{Title: "T", Artist: "A", Lyrics: "a\nb\n\nc\nd"}

	got := FormatForProjection(song, FormatFullVerse)
	if !strings.Contains(got, "a\nb\n\n\nc\nd") {
		t.Errorf("slides must be joined by two blank lines, got %q", got)
	}
}
