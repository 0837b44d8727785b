package lyrics

import (
	"strings"
	"testing"
)

func TestGenerateOpenLyricsXMLEscaping(t *testing.T) {
	song := Song{
		Title:  "O'Brien & <Sons>",
		Artist: `The "Quartet"`,
		Lyrics: "Fear & trembling",
	}

	got := GenerateOpenLyricsXML(song)

	if !strings.Contains(got, "<title>O&apos;Brien &amp; &lt;Sons&gt;</title>") {
		t.Errorf("title not escaped correctly:\n%s", got)
	}
	if !strings.Contains(got, "<author>The &quot;Quartet&quot;</author>") {
		t.Errorf("author not escaped correctly:\n%s", got)
	}
	if !strings.Contains(got, "<lines>Fear &amp; trembling</lines>") {
		t.Errorf("lyrics not escaped correctly:\n%s", got)
	}
	if strings.Contains(got, "&amp;lt;") || strings.Contains(got, "&amp;amp;") {
		t.Errorf("double-escaped entity found:\n%s", got)
	}
}

func TestGenerateOpenLyricsXMLStructure(t *testing.T) {
	song := Song{Title: "Waye Me Yie", Lyrics: "Line one\nLine two\n\nLine three"}

	got := GenerateOpenLyricsXML(song)

	for _, fragment := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<song xmlns="http://openlyrics.info/namespace/2009/song" version="0.8">`,
		"<authors><author>Unknown</author></authors>",
		`<verse name="v1">`,
		"<lines>Line one<br/>Line two<br/><br/>Line three</lines>",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("document missing %q:\n%s", fragment, got)
		}
	}

	// Single verse regardless of how many paragraphs or markers the lyrics hold.
	if n := strings.Count(got, "<verse "); n != 1 {
		t.Errorf("expected exactly one verse element, got %d:\n%s", n, got)
	}
}

func TestEscapeXMLOrder(t *testing.T) {
	if got, want := escapeXML("&lt;"), "&amp;lt;"; got != want {
		t.Errorf("escapeXML(\"&lt;\") = %q, want %q", got, want)
	}
	if got, want := escapeXML("<&>"), "&lt;&amp;&gt;"; got != want {
		t.Errorf("escapeXML(\"<&>\") = %q, want %q", got, want)
	}
}
