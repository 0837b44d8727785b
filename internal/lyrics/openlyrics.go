package lyrics

import (
	"fmt"
	"strings"
)

const openLyricsNamespace = "http://openlyrics.info/namespace/2009/song"

// GenerateOpenLyricsXML renders a song as an OpenLyrics 0.8 document. The
// whole lyrics body goes into a single verse; section markers are not
// decomposed into multiple <verse> elements.
func GenerateOpenLyricsXML(song Song) string {
	lines := strings.ReplaceAll(escapeXML(normalizeBreaks(song.Lyrics)), "\n", "<br/>")

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<song xmlns=%q version=\"0.8\">\n", openLyricsNamespace)
	b.WriteString("  <properties>\n")
	fmt.Fprintf(&b, "    <titles><title>%s</title></titles>\n", escapeXML(song.Title))
	fmt.Fprintf(&b, "    <authors><author>%s</author></authors>\n", escapeXML(song.ArtistOrUnknown()))
	b.WriteString("  </properties>\n")
	b.WriteString("  <lyrics>\n")
	b.WriteString("    <verse name=\"v1\">\n")
	fmt.Fprintf(&b, "      <lines>%s</lines>\n", lines)
	b.WriteString("    </verse>\n")
	b.WriteString("  </lyrics>\n")
	b.WriteString("</song>\n")
	return b.String()
}

// escapeXML escapes the five XML entities. The ampersand must go first:
// replacing it later would corrupt the entities inserted for the other four.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
