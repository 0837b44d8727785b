package lyrics

import (
	"regexp"
	"strings"
)

// Section is a lyrics fragment tagged with a structural role.
type Section struct {
	Label   string
	Content string
}

// DefaultSectionLabel tags lyrics that carry no marker of their own.
const DefaultSectionLabel = "Verse"

// markerRegex matches a bracketed section marker on a line of its own:
// [Chorus], [verse 2], [Pre-Chorus]. A trailing colon is tolerated.
var markerRegex = regexp.MustCompile(`^\[\s*([A-Za-z-]+)\s*(\d*)\s*\]:?$`)

// sectionLabels is the recognized marker vocabulary, keyed by lowercase form.
// Anything outside it stays in the lyrics as ordinary text.
var sectionLabels = map[string]string{
	"verse":      "Verse",
	"chorus":     "Chorus",
	"bridge":     "Bridge",
	"pre-chorus": "Pre-Chorus",
	"intro":      "Intro",
	"outro":      "Outro",
	"tag":        "Tag",
}

// ParseSections scans lyrics for bracketed markers and returns the text
// between them tagged with the most recently seen label. Text before the
// first marker, or lyrics with no markers at all, fall under the default
// label. Empty segments between adjacent markers are dropped. The result is
// metadata only; slide segmentation does not consult it.
func ParseSections(lyricsText string) []Section {
	lines := strings.Split(normalizeBreaks(lyricsText), "\n")

	var sections []Section
	label := DefaultSectionLabel
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content != "" {
			sections = append(sections, Section{Label: label, Content: content})
		}
		buf = buf[:0]
	}

	for _, line := range lines {
		if next, ok := matchMarker(strings.TrimSpace(line)); ok {
			flush()
			label = next
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections
}

func matchMarker(line string) (string, bool) {
	m := markerRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	canonical, ok := sectionLabels[strings.ToLower(m[1])]
	if !ok {
		return "", false
	}
	if m[2] != "" {
		return canonical + " " + m[2], true
	}
	return canonical, true
}
