package webpage

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	brTagRegex = regexp.MustCompile(`(?i)<br\s*/?>`)

	// Closing block tags end a stanza, so they become a blank line rather
	// than a bare break.
	blockCloseTagRegex = regexp.MustCompile(`(?i)</p>|</div>|</h\d>`)

	// A line consisting only of chord symbols, e.g. "C  G/B  Am7" or "F#m D".
	chordLineRegex = regexp.MustCompile(`^(?:\(?[A-G][#b]?(?:maj|min|dim|aug|sus[24]?|add\d+|m)?\d*(?:/[A-G][#b]?)?\)?[\s|]*)+$`)

	// Decorative separators and leftover punctuation-only lines.
	separatorLineRegex = regexp.MustCompile(`^[\s|*_~=-]+$`)
)

// boilerplateMarkers end the lyrics body; everything from the first match on
// is discarded.
var boilerplateMarkers = []string{
	"share this:",
	"related posts",
	"post navigation",
	"leave a comment",
	"advertisement",
}

// htmlToText flattens an HTML fragment to plain text while keeping the line
// structure carried by <br> and closing block tags.
func htmlToText(fragment string) string {
	fragment = brTagRegex.ReplaceAllString(fragment, "\n")
	fragment = blockCloseTagRegex.ReplaceAllString(fragment, "\n\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}

// clean processes extracted text line by line: trims, drops chord and
// separator lines, cuts trailing site boilerplate and collapses blank runs.
func (c *Config) clean(text string) string {
	var cleaned []string
	blankRun := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if isBoilerplate(line) {
			break
		}

		if line == "" || chordLineRegex.MatchString(line) || separatorLineRegex.MatchString(line) {
			blankRun++
			// Blank lines separate verses and must survive cleanup, but a
			// long run of them collapses.
			if blankRun <= c.MaxBlankRun && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			continue
		}

		blankRun = 0
		cleaned = append(cleaned, line)
	}

	return strings.TrimRight(strings.Join(cleaned, "\n"), "\n")
}

func isBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range boilerplateMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}
