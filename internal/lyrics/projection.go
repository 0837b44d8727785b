package lyrics

import (
	"fmt"
	"strings"
)

// slideSeparator is what projection tools recognize as a slide boundary when
// the payload is pasted in: two full blank lines between slides.
const slideSeparator = "\n\n\n"

// FormatForProjection renders a song as a plain-text payload ready to paste
// into projection software: a Title/Author header, a blank line, then the
// slides for the chosen format separated by two blank lines.
func FormatForProjection(song Song, format SlideFormat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", song.Title)
	fmt.Fprintf(&b, "Author: %s\n", song.ArtistOrUnknown())
	b.WriteString("\n")
	b.WriteString(strings.Join(SplitIntoSlides(song.Lyrics, format), slideSeparator))
	return b.String()
}
