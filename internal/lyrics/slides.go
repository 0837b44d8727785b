package lyrics

import (
	"regexp"
	"strings"
)

// SlideFormat selects how lyrics are cut into screen-sized slides.
type SlideFormat string

const (
	FormatTwoLines  SlideFormat = "two_lines"
	FormatFourLines SlideFormat = "four_lines"
	FormatFullVerse SlideFormat = "full_verse"
)

// ParseSlideFormat maps a stored or user-typed format name to a SlideFormat,
// falling back to FullVerse.
func ParseSlideFormat(s string) SlideFormat {
	switch SlideFormat(s) {
	case FormatTwoLines, FormatFourLines:
		return SlideFormat(s)
	default:
		return FormatFullVerse
	}
}

var paragraphBreakRegex = regexp.MustCompile(`\n{2,}`)

// SplitIntoSlides cuts lyrics into slides. Paragraphs are delimited by runs
// of blank lines; FullVerse keeps one paragraph per slide, TwoLines and
// FourLines chunk the non-blank lines of each paragraph in order, with the
// last chunk of a paragraph allowed to run short. Empty input yields no
// slides, and no slide is ever empty.
func SplitIntoSlides(lyricsText string, format SlideFormat) []string {
	var slides []string
	for _, paragraph := range splitParagraphs(lyricsText) {
		switch format {
		case FormatTwoLines:
			slides = append(slides, chunkLines(paragraph, 2)...)
		case FormatFourLines:
			slides = append(slides, chunkLines(paragraph, 4)...)
		default:
			slides = append(slides, paragraph)
		}
	}
	return slides
}

func splitParagraphs(lyricsText string) []string {
	var paragraphs []string
	for _, p := range paragraphBreakRegex.Split(normalizeBreaks(lyricsText), -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func chunkLines(paragraph string, size int) []string {
	var lines []string
	for _, line := range strings.Split(paragraph, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	var chunks []string
	for start := 0; start < len(lines); start += size {
		end := start + size
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, strings.Join(lines[start:end], "\n"))
	}
	return chunks
}

// normalizeBreaks folds CRLF and bare CR line endings to LF.
func normalizeBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
