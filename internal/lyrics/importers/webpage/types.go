package webpage

import "time"

// Result is the outcome of one page import.
type Result struct {
	URL       string    `json:"url"`
	Title     string    `json:"title,omitempty"`
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// Config controls content extraction and cleanup.
type Config struct {
	// Selector locates the lyrics body. The default targets the WordPress
	// entry body used by the gospel lyrics sites the catalog is seeded from.
	Selector string

	// FallbackSelectors are tried in order when Selector matches nothing.
	FallbackSelectors []string

	// MaxBlankRun caps consecutive blank lines; longer runs collapse to it.
	MaxBlankRun int
}

// DefaultConfig returns the extraction defaults.
func DefaultConfig() *Config {
	return &Config{
		Selector: "div.entry-content",
		FallbackSelectors: []string{
			"article .post-content",
			"div.lyrics",
			"article",
		},
		MaxBlankRun: 1,
	}
}
