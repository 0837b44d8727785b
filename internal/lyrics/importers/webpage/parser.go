package webpage

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Importer extracts plain lyrics text from an HTML page.
type Importer struct {
	client *Client
	config *Config
}

// NewImporter creates an importer. An empty selector keeps the default.
func NewImporter(selector string) *Importer {
	config := DefaultConfig()
	if selector != "" {
		config.Selector = selector
		config.FallbackSelectors = nil
	}

	return &Importer{
		client: NewClient(),
		config: config,
	}
}

// Import fetches the page and extracts cleaned lyrics text.
func (imp *Importer) Import(url string) (*Result, error) {
	html, err := imp.client.FetchPage(url)
	if err != nil {
		return &Result{URL: url, Success: false, Error: err.Error()}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &Result{URL: url, Success: false, Error: fmt.Sprintf("failed to parse HTML: %v", err)}, err
	}

	// Navigation, scripts and share widgets would otherwise leak into the
	// extracted text.
	doc.Find("script, style, nav, header, footer, .sharedaddy, .jp-relatedposts, .wp-block-buttons").Remove()

	selection := doc.Find(imp.config.Selector)
	for _, fallback := range imp.config.FallbackSelectors {
		if selection.Length() > 0 {
			break
		}
		selection = doc.Find(fallback)
	}
	if selection.Length() == 0 {
		err := fmt.Errorf("no element matched selector %q", imp.config.Selector)
		return &Result{URL: url, Success: false, Error: err.Error()}, err
	}

	// <br> and </p> carry the line structure; goquery's Text() would flatten
	// them away, so turn them into newlines first.
	body, _ := selection.First().Html()
	text := htmlToText(body)
	text = imp.config.clean(text)

	return &Result{
		URL:       url,
		Title:     strings.TrimSpace(doc.Find("h1").First().Text()),
		Text:      text,
		FetchedAt: time.Now(),
		Success:   true,
	}, nil
}
