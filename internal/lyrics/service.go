package lyrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/kofidarko/nnwombot/internal/lyrics/importers/webpage"
)

// ImportResult is the result of a lyrics import from an external source.
type ImportResult struct {
	URL       string    `json:"url"`
	Title     string    `json:"title,omitempty"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ImportService pulls lyrics text in from external sources. Only generic web
// pages are supported today; source-specific importers slot in here.
type ImportService struct {
	web *webpage.Importer
}

// NewImportService creates an import service with the default page selector.
func NewImportService(selector string) *ImportService {
	return &ImportService{
		web: webpage.NewImporter(selector),
	}
}

// ImportLyrics fetches and cleans lyrics from the given URL.
func (s *ImportService) ImportLyrics(url string) (*ImportResult, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("unsupported lyrics source: %s", url)
	}

	result, err := s.web.Import(url)
	if err != nil {
		return nil, err
	}
	if result.Text == "" {
		return nil, fmt.Errorf("page at %s yielded no lyrics text", url)
	}

	return &ImportResult{
		URL:       result.URL,
		Title:     result.Title,
		Text:      result.Text,
		Source:    "web",
		FetchedAt: result.FetchedAt,
	}, nil
}
