// Package search queries the public Ollama model library. It scrapes the
// website's search page, so it is advisory by nature: markup drift or a
// missing network degrade to an error the CLI reports and moves on from.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const libraryURL = "https://ollama.com/search"

// Model is one library search hit.
type Model struct {
	Name        string
	Description string
}

// Library searches the public model library for term.
func Library(ctx context.Context, term string, maxResults int) ([]Model, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("search term is required")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, libraryURL+"?q="+url.QueryEscape(term), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko)")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("library search returned HTTP %d", resp.StatusCode)
	}

	return parseLibrary(resp.Body, maxResults)
}

// parseLibrary extracts model entries from the library search markup. Each
// result is an <a href="/library/..."> whose first heading is the model name
// and whose first paragraph is the description.
func parseLibrary(r io.Reader, maxResults int) ([]Model, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var models []Model
	doc.Find(`a[href^="/library/"]`).Each(func(i int, s *goquery.Selection) {
		if len(models) >= maxResults {
			return
		}

		href, _ := s.Attr("href")
		name := strings.TrimPrefix(href, "/library/")
		if name == "" || strings.Contains(name, "/") {
			return
		}

		desc := strings.TrimSpace(s.Find("p").First().Text())
		models = append(models, Model{Name: name, Description: desc})
	})

	return models, nil
}
