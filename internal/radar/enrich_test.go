package radar

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vela-platform/vela/internal/models"
)

type stubScraper struct {
	mu      sync.Mutex
	content map[string]string
	err     error
	calls   int
}

func (s *stubScraper) Scrape(_ context.Context, url string) (*models.ScrapedContent, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &models.ScrapedContent{URL: url, Content: s.content[url]}, nil
}

type memoryCache struct {
	mu    sync.Mutex
	store map[string]string
}

func (m *memoryCache) GetCached(_ context.Context, key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store[key]
}

func (m *memoryCache) SetCached(_ context.Context, key, value string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store == nil {
		m.store = map[string]string{}
	}
	m.store[key] = value
}

func TestEnrichTextsReplacesURLWithContent(t *testing.T) {
	scraper := &stubScraper{content: map[string]string{
		"https://example.com/post": "An article about cloud computing.",
	}}
	enricher := NewEnricher(scraper, nil)

	got := enricher.EnrichTexts(context.Background(), []string{
		"interesting read https://example.com/post today",
		"no url in this one",
	})

	if !strings.Contains(got[0], "An article about cloud computing.") {
		t.Errorf("url should be replaced with content, got %q", got[0])
	}
	if strings.Contains(got[0], "https://example.com/post") {
		t.Errorf("url should be gone, got %q", got[0])
	}
	if got[1] != "no url in this one" {
		t.Errorf("url-free text must pass through untouched, got %q", got[1])
	}
}

func TestEnrichTextsFailOpen(t *testing.T) {
	scraper := &stubScraper{err: fmt.Errorf("upstream 503")}
	enricher := NewEnricher(scraper, nil)

	in := []string{"see https://example.com/broken for details"}
	got := enricher.EnrichTexts(context.Background(), in)

	if got[0] != in[0] {
		t.Errorf("scrape failure must keep the original text, got %q", got[0])
	}
}

func TestEnrichTextsClipsLongContent(t *testing.T) {
	scraper := &stubScraper{content: map[string]string{
		"https://example.com/long": strings.Repeat("word ", 400),
	}}
	enricher := NewEnricher(scraper, nil)

	got := enricher.EnrichTexts(context.Background(), []string{"https://example.com/long"})
	if len(got[0]) > enrichedContentLimit {
		t.Errorf("enriched content should clip at %d chars, got %d", enrichedContentLimit, len(got[0]))
	}
}

func TestEnrichTextsUsesCache(t *testing.T) {
	scraper := &stubScraper{content: map[string]string{
		"https://example.com/cached": "cached article body",
	}}
	cache := &memoryCache{}
	enricher := NewEnricher(scraper, cache)

	texts := []string{"link https://example.com/cached"}
	enricher.EnrichTexts(context.Background(), texts)
	enricher.EnrichTexts(context.Background(), texts)

	if scraper.calls != 1 {
		t.Errorf("second pass should hit the cache, scraper called %d times", scraper.calls)
	}
}
