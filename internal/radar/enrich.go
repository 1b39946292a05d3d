package radar

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vela-platform/vela/internal/models"
)

const (
	// Enriched page content is clipped before substitution so one
	// URL-bearing row cannot dominate the prompt.
	enrichedContentLimit = 500

	scrapeCacheTTL = 30 * time.Minute
)

// Scraper is the slice of the Jina client the enricher needs.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*models.ScrapedContent, error)
}

// ScrapeCache is an optional best-effort cache in front of the scraper.
type ScrapeCache interface {
	GetCached(ctx context.Context, key string) string
	SetCached(ctx context.Context, key, value string, ttl time.Duration)
}

type Enricher struct {
	scraper Scraper
	cache   ScrapeCache // nil disables caching
}

func NewEnricher(scraper Scraper, cache ScrapeCache) *Enricher {
	return &Enricher{scraper: scraper, cache: cache}
}

// EnrichTexts replaces the first URL in each text with scraped page
// content. Every URL-bearing item fans out concurrently; there is no cap,
// so a 20-item batch can issue 20 simultaneous scrapes. Enrichment never
// fails the batch: any error leaves the original text untouched.
func (e *Enricher) EnrichTexts(ctx context.Context, texts []string) []string {
	enriched := make([]string, len(texts))
	copy(enriched, texts)

	var wg sync.WaitGroup
	for i, text := range texts {
		url := FirstURL(text)
		if url == "" {
			continue
		}

		wg.Add(1)
		go func(i int, text, url string) {
			defer wg.Done()
			content := e.fetchContent(ctx, url)
			if content == "" {
				return
			}
			enriched[i] = strings.Replace(text, url, content, 1)
		}(i, text, url)
	}
	wg.Wait()

	return enriched
}

// fetchContent returns page content for url clipped to the enrichment
// limit, or "" when the scrape fails.
func (e *Enricher) fetchContent(ctx context.Context, url string) string {
	cacheKey := scrapeCacheKey(url)
	if e.cache != nil {
		if cached := e.cache.GetCached(ctx, cacheKey); cached != "" {
			slog.Debug("[Enricher] Cache hit", slog.String("url", url))
			return cached
		}
	}

	scraped, err := e.scraper.Scrape(ctx, url)
	if err != nil {
		slog.Warn("[Enricher] Scrape failed, keeping original URL",
			slog.String("url", url),
			slog.String("error", err.Error()))
		return ""
	}

	content := truncate(MarkdownToText(scraped.Content), enrichedContentLimit)
	if content == "" {
		return ""
	}

	if e.cache != nil {
		e.cache.SetCached(ctx, cacheKey, content, scrapeCacheTTL)
	}
	return content
}

func scrapeCacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "radar:scrape:" + hex.EncodeToString(hash[:])
}
