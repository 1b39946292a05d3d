package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vela-platform/vela/internal/config"
	"github.com/vela-platform/vela/internal/models"
)

const (
	// Every scrape is bounded; the reader API can hang on heavy pages.
	jinaScrapeTimeout = 30 * time.Second

	errSnippetLen = 200
)

type JinaClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

func NewJinaClient(cfg config.JinaConfig) *JinaClient {
	return &JinaClient{
		client:  &http.Client{},
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
	}
}

// Scrape fetches a clean-text rendering of url through the Jina Reader API.
func (j *JinaClient) Scrape(ctx context.Context, url string) (*models.ScrapedContent, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, errors.New("invalid URL: must start with http:// or https://")
	}

	ctx, cancel := context.WithTimeout(ctx, jinaScrapeTimeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"url": url})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Retain-Images", "none")
	req.Header.Set("X-With-Links-Summary", "true")
	req.Header.Set("X-With-Images-Summary", "true")
	req.Header.Set("X-Return-Format", "markdown")
	if j.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+j.apiKey)
	}

	res, err := j.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape URL: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Jina response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		slog.Error("[JinaClient] Reader API error",
			slog.Int("status", res.StatusCode),
			slog.String("body", snippet(string(raw), errSnippetLen)))
		return nil, fmt.Errorf("jina reader API error (%d): %s", res.StatusCode, snippet(string(raw), errSnippetLen))
	}

	var parsed models.JinaResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		slog.Error("[JinaClient] Non-JSON response from reader",
			slog.String("body", snippet(string(raw), errSnippetLen)))
		return nil, fmt.Errorf("jina reader returned non-JSON response: %w", err)
	}

	if parsed.Code != 200 || parsed.Data == nil {
		return nil, errors.New("unexpected response format from jina reader API")
	}

	content := &models.ScrapedContent{
		URL:         parsed.Data.URL,
		Title:       parsed.Data.Title,
		Description: parsed.Data.Description,
		Content:     parsed.Data.Content,
		Usage:       parsed.Data.Usage,
	}
	if content.URL == "" {
		content.URL = url
	}
	return content, nil
}

func snippet(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
