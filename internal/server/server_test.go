package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vela-platform/vela/internal/ai"
	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/config"
	"github.com/vela-platform/vela/internal/models"
	"github.com/vela-platform/vela/internal/radar"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type fixedCompleter struct {
	content string
	err     error
}

func (f fixedCompleter) Complete(context.Context, string, string, clients.CompletionOptions) (clients.CompletionResult, error) {
	if f.err != nil {
		return clients.CompletionResult{}, f.err
	}
	return clients.CompletionResult{Content: f.content}, nil
}

type noScraper struct{}

func (noScraper) Scrape(_ context.Context, url string) (*models.ScrapedContent, error) {
	return nil, fmt.Errorf("scrape disabled in tests")
}

func newTestServer(llm radar.Completer, cfg config.Config) *Server {
	enricher := radar.NewEnricher(noScraper{}, nil)
	return New(Options{
		Config:    cfg,
		Analyzer:  radar.NewAnalyzer(llm, enricher, cfg.OpenRouter),
		Generator: ai.NewGenerator(llm),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestServer(fixedCompleter{}, config.Config{}).Router()

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	if w.Code != 200 {
		t.Fatalf("got status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAnalyzeSentimentMissingTexts(t *testing.T) {
	router := newTestServer(fixedCompleter{}, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/radar/analyze-sentiment", `{}`, nil)
	if w.Code != 400 {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "texts") {
		t.Errorf("error should name the missing field: %s", w.Body.String())
	}
}

func TestAnalyzeSentimentSuccess(t *testing.T) {
	llm := fixedCompleter{content: `[{"text": "good stuff", "sentiment": "positive", "score": 0.9}]`}
	router := newTestServer(llm, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/radar/analyze-sentiment",
		`{"texts": ["good stuff"], "model": "test-model"}`, nil)
	if w.Code != 200 {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}

	var items []models.SentimentItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Sentiment != "positive" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestAnalyzeSentimentUpstreamFailure(t *testing.T) {
	llm := fixedCompleter{err: fmt.Errorf("upstream down")}
	router := newTestServer(llm, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/radar/analyze-sentiment",
		`{"texts": ["hello"], "model": "test-model"}`, nil)
	if w.Code != 500 {
		t.Fatalf("got status %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Errorf("failure should use the error envelope: %s", w.Body.String())
	}
}

func TestValidateSiteConfig(t *testing.T) {
	router := newTestServer(fixedCompleter{}, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/validate/site-config", `{}`, nil)
	if w.Code != 400 {
		t.Fatalf("missing config field should 400, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/validate/site-config", `{"config": {}}`, nil)
	if w.Code != 200 {
		t.Fatalf("got status %d", w.Code)
	}
	var result models.ValidationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Valid || len(result.Errors) == 0 {
		t.Errorf("empty config should be invalid with errors listed: %+v", result)
	}
}

func TestSchemaRoutes(t *testing.T) {
	router := newTestServer(fixedCompleter{}, config.Config{}).Router()

	w := doJSON(t, router, http.MethodGet, "/schemas/components/hero", "", nil)
	if w.Code != 200 {
		t.Fatalf("got status %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/schemas/components/spaceship", "", nil)
	if w.Code != 400 {
		t.Fatalf("unknown type should 400, got %d", w.Code)
	}
}

func TestGenerateSiteConfigWrapsDownloads(t *testing.T) {
	router := newTestServer(fixedCompleter{}, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/generate/site-config",
		`{"input": {"site": {"name": "Acme", "description": "d"}}}`, nil)
	if w.Code != 200 {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		JSONString string `json:"jsonString"`
		YAML       string `json:"yaml"`
		Downloads  struct {
			JSON struct {
				Filename string `json:"filename"`
			} `json:"json"`
		} `json:"downloads"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Downloads.JSON.Filename != "site-config.json" {
		t.Errorf("got filename %q", body.Downloads.JSON.Filename)
	}
	if !strings.Contains(body.JSONString, "Acme") || !strings.Contains(body.YAML, "Acme") {
		t.Errorf("renditions should carry the merged config")
	}
}

func TestGitHubRoutesUnconfigured(t *testing.T) {
	router := newTestServer(fixedCompleter{}, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/github/save-config",
		`{"config": {}, "filename": "x"}`, nil)
	if w.Code != 400 {
		t.Fatalf("unconfigured GitHub should 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "GitHub configuration missing") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthRequired(t *testing.T) {
	cfg := config.Config{APIToken: "secret-token"}
	router := newTestServer(fixedCompleter{}, cfg).Router()

	w := doJSON(t, router, http.MethodGet, "/github/repo-info", "", nil)
	if w.Code != 401 {
		t.Fatalf("missing token should 401, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/github/repo-info", "",
		map[string]string{"Authorization": "Bearer wrong"})
	if w.Code != 401 {
		t.Fatalf("wrong token should 401, got %d", w.Code)
	}

	// Correct token clears auth; the route then fails on configuration.
	w = doJSON(t, router, http.MethodGet, "/github/repo-info", "",
		map[string]string{"Authorization": "Bearer secret-token"})
	if w.Code != 400 {
		t.Fatalf("got %d, want 400 from unconfigured store", w.Code)
	}
}

func TestAuthOptionalAllowsAnonymous(t *testing.T) {
	cfg := config.Config{APIToken: "secret-token"}
	llm := fixedCompleter{content: `[]`}
	router := newTestServer(llm, cfg).Router()

	w := doJSON(t, router, http.MethodPost, "/radar/analyze-sentiment",
		`{"texts": ["hi"], "model": "m"}`, nil)
	if w.Code != 200 {
		t.Fatalf("optional auth should let anonymous callers through, got %d", w.Code)
	}
}

func TestAIGenerateFromPromptValidation(t *testing.T) {
	router := newTestServer(fixedCompleter{}, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/ai/generate/from-prompt", `{}`, nil)
	if w.Code != 400 {
		t.Fatalf("missing prompt should 400, got %d", w.Code)
	}
}

func TestAIGenerateSiteConfig(t *testing.T) {
	llm := fixedCompleter{content: "```json\n{\"site\": {\"name\": \"Generated\"}}\n```"}
	router := newTestServer(llm, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/ai/generate/site-config",
		`{"siteName": "Acme", "siteDescription": "desc"}`, nil)
	if w.Code != 200 {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Generated") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestChatRoutesWithoutStore(t *testing.T) {
	router := newTestServer(fixedCompleter{}, config.Config{}).Router()

	w := doJSON(t, router, http.MethodPost, "/chat/sessions",
		`{"github_username": "octocat", "title": "t"}`, nil)
	if w.Code != 500 {
		t.Fatalf("missing chat store should 500, got %d", w.Code)
	}
}
