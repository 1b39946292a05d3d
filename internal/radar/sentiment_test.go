package radar

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/config"
	"github.com/vela-platform/vela/internal/models"
)

// echoCompleter answers sentiment prompts with one neutral item per input
// text, recording batch sizes.
type echoCompleter struct {
	mu         sync.Mutex
	batchSizes []int
	failBatch  int // 1-based; 0 disables
}

func (e *echoCompleter) Complete(_ context.Context, _, prompt string, _ clients.CompletionOptions) (clients.CompletionResult, error) {
	start := strings.Index(prompt, "Texts:\n")
	end := strings.Index(prompt, "\n\nIMPORTANT")
	if start < 0 || end < 0 {
		return clients.CompletionResult{}, fmt.Errorf("unexpected prompt shape")
	}

	var texts []string
	if err := json.Unmarshal([]byte(prompt[start+len("Texts:\n"):end]), &texts); err != nil {
		return clients.CompletionResult{}, fmt.Errorf("decode payload: %w", err)
	}

	e.mu.Lock()
	e.batchSizes = append(e.batchSizes, len(texts))
	batch := len(e.batchSizes)
	e.mu.Unlock()

	if e.failBatch > 0 && batch == e.failBatch {
		return clients.CompletionResult{}, fmt.Errorf("batch %d refused", batch)
	}

	items := make([]models.SentimentItem, len(texts))
	for i, text := range texts {
		items[i] = models.SentimentItem{Text: text, Sentiment: "neutral", Score: 0.5}
	}
	payload, _ := json.Marshal(items)
	return clients.CompletionResult{Content: string(payload)}, nil
}

func newTestAnalyzer(llm Completer) *Analyzer {
	enricher := NewEnricher(&stubScraper{}, nil)
	return NewAnalyzer(llm, enricher, config.OpenRouterConfig{DefaultModel: "test-model"})
}

func TestAnalyzeSentimentChunksLargeRequests(t *testing.T) {
	llm := &echoCompleter{}
	analyzer := newTestAnalyzer(llm)

	texts := make([]string, 45)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%d", i)
	}

	items, err := analyzer.AnalyzeSentiment(context.Background(),
		models.AnalysisRequest{Texts: texts, Model: "test-model"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 45 {
		t.Fatalf("got %d items, want 45", len(items))
	}
	wantBatches := []int{20, 20, 5}
	if len(llm.batchSizes) != len(wantBatches) {
		t.Fatalf("got batches %v, want %v", llm.batchSizes, wantBatches)
	}
	for i, want := range wantBatches {
		if llm.batchSizes[i] != want {
			t.Errorf("batch %d: got %d, want %d", i, llm.batchSizes[i], want)
		}
	}
	for i, item := range items {
		if item.Text != fmt.Sprintf("text-%d", i) {
			t.Fatalf("order broken at %d: got %q", i, item.Text)
		}
	}
}

func TestAnalyzeSentimentFailingChunkAborts(t *testing.T) {
	llm := &echoCompleter{failBatch: 2}
	analyzer := newTestAnalyzer(llm)

	texts := make([]string, 45)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%d", i)
	}

	_, err := analyzer.AnalyzeSentiment(context.Background(),
		models.AnalysisRequest{Texts: texts, Model: "test-model"})
	if err == nil {
		t.Fatal("expected error when a chunk fails")
	}
	if len(llm.batchSizes) != 2 {
		t.Errorf("later chunks should not run after a failure, saw %v", llm.batchSizes)
	}
}

func TestAnalyzeTopicsTruncatesAtCap(t *testing.T) {
	var seen int
	llm := completerFunc(func(_ context.Context, _, prompt string, _ clients.CompletionOptions) (clients.CompletionResult, error) {
		start := strings.Index(prompt, "Texts:\n")
		end := strings.Index(prompt, "\n\nIMPORTANT")
		var texts []string
		if err := json.Unmarshal([]byte(prompt[start+len("Texts:\n"):end]), &texts); err != nil {
			return clients.CompletionResult{}, err
		}
		seen = len(texts)
		return clients.CompletionResult{Content: `[{"name": "general", "keywords": ["misc"], "count": 2}]`}, nil
	})
	analyzer := newTestAnalyzer(llm)

	texts := make([]string, 80)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%d", i)
	}

	items, err := analyzer.AnalyzeTopics(context.Background(),
		models.AnalysisRequest{Texts: texts, Model: "test-model"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != TopicMaxTexts {
		t.Errorf("topics should truncate to %d texts, model saw %d", TopicMaxTexts, seen)
	}
	if len(items) != 1 {
		t.Errorf("got %d topics, want 1", len(items))
	}
}

type completerFunc func(ctx context.Context, model, prompt string, opts clients.CompletionOptions) (clients.CompletionResult, error)

func (f completerFunc) Complete(ctx context.Context, model, prompt string, opts clients.CompletionOptions) (clients.CompletionResult, error) {
	return f(ctx, model, prompt, opts)
}
