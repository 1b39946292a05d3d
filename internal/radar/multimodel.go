package radar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/models"
)

// Completer is the slice of the OpenRouter client the caller needs; tests
// substitute stubs.
type Completer interface {
	Complete(ctx context.Context, model, prompt string, opts clients.CompletionOptions) (clients.CompletionResult, error)
}

// CallModels issues the same prompt to every candidate concurrently and
// waits for all of them. The winner is the first candidate in list order
// that succeeded, regardless of which resolved first; completion timing
// never affects the result. When every candidate fails the returned error
// aggregates each candidate's failure.
func CallModels(ctx context.Context, llm Completer, prompt string, candidates []string, opts clients.CompletionOptions) (clients.CompletionResult, []models.ModelCallOutcome, error) {
	if len(candidates) == 0 {
		return clients.CompletionResult{}, nil, fmt.Errorf("no candidate models configured")
	}

	outcomes := make([]models.ModelCallOutcome, len(candidates))
	results := make([]clients.CompletionResult, len(candidates))

	var wg sync.WaitGroup
	for i, model := range candidates {
		wg.Add(1)
		go func(i int, model string) {
			defer wg.Done()
			start := time.Now()
			result, err := llm.Complete(ctx, model, prompt, opts)
			if err != nil {
				slog.Warn("[MultiModel] Candidate failed",
					slog.String("model", model),
					slog.Duration("elapsed", time.Since(start)),
					slog.String("error", err.Error()))
				outcomes[i] = models.ModelCallOutcome{Model: model, Error: err.Error()}
				return
			}
			slog.Debug("[MultiModel] Candidate succeeded",
				slog.String("model", model),
				slog.Duration("elapsed", time.Since(start)))
			outcomes[i] = models.ModelCallOutcome{Model: model, Success: true, Result: result.Content}
			results[i] = result
		}(i, model)
	}
	wg.Wait()

	for i, outcome := range outcomes {
		if outcome.Success {
			return results[i], outcomes, nil
		}
	}

	pairs := make([]string, len(outcomes))
	for i, outcome := range outcomes {
		msg := outcome.Error
		if msg == "" {
			msg = "unknown error"
		}
		pairs[i] = outcome.Model + ": " + msg
	}
	return clients.CompletionResult{}, outcomes, fmt.Errorf("all models failed. Errors: %s", strings.Join(pairs, "; "))
}

// candidateList resolves which models to try: an explicit model alone, or
// the fixed fallback list.
func candidateList(explicit string, fallbacks []string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	return fallbacks
}
