package radar

import (
	"github.com/vela-platform/vela/internal/config"
)

// Analyzer runs the sentiment/topic/content analysis pipelines. All
// collaborators come in through the constructor; there is no package-level
// client state.
type Analyzer struct {
	llm          Completer
	enricher     *Enricher
	defaultModel string
	fallbacks    []string
}

func NewAnalyzer(llm Completer, enricher *Enricher, cfg config.OpenRouterConfig) *Analyzer {
	return &Analyzer{
		llm:          llm,
		enricher:     enricher,
		defaultModel: cfg.DefaultModel,
		fallbacks:    config.FallbackModels,
	}
}
