package radar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/models"
)

// AnalyzeTopics extracts recurring topics across the texts. Input past the
// cap is silently dropped rather than chunked.
func (a *Analyzer) AnalyzeTopics(ctx context.Context, req models.AnalysisRequest) ([]models.TopicItem, error) {
	texts := req.Texts
	if len(texts) > TopicMaxTexts {
		slog.Info("[Analyzer] Truncating topic request",
			slog.Int("texts", len(texts)),
			slog.Int("max", TopicMaxTexts))
		texts = texts[:TopicMaxTexts]
	}

	texts = a.enricher.EnrichTexts(ctx, texts)

	prompt, err := topicsPrompt(texts)
	if err != nil {
		return nil, err
	}

	result, _, err := CallModels(ctx, a.llm, prompt, candidateList(req.Model, a.fallbacks), clients.CompletionOptions{
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return NormalizeTopicItems(result.Content)
}

func topicsPrompt(texts []string) (string, error) {
	payload, err := json.Marshal(texts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal texts: %w", err)
	}

	return fmt.Sprintf(`You are a topic analyst. Identify the main recurring topics across the texts in the following JSON array.

For each topic return one object with:
- "name": a short topic name
- "keywords": up to 5 keywords associated with the topic
- "count": how many texts mention the topic (at least 1)

Texts:
%s

IMPORTANT: Respond with ONLY a valid JSON array, no markdown formatting, no code blocks, no explanations.

Required JSON format:
[
  { "name": "customer service", "keywords": ["support", "response time"], "count": 4 }
]

Order topics from most to least mentioned.`, payload), nil
}
