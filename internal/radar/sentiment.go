package radar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/models"
)

const (
	analysisTemperature = 0.3
	analysisMaxTokens   = 4000
)

// AnalyzeSentiment classifies each text as positive/negative/neutral with
// a confidence score. Requests larger than the chunk size are split and
// processed sequentially; results keep input order across chunk
// boundaries. A failing chunk fails the whole request.
func (a *Analyzer) AnalyzeSentiment(ctx context.Context, req models.AnalysisRequest) ([]models.SentimentItem, error) {
	if len(req.Texts) > SentimentChunkSize {
		slog.Info("[Analyzer] Splitting sentiment request into chunks",
			slog.Int("texts", len(req.Texts)),
			slog.Int("chunk_size", SentimentChunkSize))

		var combined []models.SentimentItem
		for _, chunk := range ChunkTexts(req.Texts, SentimentChunkSize) {
			items, err := a.AnalyzeSentiment(ctx, models.AnalysisRequest{Texts: chunk, Model: req.Model})
			if err != nil {
				return nil, err
			}
			combined = append(combined, items...)
		}
		return combined, nil
	}

	texts := a.enricher.EnrichTexts(ctx, req.Texts)

	prompt, err := sentimentPrompt(texts)
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

	return NormalizeSentimentItems(result.Content)
}

func sentimentPrompt(texts []string) (string, error) {
	payload, err := json.Marshal(texts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal texts: %w", err)
	}

	return fmt.Sprintf(`You are a sentiment analyst. Analyze the sentiment of each text in the following JSON array.

For every input text return one object with:
- "text": the original text
- "sentiment": one of "positive", "negative", or "neutral"
- "score": a confidence score between 0 and 1

Texts:
%s

IMPORTANT: Respond with ONLY a valid JSON array, no markdown formatting, no code blocks, no explanations.

Required JSON format:
[
  { "text": "...", "sentiment": "positive", "score": 0.95 }
]

Return exactly one object per input text, in the same order.`, payload), nil
}
