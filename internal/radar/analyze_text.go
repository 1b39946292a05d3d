package radar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonreiter/govader"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/models"
)

const textInputLimit = 5000

var vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()

// AnalyzeWithVADER scores text with the local VADER lexicon. Markdown and
// links are flattened first so formatting artifacts do not skew the score.
func AnalyzeWithVADER(text string) (float64, string) {
	plainText := RemoveLinks(MarkdownToText(text))

	sentiment := vaderAnalyzer.PolarityScores(plainText)
	score := sentiment.Compound

	var label string
	if score >= 0.20 {
		label = "positive"
	} else if score <= -0.20 {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

// AnalyzeText runs the single-text analysis: a local VADER baseline plus
// the model's summary/sentiment/topics verdict. The baseline is computed
// regardless of whether the model call succeeds, but a failed call still
// fails the request.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (*models.TextAnalysis, error) {
	vaderScore, vaderLabel := AnalyzeWithVADER(text)

	prompt := analyzeTextPrompt(text)
	result, err := a.llm.Complete(ctx, a.defaultModel, prompt, clients.CompletionOptions{
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
		JSONObject:  true,
	})
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONObject(result.Content, "text analysis")
	if err != nil {
		return nil, err
	}

	var analysis models.TextAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, &ParseError{Op: "text analysis", Err: err}
	}

	analysis.Sentiment.Sentiment = normalizeLabelString(analysis.Sentiment.Sentiment)
	analysis.VaderScore = vaderScore
	analysis.VaderLabel = vaderLabel
	return &analysis, nil
}

func analyzeTextPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text and provide a JSON response with:
1. Summary (brief)
2. Sentiment (positive, negative, or neutral) with a confidence score (0-1) and explanation.
3. Top 3 Topics with relevance score (0-1).

Text: "%s"

Response Format:
{
  "summary": "...",
  "sentiment": { "sentiment": "...", "score": 0.9, "explanation": "..." },
  "topics": [ { "topic": "...", "relevance": 0.8 } ]
}`, truncate(text, textInputLimit))
}
