package models

// AnalysisRequest is the shared request body for the batch analysis
// endpoints. Texts must be non-empty; Model falls back to the configured
// default when blank.
type AnalysisRequest struct {
	Texts []string `json:"texts"`
	Model string   `json:"model,omitempty"`
}

// ModelCallOutcome records one candidate model's result in a multi-model
// call. Exactly one outcome exists per candidate per invocation.
type ModelCallOutcome struct {
	Model   string `json:"model"`
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

type SentimentItem struct {
	Text      string  `json:"text"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

type TopicItem struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

type AnalyzeContentRequest struct {
	Content string `json:"content"`
	URL     string `json:"url"`
	Model   string `json:"model"`
}

type StructuredData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type ContentMetadata struct {
	URL        string `json:"url"`
	AnalyzedAt string `json:"analyzedAt"`
	Model      string `json:"model"`
	TokensUsed int    `json:"tokensUsed"`
}

type AnalyzeContentResponse struct {
	Summary        string          `json:"summary"`
	StructuredData StructuredData  `json:"structuredData"`
	Insights       []string        `json:"insights"`
	Metadata       ContentMetadata `json:"metadata"`
}

type GenerationContext struct {
	Requirements string `json:"requirements,omitempty"`
	Design       string `json:"design,omitempty"`
}

type GenerationRequest struct {
	Content string             `json:"content"`
	Type    string             `json:"type"`
	Model   string             `json:"model"`
	Context *GenerationContext `json:"context,omitempty"`
}

type GenerationResponse struct {
	Document   string `json:"document"`
	Model      string `json:"model"`
	TokensUsed int    `json:"tokensUsed"`
}

type SentimentVerdict struct {
	Sentiment   string  `json:"sentiment"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

type TopicRelevance struct {
	Topic     string  `json:"topic"`
	Relevance float64 `json:"relevance"`
}

// TextAnalysis is the single-text analysis result. The VADER fields carry
// the local lexicon baseline computed before the model call.
type TextAnalysis struct {
	Summary    string           `json:"summary"`
	Sentiment  SentimentVerdict `json:"sentiment"`
	Topics     []TopicRelevance `json:"topics"`
	VaderScore float64          `json:"vader_score"`
	VaderLabel string           `json:"vader_label"`
}

// AnalysisRun is one persisted sentiment/topic run, stored best-effort for
// history listing.
type AnalysisRun struct {
	ID        string `json:"id" dynamodbav:"id"`
	Kind      string `json:"kind" dynamodbav:"kind"`
	Model     string `json:"model" dynamodbav:"model"`
	ItemCount int    `json:"item_count" dynamodbav:"item_count"`
	CreatedAt string `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt int64  `json:"-" dynamodbav:"expires_at"`
}
