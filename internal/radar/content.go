package radar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/models"
)

const contentInputLimit = 10000

// AnalyzeContent asks the model to extract clean tabular data, a summary,
// and insights from scraped page content.
func (a *Analyzer) AnalyzeContent(ctx context.Context, req models.AnalyzeContentRequest) (*models.AnalyzeContentResponse, error) {
	prompt := contentPrompt(req.Content, req.URL)

	result, err := a.llm.Complete(ctx, req.Model, prompt, clients.CompletionOptions{
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONObject(result.Content, "content analysis")
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Summary  string     `json:"summary"`
		Headers  []string   `json:"headers"`
		Rows     [][]string `json:"rows"`
		Insights []string   `json:"insights"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// Rows with mixed value types still carry signal; re-read them
		// leniently before giving up.
		doc := gjson.Parse(raw)
		parsed.Summary = doc.Get("summary").String()
		for _, h := range doc.Get("headers").Array() {
			parsed.Headers = append(parsed.Headers, h.String())
		}
		for _, row := range doc.Get("rows").Array() {
			var cells []string
			for _, cell := range row.Array() {
				cells = append(cells, cell.String())
			}
			parsed.Rows = append(parsed.Rows, cells)
		}
		for _, insight := range doc.Get("insights").Array() {
			parsed.Insights = append(parsed.Insights, insight.String())
		}
	}

	if parsed.Summary == "" {
		parsed.Summary = "No summary available"
	}
	if parsed.Headers == nil {
		parsed.Headers = []string{}
	}
	if parsed.Rows == nil {
		parsed.Rows = [][]string{}
	}
	if parsed.Insights == nil {
		parsed.Insights = []string{}
	}

	return &models.AnalyzeContentResponse{
		Summary: parsed.Summary,
		StructuredData: models.StructuredData{
			Headers: parsed.Headers,
			Rows:    parsed.Rows,
		},
		Insights: parsed.Insights,
		Metadata: models.ContentMetadata{
			URL:        req.URL,
			AnalyzedAt: time.Now().UTC().Format(time.RFC3339),
			Model:      req.Model,
			TokensUsed: result.TokensUsed,
		},
	}, nil
}

func contentPrompt(content, url string) string {
	return fmt.Sprintf(`You are a data analyst specializing in data extraction and cleaning. Analyze the following web content and extract structured, clean data that can be represented in a CSV format.

Your task:
1. Identify the main entities, items, or data points in the content
2. Extract them into a structured table format
3. CLEAN THE DATA:
   - Remove HTML tags, special characters, and formatting
   - Normalize text (trim whitespace, fix encoding issues)
   - Standardize date formats (use ISO 8601: YYYY-MM-DD)
   - Convert numbers to proper numeric format (remove commas, currency symbols)
   - Handle missing values consistently (use empty string or "N/A")
   - Remove duplicate entries
   - Ensure consistent capitalization
4. Provide a summary of key findings
5. Generate actionable insights from the data

Content from: %s

%s

IMPORTANT: Respond with ONLY valid JSON, no markdown formatting, no code blocks, no explanations.

Required JSON format:
{
  "summary": "Brief summary of the content and what data was extracted",
  "headers": ["Column1", "Column2", "Column3"],
  "rows": [
    ["clean_value1", "clean_value2", "clean_value3"]
  ],
  "insights": [
    "Key insight 1 with specific data points",
    "Key insight 2 with trends or patterns",
    "Key insight 3 with actionable recommendations"
  ]
}

DATA QUALITY REQUIREMENTS:
- All values must be clean, properly formatted, and ready for analysis
- Headers must be descriptive and use snake_case (e.g., "event_name", "start_date")
- Dates must be in YYYY-MM-DD format
- Numbers must be numeric (no commas, currency symbols)
- Text must be trimmed and normalized
- No HTML, markdown, or special formatting characters

Return ONLY the JSON object with clean, analysis-ready data.`, url, truncate(content, contentInputLimit))
}
