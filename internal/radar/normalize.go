package radar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vela-platform/vela/internal/models"
)

const (
	maxStoredTextLen = 100
	maxTopicKeywords = 5
	defaultScore     = 0.5
)

var (
	jsonArrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// ParseError reports model output that could not be interpreted as JSON
// even after salvage. Op names the operation whose output failed.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse AI-generated %s as JSON: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to parse AI-generated %s as JSON", e.Op)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CleanJSONResponse strips markdown code-fence markers from model output.
// Cleaning an already-clean payload is a no-op.
func CleanJSONResponse(content string) string {
	cleaned := strings.ReplaceAll(content, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// salvageJSON returns a parseable JSON document from raw model output:
// fence-stripped text when it is already valid, otherwise the first
// bracketed array or object substring that parses. The regex fallback is a
// known-lossy heuristic; it cannot handle every nested or multi-blob
// output.
func salvageJSON(raw string, preferArray bool) (gjson.Result, bool) {
	cleaned := CleanJSONResponse(raw)
	if gjson.Valid(cleaned) {
		return gjson.Parse(cleaned), true
	}

	patterns := []*regexp.Regexp{jsonArrayPattern, jsonObjectPattern}
	if !preferArray {
		patterns = []*regexp.Regexp{jsonObjectPattern, jsonArrayPattern}
	}
	for _, p := range patterns {
		if match := p.FindString(cleaned); match != "" && gjson.Valid(match) {
			return gjson.Parse(match), true
		}
	}
	return gjson.Result{}, false
}

// ExtractJSONObject pulls the first JSON object out of raw model output,
// returning the raw JSON text.
func ExtractJSONObject(raw, op string) (string, error) {
	doc, ok := salvageJSON(raw, false)
	if !ok {
		return "", &ParseError{Op: op}
	}
	return doc.Raw, nil
}

// NormalizeSentimentItems interprets raw model output as a sentiment item
// array. A valid non-array payload yields an empty result rather than an
// error; unparseable output is a ParseError.
func NormalizeSentimentItems(raw string) ([]models.SentimentItem, error) {
	doc, ok := salvageJSON(raw, true)
	if !ok {
		return nil, &ParseError{Op: "sentiment analysis"}
	}
	if !doc.IsArray() {
		return []models.SentimentItem{}, nil
	}

	items := []models.SentimentItem{}
	doc.ForEach(func(_, value gjson.Result) bool {
		items = append(items, models.SentimentItem{
			Text:      truncate(value.Get("text").String(), maxStoredTextLen),
			Sentiment: normalizeSentimentLabel(value.Get("sentiment")),
			Score:     normalizeScore(value.Get("score")),
		})
		return true
	})
	return items, nil
}

// NormalizeTopicItems interprets raw model output as a topic item array
// with the same salvage and non-array rules as sentiment.
func NormalizeTopicItems(raw string) ([]models.TopicItem, error) {
	doc, ok := salvageJSON(raw, true)
	if !ok {
		return nil, &ParseError{Op: "topic analysis"}
	}
	if !doc.IsArray() {
		return []models.TopicItem{}, nil
	}

	items := []models.TopicItem{}
	doc.ForEach(func(_, value gjson.Result) bool {
		name := value.Get("name").String()
		if name == "" {
			name = value.Get("topic").String()
		}

		keywords := []string{}
		value.Get("keywords").ForEach(func(_, kw gjson.Result) bool {
			if len(keywords) >= maxTopicKeywords {
				return false
			}
			keywords = append(keywords, kw.String())
			return true
		})

		count := 1
		if c := value.Get("count"); c.Type == gjson.Number && int(c.Int()) > 1 {
			count = int(c.Int())
		}

		items = append(items, models.TopicItem{
			Name:     name,
			Keywords: keywords,
			Count:    count,
		})
		return true
	})
	return items, nil
}

func normalizeSentimentLabel(v gjson.Result) string {
	return normalizeLabelString(v.String())
}

func normalizeLabelString(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive":
		return "positive"
	case "negative":
		return "negative"
	default:
		return "neutral"
	}
}

func normalizeScore(v gjson.Result) float64 {
	if v.Type != gjson.Number {
		return defaultScore
	}
	score := v.Float()
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// truncate cuts s to at most n characters, never splitting a rune.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
