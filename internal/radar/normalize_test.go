package radar

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizeSentimentItems(t *testing.T) {
	raw := `[
		{"text": "great product", "sentiment": "POSITIVE", "score": 0.9},
		{"text": "meh", "sentiment": "mixed", "score": "high"},
		{"text": "terrible", "sentiment": "negative", "score": 1.7},
		{"text": "awful", "sentiment": "negative", "score": -0.2}
	]`

	items, err := NormalizeSentimentItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}

	if items[0].Sentiment != "positive" {
		t.Errorf("labels should lowercase, got %q", items[0].Sentiment)
	}
	if items[1].Sentiment != "neutral" {
		t.Errorf("unknown label should default neutral, got %q", items[1].Sentiment)
	}
	if items[1].Score != 0.5 {
		t.Errorf("non-number score should default 0.5, got %v", items[1].Score)
	}
	if items[2].Score != 1 {
		t.Errorf("score should clamp to 1, got %v", items[2].Score)
	}
	if items[3].Score != 0 {
		t.Errorf("score should clamp to 0, got %v", items[3].Score)
	}
}

func TestNormalizeSentimentItemsTruncatesStoredText(t *testing.T) {
	long := strings.Repeat("x", 300)
	items, err := NormalizeSentimentItems(`[{"text": "` + long + `", "sentiment": "positive", "score": 0.8}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items[0].Text) != 100 {
		t.Errorf("stored text should cap at 100 chars, got %d", len(items[0].Text))
	}
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"ascii cut", "hello world", 5, "hello"},
		{"ascii shorter than limit", "hi", 5, "hi"},
		{"multibyte cut mid sequence", "日本語テキスト", 3, "日本語"},
		{"mixed cut before multibyte", "ab日本", 3, "ab日"},
		{"emoji boundary", "🎉🎉🎉", 2, "🎉🎉"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.n)
			if got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestNormalizeSentimentItemsFencedOutput(t *testing.T) {
	raw := "```json\n[{\"text\": \"ok\", \"sentiment\": \"neutral\", \"score\": 0.5}]\n```"
	items, err := NormalizeSentimentItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}

func TestNormalizeSentimentItemsSalvagesEmbeddedArray(t *testing.T) {
	raw := `Sure! Here is the analysis you asked for:
[{"text": "fine", "sentiment": "positive", "score": 0.7}]
Hope that helps.`

	items, err := NormalizeSentimentItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Sentiment != "positive" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestNormalizeSentimentItemsNonArrayYieldsEmpty(t *testing.T) {
	items, err := NormalizeSentimentItems(`{"oops": "object"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("valid non-array should normalize to empty, got %+v", items)
	}
}

func TestNormalizeSentimentItemsUnparseable(t *testing.T) {
	_, err := NormalizeSentimentItems("I could not process that request.")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want ParseError, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to parse AI-generated sentiment analysis as JSON") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestNormalizeTopicItems(t *testing.T) {
	raw := `[
		{"name": "pricing", "keywords": ["cost", "billing", "plan", "tier", "fee", "extra"], "count": 7},
		{"topic": "support", "keywords": [], "count": 0},
		{"name": "onboarding"}
	]`

	items, err := NormalizeTopicItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	if len(items[0].Keywords) != 5 {
		t.Errorf("keywords should cap at 5, got %d", len(items[0].Keywords))
	}
	if items[0].Count != 7 {
		t.Errorf("got count %d, want 7", items[0].Count)
	}
	if items[1].Name != "support" {
		t.Errorf("topic key should back-fill name, got %q", items[1].Name)
	}
	if items[1].Count != 1 {
		t.Errorf("count should floor at 1, got %d", items[1].Count)
	}
	if items[2].Count != 1 || items[2].Keywords == nil {
		t.Errorf("missing fields should default, got %+v", items[2])
	}
}

func TestCleanJSONResponseIdempotent(t *testing.T) {
	raw := "```json\n[1,2]\n```"
	once := CleanJSONResponse(raw)
	twice := CleanJSONResponse(once)
	if once != twice {
		t.Errorf("cleaning should be idempotent: %q vs %q", once, twice)
	}
	if once != "[1,2]" {
		t.Errorf("got %q, want [1,2]", once)
	}
}

func TestExtractJSONObject(t *testing.T) {
	raw := "Here you go: {\"a\": 1} enjoy"
	got, err := ExtractJSONObject(raw, "content analysis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"a": 1}` {
		t.Errorf("got %q", got)
	}

	_, err = ExtractJSONObject("no json here", "content analysis")
	if err == nil {
		t.Fatal("expected ParseError")
	}
}
