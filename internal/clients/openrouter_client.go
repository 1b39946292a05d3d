package clients

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vela-platform/vela/internal/config"
)

// OpenRouter speaks the OpenAI chat-completions wire format, so the client
// is a stock go-openai client pointed at the OpenRouter base URL. No
// client-level timeout is set on completions; callers bound long requests
// through ctx when they need to.
type OpenRouterClient struct {
	client       *openai.Client
	DefaultModel string
}

type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", "https://vela.platform")
	req.Header.Set("X-Title", "VELA Platform")
	return t.base.RoundTrip(req)
}

func NewOpenRouterClient(cfg config.OpenRouterConfig) (*OpenRouterClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("[OpenRouterClient] OPENROUTER_API_KEY is not configured")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{
		Transport: &attributionTransport{base: http.DefaultTransport},
	}

	slog.Info("[OpenRouterClient] OpenRouter client initialized",
		slog.String("base_url", cfg.BaseURL),
		slog.String("default_model", cfg.DefaultModel))

	return &OpenRouterClient{
		client:       openai.NewClientWithConfig(clientCfg),
		DefaultModel: cfg.DefaultModel,
	}, nil
}

type CompletionOptions struct {
	Temperature float32
	MaxTokens   int
	JSONObject  bool
}

type CompletionResult struct {
	Content    string
	TokensUsed int
}

// Complete sends a single-prompt chat completion to one model.
func (c *OpenRouterClient) Complete(ctx context.Context, model, prompt string, opts CompletionOptions) (CompletionResult, error) {
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if opts.JSONObject {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return CompletionResult{}, err
	}
	if len(resp.Choices) == 0 {
		return CompletionResult{}, errors.New("completion returned no choices")
	}

	return CompletionResult{
		Content:    resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
