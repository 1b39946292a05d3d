package clients

import (
	"context"
	"log/slog"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/vela-platform/vela/internal/config"
)

// NewGitHubClient builds an authenticated GitHub API client. The caller is
// expected to have checked cfg.Configured() first; an empty token still
// yields a client, it just hits the unauthenticated rate limits.
func NewGitHubClient(ctx context.Context, cfg config.GitHubConfig) *github.Client {
	if cfg.Token == "" {
		slog.Warn("[GitHubClient] No token configured, using unauthenticated client")
		return github.NewClient(nil)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}
