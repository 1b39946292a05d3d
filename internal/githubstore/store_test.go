package githubstore

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vela-platform/vela/internal/config"
)

func TestNewRequiresFullConfiguration(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.GitHubConfig
	}{
		{"empty", config.GitHubConfig{}},
		{"missing token", config.GitHubConfig{Owner: "acme", Repo: "configs"}},
		{"missing owner", config.GitHubConfig{Token: "t", Repo: "configs"}},
		{"missing repo", config.GitHubConfig{Token: "t", Owner: "acme"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(context.Background(), tc.cfg)
			if !errors.Is(err, ErrNotConfigured) {
				t.Fatalf("got %v, want ErrNotConfigured", err)
			}
		})
	}
}

// The error message is operator-facing guidance; it must name the env
// keys FromEnv actually reads.
func TestErrNotConfiguredNamesRealEnvKeys(t *testing.T) {
	msg := ErrNotConfigured.Error()
	for _, key := range []string{"GITHUB_TOKEN", "GITHUB_OWNER", "GITHUB_REPO"} {
		if !strings.Contains(msg, key) {
			t.Errorf("message %q should mention %s", msg, key)
		}
	}
	if strings.Contains(msg, "VELA_GITHUB") {
		t.Errorf("message %q names env keys that are never read", msg)
	}
}

func TestNewDefaultsBranchToMain(t *testing.T) {
	store, err := New(context.Background(), config.GitHubConfig{
		Token: "t", Owner: "acme", Repo: "configs",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.branch != "main" {
		t.Errorf("got branch %q, want main", store.branch)
	}
}

func TestConfigPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"landing", "site-configs/landing.json"},
		{"landing.json", "site-configs/landing.json"},
		{"/landing", "site-configs/landing.json"},
	}
	for _, tc := range cases {
		if got := configPath(tc.in); got != tc.want {
			t.Errorf("configPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
