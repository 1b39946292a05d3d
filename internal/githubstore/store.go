package githubstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/google/go-github/v60/github"

	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/config"
	"github.com/vela-platform/vela/internal/models"
	"github.com/vela-platform/vela/internal/siteconfig"
)

// configDir is where site configurations live inside the target repo.
const configDir = "site-configs"

// ErrNotConfigured means the GitHub token/owner/repo settings are missing.
// The HTTP facade maps this to a 400.
var ErrNotConfigured = errors.New(
	"GitHub configuration missing. Please set GITHUB_TOKEN, GITHUB_OWNER, and GITHUB_REPO")

// ErrFileNotFound is returned for 404s from the contents API.
var ErrFileNotFound = errors.New("file not found")

// SaveResult merges the commit outcome with the validation run on the
// config before saving.
type SaveResult struct {
	models.GitHubFileResponse
	Validation *models.ValidationResult `json:"validation,omitempty"`
}

// Store persists site configurations as JSON files in a GitHub repository.
type Store struct {
	client *github.Client
	owner  string
	repo   string
	branch string
}

// New builds a Store. It fails with ErrNotConfigured when the token,
// owner, or repo is unset.
func New(ctx context.Context, cfg config.GitHubConfig) (*Store, error) {
	slog.Info("[GitHubStore] Initializing",
		slog.Bool("has_token", cfg.Token != ""),
		slog.String("owner", cfg.Owner),
		slog.String("repo", cfg.Repo),
		slog.String("branch", cfg.Branch))

	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	branch := cfg.Branch
	if branch == "" {
		branch = "main"
	}

	return &Store{
		client: clients.NewGitHubClient(ctx, cfg),
		owner:  cfg.Owner,
		repo:   cfg.Repo,
		branch: branch,
	}, nil
}

// SaveConfig validates and commits a site configuration. An existing file
// at the same path is updated in place via its current sha.
func (s *Store) SaveConfig(ctx context.Context, cfg map[string]any, filename, message, branch string, skipValidation bool) (*SaveResult, error) {
	result := &SaveResult{}
	if !skipValidation {
		validation := siteconfig.ValidateSiteConfig(cfg)
		result.Validation = &validation
	}

	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	filePath := configPath(filename)
	if message == "" {
		message = fmt.Sprintf("Update %s via VELA", filePath)
	}
	if branch == "" {
		branch = s.branch
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(branch),
	}

	// Update needs the current sha; a missing file is a create.
	existing, _, _, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, filePath,
		&github.RepositoryContentGetOptions{Ref: branch})
	if err == nil && existing != nil && existing.SHA != nil {
		opts.SHA = existing.SHA
	}

	resp, _, err := s.client.Repositories.CreateFile(ctx, s.owner, s.repo, filePath, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to save file to GitHub: %w", err)
	}

	result.GitHubFileResponse = models.GitHubFileResponse{
		SHA:  resp.Content.GetSHA(),
		Path: resp.Content.GetPath(),
		URL:  resp.Content.GetHTMLURL(),
	}
	return result, nil
}

// GetConfig fetches a stored site configuration by filename.
func (s *Store) GetConfig(ctx context.Context, filename, branch string) (*models.GitHubFileResponse, error) {
	if branch == "" {
		branch = s.branch
	}
	filePath := configPath(filename)

	file, _, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, filePath,
		&github.RepositoryContentGetOptions{Ref: branch})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
		}
		return nil, fmt.Errorf("failed to get file from GitHub: %w", err)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode file content: %w", err)
	}

	return &models.GitHubFileResponse{
		Content: content,
		SHA:     file.GetSHA(),
		Path:    file.GetPath(),
		URL:     file.GetHTMLURL(),
	}, nil
}

// ListConfigs enumerates the stored configurations.
func (s *Store) ListConfigs(ctx context.Context, branch string) ([]models.GitHubFileEntry, error) {
	if branch == "" {
		branch = s.branch
	}

	_, dir, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, configDir,
		&github.RepositoryContentGetOptions{Ref: branch})
	if err != nil {
		// An empty store is not an error.
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return []models.GitHubFileEntry{}, nil
		}
		return nil, fmt.Errorf("failed to list files from GitHub: %w", err)
	}

	entries := make([]models.GitHubFileEntry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, models.GitHubFileEntry{
			Name: item.GetName(),
			Path: item.GetPath(),
			Type: item.GetType(),
			SHA:  item.GetSHA(),
		})
	}
	return entries, nil
}

// DeleteConfig removes a stored configuration.
func (s *Store) DeleteConfig(ctx context.Context, filename, message, branch string) error {
	if branch == "" {
		branch = s.branch
	}
	filePath := configPath(filename)

	file, _, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, filePath,
		&github.RepositoryContentGetOptions{Ref: branch})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
		}
		return fmt.Errorf("failed to get file from GitHub: %w", err)
	}

	if message == "" {
		message = fmt.Sprintf("Delete %s via VELA", filePath)
	}

	_, _, err = s.client.Repositories.DeleteFile(ctx, s.owner, s.repo, filePath,
		&github.RepositoryContentFileOptions{
			Message: github.String(message),
			SHA:     github.String(file.GetSHA()),
			Branch:  github.String(branch),
		})
	if err != nil {
		return fmt.Errorf("failed to delete file from GitHub: %w", err)
	}
	return nil
}

// RepoInfo describes the configured repository.
func (s *Store) RepoInfo(ctx context.Context) (*models.GitHubRepoInfo, error) {
	repo, _, err := s.client.Repositories.Get(ctx, s.owner, s.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}
	return &models.GitHubRepoInfo{
		Name:   repo.GetName(),
		Owner:  repo.GetOwner().GetLogin(),
		Branch: s.branch,
		URL:    repo.GetHTMLURL(),
	}, nil
}

func configPath(filename string) string {
	filename = strings.TrimPrefix(filename, "/")
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}
	return path.Join(configDir, filename)
}
