package config

import (
	"os"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultJinaBaseURL       = "https://r.jina.ai/"
	defaultSentimentModel    = "amazon/nova-2-lite-v1:free"
)

// FallbackModels is the ordered candidate list tried by the multi-model
// caller. Order matters: the first candidate that succeeds wins, even when
// a later one resolves faster.
var FallbackModels = []string{
	"kwaipilot/kat-coder-pro:free",
	"openai/gpt-oss-120b:free",
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	// DefaultModel is used when a request does not name one.
	DefaultModel string
}

type JinaConfig struct {
	APIKey  string
	BaseURL string
}

type GitHubConfig struct {
	Token  string
	Owner  string
	Repo   string
	Branch string
}

func (g GitHubConfig) Configured() bool {
	return g.Token != "" && g.Owner != "" && g.Repo != ""
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (p PostgresConfig) DSN() string {
	return "postgres://" + p.User + ":" + p.Password + "@" + p.Host + ":" + p.Port + "/" + p.Name + "?sslmode=disable"
}

type ValkeyConfig struct {
	InitAddress string
	Password    string
	UseTLS      bool
}

type AWSConfig struct {
	Endpoint string
	Region   string
}

// Config carries every external dependency setting. It is built once in
// main and passed into each constructor; nothing reads the environment
// after startup.
type Config struct {
	Port       string
	APIToken   string
	OpenRouter OpenRouterConfig
	Jina       JinaConfig
	GitHub     GitHubConfig
	Postgres   PostgresConfig
	Valkey     ValkeyConfig
	AWS        AWSConfig
}

func FromEnv() Config {
	cfg := Config{
		Port:     getenv("PORT", "7007"),
		APIToken: os.Getenv("VELA_API_TOKEN"),
		OpenRouter: OpenRouterConfig{
			APIKey:       os.Getenv("OPENROUTER_API_KEY"),
			BaseURL:      getenv("OPENROUTER_BASE_URL", defaultOpenRouterBaseURL),
			DefaultModel: getenv("OPENROUTER_DEFAULT_MODEL", defaultSentimentModel),
		},
		Jina: JinaConfig{
			APIKey:  os.Getenv("JINA_API_KEY"),
			BaseURL: getenv("JINA_BASE_URL", defaultJinaBaseURL),
		},
		GitHub: GitHubConfig{
			Token:  os.Getenv("GITHUB_TOKEN"),
			Owner:  os.Getenv("GITHUB_OWNER"),
			Repo:   os.Getenv("GITHUB_REPO"),
			Branch: getenv("GITHUB_BRANCH", "main"),
		},
		Postgres: PostgresConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Valkey: ValkeyConfig{
			InitAddress: os.Getenv("VALKEY_INIT_ADDRESS"),
			Password:    os.Getenv("VALKEY_PASSWORD"),
			UseTLS:      os.Getenv("VALKEY_TLS") == "true",
		},
		AWS: AWSConfig{
			Endpoint: os.Getenv("AWS_ENDPOINT"),
			Region:   getenv("AWS_REGION", "us-west-2"),
		},
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
