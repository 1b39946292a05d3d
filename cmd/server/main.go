package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vela-platform/vela/config"
	"github.com/vela-platform/vela/internal/ai"
	"github.com/vela-platform/vela/internal/clients"
	appconfig "github.com/vela-platform/vela/internal/config"
	"github.com/vela-platform/vela/internal/db"
	"github.com/vela-platform/vela/internal/githubstore"
	"github.com/vela-platform/vela/internal/logging"
	"github.com/vela-platform/vela/internal/radar"
	"github.com/vela-platform/vela/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := appconfig.FromEnv()
	ctx := context.Background()

	llm, err := clients.NewOpenRouterClient(cfg.OpenRouter)
	if err != nil {
		slog.Error("OpenRouter client init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jina := clients.NewJinaClient(cfg.Jina)

	// Optional backends: the server runs without them with reduced routes.
	valkey, err := clients.NewValkeyClient(cfg.Valkey)
	if err != nil {
		slog.Warn("Valkey unavailable, scrape cache and rate limiting disabled",
			slog.String("error", err.Error()))
		valkey = nil
	} else {
		defer valkey.Close()
	}

	var scrapeCache radar.ScrapeCache
	if valkey != nil {
		scrapeCache = valkey
	}
	enricher := radar.NewEnricher(jina, scrapeCache)
	analyzer := radar.NewAnalyzer(llm, enricher, cfg.OpenRouter)
	generator := ai.NewGenerator(llm)

	githubStore, githubErr := githubstore.New(ctx, cfg.GitHub)
	if githubErr != nil {
		slog.Warn("GitHub store unavailable", slog.String("error", githubErr.Error()))
	}

	var chatStore *db.ChatStore
	if pool, err := db.NewPool(ctx, cfg.Postgres); err != nil {
		slog.Warn("PostgreSQL unavailable, chat routes disabled",
			slog.String("error", err.Error()))
	} else {
		defer pool.Close()
		if err := db.Bootstrap(ctx, pool); err != nil {
			slog.Error("Schema bootstrap failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		chatStore = db.NewChatStore(pool)
	}

	var runStore *db.RunStore
	if dynamo, err := clients.NewDynamoDBClient(ctx, cfg.AWS); err != nil {
		slog.Warn("DynamoDB unavailable, run history disabled",
			slog.String("error", err.Error()))
	} else {
		runStore = db.NewRunStore(dynamo)
	}

	srv := server.New(server.Options{
		Config:    cfg,
		Analyzer:  analyzer,
		Generator: generator,
		Jina:      jina,
		Valkey:    valkey,
		GitHub:    githubStore,
		GitHubErr: githubErr,
		Chat:      chatStore,
		Runs:      runStore,
	})

	if err := srv.Run(); err != nil {
		slog.Error("Server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
