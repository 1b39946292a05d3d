package server

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/vela-platform/vela/internal/ai"
	"github.com/vela-platform/vela/internal/clients"
	"github.com/vela-platform/vela/internal/config"
	"github.com/vela-platform/vela/internal/db"
	"github.com/vela-platform/vela/internal/githubstore"
	"github.com/vela-platform/vela/internal/radar"
)

// Server wires the analyzers and stores into an HTTP facade. Optional
// dependencies (valkey, github, chat, run history) may be nil; their
// routes degrade per endpoint.
type Server struct {
	cfg       config.Config
	analyzer  *radar.Analyzer
	generator *ai.Generator
	jina      *clients.JinaClient
	valkey    *clients.ValkeyClient
	github    *githubstore.Store
	githubErr error
	chat      *db.ChatStore
	runs      *db.RunStore
}

type Options struct {
	Config    config.Config
	Analyzer  *radar.Analyzer
	Generator *ai.Generator
	Jina      *clients.JinaClient
	Valkey    *clients.ValkeyClient
	GitHub    *githubstore.Store
	GitHubErr error
	Chat      *db.ChatStore
	Runs      *db.RunStore
}

func New(opts Options) *Server {
	return &Server{
		cfg:       opts.Config,
		analyzer:  opts.Analyzer,
		generator: opts.Generator,
		jina:      opts.Jina,
		valkey:    opts.Valkey,
		github:    opts.GitHub,
		githubErr: opts.GitHubErr,
		chat:      opts.Chat,
		runs:      opts.Runs,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	radarGroup := r.Group("/radar", s.auth(AuthOptional), s.rateLimit())
	{
		radarGroup.POST("/scrape", s.handleScrape)
		radarGroup.POST("/analyze", s.handleAnalyzeText)
		radarGroup.POST("/analyze-sentiment", s.handleAnalyzeSentiment)
		radarGroup.POST("/analyze-topics", s.handleAnalyzeTopics)
		radarGroup.POST("/analyze-content", s.handleAnalyzeContent)
		radarGroup.POST("/generate-spec", s.handleGenerateSpec)
		radarGroup.GET("/runs", s.handleListRuns)
	}

	r.GET("/templates/site-config", s.handleSiteConfigTemplate)
	r.GET("/schemas/components", s.handleAllSchemas)
	r.GET("/schemas/components/:type", s.handleSchemaByType)
	r.GET("/examples/:type", s.handleExample)

	generate := r.Group("/generate", s.auth(AuthOptional))
	{
		generate.POST("/site-config", s.handleGenerateSiteConfig)
		generate.POST("/page", s.handleGeneratePage)
		generate.POST("/component/:type", s.handleGenerateComponent)
	}
	r.POST("/validate/site-config", s.handleValidateSiteConfig)

	aiGroup := r.Group("/ai", s.auth(AuthOptional))
	{
		aiGroup.POST("/generate/site-config", s.handleAIGenerateSiteConfig)
		aiGroup.POST("/generate/page", s.handleAIGeneratePage)
		aiGroup.POST("/generate/component/:type", s.handleAIGenerateComponent)
		aiGroup.POST("/enhance/component", s.handleAIEnhanceComponent)
		aiGroup.POST("/generate/from-prompt", s.handleAIGenerateFromPrompt)
	}

	githubGroup := r.Group("/github", s.auth(AuthRequired))
	{
		githubGroup.POST("/save-config", s.handleSaveConfig)
		githubGroup.GET("/get-config", s.handleGetConfig)
		githubGroup.GET("/list-configs", s.handleListConfigs)
		githubGroup.DELETE("/delete-config", s.handleDeleteConfig)
		githubGroup.GET("/repo-info", s.handleRepoInfo)
	}

	chatGroup := r.Group("/chat", s.auth(AuthRequired))
	{
		chatGroup.POST("/sessions", s.handleCreateSession)
		chatGroup.GET("/sessions", s.handleListSessions)
		chatGroup.POST("/sessions/:id/messages", s.handleAddMessage)
		chatGroup.GET("/sessions/:id/messages", s.handleListMessages)
	}

	return r
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	slog.Info("[Server] Listening", slog.String("addr", addr))
	return s.Router().Run(addr)
}
