package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/vela-platform/vela/internal/models"
)

// fail writes the flat error envelope every AI endpoint uses.
func fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func failMsg(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func (s *Server) handleScrape(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		failMsg(c, 400, "Missing required field: url")
		return
	}
	if s.jina == nil {
		failMsg(c, 500, "scraper not configured")
		return
	}

	content, err := s.jina.Scrape(c.Request.Context(), req.URL)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, content)
}

func (s *Server) handleAnalyzeText(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		failMsg(c, 400, "Missing required field: text")
		return
	}

	result, err := s.analyzer.AnalyzeText(c.Request.Context(), req.Text)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleAnalyzeSentiment(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Texts) == 0 {
		failMsg(c, 400, "Missing required field: texts")
		return
	}

	items, err := s.analyzer.AnalyzeSentiment(c.Request.Context(), req)
	if err != nil {
		fail(c, 500, err)
		return
	}

	s.runs.StoreAnalysisRun(c.Request.Context(), "sentiment", req.Model, len(items))
	c.JSON(200, items)
}

func (s *Server) handleAnalyzeTopics(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Texts) == 0 {
		failMsg(c, 400, "Missing required field: texts")
		return
	}

	items, err := s.analyzer.AnalyzeTopics(c.Request.Context(), req)
	if err != nil {
		fail(c, 500, err)
		return
	}

	s.runs.StoreAnalysisRun(c.Request.Context(), "topics", req.Model, len(items))
	c.JSON(200, items)
}

func (s *Server) handleAnalyzeContent(c *gin.Context) {
	var req models.AnalyzeContentRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Content == "" || req.URL == "" || req.Model == "" {
		failMsg(c, 400, "Missing required fields: content, url, model")
		return
	}

	result, err := s.analyzer.AnalyzeContent(c.Request.Context(), req)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleGenerateSpec(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Content == "" || req.Type == "" || req.Model == "" {
		failMsg(c, 400, "Missing required fields: content, type, model")
		return
	}

	result, err := s.analyzer.GenerateSpec(c.Request.Context(), req)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleListRuns(c *gin.Context) {
	runs, err := s.runs.ListRecentRuns(c.Request.Context())
	if err != nil {
		slog.Error("[Server] Failed to list analysis runs", slog.String("error", err.Error()))
		fail(c, 500, err)
		return
	}
	c.JSON(200, runs)
}
