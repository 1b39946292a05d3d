package server

import (
	"github.com/gin-gonic/gin"

	"github.com/vela-platform/vela/internal/ai"
)

func (s *Server) handleAIGenerateSiteConfig(c *gin.Context) {
	var params ai.SiteConfigParams
	if err := c.ShouldBindJSON(&params); err != nil ||
		params.SiteName == "" || params.SiteDescription == "" {
		failMsg(c, 400, "Missing required fields: siteName, siteDescription")
		return
	}

	result, err := s.generator.GenerateSiteConfig(c.Request.Context(), params)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleAIGeneratePage(c *gin.Context) {
	var params ai.PageParams
	if err := c.ShouldBindJSON(&params); err != nil ||
		params.Path == "" || params.Title == "" {
		failMsg(c, 400, "Missing required fields: path, title")
		return
	}

	result, err := s.generator.GeneratePage(c.Request.Context(), params)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleAIGenerateComponent(c *gin.Context) {
	var body struct {
		Context string `json:"context"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failMsg(c, 400, "Invalid request body")
		return
	}

	result, err := s.generator.GenerateComponent(c.Request.Context(), ai.ComponentParams{
		Type:    c.Param("type"),
		Context: body.Context,
		Content: body.Content,
	})
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleAIEnhanceComponent(c *gin.Context) {
	var body struct {
		Component    map[string]any `json:"component"`
		Instructions string         `json:"instructions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil ||
		body.Component == nil || body.Instructions == "" {
		failMsg(c, 400, "Missing required fields: component, instructions")
		return
	}

	result, err := s.generator.EnhanceComponent(c.Request.Context(), body.Component, body.Instructions)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleAIGenerateFromPrompt(c *gin.Context) {
	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Prompt == "" {
		failMsg(c, 400, "Missing required field: prompt")
		return
	}

	result, err := s.generator.GenerateFromPrompt(c.Request.Context(), body.Prompt)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}
