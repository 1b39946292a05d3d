package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vela-platform/vela/internal/models"
	"github.com/vela-platform/vela/internal/siteconfig"
)

func (s *Server) handleSiteConfigTemplate(c *gin.Context) {
	c.JSON(200, siteconfig.FullTemplate())
}

func (s *Server) handleAllSchemas(c *gin.Context) {
	c.JSON(200, siteconfig.AllSchemas())
}

func (s *Server) handleSchemaByType(c *gin.Context) {
	componentType := c.Param("type")
	schema := siteconfig.Schema(componentType)
	if schema == nil {
		failMsg(c, 400, fmt.Sprintf("Component type '%s' not found", componentType))
		return
	}
	c.JSON(200, schema)
}

func (s *Server) handleExample(c *gin.Context) {
	exampleType := c.Param("type")
	example := siteconfig.Example(exampleType)
	if example == nil {
		failMsg(c, 400, fmt.Sprintf("Example type '%s' not found", exampleType))
		return
	}
	c.JSON(200, example)
}

func (s *Server) handleGenerateSiteConfig(c *gin.Context) {
	var req struct {
		Input *models.SiteConfig `json:"input"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Input == nil {
		failMsg(c, 400, "Missing input field")
		return
	}

	result := siteconfig.GenerateSiteConfig(*req.Input)
	wrapped, err := siteconfig.DownloadableFormat(result, "site-config")
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, wrapped)
}

func (s *Server) handleGeneratePage(c *gin.Context) {
	var req models.PageConfig
	if err := c.ShouldBindJSON(&req); err != nil || req.Path == "" || req.Sections == nil {
		failMsg(c, 400, "Missing required fields: path, sections")
		return
	}
	c.JSON(200, siteconfig.GeneratePage(req))
}

func (s *Server) handleGenerateComponent(c *gin.Context) {
	var req struct {
		Content map[string]any `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == nil {
		failMsg(c, 400, "Missing content field")
		return
	}
	c.JSON(200, siteconfig.GenerateComponent(c.Param("type"), req.Content))
}

func (s *Server) handleValidateSiteConfig(c *gin.Context) {
	var req struct {
		Config map[string]any `json:"config"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Config == nil {
		failMsg(c, 400, "Missing config field")
		return
	}
	c.JSON(200, siteconfig.ValidateSiteConfig(req.Config))
}
