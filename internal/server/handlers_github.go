package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vela-platform/vela/internal/githubstore"
)

// requireGitHub resolves the store or writes the configuration error.
// A missing GitHub setup is an input problem, not a server fault.
func (s *Server) requireGitHub(c *gin.Context) *githubstore.Store {
	if s.github != nil {
		return s.github
	}
	err := s.githubErr
	if err == nil {
		err = githubstore.ErrNotConfigured
	}
	fail(c, 400, err)
	return nil
}

func (s *Server) handleSaveConfig(c *gin.Context) {
	store := s.requireGitHub(c)
	if store == nil {
		return
	}

	var req struct {
		Config         map[string]any `json:"config"`
		Filename       string         `json:"filename"`
		Message        string         `json:"message"`
		Branch         string         `json:"branch"`
		SkipValidation bool           `json:"skipValidation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Config == nil || req.Filename == "" {
		failMsg(c, 400, "Missing required fields: config, filename")
		return
	}

	result, err := store.SaveConfig(c.Request.Context(),
		req.Config, req.Filename, req.Message, req.Branch, req.SkipValidation)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleGetConfig(c *gin.Context) {
	store := s.requireGitHub(c)
	if store == nil {
		return
	}

	filename := c.Query("filename")
	if filename == "" {
		failMsg(c, 400, "Missing required query parameter: filename")
		return
	}

	result, err := store.GetConfig(c.Request.Context(), filename, c.Query("branch"))
	if err != nil {
		if errors.Is(err, githubstore.ErrFileNotFound) {
			fail(c, 404, err)
			return
		}
		fail(c, 500, err)
		return
	}
	c.JSON(200, result)
}

func (s *Server) handleListConfigs(c *gin.Context) {
	store := s.requireGitHub(c)
	if store == nil {
		return
	}

	entries, err := store.ListConfigs(c.Request.Context(), c.Query("branch"))
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, entries)
}

func (s *Server) handleDeleteConfig(c *gin.Context) {
	store := s.requireGitHub(c)
	if store == nil {
		return
	}

	filename := c.Query("filename")
	if filename == "" {
		failMsg(c, 400, "Missing required query parameter: filename")
		return
	}

	err := store.DeleteConfig(c.Request.Context(), filename, c.Query("message"), c.Query("branch"))
	if err != nil {
		if errors.Is(err, githubstore.ErrFileNotFound) {
			fail(c, 404, err)
			return
		}
		fail(c, 500, err)
		return
	}
	c.JSON(200, gin.H{"deleted": filename})
}

func (s *Server) handleRepoInfo(c *gin.Context) {
	store := s.requireGitHub(c)
	if store == nil {
		return
	}

	info, err := store.RepoInfo(c.Request.Context())
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, info)
}
