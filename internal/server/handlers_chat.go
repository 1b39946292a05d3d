package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vela-platform/vela/internal/models"
)

// requireChat resolves the chat store or reports it unavailable.
func (s *Server) requireChat(c *gin.Context) bool {
	if s.chat != nil {
		return true
	}
	failMsg(c, 500, "chat store not configured")
	return false
}

func (s *Server) handleCreateSession(c *gin.Context) {
	if !s.requireChat(c) {
		return
	}

	var req struct {
		GithubUsername string `json:"github_username"`
		UserRef        string `json:"user_ref"`
		DisplayName    string `json:"display_name"`
		AvatarURL      string `json:"avatar_url"`
		Title          string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.GithubUsername == "" || req.Title == "" {
		failMsg(c, 400, "Missing required fields: github_username, title")
		return
	}

	user, err := s.chat.FindOrCreateUser(c.Request.Context(),
		req.GithubUsername, req.UserRef, req.DisplayName, req.AvatarURL)
	if err != nil {
		fail(c, 500, err)
		return
	}

	session, err := s.chat.CreateChatSession(c.Request.Context(), user.ID, req.Title)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(201, session)
}

func (s *Server) handleListSessions(c *gin.Context) {
	if !s.requireChat(c) {
		return
	}

	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		failMsg(c, 400, "Missing or invalid query parameter: user_id")
		return
	}

	sessions, err := s.chat.ListChatSessions(c.Request.Context(), userID)
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, sessions)
}

func (s *Server) handleAddMessage(c *gin.Context) {
	if !s.requireChat(c) {
		return
	}

	var req struct {
		InputPrompt   string `json:"input_prompt"`
		OutputContent string `json:"output_content"`
		OutputType    string `json:"output_type"`
		Status        string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		failMsg(c, 400, "Missing required field: status")
		return
	}

	msg, err := s.chat.AddChatMessage(c.Request.Context(), models.ChatMessage{
		SessionID:     c.Param("id"),
		InputPrompt:   req.InputPrompt,
		OutputContent: req.OutputContent,
		OutputType:    req.OutputType,
		Status:        req.Status,
	})
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, msg)
}

func (s *Server) handleListMessages(c *gin.Context) {
	if !s.requireChat(c) {
		return
	}

	messages, err := s.chat.ListChatMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, 500, err)
		return
	}
	c.JSON(200, messages)
}
