package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vela-platform/vela/internal/models"
)

// ChatStore persists users, chat sessions, and chat messages.
type ChatStore struct {
	pool *pgxpool.Pool
}

func NewChatStore(pool *pgxpool.Pool) *ChatStore {
	return &ChatStore{pool: pool}
}

// FindOrCreateUser looks up a user by GitHub username and creates one on
// first sight.
func (s *ChatStore) FindOrCreateUser(ctx context.Context, githubUsername, userRef, displayName, avatarURL string) (*models.User, error) {
	var user models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, github_username, user_ref, COALESCE(display_name, ''), COALESCE(avatar_url, ''), created_at
		 FROM users WHERE github_username = $1`, githubUsername).
		Scan(&user.ID, &user.GithubUsername, &user.UserRef, &user.DisplayName, &user.AvatarURL, &user.CreatedAt)
	if err == nil {
		slog.Debug("[ChatStore] Found existing user", slog.String("github_username", githubUsername))
		return &user, nil
	}

	slog.Info("[ChatStore] Creating new user", slog.String("github_username", githubUsername))
	err = s.pool.QueryRow(ctx,
		`INSERT INTO users (github_username, user_ref, display_name, avatar_url)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		 ON CONFLICT (github_username) DO UPDATE SET user_ref = EXCLUDED.user_ref
		 RETURNING id, github_username, user_ref, COALESCE(display_name, ''), COALESCE(avatar_url, ''), created_at`,
		githubUsername, userRef, displayName, avatarURL).
		Scan(&user.ID, &user.GithubUsername, &user.UserRef, &user.DisplayName, &user.AvatarURL, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// CreateChatSession opens a new session for a user.
func (s *ChatStore) CreateChatSession(ctx context.Context, userID int64, title string) (*models.ChatSession, error) {
	slog.Info("[ChatStore] Creating new chat session",
		slog.Int64("user_id", userID),
		slog.String("title", title))

	var session models.ChatSession
	err := s.pool.QueryRow(ctx,
		`INSERT INTO chat_sessions (id, user_id, title)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, title, created_at, updated_at`,
		uuid.NewString(), userID, title).
		Scan(&session.ID, &session.UserID, &session.Title, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create chat session: %w", err)
	}
	return &session, nil
}

// AddChatMessage stores a message and touches the session's updated_at.
// The two statements are deliberately not wrapped in a transaction; a
// stale updated_at after a crash is acceptable.
func (s *ChatStore) AddChatMessage(ctx context.Context, msg models.ChatMessage) (*models.ChatMessage, error) {
	slog.Info("[ChatStore] Adding chat message", slog.String("session_id", msg.SessionID))

	var stored models.ChatMessage
	err := s.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (session_id, input_prompt, output_content, output_type, status)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5)
		 RETURNING id, session_id, COALESCE(input_prompt, ''), COALESCE(output_content, ''), COALESCE(output_type, ''), status, created_at`,
		msg.SessionID, msg.InputPrompt, msg.OutputContent, msg.OutputType, msg.Status).
		Scan(&stored.ID, &stored.SessionID, &stored.InputPrompt, &stored.OutputContent, &stored.OutputType, &stored.Status, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add chat message: %w", err)
	}

	if _, err := s.pool.Exec(ctx,
		`UPDATE chat_sessions SET updated_at = now() WHERE id = $1`, msg.SessionID); err != nil {
		slog.Warn("[ChatStore] Failed to touch session updated_at",
			slog.String("session_id", msg.SessionID),
			slog.String("error", err.Error()))
	}
	return &stored, nil
}

// ListChatSessions returns a user's sessions, most recently active first.
func (s *ChatStore) ListChatSessions(ctx context.Context, userID int64) ([]models.ChatSession, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, title, created_at, updated_at
		 FROM chat_sessions WHERE user_id = $1
		 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list chat sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.ChatSession{}
	for rows.Next() {
		var session models.ChatSession
		if err := rows.Scan(&session.ID, &session.UserID, &session.Title, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chat session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// ListChatMessages returns a session's messages in chronological order.
func (s *ChatStore) ListChatMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, session_id, COALESCE(input_prompt, ''), COALESCE(output_content, ''), COALESCE(output_type, ''), status, created_at
		 FROM chat_messages WHERE session_id = $1
		 ORDER BY created_at ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.InputPrompt, &msg.OutputContent, &msg.OutputType, &msg.Status, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
