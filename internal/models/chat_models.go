package models

import "time"

type User struct {
	ID             int64     `json:"id"`
	GithubUsername string    `json:"github_username"`
	UserRef        string    `json:"user_ref"`
	DisplayName    string    `json:"display_name,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChatSession struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChatMessage struct {
	ID            int64     `json:"id"`
	SessionID     string    `json:"session_id"`
	InputPrompt   string    `json:"input_prompt,omitempty"`
	OutputContent string    `json:"output_content,omitempty"`
	OutputType    string    `json:"output_type,omitempty"` // api_spec, text, error
	Status        string    `json:"status"`                // completed, failed, pending
	CreatedAt     time.Time `json:"created_at"`
}
