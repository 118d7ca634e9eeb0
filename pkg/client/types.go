package client

import (
	"time"

	"github.com/google/uuid"
)

// Типы SDK зеркалят wire-формат сервера, чтобы потребителям не
// требовались внутренние пакеты сервера

// Post — LFG-объявление, как его отдаёт API
type Post struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Game        string    `json:"game"`
	Role        string    `json:"role"`
	Rank        *string   `json:"rank,omitempty"`
	Region      string    `json:"region"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Profile Profile `json:"profiles"`
}

// Profile — публичное имя автора
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedEventType — тип события фида изменений
type FeedEventType string

const (
	FeedPing   FeedEventType = "ping"
	FeedInsert FeedEventType = "insert"
	FeedDelete FeedEventType = "delete"
)

// FeedEvent — уведомление об изменении строки в коллекции posts.
// Insert несёт строку, delete — её id
type FeedEvent struct {
	Type      FeedEventType `json:"type"`
	Table     string        `json:"table"`
	Post      *Post         `json:"post,omitempty"`
	PostID    *uuid.UUID    `json:"post_id,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
