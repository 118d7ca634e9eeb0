package changefeed

import (
	"time"

	"github.com/Nourbaganne/Esport-post-board/internal/models"
	"github.com/google/uuid"
)

// EventType определяет типы событий фида
type EventType string

const (
	// Системные типы
	TypePing EventType = "ping"

	// Изменения строк коллекции
	TypeInsert EventType = "insert"
	TypeDelete EventType = "delete"
)

// Event — уведомление об изменении строки в коллекции posts.
// Payload несёт изменённую строку (insert) или её id (delete),
// чтобы клиент при желании мог применять дельты вместо полной перезагрузки.
type Event struct {
	Type      EventType    `json:"type"`
	Table     string       `json:"table"`
	Post      *models.Post `json:"post,omitempty"`
	PostID    *uuid.UUID   `json:"post_id,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

func NewInsertEvent(post *models.Post) Event {
	return Event{
		Type:      TypeInsert,
		Table:     "posts",
		Post:      post,
		Timestamp: time.Now(),
	}
}

func NewDeleteEvent(postID uuid.UUID) Event {
	return Event{
		Type:      TypeDelete,
		Table:     "posts",
		PostID:    &postID,
		Timestamp: time.Now(),
	}
}
