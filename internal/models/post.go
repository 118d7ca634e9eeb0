package models

import (
	"github.com/google/uuid"
	"time"
)

// Post — LFG-объявление. После создания не редактируется, только удаляется владельцем.
type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"not null" json:"user_id"`
	Game        string    `gorm:"not null" json:"game"`
	Role        string    `gorm:"not null" json:"role"`
	Rank        *string   `json:"rank,omitempty"`
	Region      string    `gorm:"not null" json:"region"`
	Description string    `gorm:"not null;size:200" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Денормализованный join для выдачи username автора
	Profile Profile `gorm:"foreignKey:UserID;references:ID" json:"profiles"`
}
