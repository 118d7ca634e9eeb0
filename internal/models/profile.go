package models

import (
	"github.com/google/uuid"
	"time"
)

// Profile — публичное имя пользователя, ровно один на User (id совпадает).
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
