package database

import (
	"errors"

	"github.com/Nourbaganne/Esport-post-board/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotOwner = errors.New("post belongs to another user")

func (d *Database) SavePost(post *models.Post) error {
	return d.db.Create(post).Error
}

func (d *Database) GetPost(id string) (*models.Post, error) {
	var post models.Post
	if err := d.db.Preload("Profile").First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts отдаёт все объявления, новые первыми, с username автора
func (d *Database) ListPosts() ([]models.Post, error) {
	var posts []models.Post

	err := d.db.
		Order("created_at DESC").
		Preload("Profile").
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// DeletePost удаляет объявление только если оно принадлежит userID
func (d *Database) DeletePost(id string, userID uuid.UUID) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", id).Error; err != nil {
			return err
		}

		if post.UserID != userID {
			return ErrNotOwner
		}

		return tx.Delete(&post).Error
	})
}
