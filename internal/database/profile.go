package database

import (
	"errors"

	"github.com/Nourbaganne/Esport-post-board/internal/models"
	"gorm.io/gorm"
)

func (d *Database) SaveProfile(profile *models.Profile) error {
	return d.db.Create(profile).Error
}

// GetProfile возвращает (nil, nil), если профиля ещё нет — ленивое создание
// решает вызывающая сторона
func (d *Database) GetProfile(id string) (*models.Profile, error) {
	profile := models.Profile{}
	if err := d.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
