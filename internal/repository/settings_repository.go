package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vibrantyoga/api/internal/models"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*models.SMTPSettings, error)
	Replace(ctx context.Context, settings *models.SMTPSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.SMTPSettings, error) {
	var settings models.SMTPSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Replace drops any previous configuration; at most one row exists.
func (r *settingsRepository) Replace(ctx context.Context, settings *models.SMTPSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.SMTPSettings{}).Error; err != nil {
			return err
		}
		return tx.Create(settings).Error
	})
}
