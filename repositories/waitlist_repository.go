package repositories

import (
	"context"

	"stayease-backend/models"

	"gorm.io/gorm"
)

type waitlistRepository struct {
	db *gorm.DB
}

func (r *waitlistRepository) Create(ctx context.Context, entry *models.WaitlistEntry) error {
	return translateError(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *waitlistRepository) GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&entry).Error; err != nil {
		return nil, translateError(err)
	}
	return &entry, nil
}
