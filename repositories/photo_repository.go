package repositories

import (
	"context"

	"stayease-backend/models"

	"gorm.io/gorm"
)

type photoRepository struct {
	db *gorm.DB
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) error {
	return translateError(r.db.WithContext(ctx).Create(photo).Error)
}

func (r *photoRepository) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &photo, nil
}

func (r *photoRepository) ListByProperty(ctx context.Context, propertyID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("id ASC").Find(&photos).Error
	return photos, translateError(err)
}

func (r *photoRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Photo{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
