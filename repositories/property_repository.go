package repositories

import (
	"context"

	"stayease-backend/models"

	"gorm.io/gorm"
)

var propertyColumns = []string{
	"title", "description", "city", "price", "rooms", "bathrooms", "area",
	"has_wifi", "has_parking", "has_pool", "extra_amenities",
}

type propertyRepository struct {
	db *gorm.DB
}

func (r *propertyRepository) withPhotos(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("photos.id ASC")
	})
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	return translateError(r.db.WithContext(ctx).Create(property).Error)
}

func (r *propertyRepository) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	if err := r.withPhotos(ctx).First(&property, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := r.withPhotos(ctx).Order("id ASC").Find(&properties).Error
	return properties, translateError(err)
}

func (r *propertyRepository) ListByHost(ctx context.Context, hostID uint) ([]models.Property, error) {
	var properties []models.Property
	err := r.withPhotos(ctx).Where("host_id = ?", hostID).Order("id ASC").Find(&properties).Error
	return properties, translateError(err)
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	res := r.db.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", property.ID).
		Select(propertyColumns).
		Updates(property)
	return translateError(res.Error)
}

func (r *propertyRepository) SetRating(ctx context.Context, id uint, rating *int) error {
	res := r.db.WithContext(ctx).Model(&models.Property{}).Where("id = ?", id).Update("rating", rating)
	return translateError(res.Error)
}

func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// children first so MySQL foreign keys hold
		for _, child := range []any{&models.Photo{}, &models.Review{}, &models.Booking{}} {
			if err := tx.Where("property_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&models.Property{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translateError(err)
}
