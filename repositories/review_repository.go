package repositories

import (
	"context"

	"stayease-backend/models"

	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translateError(r.db.WithContext(ctx).Create(review).Error)
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

func (r *reviewRepository) GetByUserAndProperty(ctx context.Context, userID, propertyID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&review).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

func (r *reviewRepository) ListByProperty(ctx context.Context, propertyID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("created_at DESC, id DESC").Find(&reviews).Error
	return reviews, translateError(err)
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	res := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("id = ?", review.ID).
		Select("rating", "comment").
		Updates(review)
	return translateError(res.Error)
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
