package repositories

import (
	"context"

	"stayease-backend/models"

	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return translateError(r.db.WithContext(ctx).Create(booking).Error)
}

func (r *bookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &booking, nil
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renterID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Where("renter_id = ?", renterID).Order("check_in_date ASC, id ASC").Find(&bookings).Error
	return bookings, translateError(err)
}

func (r *bookingRepository) ListByProperty(ctx context.Context, propertyID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("check_in_date ASC, id ASC").Find(&bookings).Error
	return bookings, translateError(err)
}

func (r *bookingRepository) ListByProperties(ctx context.Context, propertyIDs []uint) ([]models.Booking, error) {
	if len(propertyIDs) == 0 {
		return []models.Booking{}, nil
	}
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Where("property_id IN ?", propertyIDs).Order("check_in_date ASC, id ASC").Find(&bookings).Error
	return bookings, translateError(err)
}

func (r *bookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Select("check_in_date", "check_out_date", "guests", "nights", "total_price", "status").
		Updates(booking)
	return translateError(res.Error)
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
