package repositories

import (
	"context"
	"errors"

	"stayease-backend/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// PropertyRepository returns listings with their photos loaded.
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uint) (*models.Property, error)
	List(ctx context.Context) ([]models.Property, error)
	ListByHost(ctx context.Context, hostID uint) ([]models.Property, error)
	// Update writes the listing's own columns; photos are managed through PhotoRepository.
	Update(ctx context.Context, property *models.Property) error
	SetRating(ctx context.Context, id uint, rating *int) error
	// Delete removes the listing together with its photos, reviews and bookings.
	Delete(ctx context.Context, id uint) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id uint) (*models.Photo, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]models.Photo, error)
	Delete(ctx context.Context, id uint) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	GetByUserAndProperty(ctx context.Context, userID, propertyID uint) (*models.Review, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	ListByRenter(ctx context.Context, renterID uint) ([]models.Booking, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]models.Booking, error)
	ListByProperties(ctx context.Context, propertyIDs []uint) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id uint) error
}

type WaitlistRepository interface {
	Create(ctx context.Context, entry *models.WaitlistEntry) error
	GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error)
}

// Store groups the per-entity repositories handed to the services.
type Store struct {
	Users      UserRepository
	Properties PropertyRepository
	Photos     PhotoRepository
	Reviews    ReviewRepository
	Bookings   BookingRepository
	Waitlist   WaitlistRepository
}
