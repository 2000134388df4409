package repositories

import (
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// NewGormStore backs every repository with the same *gorm.DB.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:      &userRepository{db: db},
		Properties: &propertyRepository{db: db},
		Photos:     &photoRepository{db: db},
		Reviews:    &reviewRepository{db: db},
		Bookings:   &bookingRepository{db: db},
		Waitlist:   &waitlistRepository{db: db},
	}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
