package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"stayease-backend/dto"
	"stayease-backend/metrics"
	"stayease-backend/models"
	"stayease-backend/repositories"
)

type BookingService struct {
	store *repositories.Store
	now   func() time.Time
	log   *logrus.Logger
}

func NewBookingService(store *repositories.Store, log *logrus.Logger) *BookingService {
	return &BookingService{store: store, now: time.Now, log: log}
}

// SetClock replaces the clock used to reject past check-in dates.
func (s *BookingService) SetClock(now func() time.Time) {
	s.now = now
}

// NewReferenceCode returns a short human-facing booking code, e.g. SE-1A2B3C4D.
func NewReferenceCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SE-" + strings.ToUpper(raw[:8])
}

// Create books a stay for renterID; the dates must not overlap another
// active booking of the same listing.
func (s *BookingService) Create(ctx context.Context, renterID uint, req dto.BookingRequest) (*models.Booking, error) {
	if _, err := sessionUser(ctx, s.store.Users, renterID); err != nil {
		return nil, err
	}
	property, err := s.store.Properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("get property %d: %w", req.PropertyID, err)
	}

	checkIn, checkOut, err := parseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	quote, err := CalculateStay(checkIn, checkOut, property.Price, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, property.ID, 0, checkIn, checkOut); err != nil {
		return nil, err
	}

	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	booking := &models.Booking{
		ReferenceCode: NewReferenceCode(),
		PropertyID:    property.ID,
		RenterID:      renterID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Guests:        guests,
		Nights:        quote.Nights,
		TotalPrice:    quote.Total,
		Status:        models.BookingStatusPending,
	}
	if err := s.store.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated(booking.Status)
	s.log.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"reference":   booking.ReferenceCode,
		"property_id": property.ID,
		"renter_id":   renterID,
		"nights":      booking.Nights,
	}).Info("booking created")
	return booking, nil
}

func (s *BookingService) ensureAvailable(ctx context.Context, propertyID, exceptID uint, checkIn, checkOut time.Time) error {
	existing, err := s.store.Bookings.ListByProperty(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("list bookings of property %d: %w", propertyID, err)
	}
	for _, b := range existing {
		if b.ID != exceptID && b.Active() && b.Overlaps(checkIn, checkOut) {
			return ErrUnavailable
		}
	}
	return nil
}

// Get returns a booking to its renter or to the host of the listing.
func (s *BookingService) Get(ctx context.Context, userID, id uint) (*models.Booking, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	booking, err := s.store.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking.RenterID == userID {
		return booking, nil
	}
	property, err := s.store.Properties.GetByID(ctx, booking.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("get property %d: %w", booking.PropertyID, err)
	}
	if property.HostID != userID {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *BookingService) ListForRenter(ctx context.Context, renterID uint) ([]models.Booking, error) {
	if renterID == 0 {
		return nil, ErrUnauthorized
	}
	bookings, err := s.store.Bookings.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("list bookings of renter %d: %w", renterID, err)
	}
	return nonNil(bookings), nil
}

// ListForProperty is the host's view of one listing's bookings.
func (s *BookingService) ListForProperty(ctx context.Context, userID, propertyID uint) ([]models.Booking, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	property, err := s.store.Properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("get property %d: %w", propertyID, err)
	}
	if err := authorizeOwner(property.HostID, userID); err != nil {
		return nil, err
	}
	bookings, err := s.store.Bookings.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list bookings of property %d: %w", propertyID, err)
	}
	return nonNil(bookings), nil
}

// ListForHost returns bookings across every listing the user hosts.
func (s *BookingService) ListForHost(ctx context.Context, hostID uint) ([]models.Booking, error) {
	if hostID == 0 {
		return nil, ErrUnauthorized
	}
	properties, err := s.store.Properties.ListByHost(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("list properties of host %d: %w", hostID, err)
	}
	if len(properties) == 0 {
		return []models.Booking{}, nil
	}
	ids := make([]uint, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}
	bookings, err := s.store.Bookings.ListByProperties(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list bookings of host %d: %w", hostID, err)
	}
	return nonNil(bookings), nil
}

// Update changes dates or guests and reprices the stay. New dates send the
// booking back to pending.
func (s *BookingService) Update(ctx context.Context, userID, id uint, req dto.BookingUpdateRequest) (*models.Booking, error) {
	booking, err := s.rented(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !booking.Active() {
		return nil, invalidField("status", "active", "only pending or confirmed bookings can be changed")
	}

	if req.CheckIn != nil || req.CheckOut != nil {
		checkIn, checkOut := booking.CheckInDate, booking.CheckOutDate
		if req.CheckIn != nil {
			if checkIn, err = ParseStayDate(*req.CheckIn); err != nil {
				return nil, invalidField("checkIn", "date", err.Error())
			}
		}
		if req.CheckOut != nil {
			if checkOut, err = ParseStayDate(*req.CheckOut); err != nil {
				return nil, invalidField("checkOut", "date", err.Error())
			}
		}

		property, err := s.store.Properties.GetByID(ctx, booking.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("get property %d: %w", booking.PropertyID, err)
		}
		quote, err := CalculateStay(checkIn, checkOut, property.Price, s.now().UTC())
		if err != nil {
			return nil, err
		}
		if err := s.ensureAvailable(ctx, booking.PropertyID, booking.ID, checkIn, checkOut); err != nil {
			return nil, err
		}

		booking.CheckInDate = checkIn
		booking.CheckOutDate = checkOut
		booking.Nights = quote.Nights
		booking.TotalPrice = quote.Total
		booking.Status = models.BookingStatusPending
	}
	if req.Guests != nil {
		booking.Guests = *req.Guests
	}

	if err := s.store.Bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking %d: %w", id, err)
	}
	return booking, nil
}

// UpdateStatus lets the host confirm or decline an offer and the renter cancel it.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, id uint, status string) (*models.Booking, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	booking, err := s.store.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}

	switch status {
	case models.BookingStatusCancelled:
		if err := authorizeOwner(booking.RenterID, userID); err != nil {
			return nil, err
		}
	case models.BookingStatusConfirmed, models.BookingStatusDeclined:
		property, err := s.store.Properties.GetByID(ctx, booking.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("get property %d: %w", booking.PropertyID, err)
		}
		if err := authorizeOwner(property.HostID, userID); err != nil {
			return nil, err
		}
	default:
		return nil, invalidField("status", "oneof", "status must be confirmed, declined or cancelled")
	}

	if !booking.Active() {
		return nil, invalidField("status", "active", "booking is already "+booking.Status)
	}

	booking.Status = status
	if err := s.store.Bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking %d: %w", id, err)
	}

	metrics.IncBookingStatusChange(status)
	s.log.WithFields(logrus.Fields{"booking_id": id, "status": status, "user_id": userID}).Info("booking status changed")
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.rented(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Bookings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking %d: %w", id, err)
	}
	return nil
}

func (s *BookingService) rented(ctx context.Context, userID, id uint) (*models.Booking, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	booking, err := s.store.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if err := authorizeOwner(booking.RenterID, userID); err != nil {
		return nil, err
	}
	return booking, nil
}

func nonNil(bookings []models.Booking) []models.Booking {
	if bookings == nil {
		return []models.Booking{}
	}
	return bookings
}

