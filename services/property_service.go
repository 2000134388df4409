package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"stayease-backend/cache"
	"stayease-backend/dto"
	"stayease-backend/metrics"
	"stayease-backend/models"
	"stayease-backend/repositories"
)

// PropertyDetail is a single listing as served by GET /properties/:id.
type PropertyDetail struct {
	models.Property
	AverageRating float64 `json:"averageRating"`
}

type PropertyService struct {
	store    *repositories.Store
	cache    cache.ListingCache
	pageSize int
	now      func() time.Time
	log      *logrus.Logger
}

func NewPropertyService(store *repositories.Store, listings cache.ListingCache, pageSize int, log *logrus.Logger) *PropertyService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PropertyService{store: store, cache: listings, pageSize: pageSize, now: time.Now, log: log}
}

// SetClock replaces the clock used for quotes.
func (s *PropertyService) SetClock(now func() time.Time) {
	s.now = now
}

// List filters the whole catalogue, then cuts the requested page.
func (s *PropertyService) List(ctx context.Context, q dto.PropertyQuery) (Page[models.Property], error) {
	all, err := s.catalogue(ctx)
	if err != nil {
		return Page[models.Property]{}, err
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	return Paginate(FilterProperties(all, q.PropertyFilter), q.Page, pageSize), nil
}

func (s *PropertyService) catalogue(ctx context.Context) ([]models.Property, error) {
	var generation uint64
	if s.cache != nil {
		if cached, ok := s.cache.Get(); ok {
			metrics.IncListingCache(true)
			return cached, nil
		}
		metrics.IncListingCache(false)
		generation = s.cache.Generation()
	}

	all, err := s.store.Properties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	if s.cache != nil && !s.cache.Set(generation, all) {
		s.log.Debug("listing cache: skipped stale fill")
	}
	return all, nil
}

func (s *PropertyService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

func (s *PropertyService) Get(ctx context.Context, id uint) (*PropertyDetail, error) {
	property, err := s.store.Properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property %d: %w", id, err)
	}
	detail := &PropertyDetail{Property: *property}
	if property.Rating != nil {
		detail.AverageRating = float64(*property.Rating) / 10
	}
	return detail, nil
}

func (s *PropertyService) ListByHost(ctx context.Context, hostID uint) ([]models.Property, error) {
	if hostID == 0 {
		return nil, ErrUnauthorized
	}
	properties, err := s.store.Properties.ListByHost(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("list properties of host %d: %w", hostID, err)
	}
	return properties, nil
}

// Create stores a listing owned by hostID and marks that user as a host.
func (s *PropertyService) Create(ctx context.Context, hostID uint, req dto.PropertyRequest) (*models.Property, error) {
	host, err := sessionUser(ctx, s.store.Users, hostID)
	if err != nil {
		return nil, err
	}

	property := &models.Property{HostID: hostID}
	applyPropertyRequest(property, req)
	for _, url := range req.PhotoURLs {
		property.Photos = append(property.Photos, models.Photo{URL: strings.TrimSpace(url)})
	}

	if err := s.store.Properties.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	if !host.IsHost {
		host.IsHost = true
		if err := s.store.Users.Update(ctx, host); err != nil {
			s.log.WithError(err).WithField("user_id", hostID).Warn("failed to flag user as host")
		}
	}

	s.invalidate()
	s.log.WithFields(logrus.Fields{"property_id": property.ID, "host_id": hostID}).Info("property created")
	return property, nil
}

// Update replaces the listing's fields. Photos are replaced only when the
// request carries a photo list.
func (s *PropertyService) Update(ctx context.Context, userID, id uint, req dto.PropertyRequest) (*models.Property, error) {
	property, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	applyPropertyRequest(property, req)
	if err := s.store.Properties.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("update property %d: %w", id, err)
	}

	if req.PhotoURLs != nil {
		for _, ph := range property.Photos {
			if err := s.store.Photos.Delete(ctx, ph.ID); err != nil && !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("replace photos of property %d: %w", id, err)
			}
		}
		for _, url := range req.PhotoURLs {
			photo := &models.Photo{PropertyID: id, URL: strings.TrimSpace(url)}
			if err := s.store.Photos.Create(ctx, photo); err != nil {
				return nil, fmt.Errorf("replace photos of property %d: %w", id, err)
			}
		}
	}

	s.invalidate()
	updated, err := s.store.Properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload property %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes the listing along with its photos, reviews and bookings.
func (s *PropertyService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Properties.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property %d: %w", id, err)
	}
	s.invalidate()
	s.log.WithFields(logrus.Fields{"property_id": id, "host_id": userID}).Info("property deleted")
	return nil
}

// Quote prices a stay on the listing without booking it.
func (s *PropertyService) Quote(ctx context.Context, id uint, q dto.QuoteQuery) (StayQuote, error) {
	property, err := s.store.Properties.GetByID(ctx, id)
	if err != nil {
		return StayQuote{}, fmt.Errorf("get property %d: %w", id, err)
	}
	checkIn, checkOut, err := parseStayRange(q.CheckIn, q.CheckOut)
	if err != nil {
		return StayQuote{}, err
	}
	return CalculateStay(checkIn, checkOut, property.Price, s.now().UTC())
}

func (s *PropertyService) AddPhoto(ctx context.Context, userID, propertyID uint, url string) (*models.Photo, error) {
	if _, err := s.owned(ctx, userID, propertyID); err != nil {
		return nil, err
	}
	photo := &models.Photo{PropertyID: propertyID, URL: strings.TrimSpace(url)}
	if err := s.store.Photos.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("add photo to property %d: %w", propertyID, err)
	}
	s.invalidate()
	return photo, nil
}

func (s *PropertyService) RemovePhoto(ctx context.Context, userID, propertyID, photoID uint) error {
	if _, err := s.owned(ctx, userID, propertyID); err != nil {
		return err
	}
	photo, err := s.store.Photos.GetByID(ctx, photoID)
	if err != nil {
		return fmt.Errorf("get photo %d: %w", photoID, err)
	}
	if photo.PropertyID != propertyID {
		return fmt.Errorf("photo %d on property %d: %w", photoID, propertyID, ErrNotFound)
	}
	if err := s.store.Photos.Delete(ctx, photoID); err != nil {
		return fmt.Errorf("delete photo %d: %w", photoID, err)
	}
	s.invalidate()
	return nil
}

// owned loads the listing and checks userID is its host.
func (s *PropertyService) owned(ctx context.Context, userID, id uint) (*models.Property, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	property, err := s.store.Properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property %d: %w", id, err)
	}
	if err := authorizeOwner(property.HostID, userID); err != nil {
		return nil, err
	}
	return property, nil
}

func applyPropertyRequest(p *models.Property, req dto.PropertyRequest) {
	p.Title = strings.TrimSpace(req.Title)
	p.Description = strings.TrimSpace(req.Description)
	p.City = strings.TrimSpace(req.City)
	p.Price = req.Price
	p.Rooms = req.Rooms
	p.Bathrooms = req.Bathrooms
	p.Area = req.Area
	p.HasWifi = req.HasWifi
	p.HasParking = req.HasParking
	p.HasPool = req.HasPool

	amenities := make([]string, 0, len(req.ExtraAmenities))
	for _, a := range req.ExtraAmenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	p.ExtraAmenities = amenities
}
