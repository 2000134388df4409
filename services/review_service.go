package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"stayease-backend/cache"
	"stayease-backend/dto"
	"stayease-backend/metrics"
	"stayease-backend/models"
	"stayease-backend/repositories"
)

// ReviewSummary is a listing's reviews with their aggregate.
type ReviewSummary struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	Display       string          `json:"display"`
	Stars         StarBreakdown   `json:"stars"`
	Count         int             `json:"count"`
}

func Summarize(reviews []models.Review) ReviewSummary {
	if reviews == nil {
		reviews = []models.Review{}
	}
	avg := AverageRating(reviews)
	return ReviewSummary{
		Reviews:       reviews,
		AverageRating: RoundAverage(avg),
		Display:       RatingDisplay(avg),
		Stars:         Stars(avg),
		Count:         len(reviews),
	}
}

type ReviewService struct {
	store *repositories.Store
	cache cache.ListingCache
	log   *logrus.Logger
}

func NewReviewService(store *repositories.Store, listings cache.ListingCache, log *logrus.Logger) *ReviewService {
	return &ReviewService{store: store, cache: listings, log: log}
}

func (s *ReviewService) ListForProperty(ctx context.Context, propertyID uint) (ReviewSummary, error) {
	if _, err := s.store.Properties.GetByID(ctx, propertyID); err != nil {
		return ReviewSummary{}, fmt.Errorf("get property %d: %w", propertyID, err)
	}
	reviews, err := s.store.Reviews.ListByProperty(ctx, propertyID)
	if err != nil {
		return ReviewSummary{}, fmt.Errorf("list reviews of property %d: %w", propertyID, err)
	}
	return Summarize(reviews), nil
}

// Create adds the user's single review of a listing.
func (s *ReviewService) Create(ctx context.Context, userID, propertyID uint, req dto.ReviewRequest) (*models.Review, error) {
	if _, err := sessionUser(ctx, s.store.Users, userID); err != nil {
		return nil, err
	}
	if _, err := s.store.Properties.GetByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("get property %d: %w", propertyID, err)
	}

	if _, err := s.store.Reviews.GetByUserAndProperty(ctx, userID, propertyID); err == nil {
		return nil, alreadyReviewed()
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup review: %w", err)
	}

	review := &models.Review{
		PropertyID: propertyID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := s.store.Reviews.Create(ctx, review); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, alreadyReviewed()
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	metrics.IncReviewCreated()
	s.refreshRating(ctx, propertyID)
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, userID, reviewID uint, req dto.ReviewRequest) (*models.Review, error) {
	review, err := s.authored(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}
	review.Rating = req.Rating
	review.Comment = strings.TrimSpace(req.Comment)
	if err := s.store.Reviews.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review %d: %w", reviewID, err)
	}
	s.refreshRating(ctx, review.PropertyID)
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, userID, reviewID uint) error {
	review, err := s.authored(ctx, userID, reviewID)
	if err != nil {
		return err
	}
	if err := s.store.Reviews.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review %d: %w", reviewID, err)
	}
	s.refreshRating(ctx, review.PropertyID)
	return nil
}

func (s *ReviewService) authored(ctx context.Context, userID, reviewID uint) (*models.Review, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	review, err := s.store.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", reviewID, err)
	}
	if err := authorizeOwner(review.UserID, userID); err != nil {
		return nil, err
	}
	return review, nil
}

// refreshRating recomputes the stored listing score. The review write has
// already succeeded, so failures are logged rather than returned.
func (s *ReviewService) refreshRating(ctx context.Context, propertyID uint) {
	defer func() {
		if s.cache != nil {
			s.cache.Invalidate()
		}
	}()

	reviews, err := s.store.Reviews.ListByProperty(ctx, propertyID)
	if err != nil {
		s.log.WithError(err).WithField("property_id", propertyID).Error("failed to load reviews for rating")
		return
	}
	var score *int
	if len(reviews) > 0 {
		v := RatingScore(AverageRating(reviews))
		score = &v
	}
	if err := s.store.Properties.SetRating(ctx, propertyID, score); err != nil {
		s.log.WithError(err).WithField("property_id", propertyID).Error("failed to store rating")
	}
}

func alreadyReviewed() error {
	return invalidField("propertyId", "unique", "you have already reviewed this property")
}
