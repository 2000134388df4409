package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"stayease-backend/cache"
	"stayease-backend/models"
	"stayease-backend/repositories"
	"stayease-backend/utils"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fixedDay is "today" for every date-sensitive test.
var fixedDay = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store      *repositories.Store
	listings   cache.ListingCache
	users      *UserService
	properties *PropertyService
	reviews    *ReviewService
	bookings   *BookingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := quietLogger()
	store := repositories.NewMemoryStore()
	listings := cache.NewListingCache(cache.Options{LocalTTL: time.Minute}, log)

	f := &fixture{
		store:      store,
		listings:   listings,
		users:      NewUserService(store, log),
		properties: NewPropertyService(store, listings, DefaultPageSize, log),
		reviews:    NewReviewService(store, listings, log),
		bookings:   NewBookingService(store, log),
	}
	clock := func() time.Time { return fixedDay }
	f.properties.SetClock(clock)
	f.bookings.SetClock(clock)
	return f
}

func (f *fixture) user(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	u := &models.User{Username: username, Email: username + "@example.com", Password: hash}
	require.NoError(t, f.store.Users.Create(context.Background(), u))
	return u
}

func (f *fixture) property(t *testing.T, hostID uint, title, city string, price int) *models.Property {
	t.Helper()
	p := &models.Property{HostID: hostID, Title: title, City: city, Price: price, Rooms: 2, Area: 50}
	require.NoError(t, f.store.Properties.Create(context.Background(), p))
	return p
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }
