package config

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"stayease-backend/models"
	"stayease-backend/repositories"
	"stayease-backend/utils"
)

const demoHostUsername = "demo-host"

// SeedDemo creates a demo host with a few listings. It is a no-op once the
// demo host exists.
func SeedDemo(ctx context.Context, store *repositories.Store, log *logrus.Logger) error {
	if _, err := store.Users.GetByUsername(ctx, demoHostUsername); err == nil {
		log.Info("demo data already seeded")
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword("demo1234")
	if err != nil {
		return err
	}
	host := &models.User{
		Username:  demoHostUsername,
		Password:  hash,
		Email:     "host@stayease.local",
		FirstName: "Demo",
		LastName:  "Host",
		IsHost:    true,
	}
	if err := store.Users.Create(ctx, host); err != nil {
		return err
	}

	listings := []models.Property{
		{
			Title:          "Sunny loft by the beach",
			Description:    "Open-plan loft two minutes from the sand.",
			City:           "Barcelona",
			Price:          120,
			Rooms:          2,
			Bathrooms:      1,
			Area:           65,
			HasWifi:        true,
			ExtraAmenities: []string{"balcony", "air conditioning"},
			Photos:         []models.Photo{{URL: "https://images.stayease.local/loft-1.jpg"}},
		},
		{
			Title:       "Alpine cabin with fireplace",
			Description: "Quiet wooden cabin, ski lifts within 10 minutes.",
			City:        "Innsbruck",
			Price:       90,
			Rooms:       3,
			Bathrooms:   1,
			Area:        80,
			HasWifi:     true,
			HasParking:  true,
			Photos:      []models.Photo{{URL: "https://images.stayease.local/cabin-1.jpg"}},
		},
		{
			Title:          "Family villa with pool",
			Description:    "Large garden, private pool and room for eight.",
			City:           "Nice",
			Price:          310,
			Rooms:          5,
			Bathrooms:      3,
			Area:           210,
			HasWifi:        true,
			HasParking:     true,
			HasPool:        true,
			ExtraAmenities: []string{"barbecue"},
		},
	}
	for i := range listings {
		listings[i].HostID = host.ID
		if err := store.Properties.Create(ctx, &listings[i]); err != nil {
			return err
		}
	}

	log.WithField("listings", len(listings)).Info("demo data seeded")
	return nil
}
