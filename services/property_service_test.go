package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayease-backend/dto"
	"stayease-backend/models"
	"stayease-backend/repositories"
)

func listingRequest(title, city string, price int) dto.PropertyRequest {
	return dto.PropertyRequest{
		Title:          title,
		City:           city,
		Price:          price,
		Rooms:          2,
		Area:           70,
		HasWifi:        true,
		ExtraAmenities: []string{" balcony ", ""},
		PhotoURLs:      []string{"https://img.example.com/1.jpg"},
	}
}

func TestPropertyService_CreateMarksHost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")

	p, err := f.properties.Create(ctx, host.ID, listingRequest("Loft", "Lisbon", 95))
	require.NoError(t, err)
	assert.Equal(t, host.ID, p.HostID)
	assert.Equal(t, []string{"balcony"}, []string(p.ExtraAmenities))

	detail, err := f.properties.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Photos, 1)
	assert.Equal(t, "https://img.example.com/1.jpg", detail.Photos[0].URL)

	reloaded, err := f.store.Users.GetByID(ctx, host.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsHost)

	_, err = f.properties.Create(ctx, 0, listingRequest("Loft", "Lisbon", 95))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPropertyService_ListFiltersAndPaginates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	for _, city := range []string{"Lisbon", "Porto", "Lisbon", "Lisbon"} {
		_, err := f.properties.Create(ctx, host.ID, listingRequest("Flat in "+city, city, 100))
		require.NoError(t, err)
	}

	page, err := f.properties.List(ctx, dto.PropertyQuery{
		PropertyFilter: dto.PropertyFilter{City: "lisbon"},
		Page:           2,
		PageSize:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestPropertyService_ListSeesMutationsThroughCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")

	first, err := f.properties.List(ctx, dto.PropertyQuery{})
	require.NoError(t, err)
	assert.Zero(t, first.Total)

	p, err := f.properties.Create(ctx, host.ID, listingRequest("Loft", "Lisbon", 95))
	require.NoError(t, err)

	second, err := f.properties.List(ctx, dto.PropertyQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Total)

	require.NoError(t, f.properties.Delete(ctx, host.ID, p.ID))
	third, err := f.properties.List(ctx, dto.PropertyQuery{})
	require.NoError(t, err)
	assert.Zero(t, third.Total)
}

func TestPropertyService_OwnershipGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	stranger := f.user(t, "stranger")
	p := f.property(t, host.ID, "Cabin", "Bergen", 70)

	_, err := f.properties.Update(ctx, 0, p.ID, listingRequest("Mine", "Bergen", 1))
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.properties.Update(ctx, stranger.ID, p.ID, listingRequest("Mine", "Bergen", 1))
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, f.properties.Delete(ctx, stranger.ID, p.ID), ErrForbidden)

	updated, err := f.properties.Update(ctx, host.ID, p.ID, listingRequest("Cabin deluxe", "Bergen", 85))
	require.NoError(t, err)
	assert.Equal(t, "Cabin deluxe", updated.Title)
	assert.Equal(t, 85, updated.Price)
	assert.Len(t, updated.Photos, 1)

	require.NoError(t, f.properties.Delete(ctx, host.ID, p.ID))
	_, err = f.properties.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPropertyService_Photos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	other := f.user(t, "other")
	p := f.property(t, host.ID, "Cabin", "Bergen", 70)
	q := f.property(t, other.ID, "Barn", "Oslo", 40)

	photo, err := f.properties.AddPhoto(ctx, host.ID, p.ID, "https://img.example.com/a.jpg")
	require.NoError(t, err)

	_, err = f.properties.AddPhoto(ctx, other.ID, p.ID, "https://img.example.com/b.jpg")
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, f.properties.RemovePhoto(ctx, other.ID, q.ID, photo.ID), ErrNotFound)
	require.NoError(t, f.properties.RemovePhoto(ctx, host.ID, p.ID, photo.ID))

	detail, err := f.properties.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Photos)
}

func TestPropertyService_Quote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	p := f.property(t, host.ID, "Cabin", "Bergen", 100)

	quote, err := f.properties.Quote(ctx, p.ID, dto.QuoteQuery{CheckIn: "2024-01-10", CheckOut: "2024-01-12"})
	require.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 200, quote.Total)

	_, err = f.properties.Quote(ctx, p.ID, dto.QuoteQuery{CheckIn: "2023-12-30", CheckOut: "2024-01-02"})
	var de *DateError
	assert.ErrorAs(t, err, &de)

	_, err = f.properties.Quote(ctx, 999, dto.QuoteQuery{CheckIn: "2024-01-10", CheckOut: "2024-01-12"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// deletingDuringList runs onList after the catalogue was read, the way a
// concurrent writer would between a reader's load and its cache fill.
type deletingDuringList struct {
	repositories.PropertyRepository
	onList func()
}

func (d *deletingDuringList) List(ctx context.Context) ([]models.Property, error) {
	all, err := d.PropertyRepository.List(ctx)
	if d.onList != nil {
		hook := d.onList
		d.onList = nil
		hook()
	}
	return all, err
}

func TestPropertyService_ListDoesNotCacheStaleCatalogue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	doomed := f.property(t, host.ID, "Doomed loft", "Lisbon", 90)
	f.property(t, host.ID, "Kept flat", "Lisbon", 80)

	racing := &deletingDuringList{PropertyRepository: f.store.Properties}
	racing.onList = func() {
		require.NoError(t, f.properties.Delete(ctx, host.ID, doomed.ID))
	}
	f.store.Properties = racing

	first, err := f.properties.List(ctx, dto.PropertyQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Total, "the in-flight read still sees the old catalogue")

	second, err := f.properties.List(ctx, dto.PropertyQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, second.Total)
	assert.Equal(t, "Kept flat", second.Items[0].Title)
}
