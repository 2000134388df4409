package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayease-backend/dto"
	"stayease-backend/models"
)

func sampleListings() []models.Property {
	return []models.Property{
		{ID: 1, Title: "Sea view loft", Description: "Bright loft near the beach", City: "Barcelona", Price: 120, Rooms: 2, Area: 60, HasWifi: true},
		{ID: 2, Title: "Mountain cabin", Description: "Quiet cabin with fireplace", City: "Innsbruck", Price: 80, Rooms: 3, Area: 90, HasParking: true},
		{ID: 3, Title: "City studio", Description: "Compact studio", City: "barcelona", Price: 60, Rooms: 1, Area: 25, HasWifi: true, HasPool: true},
		{ID: 4, Title: "Family villa", Description: "Villa with a large POOL and garden", City: "Nice", Price: 300, Rooms: 5, Area: 200, HasWifi: true, HasParking: true, HasPool: true},
	}
}

func ids(props []models.Property) []uint {
	out := make([]uint, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProperties(t *testing.T) {
	cases := []struct {
		name   string
		filter dto.PropertyFilter
		want   []uint
	}{
		{"no criteria keeps everything", dto.PropertyFilter{}, []uint{1, 2, 3, 4}},
		{"city is a case-insensitive substring", dto.PropertyFilter{City: "BARCE"}, []uint{1, 3}},
		{"price range is inclusive", dto.PropertyFilter{MinPrice: intPtr(60), MaxPrice: intPtr(120)}, []uint{1, 2, 3}},
		{"min rooms", dto.PropertyFilter{MinRooms: intPtr(3)}, []uint{2, 4}},
		{"min area uses the area field", dto.PropertyFilter{MinArea: intPtr(90)}, []uint{2, 4}},
		{"wifi requested", dto.PropertyFilter{HasWifi: boolPtr(true)}, []uint{1, 3, 4}},
		{"false amenity imposes nothing", dto.PropertyFilter{HasPool: boolPtr(false)}, []uint{1, 2, 3, 4}},
		{"amenities combine", dto.PropertyFilter{HasParking: boolPtr(true), HasPool: boolPtr(true)}, []uint{4}},
		{"keyword matches title", dto.PropertyFilter{Keyword: "cabin"}, []uint{2}},
		{"keyword matches description", dto.PropertyFilter{Keyword: "pool"}, []uint{4}},
		{"criteria are ANDed", dto.PropertyFilter{City: "barcelona", HasPool: boolPtr(true)}, []uint{3}},
		{"nothing matches", dto.PropertyFilter{City: "Oslo"}, []uint{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(FilterProperties(sampleListings(), tc.filter)))
		})
	}
}

func TestFilterProperties_Idempotent(t *testing.T) {
	f := dto.PropertyFilter{HasWifi: boolPtr(true), MaxPrice: intPtr(150)}
	once := FilterProperties(sampleListings(), f)
	twice := FilterProperties(once, f)
	assert.Equal(t, once, twice)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page.Items)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last := Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, last.Items)

	past := Paginate(items, 9, 2)
	assert.Empty(t, past.Items)
	assert.NotNil(t, past.Items)

	clamped := Paginate(items, 0, 0)
	assert.Equal(t, 1, clamped.Page)
	assert.Equal(t, DefaultPageSize, clamped.PageSize)
	assert.Len(t, clamped.Items, 5)

	assert.Equal(t, MaxPageSize, Paginate(items, 1, 1000).PageSize)

	huge := Paginate([]int{1, 2, 3}, 1<<62+1, 12)
	assert.Empty(t, huge.Items)
	assert.Equal(t, 1, huge.TotalPages)

	assert.NotPanics(t, func() {
		assert.Empty(t, Paginate(items, math.MaxInt, DefaultPageSize).Items)
	})
}
