package services

import (
	"strings"

	"stayease-backend/dto"
	"stayease-backend/models"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// FilterProperties keeps the listings that satisfy every criterion set in f,
// preserving input order. Unset criteria impose no constraint.
func FilterProperties(properties []models.Property, f dto.PropertyFilter) []models.Property {
	city := strings.ToLower(strings.TrimSpace(f.City))
	keyword := strings.ToLower(strings.TrimSpace(f.Keyword))

	out := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if city != "" && !strings.Contains(strings.ToLower(p.City), city) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.MinRooms != nil && p.Rooms < *f.MinRooms {
			continue
		}
		if f.MinArea != nil && p.Area < *f.MinArea {
			continue
		}
		if wants(f.HasWifi) && !p.HasWifi {
			continue
		}
		if wants(f.HasParking) && !p.HasParking {
			continue
		}
		if wants(f.HasPool) && !p.HasPool {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(p.Title), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func wants(flag *bool) bool {
	return flag != nil && *flag
}

// Page is one slice of a listing result.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate cuts a 1-based page out of items. Pages past the end are empty.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total := len(items)
	result := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}

	if page > result.TotalPages {
		return result
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	result.Items = items[start:end]
	return result
}
