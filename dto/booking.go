package dto

// Dates are YYYY-MM-DD or RFC 3339.
type BookingRequest struct {
	PropertyID uint   `json:"propertyId" binding:"required"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	Guests     int    `json:"guests" binding:"omitempty,min=1,max=50"`
}

type BookingUpdateRequest struct {
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Guests   *int    `json:"guests" binding:"omitempty,min=1,max=50"`
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed declined cancelled"`
}
