package models

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusDeclined  = "declined"
	BookingStatusCancelled = "cancelled"
)

// Booking is a stay request (an offer) over a date range on a property.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReferenceCode string    `gorm:"column:reference_code;uniqueIndex;size:32" json:"referenceCode"`
	PropertyID    uint      `gorm:"column:property_id;index;not null" json:"propertyId"`
	RenterID      uint      `gorm:"column:renter_id;index;not null" json:"renterId"`
	CheckInDate   time.Time `gorm:"column:check_in_date;not null" json:"checkInDate"`
	CheckOutDate  time.Time `gorm:"column:check_out_date;not null" json:"checkOutDate"`
	Guests        int       `gorm:"column:guests;default:1" json:"guests"`
	Nights        int       `gorm:"column:nights" json:"nights"`
	TotalPrice    int       `gorm:"column:total_price" json:"totalPrice"`
	Status        string    `gorm:"column:status;size:20;default:pending" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Active reports whether the booking still holds its dates.
func (b Booking) Active() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Overlaps reports whether the stay intersects [checkIn, checkOut).
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && checkIn.Before(b.CheckOutDate)
}
