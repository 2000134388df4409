package models

import (
	"time"

	"gorm.io/datatypes"
)

// Property is a rental listing owned by a host.
type Property struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	City        string `gorm:"size:120;index" json:"city"`

	// Price is the nightly rate in whole currency units.
	Price     int `gorm:"not null" json:"price"`
	Rooms     int `json:"rooms"`
	Bathrooms int `json:"bathrooms"`
	Area      int `json:"area"`

	HasWifi        bool                        `gorm:"column:has_wifi;default:false" json:"hasWifi"`
	HasParking     bool                        `gorm:"column:has_parking;default:false" json:"hasParking"`
	HasPool        bool                        `gorm:"column:has_pool;default:false" json:"hasPool"`
	ExtraAmenities datatypes.JSONSlice[string] `gorm:"column:extra_amenities" json:"extraAmenities"`

	// Rating is the review average times ten (49 means 4.9); nil until reviewed.
	Rating *int `gorm:"column:rating" json:"rating,omitempty"`

	HostID uint    `gorm:"column:host_id;index;not null" json:"hostId"`
	Photos []Photo `gorm:"foreignKey:PropertyID" json:"photos"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Photo is an image URL attached to a listing.
type Photo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"column:property_id;index;not null" json:"propertyId"`
	URL        string    `gorm:"column:url;size:1000;not null" json:"url"`
	CreatedAt  time.Time `json:"createdAt"`
}
