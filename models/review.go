package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"column:property_id;not null;uniqueIndex:idx_review_property_user" json:"propertyId"`
	UserID     uint      `gorm:"column:user_id;not null;uniqueIndex:idx_review_property_user" json:"userId"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
