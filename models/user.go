package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account that can rent stays and, once it lists a property, host them.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Email     string         `gorm:"uniqueIndex;size:150;not null" json:"email"`
	Phone     string         `gorm:"size:50" json:"phone"`
	FirstName string         `gorm:"size:100" json:"firstName"`
	LastName  string         `gorm:"size:100" json:"lastName"`
	IsHost    bool           `gorm:"default:false" json:"isHost"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
