package models

import "time"

// WaitlistEntry is a pre-launch marketing signup.
type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:150;not null" json:"email"`
	Name      string    `gorm:"size:150" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
