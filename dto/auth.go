package dto

import (
	"time"

	"stayease-backend/models"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,notblank,min=3,max=100"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	Email     string `json:"email" binding:"required,email,max=150"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
	FirstName string `json:"firstName" binding:"omitempty,max=100"`
	LastName  string `json:"lastName" binding:"omitempty,max=100"`
}

// LoginRequest accepts either the username or the email as login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest only touches the fields that are present.
type UpdateProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=150"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
	Password  *string `json:"password" binding:"omitempty,min=6,max=128"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      models.User `json:"user"`
}
