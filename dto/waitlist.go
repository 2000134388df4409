package dto

type WaitlistRequest struct {
	Email string `json:"email" binding:"required,email,max=150"`
	Name  string `json:"name" binding:"required,notblank,max=150"`
}
