package dto

import "time"

// GuestRequest là DTO cho request tạo khách
type GuestRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Phone    string `json:"phone" binding:"required" validate:"required,e164phone"`
	Passport string `json:"passport" binding:"required" validate:"required,min=5"`
}

// GuestResponse là DTO cho response thông tin khách
type GuestResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Passport  string    `json:"passport"`
	CreatedAt time.Time `json:"createdAt"`
}
