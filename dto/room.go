package dto

import "time"

// RoomRequest là DTO cho request tạo/cập nhật phòng
type RoomRequest struct {
	ID            uint    `json:"id"`
	Number        int     `json:"number" binding:"required" validate:"required,gt=0"`
	RoomType      string  `json:"roomType" binding:"required" validate:"required,roomtype"`
	PricePerNight float64 `json:"pricePerNight" validate:"gte=0"`
	Capacity      int     `json:"capacity" binding:"required" validate:"required,gt=0"`
	IsAvailable   *bool   `json:"isAvailable"`
}

// RoomResponse là DTO cho response thông tin phòng
type RoomResponse struct {
	ID            uint      `json:"id"`
	Number        int       `json:"number"`
	RoomType      string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	Capacity      int       `json:"capacity"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
}
