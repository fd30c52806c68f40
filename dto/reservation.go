package dto

import "time"

// ReservationRequest là DTO cho request tạo đặt phòng
type ReservationRequest struct {
	ID           uint   `json:"id"`
	GuestID      uint   `json:"guestId" binding:"required" validate:"required,gt=0"`
	RoomID       uint   `json:"roomId" binding:"required" validate:"required,gt=0"`
	CheckInDate  string `json:"checkInDate" binding:"required" validate:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required" validate:"required"`
	NumGuests    int    `json:"numGuests" binding:"required" validate:"required,gt=0"`
}

// CostPreviewRequest là DTO cho request tính thử chi phí đặt phòng
type CostPreviewRequest struct {
	RoomID       uint   `json:"roomId" binding:"required" validate:"required,gt=0"`
	CheckInDate  string `json:"checkInDate" binding:"required" validate:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required" validate:"required"`
	NumGuests    int    `json:"numGuests" binding:"required" validate:"required,gt=0"`
}

// CostPreviewResponse là DTO cho kết quả tính thử chi phí
type CostPreviewResponse struct {
	StayCost      float64 `json:"stayCost"`
	Deposit       float64 `json:"deposit"`
	AvailableBeds int     `json:"availableBeds"`
	Duration      int     `json:"duration"`
}

// ChangeReservationStatusRequest là DTO cho request đổi trạng thái đặt phòng
type ChangeReservationStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// ReservationResponse là DTO cho response thông tin đặt phòng
type ReservationResponse struct {
	ID           uint      `json:"id"`
	GuestID      uint      `json:"guestId"`
	RoomID       uint      `json:"roomId"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	NumGuests    int       `json:"numGuests"`
	TotalCost    float64   `json:"totalCost"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
