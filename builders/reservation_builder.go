package builders

import (
	"time"

	"hms/constants"
	"hms/models"
)

// ReservationBuilder giúp tạo reservation theo từng bước
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder tạo instance mới của ReservationBuilder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{
			Status: constants.ReservationStatusActive,
		},
	}
}

// WithID gán id
func (b *ReservationBuilder) WithID(id uint) *ReservationBuilder {
	b.reservation.ID = id
	return b
}

// WithGuest thêm thông tin khách
func (b *ReservationBuilder) WithGuest(guestID uint) *ReservationBuilder {
	b.reservation.GuestID = guestID
	return b
}

// WithRoom thêm thông tin phòng
func (b *ReservationBuilder) WithRoom(roomID uint) *ReservationBuilder {
	b.reservation.RoomID = roomID
	return b
}

// WithCheckIn thêm ngày nhận phòng
func (b *ReservationBuilder) WithCheckIn(checkIn time.Time) *ReservationBuilder {
	b.reservation.CheckInDate = checkIn
	return b
}

// WithCheckOut thêm ngày trả phòng
func (b *ReservationBuilder) WithCheckOut(checkOut time.Time) *ReservationBuilder {
	b.reservation.CheckOutDate = checkOut
	return b
}

// WithNumGuests thêm số lượng khách
func (b *ReservationBuilder) WithNumGuests(numGuests int) *ReservationBuilder {
	b.reservation.NumGuests = numGuests
	return b
}

// WithStatus thêm trạng thái
func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// Build tạo reservation hoàn chỉnh
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
