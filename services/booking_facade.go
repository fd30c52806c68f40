package services

import (
	"time"

	"hms/builders"
	"hms/models"
	"hms/services/logger"

	"gorm.io/gorm"
)

// BookingQuote kết quả tính thử chi phí cho một lượt đặt phòng
type BookingQuote struct {
	StayCost      float64
	Deposit       float64
	AvailableBeds int
	Duration      int
}

// BookingFacade đơn giản hóa quy trình đặt phòng: validate, tính giá, lưu
type BookingFacade struct {
	store *StoreService
	log   logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB, log logger.Logger) *BookingFacade {
	return &BookingFacade{
		store: NewStoreService(db, log),
		log:   log,
	}
}

// CreateReservation validate đặt phòng, tính tổng chi phí theo giá phòng
// rồi lưu. Không có gì được ghi nếu một bước thất bại.
func (f *BookingFacade) CreateReservation(reservation *models.Reservation) (uint, error) {
	room, err := f.store.GetRoomByID(reservation.RoomID)
	if err != nil {
		return 0, err
	}

	if _, err := reservation.CalculateStayCost(room.PricePerNight); err != nil {
		return 0, err
	}

	if err := reservation.Validate(); err != nil {
		return 0, err
	}

	id, err := f.store.SaveReservation(reservation)
	if err != nil {
		return 0, err
	}

	f.log.Info("Đã tạo đặt phòng %d (phòng %d, tổng %.2f)", id, room.Number, reservation.TotalCost)
	return id, nil
}

// PreviewBooking tính thử chi phí cho một lượt đặt phòng mà không lưu gì
func (f *BookingFacade) PreviewBooking(roomID uint, checkIn, checkOut time.Time, numGuests int) (*BookingQuote, error) {
	room, err := f.store.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	draft := builders.NewReservationBuilder().
		WithRoom(roomID).
		WithCheckIn(checkIn).
		WithCheckOut(checkOut).
		WithNumGuests(numGuests).
		Build()

	stayCost, err := draft.CalculateStayCost(room.PricePerNight)
	if err != nil {
		return nil, err
	}

	return &BookingQuote{
		StayCost:      stayCost,
		Deposit:       draft.CalculateBookingDeposit(room.PricePerNight),
		AvailableBeds: draft.GetAvailableBeds(room.Capacity),
		Duration:      draft.GetStayDuration(),
	}, nil
}

// ChangeReservationStatus chuyển trạng thái một đặt phòng đã lưu
func (f *BookingFacade) ChangeReservationStatus(id uint, status string) (*models.Reservation, error) {
	reservation, err := f.store.GetReservationByID(id)
	if err != nil {
		return nil, err
	}

	if err := reservation.SetStatus(status); err != nil {
		return nil, err
	}

	if _, err := f.store.SaveReservation(reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}
