package models

import (
	"time"

	"hms/constants"
	"hms/errors"
)

// Reservation đại diện cho một lượt đặt phòng
type Reservation struct {
	EntityMeta
	GuestID      uint      `json:"guestId" gorm:"not null"`
	RoomID       uint      `json:"roomId" gorm:"not null"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"not null"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"not null"`
	NumGuests    int       `json:"numGuests" gorm:"not null"`
	TotalCost    float64   `json:"totalCost" gorm:"not null;default:0"`
	Status       string    `json:"status" gorm:"not null;default:active"`
}

// NewReservation tạo đặt phòng mới; chi phí khởi tạo bằng 0, trạng thái active
func NewReservation(id, guestID, roomID uint, checkIn, checkOut time.Time, numGuests int) (*Reservation, error) {
	if guestID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "ID khách không được để trống", nil)
	}
	if roomID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if numGuests <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Số lượng khách phải là số dương", nil)
	}
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return &Reservation{
		EntityMeta:   EntityMeta{ID: id, CreatedAt: time.Now()},
		GuestID:      guestID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    numGuests,
		TotalCost:    0,
		Status:       constants.ReservationStatusActive,
	}, nil
}

// SetCheckOutDate cập nhật ngày trả phòng
func (r *Reservation) SetCheckOutDate(checkOut time.Time) error {
	if !checkOut.After(r.CheckInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	r.CheckOutDate = checkOut
	return nil
}

// SetNumGuests cập nhật số lượng khách
func (r *Reservation) SetNumGuests(numGuests int) error {
	if numGuests <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng khách phải là số dương", nil)
	}
	r.NumGuests = numGuests
	return nil
}

// SetStatus chuyển trạng thái đặt phòng. Chỉ cho phép active -> cancelled,
// active -> completed và giữ nguyên trạng thái hiện tại.
func (r *Reservation) SetStatus(status string) error {
	if !constants.IsValidReservationStatus(status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái đặt phòng không hợp lệ", nil)
	}
	if status == r.Status {
		return nil
	}
	if r.Status != constants.ReservationStatusActive {
		return errors.NewAppError(errors.ErrCodeInvalidStatus,
			"Không thể chuyển trạng thái của đặt phòng đã "+r.Status, nil)
	}
	r.Status = status
	return nil
}

// CalculateStayCost tính và lưu lại tổng chi phí lưu trú theo giá phòng một đêm
func (r *Reservation) CalculateStayCost(roomPrice float64) (float64, error) {
	nights := r.GetStayDuration()
	if nights <= 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDate, "Thời gian lưu trú tối thiểu là 1 đêm", nil)
	}
	r.TotalCost = roomPrice * float64(nights)
	return r.TotalCost, nil
}

// CalculateBookingDeposit tính tiền đặt cọc, cố định 20% giá phòng một đêm
func (r *Reservation) CalculateBookingDeposit(roomPrice float64) float64 {
	return roomPrice * constants.DepositRate
}

// GetAvailableBeds số giường còn trống trong phòng, có thể âm khi quá tải
func (r *Reservation) GetAvailableBeds(roomCapacity int) int {
	return roomCapacity - r.NumGuests
}

// GetStayDuration số ngày lưu trú trọn vẹn giữa nhận phòng và trả phòng
func (r *Reservation) GetStayDuration() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}

// IsUpcomingAndActive đặt phòng còn hiệu lực và chưa tới ngày nhận phòng,
// tính theo mốc thời gian truyền vào
func (r *Reservation) IsUpcomingAndActive(now time.Time) bool {
	return r.Status == constants.ReservationStatusActive && r.CheckInDate.After(now)
}

// Validate kiểm tra toàn bộ invariant trước khi lưu
func (r *Reservation) Validate() error {
	if r.GuestID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID khách không được để trống", nil)
	}
	if r.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if r.NumGuests <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng khách phải là số dương", nil)
	}
	if !r.CheckOutDate.After(r.CheckInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	if !constants.IsValidReservationStatus(r.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái đặt phòng không hợp lệ", nil)
	}
	return nil
}

// ToRecord chuyển đặt phòng sang dạng record để lưu trữ và xuất báo cáo
func (r *Reservation) ToRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":             r.ID,
		"guest_id":       r.GuestID,
		"room_id":        r.RoomID,
		"check_in_date":  r.CheckInDate.Format(time.RFC3339),
		"check_out_date": r.CheckOutDate.Format(time.RFC3339),
		"num_guests":     r.NumGuests,
		"total_cost":     r.TotalCost,
		"status":         r.Status,
		"created_at":     r.CreatedAt.Format(time.RFC3339),
	}
}

// ReservationFromRecord dựng lại đặt phòng từ dạng record
func ReservationFromRecord(rec map[string]interface{}) (*Reservation, error) {
	id, err := recordUint(rec, "id")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}
	guestID, err := recordUint(rec, "guest_id")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}
	roomID, err := recordUint(rec, "room_id")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}
	checkIn, err := recordTime(rec, "check_in_date")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}
	checkOut, err := recordTime(rec, "check_out_date")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}
	numGuests, err := recordInt(rec, "num_guests")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}
	totalCost, err := recordFloat(rec, "total_cost")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}
	status, err := recordString(rec, "status")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}
	createdAt, err := recordTime(rec, "created_at")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record đặt phòng không hợp lệ", err)
	}

	res, err := NewReservation(id, guestID, roomID, checkIn, checkOut, numGuests)
	if err != nil {
		return nil, err
	}
	if !constants.IsValidReservationStatus(status) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái đặt phòng không hợp lệ", nil)
	}
	res.TotalCost = totalCost
	res.Status = status
	res.CreatedAt = createdAt
	return res, nil
}
