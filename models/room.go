package models

import (
	"strings"
	"time"

	"hms/constants"
	"hms/errors"
)

// Room đại diện cho một phòng trong khách sạn
type Room struct {
	EntityMeta
	Number        int     `json:"number" gorm:"uniqueIndex;not null"`
	RoomType      string  `json:"roomType" gorm:"not null"`
	PricePerNight float64 `json:"pricePerNight" gorm:"not null"`
	Capacity      int     `json:"capacity" gorm:"not null"`
	IsAvailable   bool    `json:"isAvailable" gorm:"not null;default:true"`
}

// NewRoom tạo phòng mới, kiểm tra từng trường ngay khi gán
func NewRoom(id uint, number int, roomType string, pricePerNight float64, capacity int) (*Room, error) {
	room := &Room{
		EntityMeta:  EntityMeta{ID: id, CreatedAt: time.Now()},
		IsAvailable: true,
	}
	if err := room.SetNumber(number); err != nil {
		return nil, err
	}
	if err := room.SetRoomType(roomType); err != nil {
		return nil, err
	}
	if err := room.SetPricePerNight(pricePerNight); err != nil {
		return nil, err
	}
	if err := room.SetCapacity(capacity); err != nil {
		return nil, err
	}
	return room, nil
}

// SetNumber cập nhật số phòng
func (r *Room) SetNumber(number int) error {
	if number <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng phải là số dương", nil)
	}
	r.Number = number
	return nil
}

// SetRoomType cập nhật loại phòng
func (r *Room) SetRoomType(roomType string) error {
	if !constants.IsValidRoomType(roomType) {
		return errors.NewAppError(errors.ErrCodeValidation,
			"Loại phòng phải là một trong: "+strings.Join(constants.RoomTypes, ", "), nil)
	}
	r.RoomType = roomType
	return nil
}

// SetPricePerNight cập nhật giá một đêm
func (r *Room) SetPricePerNight(price float64) error {
	if price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}
	r.PricePerNight = price
	return nil
}

// SetCapacity cập nhật sức chứa
func (r *Room) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải là số dương", nil)
	}
	r.Capacity = capacity
	return nil
}

// CalculateStayCost tính chi phí lưu trú theo số đêm
func (r *Room) CalculateStayCost(nights int) (float64, error) {
	if nights <= 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số đêm phải là số dương", nil)
	}
	return r.PricePerNight * float64(nights), nil
}

// CheaperThan so sánh phòng theo giá một đêm
func (r *Room) CheaperThan(other *Room) bool {
	return r.PricePerNight < other.PricePerNight
}

// CombinedNightlyPrice tổng giá một đêm của hai phòng (ghép phòng thành suite)
func (r *Room) CombinedNightlyPrice(other *Room) float64 {
	return r.PricePerNight + other.PricePerNight
}

// Validate kiểm tra toàn bộ invariant trước khi lưu
func (r *Room) Validate() error {
	if r.Number <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng phải là số dương", nil)
	}
	if !constants.IsValidRoomType(r.RoomType) {
		return errors.NewAppError(errors.ErrCodeValidation,
			"Loại phòng phải là một trong: "+strings.Join(constants.RoomTypes, ", "), nil)
	}
	if r.PricePerNight < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}
	if r.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải là số dương", nil)
	}
	return nil
}

// ToRecord chuyển phòng sang dạng record để lưu trữ và xuất báo cáo
func (r *Room) ToRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":              r.ID,
		"number":          r.Number,
		"room_type":       r.RoomType,
		"price_per_night": r.PricePerNight,
		"capacity":        r.Capacity,
		"is_available":    r.IsAvailable,
		"created_at":      r.CreatedAt.Format(time.RFC3339),
	}
}

// RoomFromRecord dựng lại phòng từ dạng record
func RoomFromRecord(rec map[string]interface{}) (*Room, error) {
	id, err := recordUint(rec, "id")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record phòng không hợp lệ", err)
	}
	number, err := recordInt(rec, "number")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record phòng không hợp lệ", err)
	}
	roomType, err := recordString(rec, "room_type")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record phòng không hợp lệ", err)
	}
	price, err := recordFloat(rec, "price_per_night")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record phòng không hợp lệ", err)
	}
	capacity, err := recordInt(rec, "capacity")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record phòng không hợp lệ", err)
	}
	available, err := recordBool(rec, "is_available")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record phòng không hợp lệ", err)
	}
	createdAt, err := recordTime(rec, "created_at")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record phòng không hợp lệ", err)
	}

	room, err := NewRoom(id, number, roomType, price, capacity)
	if err != nil {
		return nil, err
	}
	room.IsAvailable = available
	room.CreatedAt = createdAt
	return room, nil
}
