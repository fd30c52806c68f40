package constants

// Room types
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
	RoomTypeDeluxe = "deluxe"
)

// RoomTypes danh sách các loại phòng hợp lệ
var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe}

// Reservation status
const (
	ReservationStatusActive    = "active"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// ReservationStatuses danh sách các trạng thái đặt phòng hợp lệ
var ReservationStatuses = []string{
	ReservationStatusActive,
	ReservationStatusCancelled,
	ReservationStatusCompleted,
}

// Pricing
const (
	// DepositRate tỷ lệ đặt cọc tính trên giá một đêm
	DepositRate = 0.2
)

// IsValidRoomType kiểm tra loại phòng hợp lệ
func IsValidRoomType(roomType string) bool {
	for _, t := range RoomTypes {
		if t == roomType {
			return true
		}
	}
	return false
}

// IsValidReservationStatus kiểm tra trạng thái đặt phòng hợp lệ
func IsValidReservationStatus(status string) bool {
	for _, s := range ReservationStatuses {
		if s == status {
			return true
		}
	}
	return false
}
