package validator

import (
	"regexp"
	"strings"
	"time"

	"hms/constants"
	"hms/dto"
	"hms/errors"

	"github.com/go-playground/validator/v10"
)

// DateLayout định dạng ngày dùng cho request đặt phòng
const DateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
		return constants.IsValidRoomType(fl.Field().String())
	})
	v.RegisterValidation("e164phone", func(fl validator.FieldLevel) bool {
		return isValidPhone(fl.Field().String())
	})
	return v
}

// ValidateRoomRequest validate thông tin phòng
func ValidateRoomRequest(req *dto.RoomRequest) error {
	if req.Number <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng phải là số dương", nil)
	}
	if !constants.IsValidRoomType(req.RoomType) {
		return errors.NewAppError(errors.ErrCodeValidation,
			"Loại phòng phải là một trong: "+strings.Join(constants.RoomTypes, ", "), nil)
	}
	if req.PricePerNight < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}
	if req.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải là số dương", nil)
	}
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu phòng không hợp lệ", err)
	}
	return nil
}

// ValidateGuestRequest validate thông tin khách
func ValidateGuestRequest(req *dto.GuestRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if !isValidPhone(req.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	if len(req.Passport) < 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số hộ chiếu không hợp lệ", nil)
	}
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu khách không hợp lệ", err)
	}
	return nil
}

// ValidateReservationRequest validate thông tin đặt phòng và trả về
// ngày nhận, ngày trả đã parse
func ValidateReservationRequest(guestID, roomID uint, checkInDate, checkOutDate string, numGuests int) (time.Time, time.Time, error) {
	if guestID == 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "ID khách không được để trống", nil)
	}
	if roomID == 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	checkIn, err := time.Parse(DateLayout, checkInDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse(DateLayout, checkOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if numGuests <= 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Số lượng khách phải là số dương", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateReservationStatus validate trạng thái đặt phòng
func ValidateReservationStatus(status string) error {
	if !constants.IsValidReservationStatus(status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái đặt phòng không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ theo dạng E.164
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	return phoneRegex.MatchString(phone)
}
