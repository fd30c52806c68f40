package models

import (
	"regexp"
	"strings"
	"time"

	"hms/errors"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// Guest đại diện cho một khách của khách sạn
type Guest struct {
	EntityMeta
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Phone    string `json:"phone" gorm:"not null"`
	Passport string `json:"passport" gorm:"uniqueIndex;not null"`
}

// NewGuest tạo khách mới, kiểm tra lần lượt tên -> email -> điện thoại -> hộ chiếu
func NewGuest(id uint, name, email, phone, passport string) (*Guest, error) {
	guest := &Guest{
		EntityMeta: EntityMeta{ID: id, CreatedAt: time.Now()},
	}
	if err := guest.SetName(name); err != nil {
		return nil, err
	}
	if err := guest.SetEmail(email); err != nil {
		return nil, err
	}
	if err := guest.SetPhone(phone); err != nil {
		return nil, err
	}
	if err := guest.SetPassport(passport); err != nil {
		return nil, err
	}
	return guest, nil
}

// SetName cập nhật tên khách
func (g *Guest) SetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	g.Name = trimmed
	return nil
}

// SetEmail cập nhật email
func (g *Guest) SetEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	g.Email = email
	return nil
}

// SetPhone cập nhật số điện thoại
func (g *Guest) SetPhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	g.Phone = phone
	return nil
}

// SetPassport cập nhật số hộ chiếu
func (g *Guest) SetPassport(passport string) error {
	if len(passport) < 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số hộ chiếu không hợp lệ", nil)
	}
	g.Passport = passport
	return nil
}

// Validate kiểm tra toàn bộ invariant trước khi lưu
func (g *Guest) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if !emailRegex.MatchString(g.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if !phoneRegex.MatchString(g.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	if g.Passport == "" {
		return errors.NewAppError(errors.ErrCodeValidation, "Số hộ chiếu không hợp lệ", nil)
	}
	return nil
}

// Matches kiểm tra query có xuất hiện trong thông tin khách hay không,
// không phân biệt hoa thường
func (g *Guest) Matches(query string) bool {
	searchText := strings.ToLower(g.Name + " " + g.Email + " " + g.Phone + " " + g.Passport)
	return strings.Contains(searchText, strings.ToLower(query))
}

// ToRecord chuyển khách sang dạng record để lưu trữ
func (g *Guest) ToRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":         g.ID,
		"name":       g.Name,
		"email":      g.Email,
		"phone":      g.Phone,
		"passport":   g.Passport,
		"created_at": g.CreatedAt.Format(time.RFC3339),
	}
}

// GuestFromRecord dựng lại khách từ dạng record
func GuestFromRecord(rec map[string]interface{}) (*Guest, error) {
	id, err := recordUint(rec, "id")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record khách không hợp lệ", err)
	}
	name, err := recordString(rec, "name")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record khách không hợp lệ", err)
	}
	email, err := recordString(rec, "email")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record khách không hợp lệ", err)
	}
	phone, err := recordString(rec, "phone")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record khách không hợp lệ", err)
	}
	passport, err := recordString(rec, "passport")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record khách không hợp lệ", err)
	}
	createdAt, err := recordTime(rec, "created_at")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Record khách không hợp lệ", err)
	}

	guest, err := NewGuest(id, name, email, phone, passport)
	if err != nil {
		return nil, err
	}
	guest.CreatedAt = createdAt
	return guest, nil
}
