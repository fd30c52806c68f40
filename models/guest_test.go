package models

import (
	"testing"
	"time"

	"hms/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	guest, err := NewGuest(1, "John Doe", "john@example.com", "+1234567890", "AB123456")
	require.NoError(t, err)

	assert.Equal(t, "John Doe", guest.Name)
	assert.Equal(t, "john@example.com", guest.Email)
	assert.Equal(t, "+1234567890", guest.Phone)
	assert.Equal(t, "AB123456", guest.Passport)
	require.NoError(t, guest.Validate())
}

func TestNewGuestTrimsName(t *testing.T) {
	guest, err := NewGuest(1, "  John Doe  ", "john@example.com", "+1234567890", "AB123456")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", guest.Name)
}

func TestNewGuestValidationOrder(t *testing.T) {
	// Tên sai trước, email cũng sai: lỗi đầu tiên phải là lỗi tên
	_, err := NewGuest(1, "   ", "not-an-email", "abc", "x")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRequiredField, appErr.Code)

	// Tên đúng, email sai: lỗi phải là lỗi email
	_, err = NewGuest(1, "John", "not-an-email", "abc", "x")
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidEmail, appErr.Code)

	// Email đúng, điện thoại sai
	_, err = NewGuest(1, "John", "a@b.com", "abc", "x")
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidPhone, appErr.Code)

	// Điện thoại đúng, hộ chiếu quá ngắn
	_, err = NewGuest(1, "John", "a@b.com", "+1234567890", "x")
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
}

func TestGuestEmailValidation(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"john.doe+tag@example.co.uk", true},
		{"not-an-email", false},
		{"a@b", false},
		{"@b.com", false},
		{"a@.com", false},
	}

	for _, tt := range tests {
		guest := &Guest{}
		err := guest.SetEmail(tt.email)
		if tt.valid {
			assert.NoError(t, err, "email %q", tt.email)
		} else {
			assert.Error(t, err, "email %q", tt.email)
		}
	}
}

func TestGuestPhoneValidation(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+1234567890", true},
		{"1234567890", true},
		{"+849012345678", true},
		{"0123456789", false},
		{"abc", false},
		{"+0123", false},
		{"", false},
	}

	for _, tt := range tests {
		guest := &Guest{}
		err := guest.SetPhone(tt.phone)
		if tt.valid {
			assert.NoError(t, err, "phone %q", tt.phone)
		} else {
			assert.Error(t, err, "phone %q", tt.phone)
		}
	}
}

func TestGuestMatches(t *testing.T) {
	guest, err := NewGuest(1, "John Doe", "john@example.com", "+1234567890", "AB123456")
	require.NoError(t, err)

	assert.True(t, guest.Matches("john"))
	assert.True(t, guest.Matches("JOHN DOE"))
	assert.True(t, guest.Matches("example.com"))
	assert.True(t, guest.Matches("ab12"))
	assert.True(t, guest.Matches("+123"))
	// Khoảng trắng giữa các trường cũng nằm trong chuỗi tìm kiếm
	assert.True(t, guest.Matches("doe john@"))
	assert.False(t, guest.Matches("jane"))
}

func TestGuestRecordRoundTrip(t *testing.T) {
	guest, err := NewGuest(3, "Jane Roe", "jane@example.com", "+841234567", "XY98765")
	require.NoError(t, err)

	rec := guest.ToRecord()
	restored, err := GuestFromRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, guest.ID, restored.ID)
	assert.Equal(t, guest.Name, restored.Name)
	assert.Equal(t, guest.Email, restored.Email)
	assert.Equal(t, guest.Phone, restored.Phone)
	assert.Equal(t, guest.Passport, restored.Passport)
	assert.Equal(t, guest.CreatedAt.Format(time.RFC3339), restored.CreatedAt.Format(time.RFC3339))
}
