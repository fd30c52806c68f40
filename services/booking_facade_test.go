package services

import (
	"testing"
	"time"

	"hms/constants"
	"hms/errors"
	"hms/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFacade(t *testing.T) (*BookingFacade, *StoreService) {
	t.Helper()
	store := newTestStore(t)
	return &BookingFacade{store: store, log: logger.NewDefaultLogger(logger.ErrorLevel)}, store
}

func TestCreateReservationComputesCost(t *testing.T) {
	facade, store := newTestFacade(t)

	_, err := store.SaveRoom(mustRoom(t, 1, 101, "double", 100, 2))
	require.NoError(t, err)

	reservation := mustReservation(t, 0, 1, 1, 5, 2)
	id, err := facade.CreateReservation(reservation)
	require.NoError(t, err)

	// Tổng chi phí phải được tính theo giá phòng trước khi lưu
	saved, err := store.GetReservationByID(id)
	require.NoError(t, err)
	assert.Equal(t, 500.0, saved.TotalCost)
	assert.Equal(t, constants.ReservationStatusActive, saved.Status)
}

func TestCreateReservationRoomNotFound(t *testing.T) {
	facade, store := newTestFacade(t)

	reservation := mustReservation(t, 0, 1, 99, 3, 2)
	_, err := facade.CreateReservation(reservation)
	require.Error(t, err)
	assert.True(t, errors.IsPersistenceError(err))

	// Không được ghi gì khi phòng không tồn tại
	reservations, err := store.GetAllReservations()
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestPreviewBooking(t *testing.T) {
	facade, store := newTestFacade(t)

	_, err := store.SaveRoom(mustRoom(t, 1, 101, "double", 100, 2))
	require.NoError(t, err)

	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	quote, err := facade.PreviewBooking(1, checkIn, checkIn.AddDate(0, 0, 5), 2)
	require.NoError(t, err)

	assert.Equal(t, 500.0, quote.StayCost)
	assert.Equal(t, 20.0, quote.Deposit)
	assert.Equal(t, 0, quote.AvailableBeds)
	assert.Equal(t, 5, quote.Duration)

	// Preview không được lưu gì
	reservations, err := store.GetAllReservations()
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestChangeReservationStatus(t *testing.T) {
	facade, store := newTestFacade(t)

	_, err := store.SaveRoom(mustRoom(t, 1, 101, "double", 100, 2))
	require.NoError(t, err)

	id, err := facade.CreateReservation(mustReservation(t, 0, 1, 1, 5, 2))
	require.NoError(t, err)

	updated, err := facade.ChangeReservationStatus(id, constants.ReservationStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, constants.ReservationStatusCancelled, updated.Status)

	saved, err := store.GetReservationByID(id)
	require.NoError(t, err)
	assert.Equal(t, constants.ReservationStatusCancelled, saved.Status)

	// Trạng thái kết thúc không thể chuyển tiếp
	_, err = facade.ChangeReservationStatus(id, constants.ReservationStatusCompleted)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
