package services

import (
	"testing"
	"time"

	"hms/errors"
	"hms/models"
	"hms/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *StoreService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	store := NewStoreService(db, logger.NewDefaultLogger(logger.ErrorLevel))
	require.NoError(t, store.Migrate())
	return store
}

func mustRoom(t *testing.T, id uint, number int, roomType string, price float64, capacity int) *models.Room {
	t.Helper()
	room, err := models.NewRoom(id, number, roomType, price, capacity)
	require.NoError(t, err)
	return room
}

func mustGuest(t *testing.T, id uint, name, email, phone, passport string) *models.Guest {
	t.Helper()
	guest, err := models.NewGuest(id, name, email, phone, passport)
	require.NoError(t, err)
	return guest
}

func mustReservation(t *testing.T, id, guestID, roomID uint, nights, numGuests int) *models.Reservation {
	t.Helper()
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reservation, err := models.NewReservation(id, guestID, roomID, checkIn, checkIn.AddDate(0, 0, nights), numGuests)
	require.NoError(t, err)
	return reservation
}

func TestSaveAndGetAllRooms(t *testing.T) {
	store := newTestStore(t)

	id, err := store.SaveRoom(mustRoom(t, 1, 101, "single", 100, 2))
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	_, err = store.SaveRoom(mustRoom(t, 2, 102, "double", 150, 3))
	require.NoError(t, err)

	rooms, err := store.GetAllRooms()
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestSaveRoomUpsertIdempotence(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SaveRoom(mustRoom(t, 1, 101, "single", 100, 2))
	require.NoError(t, err)

	// Lưu lại cùng id với dữ liệu khác: phải ghi đè, không thêm dòng mới
	_, err = store.SaveRoom(mustRoom(t, 1, 101, "suite", 250, 4))
	require.NoError(t, err)

	rooms, err := store.GetAllRooms()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "suite", rooms[0].RoomType)
	assert.Equal(t, 250.0, rooms[0].PricePerNight)
	assert.Equal(t, 4, rooms[0].Capacity)
}

func TestSaveGuestAndGetByID(t *testing.T) {
	store := newTestStore(t)

	id, err := store.SaveGuest(mustGuest(t, 0, "John Doe", "john@example.com", "+1234567890", "AB123456"))
	require.NoError(t, err)
	assert.NotZero(t, id)

	guest, err := store.GetGuestByID(id)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", guest.Name)

	guests, err := store.GetAllGuests()
	require.NoError(t, err)
	assert.Len(t, guests, 1)
}

func TestSaveReservationAndGetAll(t *testing.T) {
	store := newTestStore(t)

	reservation := mustReservation(t, 0, 1, 1, 5, 2)
	id, err := store.SaveReservation(reservation)
	require.NoError(t, err)
	assert.NotZero(t, id)

	reservations, err := store.GetAllReservations()
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "active", reservations[0].Status)
	assert.Equal(t, 5, reservations[0].GetStayDuration())
}

func TestGetRoomByIDNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRoomByID(99)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeDBNotFound, appErr.Code)
	assert.True(t, errors.IsPersistenceError(err))
}
