package services

import (
	"testing"
	"time"

	"hms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkbook(t *testing.T) {
	service := NewExportService()

	room := mustRoom(t, 1, 101, "double", 150.5, 2)
	reservation := mustReservation(t, 7, 3, 1, 4, 2)
	reservation.TotalCost = 602

	f, err := service.BuildWorkbook([]models.Room{*room}, []models.Reservation{*reservation})
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Rooms", "Reservations"}, f.GetSheetList())

	// Header sheet Rooms
	header, err := f.GetCellValue("Rooms", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
	available, err := f.GetCellValue("Rooms", "F1")
	require.NoError(t, err)
	assert.Equal(t, "Available", available)

	number, err := f.GetCellValue("Rooms", "B2")
	require.NoError(t, err)
	assert.Equal(t, "101", number)
	price, err := f.GetCellValue("Rooms", "D2")
	require.NoError(t, err)
	assert.Equal(t, "150.5", price)

	// Ngày trong sheet Reservations phải theo dạng YYYY-MM-DD
	checkIn, err := f.GetCellValue("Reservations", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", checkIn)
	checkOut, err := f.GetCellValue("Reservations", "E2")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-05", checkOut)

	status, err := f.GetCellValue("Reservations", "H2")
	require.NoError(t, err)
	assert.Equal(t, "active", status)
}

func TestBuildWorkbookEmptyData(t *testing.T) {
	service := NewExportService()

	f, err := service.BuildWorkbook(nil, nil)
	require.NoError(t, err)
	defer f.Close()

	// Chỉ có dòng header
	rows, err := f.GetRows("Rooms")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportToFile(t *testing.T) {
	service := NewExportService()
	path := t.TempDir() + "/" + ExportFileName

	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reservation, err := models.NewReservation(1, 1, 1, checkIn, checkIn.AddDate(0, 0, 2), 1)
	require.NoError(t, err)

	room := mustRoom(t, 1, 101, "single", 90, 1)
	require.NoError(t, service.ExportToFile(path, []models.Room{*room}, []models.Reservation{*reservation}))

	assert.FileExists(t, path)
}
