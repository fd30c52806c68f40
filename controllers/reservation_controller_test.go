package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hms/models"
	"hms/services"
	"hms/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.StoreService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	store := services.NewStoreService(db, logger.NewDefaultLogger(logger.ErrorLevel))
	require.NoError(t, store.Migrate())

	ctrl := NewReservationController(db)
	router := gin.New()
	router.POST("/api/v1/reservations", ctrl.CreateReservation)
	router.POST("/api/v1/reservations/preview", ctrl.PreviewCost)
	router.GET("/api/v1/reservations", ctrl.GetAllReservations)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedRoom(t *testing.T, store *services.StoreService) {
	t.Helper()
	room, err := models.NewRoom(1, 101, "double", 100, 2)
	require.NoError(t, err)
	_, err = store.SaveRoom(room)
	require.NoError(t, err)
}

func TestPreviewCost(t *testing.T) {
	router, store := newTestRouter(t)
	seedRoom(t, store)

	w := doJSON(t, router, http.MethodPost, "/api/v1/reservations/preview", gin.H{
		"roomId":       1,
		"checkInDate":  "2025-06-01",
		"checkOutDate": "2025-06-06",
		"numGuests":    2,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			StayCost      float64 `json:"stayCost"`
			Deposit       float64 `json:"deposit"`
			AvailableBeds int     `json:"availableBeds"`
			Duration      int     `json:"duration"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Code)
	assert.Equal(t, 500.0, resp.Data.StayCost)
	assert.Equal(t, 20.0, resp.Data.Deposit)
	assert.Equal(t, 0, resp.Data.AvailableBeds)
	assert.Equal(t, 5, resp.Data.Duration)
}

func TestPreviewCostInvalidDates(t *testing.T) {
	router, store := newTestRouter(t)
	seedRoom(t, store)

	// Ngày trả phòng trước ngày nhận phòng
	w := doJSON(t, router, http.MethodPost, "/api/v1/reservations/preview", gin.H{
		"roomId":       1,
		"checkInDate":  "2025-06-06",
		"checkOutDate": "2025-06-01",
		"numGuests":    2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReservation(t *testing.T) {
	router, store := newTestRouter(t)
	seedRoom(t, store)

	w := doJSON(t, router, http.MethodPost, "/api/v1/reservations", gin.H{
		"guestId":      1,
		"roomId":       1,
		"checkInDate":  "2025-06-01",
		"checkOutDate": "2025-06-06",
		"numGuests":    2,
	})

	require.Equal(t, http.StatusOK, w.Code)

	reservations, err := store.GetAllReservations()
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, 500.0, reservations[0].TotalCost)
}

func TestCreateReservationUnknownRoom(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/reservations", gin.H{
		"guestId":      1,
		"roomId":       42,
		"checkInDate":  "2025-06-01",
		"checkOutDate": "2025-06-06",
		"numGuests":    2,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
