package controllers

import (
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/services/logger"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationController struct {
	store  *services.StoreService
	facade *services.BookingFacade
}

func NewReservationController(db *gorm.DB) *ReservationController {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	return &ReservationController{
		store:  services.NewStoreService(db, log),
		facade: services.NewBookingFacade(db, log),
	}
}

func convertToReservationResponse(reservation models.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:           reservation.ID,
		GuestID:      reservation.GuestID,
		RoomID:       reservation.RoomID,
		CheckInDate:  reservation.CheckInDate.Format(validator.DateLayout),
		CheckOutDate: reservation.CheckOutDate.Format(validator.DateLayout),
		NumGuests:    reservation.NumGuests,
		TotalCost:    reservation.TotalCost,
		Status:       reservation.Status,
		CreatedAt:    reservation.CreatedAt,
	}
}

// CreateReservation tạo đặt phòng mới, tính tổng chi phí theo giá phòng rồi lưu
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkIn, checkOut, err := validator.ValidateReservationRequest(
		req.GuestID, req.RoomID, req.CheckInDate, req.CheckOutDate, req.NumGuests)
	if err != nil {
		handleError(c, err)
		return
	}

	reservation, err := models.NewReservation(req.ID, req.GuestID, req.RoomID, checkIn, checkOut, req.NumGuests)
	if err != nil {
		handleError(c, err)
		return
	}

	if _, err := ctrl.facade.CreateReservation(reservation); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, convertToReservationResponse(*reservation))
}

// GetAllReservations lấy danh sách toàn bộ đặt phòng
func (ctrl *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := ctrl.store.GetAllReservations()
	if err != nil {
		handleError(c, err)
		return
	}

	reservationResponses := make([]dto.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		reservationResponses = append(reservationResponses, convertToReservationResponse(reservation))
	}

	response.SuccessWithTotal(c, reservationResponses, len(reservationResponses))
}

// GetReservationDetail lấy thông tin một đặt phòng theo id
func (ctrl *ReservationController) GetReservationDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := ctrl.store.GetReservationByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, convertToReservationResponse(*reservation))
}

// PreviewCost tính thử chi phí đặt phòng: tiền lưu trú, tiền cọc,
// số giường trống và số ngày ở. Không lưu gì.
func (ctrl *ReservationController) PreviewCost(c *gin.Context) {
	var req dto.CostPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	// Preview chưa cần khách cụ thể
	checkIn, checkOut, err := validator.ValidateReservationRequest(
		1, req.RoomID, req.CheckInDate, req.CheckOutDate, req.NumGuests)
	if err != nil {
		handleError(c, err)
		return
	}

	quote, err := ctrl.facade.PreviewBooking(req.RoomID, checkIn, checkOut, req.NumGuests)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, dto.CostPreviewResponse{
		StayCost:      quote.StayCost,
		Deposit:       quote.Deposit,
		AvailableBeds: quote.AvailableBeds,
		Duration:      quote.Duration,
	})
}

// ChangeReservationStatus đổi trạng thái đặt phòng
func (ctrl *ReservationController) ChangeReservationStatus(c *gin.Context) {
	var req dto.ChangeReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateReservationStatus(req.Status); err != nil {
		handleError(c, err)
		return
	}

	reservation, err := ctrl.facade.ChangeReservationStatus(req.ID, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, convertToReservationResponse(*reservation))
}
