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

type RoomController struct {
	store *services.StoreService
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{
		store: services.NewStoreService(db, logger.NewDefaultLogger(logger.InfoLevel)),
	}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:            room.ID,
		Number:        room.Number,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
		IsAvailable:   room.IsAvailable,
		CreatedAt:     room.CreatedAt,
	}
}

// CreateRoom thêm phòng mới (upsert khi id đã tồn tại)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRoomRequest(&req); err != nil {
		handleError(c, err)
		return
	}

	room, err := models.NewRoom(req.ID, req.Number, req.RoomType, req.PricePerNight, req.Capacity)
	if err != nil {
		handleError(c, err)
		return
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if err := room.Validate(); err != nil {
		handleError(c, err)
		return
	}

	if _, err := ctrl.store.SaveRoom(room); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, convertToRoomResponse(*room))
}

// GetAllRooms lấy danh sách toàn bộ phòng
func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := ctrl.store.GetAllRooms()
	if err != nil {
		handleError(c, err)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.SuccessWithTotal(c, roomResponses, len(roomResponses))
}

// GetRoomDetail lấy thông tin một phòng theo id
func (ctrl *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.store.GetRoomByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, convertToRoomResponse(*room))
}
