package controllers

import (
	"strings"

	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/services/logger"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GuestController struct {
	store *services.StoreService
}

func NewGuestController(db *gorm.DB) *GuestController {
	return &GuestController{
		store: services.NewStoreService(db, logger.NewDefaultLogger(logger.InfoLevel)),
	}
}

func convertToGuestResponse(guest models.Guest) dto.GuestResponse {
	return dto.GuestResponse{
		ID:        guest.ID,
		Name:      guest.Name,
		Email:     guest.Email,
		Phone:     guest.Phone,
		Passport:  guest.Passport,
		CreatedAt: guest.CreatedAt,
	}
}

// CreateGuest thêm khách mới (upsert khi id đã tồn tại)
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var req dto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateGuestRequest(&req); err != nil {
		handleError(c, err)
		return
	}

	guest, err := models.NewGuest(req.ID, req.Name, req.Email, req.Phone, req.Passport)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := guest.Validate(); err != nil {
		handleError(c, err)
		return
	}

	if _, err := ctrl.store.SaveGuest(guest); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, convertToGuestResponse(*guest))
}

// GetAllGuests lấy danh sách toàn bộ khách
func (ctrl *GuestController) GetAllGuests(c *gin.Context) {
	guests, err := ctrl.store.GetAllGuests()
	if err != nil {
		handleError(c, err)
		return
	}

	guestResponses := make([]dto.GuestResponse, 0, len(guests))
	for _, guest := range guests {
		guestResponses = append(guestResponses, convertToGuestResponse(guest))
	}

	response.SuccessWithTotal(c, guestResponses, len(guestResponses))
}

// SearchGuests tìm khách theo chuỗi con trong tên, email, điện thoại, hộ chiếu
func (ctrl *GuestController) SearchGuests(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Từ khóa tìm kiếm không được để trống")
		return
	}

	guests, err := ctrl.store.GetAllGuests()
	if err != nil {
		handleError(c, err)
		return
	}

	matched := make([]dto.GuestResponse, 0)
	for _, guest := range guests {
		if guest.Matches(query) {
			matched = append(matched, convertToGuestResponse(guest))
		}
	}

	response.SuccessWithTotal(c, matched, len(matched))
}
