package controllers

import (
	"strconv"

	"hms/errors"
	"hms/response"
	"hms/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam đọc tham số :id trên đường dẫn
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

// handleError dịch lỗi từ tầng dưới thành response cho người dùng
func handleError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		utils.LogError("Lỗi không xác định: %v", err)
		response.ServerError(c)
		return
	}

	switch {
	case errors.IsValidationError(err):
		response.ValidationError(c, appErr.Message)
	case appErr.Code == errors.ErrCodeDBNotFound:
		response.NotFound(c)
	default:
		utils.LogError("Lỗi hệ thống: %v", err)
		response.ServerError(c)
	}
}
