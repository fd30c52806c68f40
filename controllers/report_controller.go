package controllers

import (
	"net/http"

	"hms/response"
	"hms/services"
	"hms/services/logger"
	"hms/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	store  *services.StoreService
	report *services.ReportService
	export *services.ExportService
}

func NewReportController(db *gorm.DB) *ReportController {
	store := services.NewStoreService(db, logger.NewDefaultLogger(logger.InfoLevel))
	return &ReportController{
		store:  store,
		report: services.NewReportService(store),
		export: services.NewExportService(),
	}
}

// GetStatistics trả về thống kê tổng hợp của khách sạn
func (ctrl *ReportController) GetStatistics(c *gin.Context) {
	stats, err := ctrl.report.GetStatistics()
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, stats)
}

// ExportToExcel xuất danh sách phòng và đặt phòng ra file xlsx
func (ctrl *ReportController) ExportToExcel(c *gin.Context) {
	rooms, err := ctrl.store.GetAllRooms()
	if err != nil {
		handleError(c, err)
		return
	}

	reservations, err := ctrl.store.GetAllReservations()
	if err != nil {
		handleError(c, err)
		return
	}

	f, err := ctrl.export.BuildWorkbook(rooms, reservations)
	if err != nil {
		utils.LogError("Lỗi khi xuất báo cáo: %v", err)
		response.ServerError(c)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		utils.LogError("Lỗi khi ghi file báo cáo: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
}
