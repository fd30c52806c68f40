package routes

import (
	"hms/controllers"
	middlewares "hms/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB) {

	roomController := controllers.NewRoomController(db)
	guestController := controllers.NewGuestController(db)
	reservationController := controllers.NewReservationController(db)
	reportController := controllers.NewReportController(db)

	router.Use(middlewares.RequestLogger())

	v1 := router.Group("/api/v1")

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.POST("/rooms", roomController.CreateRoom)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)

	v1.GET("/guests", guestController.GetAllGuests)
	v1.POST("/guests", guestController.CreateGuest)
	v1.GET("/guests/search", guestController.SearchGuests)

	v1.GET("/reservations", reservationController.GetAllReservations)
	v1.POST("/reservations", reservationController.CreateReservation)
	v1.GET("/reservations/:id", reservationController.GetReservationDetail)
	v1.POST("/reservations/preview", reservationController.PreviewCost)
	v1.PUT("/reservationStatus", reservationController.ChangeReservationStatus)

	v1.GET("/report/statistics", reportController.GetStatistics)
	v1.GET("/report/export", reportController.ExportToExcel)
}
