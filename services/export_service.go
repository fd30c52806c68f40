package services

import (
	"fmt"

	"hms/models"

	"github.com/xuri/excelize/v2"
)

// ExportFileName tên file báo cáo mặc định
const ExportFileName = "hotel_report.xlsx"

const exportDateLayout = "2006-01-02"

var roomSheetHeader = []interface{}{"ID", "Number", "Type", "Price/Night", "Capacity", "Available"}

var reservationSheetHeader = []interface{}{
	"ID", "GuestID", "RoomID", "CheckIn", "CheckOut", "NumGuests", "TotalCost", "Status",
}

// ExportService xuất dữ liệu phòng và đặt phòng ra file bảng tính hai sheet
type ExportService struct{}

// NewExportService tạo instance mới của ExportService
func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook dựng workbook hai sheet: "Rooms" và "Reservations"
func (s *ExportService) BuildWorkbook(rooms []models.Room, reservations []models.Reservation) (*excelize.File, error) {
	f := excelize.NewFile()

	// Sheet phòng
	if err := f.SetSheetName("Sheet1", "Rooms"); err != nil {
		return nil, fmt.Errorf("không thể tạo sheet Rooms: %w", err)
	}
	if err := f.SetSheetRow("Rooms", "A1", &roomSheetHeader); err != nil {
		return nil, fmt.Errorf("không thể ghi sheet Rooms: %w", err)
	}
	for i, room := range rooms {
		row := []interface{}{
			room.ID,
			room.Number,
			room.RoomType,
			room.PricePerNight,
			room.Capacity,
			room.IsAvailable,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Rooms", cell, &row); err != nil {
			return nil, fmt.Errorf("không thể ghi sheet Rooms: %w", err)
		}
	}

	// Sheet đặt phòng
	if _, err := f.NewSheet("Reservations"); err != nil {
		return nil, fmt.Errorf("không thể tạo sheet Reservations: %w", err)
	}
	if err := f.SetSheetRow("Reservations", "A1", &reservationSheetHeader); err != nil {
		return nil, fmt.Errorf("không thể ghi sheet Reservations: %w", err)
	}
	for i, reservation := range reservations {
		row := []interface{}{
			reservation.ID,
			reservation.GuestID,
			reservation.RoomID,
			reservation.CheckInDate.Format(exportDateLayout),
			reservation.CheckOutDate.Format(exportDateLayout),
			reservation.NumGuests,
			reservation.TotalCost,
			reservation.Status,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Reservations", cell, &row); err != nil {
			return nil, fmt.Errorf("không thể ghi sheet Reservations: %w", err)
		}
	}

	return f, nil
}

// ExportToFile dựng workbook và ghi ra đường dẫn chỉ định
func (s *ExportService) ExportToFile(path string, rooms []models.Room, reservations []models.Reservation) error {
	f, err := s.BuildWorkbook(rooms, reservations)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("không thể lưu file báo cáo: %w", err)
	}
	return nil
}
