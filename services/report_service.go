package services

import (
	"hms/constants"
	"hms/dto"
)

// ReportService tổng hợp số liệu thống kê của khách sạn
type ReportService struct {
	store *StoreService
}

// NewReportService tạo instance mới của ReportService
func NewReportService(store *StoreService) *ReportService {
	return &ReportService{
		store: store,
	}
}

// GetStatistics tính thống kê: số phòng, phòng trống, số khách,
// đặt phòng đang hiệu lực và tổng doanh thu trên mọi đặt phòng
func (s *ReportService) GetStatistics() (*dto.StatisticsResponse, error) {
	rooms, err := s.store.GetAllRooms()
	if err != nil {
		return nil, err
	}

	guests, err := s.store.GetAllGuests()
	if err != nil {
		return nil, err
	}

	reservations, err := s.store.GetAllReservations()
	if err != nil {
		return nil, err
	}

	stats := &dto.StatisticsResponse{
		TotalRooms:  len(rooms),
		TotalGuests: len(guests),
	}

	for _, room := range rooms {
		if room.IsAvailable {
			stats.AvailableRooms++
		}
	}

	for _, reservation := range reservations {
		if reservation.Status == constants.ReservationStatusActive {
			stats.ActiveReservations++
		}
		// Doanh thu tính trên mọi đặt phòng, kể cả đã hủy
		stats.TotalRevenue += reservation.TotalCost
	}

	return stats, nil
}
