package dto

// StatisticsResponse là DTO cho thống kê tổng hợp của khách sạn
type StatisticsResponse struct {
	TotalRooms         int     `json:"totalRooms"`
	AvailableRooms     int     `json:"availableRooms"`
	TotalGuests        int     `json:"totalGuests"`
	ActiveReservations int     `json:"activeReservations"`
	TotalRevenue       float64 `json:"totalRevenue"`
}
