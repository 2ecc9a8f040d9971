package dto

// DashboardSummary là số liệu tổng hợp cho màn hình tổng quan,
// tính lại từ dữ liệu hiện tại mỗi lần đọc
type DashboardSummary struct {
	TotalRooms        int     `json:"totalRooms"`
	OccupiedRooms     int     `json:"occupiedRooms"`
	OccupancyRate     string  `json:"occupancyRate"` // Phần trăm, một chữ số thập phân, ví dụ "40.0"
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	AnnualNetProfit   float64 `json:"annualNetProfit"`
	ExpiringSoonCount int     `json:"expiringSoonCount"`
	OverdueCount      int     `json:"overdueCount"`
}
