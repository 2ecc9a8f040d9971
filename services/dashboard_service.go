package services

import (
	"fmt"
	"time"

	"qlnt/constants"
	"qlnt/dto"
	"qlnt/repository"
	"qlnt/services/logger"
)

// DashboardService tính số liệu tổng quan. Thuần đọc, không giữ trạng
// thái, tính lại từ các collection hiện tại mỗi lần gọi.
type DashboardService struct {
	store  *repository.Store
	logger logger.Logger
}

type DashboardServiceOptions struct {
	Store  *repository.Store
	Logger logger.Logger
}

func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{
		store:  opts.Store,
		logger: opts.Logger,
	}
}

// Summary tổng hợp số liệu tại thời điểm now. expiringWindowDays <= 0
// dùng cửa sổ mặc định.
func (s *DashboardService) Summary(now time.Time, expiringWindowDays int) (*dto.DashboardSummary, error) {
	if expiringWindowDays <= 0 {
		expiringWindowDays = constants.ExpiringSoonDays
	}

	totalRooms, err := s.store.Rooms.Count()
	if err != nil {
		return nil, err
	}

	activeLeases, err := s.store.Leases.ListByStatus(constants.LeaseStatusActive)
	if err != nil {
		return nil, err
	}

	// Phòng đang thuê suy trực tiếp từ hợp đồng hiệu lực; hợp đồng
	// active đã qua ngày kết thúc tính là expired khi đọc
	occupiedRooms := map[uint]bool{}
	expiringSoon := 0
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := today.AddDate(0, 0, expiringWindowDays)
	for _, l := range activeLeases {
		if !l.IsActive(now) {
			continue
		}
		occupiedRooms[l.RoomID] = true
		if l.EndDate.After(today) && !l.EndDate.After(windowEnd) {
			expiringSoon++
		}
	}

	occupancyRate := "0.0"
	if totalRooms > 0 {
		occupancyRate = fmt.Sprintf("%.1f", float64(len(occupiedRooms))/float64(totalRooms)*100)
	}

	transactions, err := s.store.Transactions.ListAll()
	if err != nil {
		return nil, err
	}

	var monthlyRevenue, paidLastYear float64
	yearAgo := now.AddDate(0, 0, -365)
	for _, t := range transactions {
		if t.Status != constants.TransactionStatusPaid || t.PaidAt == nil {
			continue
		}
		if t.PaidAt.After(yearAgo) && !t.PaidAt.After(now) {
			paidLastYear += t.Amount
		}
		sameMonth := t.PaidAt.Year() == now.Year() && t.PaidAt.Month() == now.Month()
		if sameMonth && (t.Category == constants.CategoryRent || t.Category == constants.CategoryMachineIncome) {
			monthlyRevenue += t.Amount
		}
	}

	expenses, err := s.store.Expenses.ListAll()
	if err != nil {
		return nil, err
	}
	var expensesLastYear float64
	for _, e := range expenses {
		if e.Date.After(yearAgo) && !e.Date.After(now) {
			expensesLastYear += e.Amount
		}
	}

	overdue, err := s.store.Transactions.CountByStatus(constants.TransactionStatusOverdue)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		TotalRooms:        totalRooms,
		OccupiedRooms:     len(occupiedRooms),
		OccupancyRate:     occupancyRate,
		MonthlyRevenue:    monthlyRevenue,
		AnnualNetProfit:   paidLastYear - expensesLastYear,
		ExpiringSoonCount: expiringSoon,
		OverdueCount:      overdue,
	}, nil
}
