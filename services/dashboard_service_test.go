package services

import (
	"testing"

	"qlnt/constants"
	"qlnt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryOccupancy(t *testing.T) {
	env := newTestEnv()
	now := date("2025-06-15")

	var rooms []*models.Room
	for _, code := range []string{"P101", "P102", "P103", "P104", "P105"} {
		rooms = append(rooms, env.seedRoom(code, 0))
	}
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	env.seedLease(tenant.ID, rooms[0].ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusActive)
	env.seedLease(tenant.ID, rooms[1].ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusActive)
	// Draft và terminated không tính là đang thuê
	env.seedLease(tenant.ID, rooms[2].ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusDraft)
	env.seedLease(tenant.ID, rooms[3].ID, "2024-01-01", "2024-06-01", 3000, constants.LeaseStatusTerminated)

	summary, err := env.dashboard.Summary(now, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalRooms)
	assert.Equal(t, 2, summary.OccupiedRooms)
	assert.Equal(t, "40.0", summary.OccupancyRate)
}

func TestDashboardActiveLeasePastEndDateCountsAsExpired(t *testing.T) {
	env := newTestEnv()
	now := date("2025-06-15")

	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	// Hợp đồng active đã qua ngày kết thúc: expired khi đọc, phòng coi là trống
	env.seedLease(tenant.ID, room.ID, "2024-01-01", "2025-01-01", 3000, constants.LeaseStatusActive)

	summary, err := env.dashboard.Summary(now, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.OccupiedRooms)
	assert.Equal(t, "0.0", summary.OccupancyRate)
}

func TestDashboardMonthlyRevenue(t *testing.T) {
	env := newTestEnv()
	now := date("2025-06-20")

	// Tính vào doanh thu tháng: tiền phòng và tiền máy giặt đã thu trong tháng
	env.seedPaidTransaction(constants.CategoryRent, 3000, date("2025-06-05"))
	env.seedPaidTransaction(constants.CategoryMachineIncome, 450, date("2025-06-10"))
	// Không tính: tiền điện, tiền thu tháng trước, khoản còn pending
	env.seedPaidTransaction(constants.CategoryElectricity, 1250, date("2025-06-08"))
	env.seedPaidTransaction(constants.CategoryRent, 3000, date("2025-05-05"))
	require.NoError(t, env.store.Transactions.Create(&models.Transaction{
		Category: constants.CategoryRent,
		Amount:   9999,
		DueDate:  date("2025-06-25"),
		Status:   constants.TransactionStatusPending,
	}))

	summary, err := env.dashboard.Summary(now, 0)
	require.NoError(t, err)
	assert.Equal(t, 3450.0, summary.MonthlyRevenue)
}

func TestDashboardAnnualNetProfit(t *testing.T) {
	env := newTestEnv()
	now := date("2025-06-20")

	// Trong cửa sổ 365 ngày: mọi khoản đã thu trừ mọi khoản chi
	env.seedPaidTransaction(constants.CategoryRent, 3000, date("2025-06-05"))
	env.seedPaidTransaction(constants.CategoryElectricity, 1000, date("2024-09-01"))
	// Ngoài cửa sổ
	env.seedPaidTransaction(constants.CategoryRent, 8888, date("2023-01-01"))

	require.NoError(t, env.store.Expenses.Create(&models.Expense{
		Category: "sửa chữa", Amount: 500, Date: date("2025-03-10"),
	}))
	require.NoError(t, env.store.Expenses.Create(&models.Expense{
		Category: "sơn lại nhà", Amount: 7777, Date: date("2022-05-01"), // ngoài cửa sổ
	}))

	summary, err := env.dashboard.Summary(now, 0)
	require.NoError(t, err)
	assert.Equal(t, 3500.0, summary.AnnualNetProfit) // 3000 + 1000 - 500
}

func TestDashboardExpiringSoonWindow(t *testing.T) {
	env := newTestEnv()
	now := date("2025-06-01")

	rooms := []*models.Room{
		env.seedRoom("P101", 0),
		env.seedRoom("P102", 0),
		env.seedRoom("P103", 0),
	}
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	// Hết hạn trong 60 ngày tới
	env.seedLease(tenant.ID, rooms[0].ID, "2024-07-15", "2025-07-15", 3000, constants.LeaseStatusActive)
	// Còn dài hạn
	env.seedLease(tenant.ID, rooms[1].ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusActive)
	// Sát mép cửa sổ mặc định: đúng 60 ngày vẫn tính
	env.seedLease(tenant.ID, rooms[2].ID, "2024-08-01", "2025-07-31", 3000, constants.LeaseStatusActive)

	summary, err := env.dashboard.Summary(now, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ExpiringSoonCount)

	// Cửa sổ hẹp hơn thì chỉ còn hợp đồng gần nhất... ở đây không còn cái nào
	narrow, err := env.dashboard.Summary(now, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, narrow.ExpiringSoonCount)
}

func TestDashboardOverdueCount(t *testing.T) {
	env := newTestEnv()
	now := date("2025-06-20")

	require.NoError(t, env.store.Transactions.Create(&models.Transaction{
		Category: constants.CategoryRent,
		Amount:   3000,
		DueDate:  date("2025-05-05"),
		Status:   constants.TransactionStatusOverdue,
	}))
	require.NoError(t, env.store.Transactions.Create(&models.Transaction{
		Category: constants.CategoryRent,
		Amount:   3000,
		DueDate:  date("2025-06-25"),
		Status:   constants.TransactionStatusPending,
	}))

	summary, err := env.dashboard.Summary(now, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.OverdueCount)
}
