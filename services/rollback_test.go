package services

import (
	"testing"

	"qlnt/constants"
	"qlnt/dto"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Các test trong file này chạy trên SQLite thật thay vì store bộ nhớ:
// chủ đích là làm hỏng một lệnh ghi giữa chừng (xóa bảng đích) rồi kiểm
// tra mọi lệnh ghi trước đó trong cùng nghiệp vụ đều được hoàn tác.

type sqlTestEnv struct {
	db      *gorm.DB
	store   *repository.Store
	billing *BillingService
	leases  *LeaseService
}

func newSQLTestEnv(t *testing.T) *sqlTestEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	store := repository.NewGormStore(db)
	log := logger.NewDefaultLogger(logger.ErrorLevel)
	rates := NewRateService(RateServiceOptions{Store: store, Logger: log})
	billing := NewBillingService(BillingServiceOptions{Store: store, Rates: rates, Logger: log})
	leases := NewLeaseService(LeaseServiceOptions{Store: store, Billing: billing, Logger: log})
	return &sqlTestEnv{db: db, store: store, billing: billing, leases: leases}
}

func (e *sqlTestEnv) seedActiveLease(t *testing.T, monthlyRent, lastMeterReading int) *models.Lease {
	building := &models.Building{BuildingNumber: "D1", Address: "12 Nguyễn Trãi"}
	require.NoError(t, e.store.Buildings.Create(building))
	room := &models.Room{BuildingID: building.ID, Floor: 1, Code: "P101", Acreage: 20, LastMeterReading: lastMeterReading}
	require.NoError(t, e.store.Rooms.Create(room))
	tenant := &models.Tenant{FullName: "Nguyễn Văn A", GovernmentID: "079123456789"}
	require.NoError(t, e.store.Tenants.Create(tenant))

	lease := &models.Lease{
		TenantID:    tenant.ID,
		RoomID:      room.ID,
		StartDate:   date("2026-01-01"),
		EndDate:     date("2027-01-01"),
		MonthlyRent: monthlyRent,
		DueDay:      5,
		Status:      constants.LeaseStatusActive,
	}
	require.NoError(t, e.store.Leases.Create(lease))
	return lease
}

func TestAmendRollsBackRentWhenAuditInsertFails(t *testing.T) {
	env := newSQLTestEnv(t)
	lease := env.seedActiveLease(t, 3000, 0)

	// Làm hỏng bước ghi phụ lục
	require.NoError(t, env.db.Migrator().DropTable(&models.RentAmendment{}))

	_, err := env.leases.Amend(dto.AmendLeaseRequest{
		LeaseID:       lease.ID,
		EffectiveDate: "2030-01-01",
		OldRent:       3000,
		NewRent:       3500,
	})
	require.Error(t, err)

	// Giá mới không được sống sót khi phụ lục không ghi được
	got, err := env.store.Leases.GetByID(lease.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000, got.MonthlyRent)
	assert.Equal(t, constants.LeaseStatusActive, got.Status)
}

func TestTerminateRollsBackStatusWhenFinalBillingFails(t *testing.T) {
	env := newSQLTestEnv(t)
	lease := env.seedActiveLease(t, 3000, 0)

	// Làm hỏng bước chốt tiền tháng cuối
	require.NoError(t, env.db.Migrator().DropTable(&models.Transaction{}))

	_, err := env.leases.Terminate(dto.TerminateLeaseRequest{
		LeaseID:         lease.ID,
		TerminationDate: "2026-06-10",
		Reason:          "Khách trả phòng sớm",
	})
	require.Error(t, err)

	got, err := env.store.Leases.GetByID(lease.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LeaseStatusActive, got.Status)
	assert.Nil(t, got.TerminatedAt)
	assert.True(t, got.EndDate.Equal(date("2027-01-01")))
}

func TestMeterReadingRollsBackWhenBillingInsertFails(t *testing.T) {
	env := newSQLTestEnv(t)
	lease := env.seedActiveLease(t, 3000, 1000)

	require.NoError(t, env.db.Migrator().DropTable(&models.Transaction{}))

	_, err := env.billing.RecordMeterReading(dto.MeterReadingRequest{
		RoomID:      lease.RoomID,
		NewReading:  1250,
		ReadingDate: "2026-07-01",
	})
	require.Error(t, err)

	// Chỉ số phòng không được nhích khi khoản tiền điện không ghi được
	room, err := env.store.Rooms.GetByID(lease.RoomID)
	require.NoError(t, err)
	assert.Equal(t, 1000, room.LastMeterReading)
}
