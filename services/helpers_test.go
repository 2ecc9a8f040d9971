package services

import (
	"time"

	"qlnt/constants"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/services/logger"
)

// testEnv gom store trong bộ nhớ và các service đã nối sẵn cho test
type testEnv struct {
	store     *repository.Store
	rates     *RateService
	billing   *BillingService
	leases    *LeaseService
	dashboard *DashboardService
}

func newTestEnv() *testEnv {
	store := repository.NewMemoryStore()
	log := logger.NewDefaultLogger(logger.ErrorLevel)
	rates := NewRateService(RateServiceOptions{Store: store, Logger: log})
	billing := NewBillingService(BillingServiceOptions{Store: store, Rates: rates, Logger: log})
	leases := NewLeaseService(LeaseServiceOptions{Store: store, Billing: billing, Logger: log})
	dashboard := NewDashboardService(DashboardServiceOptions{Store: store, Logger: log})
	return &testEnv{
		store:     store,
		rates:     rates,
		billing:   billing,
		leases:    leases,
		dashboard: dashboard,
	}
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func (e *testEnv) seedRoom(code string, lastMeterReading int) *models.Room {
	building := &models.Building{BuildingNumber: "D1-" + code, Address: "12 Nguyễn Trãi"}
	if err := e.store.Buildings.Create(building); err != nil {
		panic(err)
	}
	room := &models.Room{
		BuildingID:       building.ID,
		Floor:            1,
		Code:             code,
		Acreage:          20,
		LastMeterReading: lastMeterReading,
	}
	if err := e.store.Rooms.Create(room); err != nil {
		panic(err)
	}
	return room
}

func (e *testEnv) seedTenant(fullName, governmentID string) *models.Tenant {
	tenant := &models.Tenant{
		FullName:     fullName,
		GovernmentID: governmentID,
		PhoneNumber:  "0901234567",
	}
	if err := e.store.Tenants.Create(tenant); err != nil {
		panic(err)
	}
	return tenant
}

func (e *testEnv) seedLease(tenantID, roomID uint, start, end string, monthlyRent, status int) *models.Lease {
	lease := &models.Lease{
		TenantID:    tenantID,
		RoomID:      roomID,
		StartDate:   date(start),
		EndDate:     date(end),
		MonthlyRent: monthlyRent,
		Deposit:     monthlyRent,
		DueDay:      5,
		Status:      status,
	}
	if err := e.store.Leases.Create(lease); err != nil {
		panic(err)
	}
	return lease
}

func (e *testEnv) seedGlobalRate(effectiveDate string, price float64) *models.ElectricityRate {
	rate := &models.ElectricityRate{EffectiveDate: date(effectiveDate), PricePerUnit: price}
	if err := e.store.Rates.Create(rate); err != nil {
		panic(err)
	}
	return rate
}

func (e *testEnv) seedRoomRate(roomID uint, effectiveDate string, price float64) *models.ElectricityRate {
	rate := &models.ElectricityRate{RoomID: &roomID, EffectiveDate: date(effectiveDate), PricePerUnit: price}
	if err := e.store.Rates.Create(rate); err != nil {
		panic(err)
	}
	return rate
}

func (e *testEnv) seedPaidTransaction(category int, amount float64, paidAt time.Time) *models.Transaction {
	method := constants.MethodCash
	tx := &models.Transaction{
		Category: category,
		Amount:   amount,
		DueDate:  paidAt,
		Status:   constants.TransactionStatusPaid,
		Method:   &method,
		PaidAt:   &paidAt,
	}
	if err := e.store.Transactions.Create(tx); err != nil {
		panic(err)
	}
	return tx
}
