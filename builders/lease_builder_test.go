package builders

import (
	"testing"
	"time"

	"qlnt/constants"
	"qlnt/models"

	"github.com/stretchr/testify/assert"
)

func TestFromLeaseCopiesTermsAsDraft(t *testing.T) {
	plate := "59A-123.45"
	src := &models.Lease{
		ID:               7,
		TenantID:         1,
		RoomID:           2,
		MonthlyRent:      3000,
		Deposit:          3000,
		PaymentFrequency: constants.FrequencyQuarterly,
		DueDay:           5,
		VehiclePlate:     &plate,
		Status:           constants.LeaseStatusActive,
	}

	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	renewal := FromLease(src).WithPeriod(start, end).Build()

	assert.Zero(t, renewal.ID)
	assert.Equal(t, constants.LeaseStatusDraft, renewal.Status)
	assert.Equal(t, src.TenantID, renewal.TenantID)
	assert.Equal(t, src.RoomID, renewal.RoomID)
	assert.Equal(t, src.MonthlyRent, renewal.MonthlyRent)
	assert.Equal(t, src.Deposit, renewal.Deposit)
	assert.Equal(t, src.PaymentFrequency, renewal.PaymentFrequency)
	assert.Equal(t, src.DueDay, renewal.DueDay)
	assert.Equal(t, src.VehiclePlate, renewal.VehiclePlate)
	assert.Equal(t, start, renewal.StartDate)
	assert.Equal(t, end, renewal.EndDate)
}

func TestBuilderOverrides(t *testing.T) {
	src := &models.Lease{
		TenantID:    1,
		RoomID:      2,
		MonthlyRent: 3000,
		Deposit:     3000,
		DueDay:      5,
		Status:      constants.LeaseStatusActive,
	}

	rent := 3300
	dueDay := 10
	frequency := constants.FrequencySemiAnnual
	plate := "59B-678.90"
	renewal := FromLease(src).
		WithRent(&rent).
		WithDueDay(&dueDay).
		WithFrequency(&frequency).
		WithVehiclePlate(&plate).
		Build()

	assert.Equal(t, 3300, renewal.MonthlyRent)
	assert.Equal(t, 10, renewal.DueDay)
	assert.Equal(t, constants.FrequencySemiAnnual, renewal.PaymentFrequency)
	assert.Equal(t, &plate, renewal.VehiclePlate)
	// Trường không ghi đè giữ nguyên
	assert.Equal(t, 3000, renewal.Deposit)
}

func TestBuilderNilOverridesKeepOriginal(t *testing.T) {
	src := &models.Lease{MonthlyRent: 3000, Deposit: 2500, DueDay: 5}

	renewal := FromLease(src).
		WithRent(nil).
		WithDeposit(nil).
		WithDueDay(nil).
		WithFrequency(nil).
		WithVehiclePlate(nil).
		Build()

	assert.Equal(t, 3000, renewal.MonthlyRent)
	assert.Equal(t, 2500, renewal.Deposit)
	assert.Equal(t, 5, renewal.DueDay)
	assert.Nil(t, renewal.VehiclePlate)
}
