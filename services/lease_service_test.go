package services

import (
	"fmt"
	"testing"

	"qlnt/constants"
	"qlnt/dto"
	"qlnt/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaseDraft(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")

	lease, err := env.leases.Create(dto.CreateLeaseRequest{
		TenantID:    tenant.ID,
		RoomID:      room.ID,
		StartDate:   "2025-07-01",
		EndDate:     "2026-07-01",
		MonthlyRent: 3000,
		Deposit:     3000,
		DueDay:      5,
		Status:      constants.LeaseStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.LeaseStatusDraft, lease.Status)
	assert.Nil(t, lease.SubmittedAt)

	// Draft không chiếm phòng
	active, err := env.leases.ActiveLeaseForRoom(room.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestCreateLeaseRejectsBadInput(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")

	base := dto.CreateLeaseRequest{
		TenantID:    tenant.ID,
		RoomID:      room.ID,
		StartDate:   "2025-07-01",
		EndDate:     "2026-07-01",
		MonthlyRent: 3000,
		DueDay:      5,
		Status:      constants.LeaseStatusDraft,
	}

	req := base
	req.Status = constants.LeaseStatusPending // chỉ được tạo draft hoặc active
	_, err := env.leases.Create(req)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	req = base
	req.EndDate = "2025-07-01" // kết thúc phải sau bắt đầu
	_, err = env.leases.Create(req)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	req = base
	req.DueDay = 31 // ngày đến hạn tối đa 28 để tháng nào cũng có
	_, err = env.leases.Create(req)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))

	req = base
	req.TenantID = 999
	_, err = env.leases.Create(req)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestCreateActiveLeaseIntoOccupiedRoomRejected(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	first := env.seedTenant("Nguyễn Văn A", "079123456789")
	second := env.seedTenant("Trần Thị B", "079987654321")
	env.seedLease(first.ID, room.ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusActive)

	_, err := env.leases.Create(dto.CreateLeaseRequest{
		TenantID:    second.ID,
		RoomID:      room.ID,
		StartDate:   "2025-07-01",
		EndDate:     "2026-07-01",
		MonthlyRent: 3200,
		DueDay:      5,
		Status:      constants.LeaseStatusActive,
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict))
}

func TestSubmitLeaseOnlyOnce(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-07-01", "2026-07-01", 3000, constants.LeaseStatusDraft)

	submitted, err := env.leases.Submit(lease.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LeaseStatusPending, submitted.Status)
	assert.NotNil(t, submitted.SubmittedAt)

	// Nộp lại hợp đồng đã pending phải bị từ chối
	_, err = env.leases.Submit(lease.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
}

func TestActivateLease(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-07-01", "2026-07-01", 3000, constants.LeaseStatusPending)

	activated, err := env.leases.Activate(lease.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LeaseStatusActive, activated.Status)

	active, err := env.leases.ActiveLeaseForRoom(room.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, lease.ID, active.ID)
}

func TestActivateSecondLeaseSameRoomRejected(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	first := env.seedTenant("Nguyễn Văn A", "079123456789")
	second := env.seedTenant("Trần Thị B", "079987654321")
	env.seedLease(first.ID, room.ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusActive)
	pending := env.seedLease(second.ID, room.ID, "2025-07-01", "2026-07-01", 3200, constants.LeaseStatusPending)

	_, err := env.leases.Activate(pending.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict))
}

func TestActivateBlockedByExpiredLeaseNamesIt(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	first := env.seedTenant("Nguyễn Văn A", "079123456789")
	second := env.seedTenant("Trần Thị B", "079987654321")
	// Hợp đồng cũ đã qua ngày kết thúc nhưng chưa ai bấm chấm dứt
	stale := env.seedLease(first.ID, room.ID, "2020-01-01", "2021-01-01", 3000, constants.LeaseStatusActive)
	pending := env.seedLease(second.ID, room.ID, "2099-01-01", "2100-01-01", 3200, constants.LeaseStatusPending)

	// Vẫn từ chối để giữ mỗi phòng một hợp đồng active, nhưng thông báo
	// phải chỉ thẳng hợp đồng hết hạn cần chấm dứt
	_, err := env.leases.Activate(pending.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict))
	assert.Contains(t, err.Error(), "hết hạn")
	assert.Contains(t, err.Error(), fmt.Sprintf("#%d", stale.ID))
}

func TestActivateTerminatedLeaseRejected(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusTerminated)

	_, err := env.leases.Activate(lease.ID)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
}

func TestAmendLease(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2027-01-01", 3000, constants.LeaseStatusActive)

	amendment, err := env.leases.Amend(dto.AmendLeaseRequest{
		LeaseID:       lease.ID,
		EffectiveDate: "2099-01-01",
		OldRent:       3000,
		NewRent:       3500,
		Reason:        "Điều chỉnh theo mặt bằng chung",
	})
	require.NoError(t, err)
	assert.Equal(t, 3000, amendment.OldRent)
	assert.Equal(t, 3500, amendment.NewRent)

	updated, err := env.leases.Get(lease.ID)
	require.NoError(t, err)
	assert.Equal(t, 3500, updated.MonthlyRent)

	history, err := env.leases.Amendments(lease.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, lease.ID, history[0].LeaseID)
}

func TestAmendLeaseRejectsStaleOldRent(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2027-01-01", 3000, constants.LeaseStatusActive)

	_, err := env.leases.Amend(dto.AmendLeaseRequest{
		LeaseID:       lease.ID,
		EffectiveDate: "2099-01-01",
		OldRent:       2800, // không khớp giá hiện tại
		NewRent:       3500,
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestAmendLeaseRequiresFutureEffectiveDate(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2027-01-01", 3000, constants.LeaseStatusActive)

	_, err := env.leases.Amend(dto.AmendLeaseRequest{
		LeaseID:       lease.ID,
		EffectiveDate: "2020-01-01",
		OldRent:       3000,
		NewRent:       3500,
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestAmendNonActiveLeaseRejected(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2027-01-01", 3000, constants.LeaseStatusDraft)

	_, err := env.leases.Amend(dto.AmendLeaseRequest{
		LeaseID:       lease.ID,
		EffectiveDate: "2099-01-01",
		OldRent:       3000,
		NewRent:       3500,
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
}

func TestRenewLeaseCopiesTermsAndCreatesDraft(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	src := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusActive)

	newRent := 3300
	renewal, err := env.leases.Renew(dto.RenewLeaseRequest{
		LeaseID:    src.ID,
		NewEndDate: "2027-01-01",
		NewRent:    &newRent,
	})
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, renewal.ID)
	assert.Equal(t, constants.LeaseStatusDraft, renewal.Status)
	assert.Equal(t, src.TenantID, renewal.TenantID)
	assert.Equal(t, src.RoomID, renewal.RoomID)
	// Kỳ mới nối tiếp ngay sau kỳ cũ
	assert.Equal(t, date("2026-01-02"), renewal.StartDate)
	assert.Equal(t, date("2027-01-01"), renewal.EndDate)
	// Trường ghi đè nhận giá mới, trường còn lại giữ nguyên
	assert.Equal(t, 3300, renewal.MonthlyRent)
	assert.Equal(t, src.Deposit, renewal.Deposit)
	assert.Equal(t, src.DueDay, renewal.DueDay)

	// Hợp đồng gốc không bị đụng tới
	unchanged, err := env.leases.Get(src.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LeaseStatusActive, unchanged.Status)
}

func TestRenewNonActiveLeaseRejected(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusTerminated)

	_, err := env.leases.Renew(dto.RenewLeaseRequest{
		LeaseID:    lease.ID,
		NewEndDate: "2027-01-01",
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
}

func TestTerminateActiveLeaseFinalBilling(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 1000)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2026-01-01", 14000, constants.LeaseStatusActive)
	env.seedGlobalRate("2025-01-01", 5.0)

	finalReading := 1100
	terminated, err := env.leases.Terminate(dto.TerminateLeaseRequest{
		LeaseID:           lease.ID,
		TerminationDate:   "2025-06-15",
		Reason:            "Khách chuyển công tác",
		FinalMeterReading: &finalReading,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.LeaseStatusTerminated, terminated.Status)
	assert.Equal(t, date("2025-06-15"), terminated.EndDate)
	assert.Equal(t, "Khách chuyển công tác", terminated.TerminationReason)

	// Phòng được trả về trạng thái trống
	active, err := env.leases.ActiveLeaseForRoom(room.ID)
	require.NoError(t, err)
	assert.Nil(t, active)

	// Một khoản tiền phòng lẻ ngày và đúng một khoản tiền điện cuối
	txs, err := env.store.Transactions.ListByLease(lease.ID)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	var rentAmount, elecAmount float64
	for _, tx := range txs {
		switch tx.Category {
		case constants.CategoryRent:
			rentAmount = tx.Amount
		case constants.CategoryElectricity:
			elecAmount = tx.Amount
		}
	}
	assert.Equal(t, 7000.0, rentAmount) // 14000/30 × 15
	assert.Equal(t, 500.0, elecAmount)  // 100 số × 5.0
}

func TestTerminateWithoutFinalReadingOnlyRentTx(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 1000)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusActive)

	_, err := env.leases.Terminate(dto.TerminateLeaseRequest{
		LeaseID:         lease.ID,
		TerminationDate: "2025-06-10",
		Reason:          "Thanh lý trước hạn",
	})
	require.NoError(t, err)

	txs, err := env.store.Transactions.ListByLease(lease.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, constants.CategoryRent, txs[0].Category)
	assert.Equal(t, 1000.0, txs[0].Amount) // 3000/30 × 10
}

func TestTerminatePendingLeaseNoBilling(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-07-01", "2026-07-01", 3000, constants.LeaseStatusPending)

	terminated, err := env.leases.Terminate(dto.TerminateLeaseRequest{
		LeaseID:         lease.ID,
		TerminationDate: "2025-06-20",
		Reason:          "Khách đổi ý trước khi nhận phòng",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.LeaseStatusTerminated, terminated.Status)

	// Hợp đồng chưa hiệu lực thì không chốt tiền
	txs, err := env.store.Transactions.ListByLease(lease.ID)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestTerminateTerminatedLeaseRejected(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	tenant := env.seedTenant("Nguyễn Văn A", "079123456789")
	lease := env.seedLease(tenant.ID, room.ID, "2025-01-01", "2026-01-01", 3000, constants.LeaseStatusTerminated)

	_, err := env.leases.Terminate(dto.TerminateLeaseRequest{
		LeaseID:         lease.ID,
		TerminationDate: "2025-06-20",
		Reason:          "Chấm dứt lần hai",
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
}
