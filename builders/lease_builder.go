package builders

import (
	"time"

	"qlnt/constants"
	"qlnt/models"
)

// LeaseBuilder dựng hợp đồng gia hạn từ hợp đồng gốc: trường nào không
// ghi đè thì giữ nguyên điều khoản cũ
type LeaseBuilder struct {
	lease models.Lease
}

// FromLease khởi tạo builder với các điều khoản chép từ hợp đồng gốc.
// Hợp đồng mới luôn bắt đầu ở trạng thái draft, việc kích hoạt đi qua
// luồng chuyển trạng thái bình thường.
func FromLease(src *models.Lease) *LeaseBuilder {
	return &LeaseBuilder{
		lease: models.Lease{
			TenantID:         src.TenantID,
			RoomID:           src.RoomID,
			MonthlyRent:      src.MonthlyRent,
			Deposit:          src.Deposit,
			PaymentFrequency: src.PaymentFrequency,
			DueDay:           src.DueDay,
			VehiclePlate:     src.VehiclePlate,
			Assets:           src.Assets,
			Status:           constants.LeaseStatusDraft,
		},
	}
}

// WithPeriod đặt khoảng thời gian của hợp đồng mới
func (b *LeaseBuilder) WithPeriod(start, end time.Time) *LeaseBuilder {
	b.lease.StartDate = start
	b.lease.EndDate = end
	return b
}

// WithRent ghi đè giá thuê nếu có
func (b *LeaseBuilder) WithRent(rent *int) *LeaseBuilder {
	if rent != nil {
		b.lease.MonthlyRent = *rent
	}
	return b
}

// WithDeposit ghi đè tiền cọc nếu có
func (b *LeaseBuilder) WithDeposit(deposit *int) *LeaseBuilder {
	if deposit != nil {
		b.lease.Deposit = *deposit
	}
	return b
}

// WithDueDay ghi đè ngày đến hạn nếu có
func (b *LeaseBuilder) WithDueDay(dueDay *int) *LeaseBuilder {
	if dueDay != nil {
		b.lease.DueDay = *dueDay
	}
	return b
}

// WithFrequency ghi đè kỳ thanh toán nếu có
func (b *LeaseBuilder) WithFrequency(frequency *int) *LeaseBuilder {
	if frequency != nil {
		b.lease.PaymentFrequency = *frequency
	}
	return b
}

// WithVehiclePlate ghi đè biển số xe nếu có
func (b *LeaseBuilder) WithVehiclePlate(plate *string) *LeaseBuilder {
	if plate != nil {
		b.lease.VehiclePlate = plate
	}
	return b
}

// Build trả về hợp đồng đã dựng
func (b *LeaseBuilder) Build() *models.Lease {
	lease := b.lease
	return &lease
}
