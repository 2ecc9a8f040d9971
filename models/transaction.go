package models

import "time"

// Transaction là một khoản thu/phải thu trong sổ thu chi. Sổ chỉ ghi
// thêm, không sửa nội dung; chỉ có hai thao tác điểm là gạch nợ (đánh
// dấu đã thu) và xóa để sửa sai nhập tay.
type Transaction struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	RoomID      *uint      `json:"roomId,omitempty"`
	LeaseID     *uint      `json:"leaseId,omitempty"`
	TenantName  string     `json:"tenantName" gorm:"size:100"` // Lưu thẳng tên để in phiếu, không join
	Category    int        `json:"category"`
	Amount      float64    `json:"amount"`
	DueDate     time.Time  `json:"dueDate"`
	Status      int        `json:"status" gorm:"default:0"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	Method      *int       `json:"method,omitempty"` // 0: tiền mặt, 1: chuyển khoản, 2: momo
	PeriodStart *time.Time `json:"periodStart,omitempty"`
	PeriodEnd   *time.Time `json:"periodEnd,omitempty"`
	MeterStart  *int       `json:"meterStart,omitempty"` // Chỉ số điện đầu kỳ
	MeterEnd    *int       `json:"meterEnd,omitempty"`   // Chỉ số điện cuối kỳ
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
