package models

import "time"

// RentAmendment là phụ lục điều chỉnh giá thuê của một hợp đồng đang
// hiệu lực, giữ lại làm lịch sử thay đổi. Hợp đồng gốc không đổi định danh.
type RentAmendment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	LeaseID       uint      `json:"leaseId"`
	EffectiveDate time.Time `json:"effectiveDate"` // Ngày áp dụng giá mới, phải ở tương lai
	OldRent       int       `json:"oldRent"`
	NewRent       int       `json:"newRent"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
