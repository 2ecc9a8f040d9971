package models

import "time"

// Expense là khoản chi vận hành, độc lập với hợp đồng; có thể gắn
// vào dãy/phòng để phân bổ chi phí
type Expense struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Category      string    `json:"category" gorm:"size:50"` // Loại chi: sửa chữa, nước, internet...
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	AttachmentRef string    `json:"attachmentRef,omitempty"` // Mã chứng từ đính kèm, nếu có
	BuildingID    *uint     `json:"buildingId,omitempty"`
	RoomID        *uint     `json:"roomId,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
