package models

import "time"

// ElectricityRate là giá điện theo ngày hiệu lực. RoomID nil nghĩa là
// giá chung cho mọi phòng; giá riêng của phòng thắng giá chung khi tra cứu.
type ElectricityRate struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RoomID        *uint     `json:"roomId,omitempty"` // nil = áp dụng mọi phòng
	EffectiveDate time.Time `json:"effectiveDate"`
	PricePerUnit  float64   `json:"pricePerUnit"` // Đơn giá mỗi kWh
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
