package models

import "time"

// Room là một phòng trọ. Tình trạng phòng (đang thuê/trống) KHÔNG lưu
// trong bảng này mà luôn suy ra từ hợp đồng đang hiệu lực, tránh lệch
// dữ liệu giữa hai nguồn.
type Room struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BuildingID       uint      `json:"buildingId"`
	Floor            int       `json:"floor"`
	Code             string    `json:"code" gorm:"size:20"` // Mã phòng, ví dụ "P101"
	Acreage          int       `json:"acreage"`             // Diện tích m2
	LastMeterReading int       `json:"lastMeterReading"`    // Chỉ số điện gần nhất, chỉ tăng khi ghi điện
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Building         Building  `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
}
