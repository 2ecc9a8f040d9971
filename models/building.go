package models

import "time"

// Building là dãy/tòa nhà trọ, không chỉnh sửa sau khi tạo
type Building struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	BuildingNumber string    `json:"buildingNumber" gorm:"unique;size:20"` // Số dãy, ví dụ "D1"
	Address        string    `json:"address"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Rooms          []Room    `json:"rooms,omitempty" gorm:"foreignKey:BuildingID"`
}
