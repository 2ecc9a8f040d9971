package dto

// CreateRoomRequest là request tạo phòng mới
type CreateRoomRequest struct {
	BuildingID uint   `json:"buildingId" validate:"required"`
	Floor      int    `json:"floor"`
	Code       string `json:"code" validate:"required,max=20"`
	Acreage    int    `json:"acreage" validate:"gte=0"`
}

// UpdateRoomRequest liệt kê tường minh các trường được phép sửa,
// không nhận partial object tùy ý
type UpdateRoomRequest struct {
	ID      uint    `json:"id" validate:"required"`
	Floor   *int    `json:"floor,omitempty"`
	Code    *string `json:"code,omitempty" validate:"omitempty,max=20"`
	Acreage *int    `json:"acreage,omitempty" validate:"omitempty,gte=0"`
}

// RoomResponse là phòng kèm tình trạng suy ra từ hợp đồng
type RoomResponse struct {
	ID               uint   `json:"id"`
	BuildingID       uint   `json:"buildingId"`
	Floor            int    `json:"floor"`
	Code             string `json:"code"`
	Acreage          int    `json:"acreage"`
	LastMeterReading int    `json:"lastMeterReading"`
	Occupied         bool   `json:"occupied"` // Suy ra từ hợp đồng đang hiệu lực
	ActiveLeaseID    *uint  `json:"activeLeaseId,omitempty"`
}
