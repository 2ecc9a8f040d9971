package models

import (
	"encoding/json"
	"time"

	"qlnt/constants"
)

// Lease là hợp đồng thuê phòng, gắn một khách thuê với một phòng trong
// một khoảng thời gian. Mỗi phòng chỉ có tối đa một hợp đồng đang hiệu lực.
type Lease struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	TenantID          uint            `json:"tenantId"`
	RoomID            uint            `json:"roomId"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           time.Time       `json:"endDate"`
	MonthlyRent       int             `json:"monthlyRent"` // Tiền phòng mỗi tháng
	Deposit           int             `json:"deposit"`     // Tiền cọc
	PaymentFrequency  int             `json:"paymentFrequency"`
	DueDay            int             `json:"dueDay"` // Ngày đến hạn thanh toán trong tháng
	Status            int             `json:"status" gorm:"default:0"`
	VehiclePlate      *string         `json:"vehiclePlate,omitempty" gorm:"size:20"` // Biển số xe gửi kèm
	Assets            json.RawMessage `json:"assets,omitempty" gorm:"type:json"`    // Tài sản bàn giao kèm phòng
	SubmittedAt       *time.Time      `json:"submittedAt,omitempty"`
	TerminatedAt      *time.Time      `json:"terminatedAt,omitempty"`      // Ngày chấm dứt trước hạn
	TerminationReason string          `json:"terminationReason,omitempty"` // Lý do chấm dứt
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Tenant            Tenant          `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Room              Room            `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// LeaseAsset là một mục tài sản bàn giao, lưu dạng json trong Lease.Assets
type LeaseAsset struct {
	Type     string `json:"type"` // Loại tài sản, ví dụ "giường", "điều hòa"
	Quantity int    `json:"quantity"`
}

// EffectiveStatus trả về trạng thái tại thời điểm now: hợp đồng active
// đã qua ngày kết thúc được coi là expired khi đọc, không ghi xuống DB
func (l *Lease) EffectiveStatus(now time.Time) int {
	if l.Status == constants.LeaseStatusActive && l.EndDate.Before(truncateDay(now)) {
		return constants.LeaseStatusExpired
	}
	return l.Status
}

// IsActive cho biết hợp đồng còn hiệu lực tại thời điểm now
func (l *Lease) IsActive(now time.Time) bool {
	return l.EffectiveStatus(now) == constants.LeaseStatusActive
}

// ParseAssets giải mã danh sách tài sản bàn giao
func (l *Lease) ParseAssets() ([]LeaseAsset, error) {
	if len(l.Assets) == 0 {
		return nil, nil
	}
	var assets []LeaseAsset
	if err := json.Unmarshal(l.Assets, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
