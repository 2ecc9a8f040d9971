package models

import "time"

// Tenant là khách thuê. Khách có thể chưa thuê phòng nào hoặc có nhiều
// hợp đồng cũ đã chấm dứt cùng tối đa một hợp đồng đang hiệu lực.
type Tenant struct {
	ID                uint               `json:"id" gorm:"primaryKey"`
	FullName          string             `json:"fullName" gorm:"size:100"`
	GovernmentID      string             `json:"governmentId" gorm:"unique;size:20"` // Số CCCD
	PhoneNumber       string             `json:"phoneNumber" gorm:"size:20"`
	Email             string             `json:"email" gorm:"size:100"`
	HomeAddress       string             `json:"homeAddress"` // Địa chỉ thường trú
	CreatedAt         time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// EmergencyContact là người liên hệ khẩn cấp của khách thuê,
// xóa khách thuê thì xóa theo
type EmergencyContact struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	TenantID     uint   `json:"tenantId"`
	Name         string `json:"name" gorm:"size:100"`
	PhoneNumber  string `json:"phoneNumber" gorm:"size:20"`
	Relationship string `json:"relationship" gorm:"size:50"` // Quan hệ với khách thuê
}
