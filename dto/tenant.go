package dto

// EmergencyContactRequest là một người liên hệ khẩn cấp trong request
type EmergencyContactRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,max=20"`
	Relationship string `json:"relationship" validate:"max=50"`
}

// CreateTenantRequest là request tạo khách thuê mới
type CreateTenantRequest struct {
	FullName          string                    `json:"fullName" validate:"required,max=100"`
	GovernmentID      string                    `json:"governmentId" validate:"required,max=20"`
	PhoneNumber       string                    `json:"phoneNumber" validate:"required,max=20"`
	Email             string                    `json:"email" validate:"omitempty,email"`
	HomeAddress       string                    `json:"homeAddress"`
	EmergencyContacts []EmergencyContactRequest `json:"emergencyContacts,omitempty" validate:"dive"`
}

// UpdateTenantRequest liệt kê tường minh các trường được phép sửa
type UpdateTenantRequest struct {
	ID          uint    `json:"id" validate:"required"`
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	HomeAddress *string `json:"homeAddress,omitempty"`
}
