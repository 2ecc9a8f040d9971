package dto

// CreateBuildingRequest là request tạo dãy trọ mới
type CreateBuildingRequest struct {
	BuildingNumber string `json:"buildingNumber" validate:"required,max=20"`
	Address        string `json:"address" validate:"required"`
}
