package dto

// CreateRateRequest là request tạo giá điện mới. RoomID nil là giá chung.
type CreateRateRequest struct {
	RoomID        *uint   `json:"roomId,omitempty"`
	EffectiveDate string  `json:"effectiveDate" validate:"required"`
	PricePerUnit  float64 `json:"pricePerUnit" validate:"gt=0"`
}
