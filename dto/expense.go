package dto

// CreateExpenseRequest là request ghi một khoản chi
type CreateExpenseRequest struct {
	Category      string  `json:"category" validate:"required,max=50"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	Date          string  `json:"date" validate:"required"`
	Description   string  `json:"description"`
	AttachmentRef string  `json:"attachmentRef,omitempty"`
	BuildingID    *uint   `json:"buildingId,omitempty"`
	RoomID        *uint   `json:"roomId,omitempty"`
}
