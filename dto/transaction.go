package dto

// RecordTransactionRequest là request ghi một khoản thu vào sổ
type RecordTransactionRequest struct {
	RoomID      *uint   `json:"roomId,omitempty"`
	LeaseID     *uint   `json:"leaseId,omitempty"`
	TenantName  string  `json:"tenantName" validate:"max=100"`
	Category    int     `json:"category" validate:"gte=0,lte=4"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	DueDate     string  `json:"dueDate" validate:"required"`
	Status      *int    `json:"status,omitempty" validate:"omitempty,gte=0,lte=2"`
	PeriodStart string  `json:"periodStart,omitempty"`
	PeriodEnd   string  `json:"periodEnd,omitempty"`
}

// MarkPaidRequest là request gạch nợ một khoản thu
type MarkPaidRequest struct {
	TransactionID uint   `json:"transactionId" validate:"required"`
	Method        int    `json:"method" validate:"gte=0,lte=2"`
	PaidDate      string `json:"paidDate" validate:"required"`
}

// MeterReadingRequest là request ghi chỉ số điện mới cho phòng
type MeterReadingRequest struct {
	RoomID      uint   `json:"roomId" validate:"required"`
	NewReading  int    `json:"newReading" validate:"gte=0"`
	ReadingDate string `json:"readingDate" validate:"required"`
}
