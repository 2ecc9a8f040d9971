package dto

// LeaseAssetRequest là một mục tài sản bàn giao kèm phòng
type LeaseAssetRequest struct {
	Type     string `json:"type" validate:"required,max=50"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// CreateLeaseRequest là request tạo hợp đồng. Status chỉ nhận draft
// (soạn trên UI) hoặc active (nhập hợp đồng giấy đã ký từ trước).
type CreateLeaseRequest struct {
	TenantID         uint                `json:"tenantId" validate:"required"`
	RoomID           uint                `json:"roomId" validate:"required"`
	StartDate        string              `json:"startDate" validate:"required"`
	EndDate          string              `json:"endDate" validate:"required"`
	MonthlyRent      int                 `json:"monthlyRent" validate:"gt=0"`
	Deposit          int                 `json:"deposit" validate:"gte=0"`
	PaymentFrequency int                 `json:"paymentFrequency" validate:"gte=0,lte=3"`
	DueDay           int                 `json:"dueDay" validate:"gte=1,lte=28"`
	Status           int                 `json:"status"`
	VehiclePlate     *string             `json:"vehiclePlate,omitempty" validate:"omitempty,max=20"`
	Assets           []LeaseAssetRequest `json:"assets,omitempty" validate:"dive"`
}

// AmendLeaseRequest là request làm phụ lục điều chỉnh giá thuê
type AmendLeaseRequest struct {
	LeaseID       uint   `json:"leaseId" validate:"required"`
	EffectiveDate string `json:"effectiveDate" validate:"required"`
	OldRent       int    `json:"oldRent" validate:"gt=0"`
	NewRent       int    `json:"newRent" validate:"gt=0"`
	Reason        string `json:"reason"`
}

// RenewLeaseRequest là request gia hạn: tạo hợp đồng mới, trường nào
// không truyền thì giữ nguyên điều khoản của hợp đồng cũ
type RenewLeaseRequest struct {
	LeaseID         uint    `json:"leaseId" validate:"required"`
	NewEndDate      string  `json:"newEndDate" validate:"required"`
	NewStartDate    string  `json:"newStartDate,omitempty"`
	NewRent         *int    `json:"newRent,omitempty" validate:"omitempty,gt=0"`
	NewDeposit      *int    `json:"newDeposit,omitempty" validate:"omitempty,gte=0"`
	NewDueDay       *int    `json:"newDueDay,omitempty" validate:"omitempty,gte=1,lte=28"`
	NewFrequency    *int    `json:"newFrequency,omitempty" validate:"omitempty,gte=0,lte=3"`
	NewVehiclePlate *string `json:"newVehiclePlate,omitempty" validate:"omitempty,max=20"`
}

// TerminateLeaseRequest là request chấm dứt hợp đồng trước hạn.
// Nếu có chỉ số điện chốt thì phát sinh luôn khoản tiền điện cuối.
type TerminateLeaseRequest struct {
	LeaseID           uint   `json:"leaseId" validate:"required"`
	TerminationDate   string `json:"terminationDate" validate:"required"`
	Reason            string `json:"reason" validate:"required"`
	MeterReadingDate  string `json:"meterReadingDate,omitempty"`
	FinalMeterReading *int   `json:"finalMeterReading,omitempty" validate:"omitempty,gte=0"`
}
