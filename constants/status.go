package constants

// Lease status
const (
	LeaseStatusDraft      = 0
	LeaseStatusPending    = 1
	LeaseStatusActive     = 2
	LeaseStatusTerminated = 3
	LeaseStatusExpired    = 4
)

// Transaction status
const (
	TransactionStatusPending = 0
	TransactionStatusPaid    = 1
	TransactionStatusOverdue = 2
)

// Transaction category
const (
	CategoryRent          = 0
	CategoryElectricity   = 1
	CategoryFee           = 2
	CategoryDeposit       = 3
	CategoryMachineIncome = 4
)

// Payment frequency
const (
	FrequencyMonthly    = 0
	FrequencyQuarterly  = 1
	FrequencySemiAnnual = 2
	FrequencyAnnual     = 3
)

// Payment method
const (
	MethodCash         = 0
	MethodBankTransfer = 1
	MethodMomo         = 2
)

// Billing defaults
const (
	// Giá điện mặc định khi chưa cấu hình bảng giá nào
	DefaultElectricityRate = 5.0
	// Số ngày quy ước của một tháng khi tính tiền phòng lẻ ngày
	ProrationDays = 30
	// Cửa sổ mặc định cho thống kê hợp đồng sắp hết hạn
	ExpiringSoonDays = 60
)

// LeaseStatusName trả về tên trạng thái hợp đồng để hiển thị trong thông báo lỗi
func LeaseStatusName(status int) string {
	switch status {
	case LeaseStatusDraft:
		return "draft"
	case LeaseStatusPending:
		return "pending"
	case LeaseStatusActive:
		return "active"
	case LeaseStatusTerminated:
		return "terminated"
	case LeaseStatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}
