package dto

import "time"

// ContractLandlord là thông tin bên cho thuê in trên hợp đồng
type ContractLandlord struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// ContractTenant là thông tin bên thuê in trên hợp đồng
type ContractTenant struct {
	FullName     string `json:"fullName"`
	GovernmentID string `json:"governmentId"`
	PhoneNumber  string `json:"phoneNumber"`
	HomeAddress  string `json:"homeAddress"`
}

// ContractRoom là thông tin phòng in trên hợp đồng
type ContractRoom struct {
	Code           string `json:"code"`
	Floor          int    `json:"floor"`
	Acreage        int    `json:"acreage"`
	BuildingNumber string `json:"buildingNumber"`
	Address        string `json:"address"`
}

// ContractTerms là các điều khoản chính của hợp đồng
type ContractTerms struct {
	StartDate        time.Time           `json:"startDate"`
	EndDate          time.Time           `json:"endDate"`
	MonthlyRent      int                 `json:"monthlyRent"`
	Deposit          int                 `json:"deposit"`
	PaymentFrequency int                 `json:"paymentFrequency"`
	DueDay           int                 `json:"dueDay"`
	VehiclePlate     string              `json:"vehiclePlate,omitempty"`
	Assets           []LeaseAssetRequest `json:"assets,omitempty"`
}

// ContractProjection là toàn bộ dữ liệu đã resolve sẵn để bên tạo file
// PDF dựng hợp đồng; phần trình bày nằm ngoài hệ thống này
type ContractProjection struct {
	DocumentCode string           `json:"documentCode"` // Mã phiếu in, sinh mỗi lần xuất
	GeneratedAt  time.Time        `json:"generatedAt"`
	Landlord     ContractLandlord `json:"landlord"`
	Tenant       ContractTenant   `json:"tenant"`
	Room         ContractRoom     `json:"room"`
	Terms        ContractTerms    `json:"terms"`
}
