package services

import (
	"os"
	"time"

	"qlnt/dto"
	"qlnt/errors"
	"qlnt/repository"

	"github.com/google/uuid"
)

// ContractService dựng dữ liệu hợp đồng đã resolve đầy đủ cho bên tạo
// file PDF. Hệ thống này chỉ cung cấp dữ liệu, không đụng tới trình bày.
type ContractService struct {
	store *repository.Store
}

type ContractServiceOptions struct {
	Store *repository.Store
}

func NewContractService(opts ContractServiceOptions) *ContractService {
	return &ContractService{store: opts.Store}
}

// BuildProjection gom thông tin khách thuê, phòng, dãy và điều khoản
// của một hợp đồng thành một bản chiếu duy nhất kèm mã phiếu in
func (s *ContractService) BuildProjection(leaseID uint) (*dto.ContractProjection, error) {
	lease, err := s.store.Leases.GetByID(leaseID)
	if err != nil {
		return nil, errors.NewNotFoundError("Không tìm thấy hợp đồng")
	}
	tenant, err := s.store.Tenants.GetByID(lease.TenantID)
	if err != nil {
		return nil, errors.NewNotFoundError("Không tìm thấy khách thuê của hợp đồng")
	}
	room, err := s.store.Rooms.GetByID(lease.RoomID)
	if err != nil {
		return nil, errors.NewNotFoundError("Không tìm thấy phòng của hợp đồng")
	}
	building, err := s.store.Buildings.GetByID(room.BuildingID)
	if err != nil {
		return nil, errors.NewNotFoundError("Không tìm thấy dãy trọ của phòng")
	}

	var assets []dto.LeaseAssetRequest
	parsed, err := lease.ParseAssets()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Danh sách tài sản của hợp đồng bị hỏng", err)
	}
	for _, a := range parsed {
		assets = append(assets, dto.LeaseAssetRequest{Type: a.Type, Quantity: a.Quantity})
	}

	plate := ""
	if lease.VehiclePlate != nil {
		plate = *lease.VehiclePlate
	}

	return &dto.ContractProjection{
		DocumentCode: uuid.NewString(),
		GeneratedAt:  time.Now(),
		Landlord: dto.ContractLandlord{
			Name:        os.Getenv("LANDLORD_NAME"),
			PhoneNumber: os.Getenv("LANDLORD_PHONE"),
			Address:     os.Getenv("LANDLORD_ADDRESS"),
		},
		Tenant: dto.ContractTenant{
			FullName:     tenant.FullName,
			GovernmentID: tenant.GovernmentID,
			PhoneNumber:  tenant.PhoneNumber,
			HomeAddress:  tenant.HomeAddress,
		},
		Room: dto.ContractRoom{
			Code:           room.Code,
			Floor:          room.Floor,
			Acreage:        room.Acreage,
			BuildingNumber: building.BuildingNumber,
			Address:        building.Address,
		},
		Terms: dto.ContractTerms{
			StartDate:        lease.StartDate,
			EndDate:          lease.EndDate,
			MonthlyRent:      lease.MonthlyRent,
			Deposit:          lease.Deposit,
			PaymentFrequency: lease.PaymentFrequency,
			DueDay:           lease.DueDay,
			VehiclePlate:     plate,
			Assets:           assets,
		},
	}, nil
}
