package validator

import (
	"qlnt/constants"
	"qlnt/dto"
	"qlnt/errors"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// ValidateStruct chạy các rule khai báo trong tag validate của request
func ValidateStruct(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ: "+err.Error(), err)
	}
	return nil
}

// ValidateCreateLease kiểm tra request tạo hợp đồng
func ValidateCreateLease(req dto.CreateLeaseRequest) error {
	if err := ValidateStruct(req); err != nil {
		return err
	}
	if req.Status != constants.LeaseStatusDraft && req.Status != constants.LeaseStatusActive {
		return errors.NewValidationError("Hợp đồng mới chỉ được tạo ở trạng thái draft hoặc active")
	}
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày bắt đầu không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày kết thúc không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}
	if !end.After(start) {
		return errors.NewValidationError("Ngày kết thúc phải sau ngày bắt đầu")
	}
	return nil
}

// ValidateAmendLease kiểm tra request phụ lục điều chỉnh giá
func ValidateAmendLease(req dto.AmendLeaseRequest) error {
	if err := ValidateStruct(req); err != nil {
		return err
	}
	if req.OldRent <= 0 || req.NewRent <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá thuê phải là số dương", nil)
	}
	if _, err := dto.ParseDate(req.EffectiveDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày áp dụng không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}
	return nil
}

// ValidateCreateTenant kiểm tra request tạo khách thuê
func ValidateCreateTenant(req dto.CreateTenantRequest) error {
	if err := ValidateStruct(req); err != nil {
		return err
	}
	if req.GovernmentID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số CCCD không được để trống", nil)
	}
	return nil
}

// ValidateCreateRate kiểm tra request tạo giá điện
func ValidateCreateRate(req dto.CreateRateRequest) error {
	if err := ValidateStruct(req); err != nil {
		return err
	}
	if _, err := dto.ParseDate(req.EffectiveDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày hiệu lực không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}
	return nil
}
