package controllers

import (
	"qlnt/dto"
	"qlnt/errors"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/response"
	"qlnt/validator"

	"github.com/gin-gonic/gin"
)

type TenantController struct {
	store *repository.Store
}

func NewTenantController(store *repository.Store) *TenantController {
	return &TenantController{store: store}
}

func (ctl *TenantController) GetAllTenants(c *gin.Context) {
	page, limit := parsePagination(c)
	tenants, total, err := ctl.store.Tenants.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithPagination(c, tenants, page, limit, total)
}

func (ctl *TenantController) GetTenantDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	tenant, err := ctl.store.Tenants.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tenant)
}

func (ctl *TenantController) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateCreateTenant(req); err != nil {
		respondError(c, err)
		return
	}
	// Số CCCD là duy nhất trên toàn hệ thống
	if _, err := ctl.store.Tenants.GetByGovernmentID(req.GovernmentID); err == nil {
		response.Conflict(c, "Số CCCD đã tồn tại")
		return
	}

	contacts := make([]models.EmergencyContact, 0, len(req.EmergencyContacts))
	for _, ec := range req.EmergencyContacts {
		contacts = append(contacts, models.EmergencyContact{
			Name:         ec.Name,
			PhoneNumber:  ec.PhoneNumber,
			Relationship: ec.Relationship,
		})
	}

	tenant := &models.Tenant{
		FullName:          req.FullName,
		GovernmentID:      req.GovernmentID,
		PhoneNumber:       req.PhoneNumber,
		Email:             req.Email,
		HomeAddress:       req.HomeAddress,
		EmergencyContacts: contacts,
	}
	if err := ctl.store.Tenants.Create(tenant); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tenant)
}

func (ctl *TenantController) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondError(c, err)
		return
	}

	tenant, err := ctl.store.Tenants.Update(req.ID, repository.TenantPatch{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		HomeAddress: req.HomeAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tenant)
}

// DeleteTenant xóa khách thuê kèm toàn bộ người liên hệ khẩn cấp
func (ctl *TenantController) DeleteTenant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if _, err := ctl.store.Tenants.GetByID(id); err != nil {
		respondError(c, errors.NewNotFoundError("Không tìm thấy khách thuê"))
		return
	}
	if err := ctl.store.Tenants.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
