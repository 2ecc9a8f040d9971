package controllers

import (
	"qlnt/dto"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/response"
	"qlnt/validator"

	"github.com/gin-gonic/gin"
)

type BuildingController struct {
	store *repository.Store
}

func NewBuildingController(store *repository.Store) *BuildingController {
	return &BuildingController{store: store}
}

func (ctl *BuildingController) GetAllBuildings(c *gin.Context) {
	page, limit := parsePagination(c)
	buildings, total, err := ctl.store.Buildings.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithPagination(c, buildings, page, limit, total)
}

func (ctl *BuildingController) GetBuildingDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	building, err := ctl.store.Buildings.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, building)
}

// CreateBuilding tạo dãy trọ; dãy không có API sửa, tạo xong là cố định
func (ctl *BuildingController) CreateBuilding(c *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondError(c, err)
		return
	}

	building := &models.Building{
		BuildingNumber: req.BuildingNumber,
		Address:        req.Address,
	}
	if err := ctl.store.Buildings.Create(building); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, building)
}

func (ctl *BuildingController) DeleteBuilding(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.store.Buildings.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
