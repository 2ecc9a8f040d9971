package controllers

import (
	"strconv"

	"qlnt/dto"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/response"
	"qlnt/services"
	"qlnt/validator"

	"github.com/gin-gonic/gin"
)

type RateController struct {
	store       *repository.Store
	rateService *services.RateService
}

func NewRateController(store *repository.Store, rateService *services.RateService) *RateController {
	return &RateController{store: store, rateService: rateService}
}

func (ctl *RateController) GetAllRates(c *gin.Context) {
	rates, err := ctl.store.Rates.List()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, rates)
}

func (ctl *RateController) CreateRate(c *gin.Context) {
	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateCreateRate(req); err != nil {
		respondError(c, err)
		return
	}
	if req.RoomID != nil {
		if _, err := ctl.store.Rooms.GetByID(*req.RoomID); err != nil {
			respondError(c, err)
			return
		}
	}
	effectiveDate, _ := dto.ParseDate(req.EffectiveDate)

	rate := &models.ElectricityRate{
		RoomID:        req.RoomID,
		EffectiveDate: effectiveDate,
		PricePerUnit:  req.PricePerUnit,
	}
	if err := ctl.store.Rates.Create(rate); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, rate)
}

// ResolveRate tra đơn giá điện áp dụng cho một ngày, dùng cho UI xem
// trước tiền điện khi ghi chỉ số
func (ctl *RateController) ResolveRate(c *gin.Context) {
	date, err := dto.ParseDate(c.Query("date"))
	if err != nil {
		response.BadRequest(c, "date là bắt buộc, dùng định dạng yyyy-mm-dd")
		return
	}
	var roomID *uint
	if raw := c.Query("roomId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "roomId không hợp lệ")
			return
		}
		id := uint(parsed)
		roomID = &id
	}

	price := ctl.rateService.Resolve(date, roomID)
	response.Success(c, gin.H{"pricePerUnit": price})
}

func (ctl *RateController) DeleteRate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.store.Rates.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
