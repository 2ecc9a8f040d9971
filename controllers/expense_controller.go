package controllers

import (
	"qlnt/config"
	"qlnt/dto"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/response"
	"qlnt/services"
	"qlnt/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type ExpenseController struct {
	store *repository.Store
	rdb   *redis.Client
}

func NewExpenseController(store *repository.Store, rdb *redis.Client) *ExpenseController {
	return &ExpenseController{store: store, rdb: rdb}
}

func (ctl *ExpenseController) GetAllExpenses(c *gin.Context) {
	page, limit := parsePagination(c)
	expenses, total, err := ctl.store.Expenses.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithPagination(c, expenses, page, limit, total)
}

func (ctl *ExpenseController) GetExpenseDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	expense, err := ctl.store.Expenses.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, expense)
}

func (ctl *ExpenseController) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondError(c, err)
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "date không hợp lệ, dùng định dạng yyyy-mm-dd")
		return
	}
	if req.BuildingID != nil {
		if _, err := ctl.store.Buildings.GetByID(*req.BuildingID); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.RoomID != nil {
		if _, err := ctl.store.Rooms.GetByID(*req.RoomID); err != nil {
			respondError(c, err)
			return
		}
	}

	expense := &models.Expense{
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          date,
		Description:   req.Description,
		AttachmentRef: req.AttachmentRef,
		BuildingID:    req.BuildingID,
		RoomID:        req.RoomID,
	}
	if err := ctl.store.Expenses.Create(expense); err != nil {
		respondError(c, err)
		return
	}

	services.DeleteFromRedis(config.Ctx, ctl.rdb, services.CacheKeyDashboard)
	response.Success(c, expense)
}

func (ctl *ExpenseController) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.store.Expenses.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	services.DeleteFromRedis(config.Ctx, ctl.rdb, services.CacheKeyDashboard)
	response.Success(c, nil)
}
