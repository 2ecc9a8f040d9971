package controllers

import (
	"encoding/json"
	"time"

	"qlnt/config"
	"qlnt/dto"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/response"
	"qlnt/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

type TransactionController struct {
	store   *repository.Store
	billing *services.BillingService
	rdb     *redis.Client
	m       *melody.Melody
}

func NewTransactionController(store *repository.Store, billing *services.BillingService, rdb *redis.Client, m *melody.Melody) *TransactionController {
	return &TransactionController{store: store, billing: billing, rdb: rdb, m: m}
}

func (ctl *TransactionController) GetAllTransactions(c *gin.Context) {
	page, limit := parsePagination(c)

	// Chỉ cache trang đầu mặc định, các trang sau đọc thẳng DB
	if page == 1 && limit == 20 {
		var cached struct {
			Transactions []models.Transaction `json:"transactions"`
			Total        int                  `json:"total"`
		}
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, services.CacheKeyTransactions, &cached); err == nil {
			response.SuccessWithPagination(c, cached.Transactions, page, limit, cached.Total)
			return
		}
	}

	transactions, total, err := ctl.store.Transactions.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if page == 1 && limit == 20 {
		payload := map[string]interface{}{"transactions": transactions, "total": total}
		_ = services.SetToRedis(config.Ctx, ctl.rdb, services.CacheKeyTransactions, payload, 60*time.Second)
	}

	response.SuccessWithPagination(c, transactions, page, limit, total)
}

func (ctl *TransactionController) GetTransactionDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	tx, err := ctl.store.Transactions.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tx)
}

func (ctl *TransactionController) RecordTransaction(c *gin.Context) {
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	tx, err := ctl.billing.Record(req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.notifyChanged()
	response.Success(c, tx)
}

func (ctl *TransactionController) MarkPaid(c *gin.Context) {
	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	tx, err := ctl.billing.MarkPaid(req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.notifyChanged()
	response.Success(c, tx)
}

func (ctl *TransactionController) DeleteTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.billing.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	ctl.notifyChanged()
	response.Success(c, nil)
}

// RecordMeterReading ghi chỉ số điện mới cho phòng. Nếu phòng đang có
// hợp đồng hiệu lực thì đồng thời sinh khoản thu tiền điện cho kỳ đó.
func (ctl *TransactionController) RecordMeterReading(c *gin.Context) {
	var req dto.MeterReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	tx, err := ctl.billing.RecordMeterReading(req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.notifyChanged()
	if tx == nil {
		response.Success(c, gin.H{"message": "Đã cập nhật chỉ số, phòng không có hợp đồng hiệu lực nên không phát sinh khoản thu"})
		return
	}
	response.Success(c, tx)
}

func (ctl *TransactionController) notifyChanged() {
	services.DeleteFromRedis(config.Ctx, ctl.rdb, services.CacheKeyTransactions, services.CacheKeyDashboard)
	if ctl.m != nil {
		msg, _ := json.Marshal(gin.H{"event": "refresh"})
		_ = ctl.m.Broadcast(msg)
	}
}
