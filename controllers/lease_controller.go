package controllers

import (
	"qlnt/config"
	"qlnt/dto"
	"qlnt/response"
	"qlnt/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

type LeaseController struct {
	leaseService *services.LeaseService
	rdb          *redis.Client
	m            *melody.Melody
}

func NewLeaseController(leaseService *services.LeaseService, rdb *redis.Client, m *melody.Melody) *LeaseController {
	return &LeaseController{leaseService: leaseService, rdb: rdb, m: m}
}

func (ctl *LeaseController) GetLeases(c *gin.Context) {
	page, limit := parsePagination(c)
	leases, total, err := ctl.leaseService.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithPagination(c, leases, page, limit, total)
}

func (ctl *LeaseController) GetLeaseDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	lease, err := ctl.leaseService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, lease)
}

func (ctl *LeaseController) GetLeaseAmendments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	amendments, err := ctl.leaseService.Amendments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, amendments)
}

func (ctl *LeaseController) CreateLease(c *gin.Context) {
	var req dto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	lease, err := ctl.leaseService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	ctl.notifyChanged()
	response.Success(c, lease)
}

func (ctl *LeaseController) SubmitLease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	lease, err := ctl.leaseService.Submit(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, lease)
}

func (ctl *LeaseController) ActivateLease(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	lease, err := ctl.leaseService.Activate(id)
	if err != nil {
		respondError(c, err)
		return
	}
	ctl.notifyChanged()
	response.Success(c, lease)
}

func (ctl *LeaseController) AmendLease(c *gin.Context) {
	var req dto.AmendLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	amendment, err := ctl.leaseService.Amend(req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, amendment)
}

func (ctl *LeaseController) RenewLease(c *gin.Context) {
	var req dto.RenewLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	renewal, err := ctl.leaseService.Renew(req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, renewal)
}

func (ctl *LeaseController) TerminateLease(c *gin.Context) {
	var req dto.TerminateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	lease, err := ctl.leaseService.Terminate(req)
	if err != nil {
		respondError(c, err)
		return
	}
	ctl.notifyChanged()
	response.Success(c, lease)
}

// notifyChanged xóa cache và đẩy tín hiệu để dashboard tự tải lại
func (ctl *LeaseController) notifyChanged() {
	if ctl.rdb != nil {
		services.DeleteFromRedis(config.Ctx, ctl.rdb,
			services.CacheKeyDashboard, services.CacheKeyRooms, services.CacheKeyTransactions)
	}
	if ctl.m != nil {
		ctl.m.Broadcast([]byte(`{"event":"refresh"}`))
	}
}
