package controllers

import (
	"strconv"
	"time"

	"qlnt/config"
	"qlnt/constants"
	"qlnt/dto"
	"qlnt/response"
	"qlnt/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type DashboardController struct {
	dashboard *services.DashboardService
	rdb       *redis.Client
}

func NewDashboardController(dashboard *services.DashboardService, rdb *redis.Client) *DashboardController {
	return &DashboardController{dashboard: dashboard, rdb: rdb}
}

// GetSummary trả số liệu tổng quan cho màn hình chính. Query `window`
// đổi số ngày cảnh báo hợp đồng sắp hết hạn, mặc định 60.
func (ctl *DashboardController) GetSummary(c *gin.Context) {
	window := constants.ExpiringSoonDays
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "window phải là số ngày dương")
			return
		}
		window = parsed
	}

	// Chỉ cache cửa sổ mặc định
	if window == constants.ExpiringSoonDays {
		var cached dto.DashboardSummary
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, services.CacheKeyDashboard, &cached); err == nil {
			response.Success(c, cached)
			return
		}
	}

	summary, err := ctl.dashboard.Summary(time.Now(), window)
	if err != nil {
		respondError(c, err)
		return
	}

	if window == constants.ExpiringSoonDays {
		_ = services.SetToRedis(config.Ctx, ctl.rdb, services.CacheKeyDashboard, summary, 60*time.Second)
	}

	response.Success(c, summary)
}
