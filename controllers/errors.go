package controllers

import (
	"strconv"

	"qlnt/errors"
	"qlnt/response"
	"qlnt/utils"

	"github.com/gin-gonic/gin"
)

// respondError đổi AppError thành HTTP response; lỗi không phân loại
// được coi là lỗi server và chỉ ghi log, không lộ chi tiết ra ngoài
func respondError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		utils.LogError("Lỗi không phân loại: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeConflict, errors.ErrCodeDBDuplicate:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeDBError:
		utils.LogError("Lỗi DB: %v", appErr)
		response.ServerError(c)
	default:
		// VALIDATION_ERROR, INVALID_STATE và các lỗi đầu vào khác:
		// UI hiển thị nguyên văn message
		response.BadRequest(c, appErr.Message)
	}
}

// parsePagination đọc page/limit từ query string
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	return page, limit
}

// parseIDParam đọc id từ path param
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return 0, false
	}
	return uint(id), true
}
