package controllers

import (
	"strconv"

	"qlnt/dto"
	"qlnt/response"
	"qlnt/services"
	"qlnt/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	searchService *services.SearchService
}

func NewChatController(searchService *services.SearchService) *ChatController {
	return &ChatController{searchService: searchService}
}

// AskAssistant hỏi trợ lý ảo, trả lời bằng tiếng Việt
func (ctl *ChatController) AskAssistant(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		response.BadRequest(c, "message không hợp lệ")
		return
	}

	reply, err := services.AskAssistant(req.Message)
	if err != nil {
		utils.LogError("Trợ lý không phản hồi: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ChatResponse{Reply: reply})
}

// Search tìm gần đúng khách thuê và phòng theo tên/mã, chấp nhận gõ
// thiếu dấu
func (ctl *ChatController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q là bắt buộc")
		return
	}
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := ctl.searchService.Search(query, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, results)
}
