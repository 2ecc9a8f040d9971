package dto

// ChatRequest là câu hỏi gửi cho trợ lý ảo
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse là câu trả lời của trợ lý ảo
type ChatResponse struct {
	Reply string `json:"reply"`
}
