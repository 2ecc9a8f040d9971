package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Trợ lý hỏi đáp cho người vận hành: chuỗi vào, chuỗi ra, hoàn toàn
// nằm ngoài phần tính tiền và vòng đời hợp đồng

type GPTResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const assistantSystemPrompt = `
Bạn là trợ lý ảo của phần mềm quản lý nhà trọ.
- Trả lời thân thiện, ngắn gọn các câu hỏi về cách sử dụng phần mềm: tạo hợp đồng, ghi chỉ số điện, gạch nợ, xuất hợp đồng PDF, xem tổng quan.
- Không bịa số liệu; nếu câu hỏi cần dữ liệu cụ thể, hướng dẫn người dùng mở màn hình tương ứng.
`

// AskAssistant gửi câu hỏi tới OpenAI và trả về câu trả lời dạng text
func AskAssistant(userMessage string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("API key không tồn tại")
	}

	url := "https://api.openai.com/v1/chat/completions"
	requestBody, err := json.Marshal(map[string]interface{}{
		"model": "gpt-4o-mini",
		"messages": []map[string]string{
			{"role": "system", "content": assistantSystemPrompt},
			{"role": "user", "content": userMessage},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI trả về mã %d: %s", resp.StatusCode, string(body))
	}

	var gptResp GPTResponse
	if err := json.Unmarshal(body, &gptResp); err != nil {
		return "", err
	}
	if len(gptResp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI không trả về câu trả lời nào")
	}
	return gptResp.Choices[0].Message.Content, nil
}
