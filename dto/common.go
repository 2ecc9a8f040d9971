package dto

import (
	"time"

	"qlnt/response"
)

// DateLayout là định dạng ngày dùng chung cho mọi request
const DateLayout = "2006-01-02"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// ParseDate đọc chuỗi ngày dạng yyyy-mm-dd
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDatePtr đọc chuỗi ngày, nil nếu chuỗi rỗng
func ParseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
