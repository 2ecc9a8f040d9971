package dto

// SearchResult là một kết quả tìm kiếm mờ theo tên khách thuê hoặc mã phòng
type SearchResult struct {
	Kind  string  `json:"kind"` // "tenant" hoặc "room"
	ID    uint    `json:"id"`
	Label string  `json:"label"`
	Score float64 `json:"score"` // Độ tương đồng 0..1
}
