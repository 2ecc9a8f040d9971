package services

import (
	"sort"
	"strings"

	"qlnt/dto"
	"qlnt/repository"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// SearchService tìm khách thuê và phòng theo tên/mã gõ không dấu,
// sai chính tả nhẹ vẫn ra kết quả
type SearchService struct {
	store *repository.Store
}

type SearchServiceOptions struct {
	Store *repository.Store
}

func NewSearchService(opts SearchServiceOptions) *SearchService {
	return &SearchService{store: opts.Store}
}

// Chuẩn hóa chuỗi: bỏ dấu tiếng Việt và đưa về chữ thường
func normalizeInput(input string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi, 1.0 là trùng khớp
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// Search tìm theo tên khách thuê hoặc mã phòng, trả tối đa limit kết
// quả xếp theo độ tương đồng giảm dần
func (s *SearchService) Search(query string, limit int) ([]dto.SearchResult, error) {
	query = normalizeInput(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	tenants, err := s.store.Tenants.ListAll()
	if err != nil {
		return nil, err
	}
	rooms, err := s.store.Rooms.List()
	if err != nil {
		return nil, err
	}

	keywords := make([]string, 0, len(tenants)+len(rooms))
	type candidate struct {
		kind  string
		id    uint
		label string
		key   string
	}
	candidates := make(map[string]candidate, len(tenants)+len(rooms))
	for _, t := range tenants {
		key := normalizeInput(t.FullName)
		keywords = append(keywords, key)
		candidates[key] = candidate{kind: "tenant", id: t.ID, label: t.FullName, key: key}
	}
	for _, r := range rooms {
		key := normalizeInput(r.Code)
		keywords = append(keywords, key)
		candidates[key] = candidate{kind: "room", id: r.ID, label: r.Code, key: key}
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	cm := createMatcher(keywords)
	var results []dto.SearchResult
	for _, key := range cm.ClosestN(query, limit*2) {
		c, ok := candidates[key]
		if !ok {
			continue
		}
		score := calculateSimilarity(query, c.key)
		// Chứa trọn từ khóa cũng tính là khớp dù levenshtein thấp
		if score < 0.4 && !strings.Contains(c.key, query) {
			continue
		}
		results = append(results, dto.SearchResult{
			Kind:  c.kind,
			ID:    c.id,
			Label: c.label,
			Score: score,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
