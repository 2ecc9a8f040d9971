package services

import (
	"time"

	"qlnt/constants"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/services/logger"
)

// RateService tra cứu giá điện theo ngày hiệu lực
type RateService struct {
	store  *repository.Store
	logger logger.Logger
}

type RateServiceOptions struct {
	Store  *repository.Store
	Logger logger.Logger
}

func NewRateService(opts RateServiceOptions) *RateService {
	return &RateService{
		store:  opts.Store,
		logger: opts.Logger,
	}
}

// Resolve trả về đơn giá điện áp dụng cho một phòng tại một ngày.
// Giá riêng của phòng thắng giá chung; trong cùng nhóm lấy giá có ngày
// hiệu lực muộn nhất không vượt quá ngày tra cứu; trùng ngày hiệu lực
// thì giá tạo sau (id lớn hơn) thắng. Không cấu hình giá nào thì trả
// giá mặc định, việc tính tiền không bao giờ bị chặn vì thiếu bảng giá.
func (s *RateService) Resolve(date time.Time, roomID *uint) float64 {
	rates, err := s.store.Rates.List()
	if err != nil {
		s.logger.Error("Không đọc được bảng giá điện, dùng giá mặc định: %v", err)
		return constants.DefaultElectricityRate
	}

	if roomID != nil {
		if rate, ok := pickLatest(rates, date, func(r models.ElectricityRate) bool {
			return r.RoomID != nil && *r.RoomID == *roomID
		}); ok {
			return rate.PricePerUnit
		}
	}

	if rate, ok := pickLatest(rates, date, func(r models.ElectricityRate) bool {
		return r.RoomID == nil
	}); ok {
		return rate.PricePerUnit
	}

	return constants.DefaultElectricityRate
}

// pickLatest chọn bản ghi có ngày hiệu lực lớn nhất <= date trong nhóm
// thỏa match; rates đã theo thứ tự id tăng dần nên dùng >= khi so ngày
// là đủ để id lớn hơn thắng khi trùng ngày
func pickLatest(rates []models.ElectricityRate, date time.Time, match func(models.ElectricityRate) bool) (models.ElectricityRate, bool) {
	var best models.ElectricityRate
	found := false
	for _, r := range rates {
		if !match(r) || r.EffectiveDate.After(date) {
			continue
		}
		if !found || r.EffectiveDate.After(best.EffectiveDate) || r.EffectiveDate.Equal(best.EffectiveDate) {
			best = r
			found = true
		}
	}
	return best, found
}
