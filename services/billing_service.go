package services

import (
	"math"
	"time"

	"qlnt/constants"
	"qlnt/dto"
	"qlnt/errors"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/services/logger"
	"qlnt/validator"
)

// BillingService quản lý sổ thu chi: ghi khoản thu, gạch nợ, ghi điện
// và chốt tiền khi chấm dứt hợp đồng
type BillingService struct {
	store  *repository.Store
	rates  *RateService
	logger logger.Logger
}

type BillingServiceOptions struct {
	Store  *repository.Store
	Rates  *RateService
	Logger logger.Logger
}

func NewBillingService(opts BillingServiceOptions) *BillingService {
	return &BillingService{
		store:  opts.Store,
		rates:  opts.Rates,
		logger: opts.Logger,
	}
}

// CalculateProration tính tiền phòng lẻ ngày khi trả phòng giữa tháng
// theo quy ước tháng 30 ngày: round(tiền tháng / 30 × ngày trong tháng).
// Ngày không hợp lệ phải được chặn từ trước khi gọi.
func CalculateProration(monthlyRent int, terminationDate time.Time) int {
	amount := float64(monthlyRent) / constants.ProrationDays * float64(terminationDate.Day())
	return int(math.Round(amount))
}

// Record ghi một khoản thu mới vào sổ, trạng thái mặc định là pending
func (s *BillingService) Record(req dto.RecordTransactionRequest) (*models.Transaction, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày đến hạn không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}
	periodStart, err := dto.ParseDatePtr(req.PeriodStart)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Kỳ thanh toán không hợp lệ", err)
	}
	periodEnd, err := dto.ParseDatePtr(req.PeriodEnd)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Kỳ thanh toán không hợp lệ", err)
	}

	status := constants.TransactionStatusPending
	if req.Status != nil {
		status = *req.Status
	}

	tx := &models.Transaction{
		RoomID:      req.RoomID,
		LeaseID:     req.LeaseID,
		TenantName:  req.TenantName,
		Category:    req.Category,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Status:      status,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
	if err := s.store.Transactions.Create(tx); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không ghi được khoản thu", err)
	}
	return tx, nil
}

// MarkPaid gạch nợ một khoản thu chưa thanh toán
func (s *BillingService) MarkPaid(req dto.MarkPaidRequest) (*models.Transaction, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	paidDate, err := dto.ParseDate(req.PaidDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày thanh toán không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}
	tx, err := s.store.Transactions.MarkPaid(req.TransactionID, req.Method, paidDate)
	if err != nil {
		switch err {
		case errors.ErrTransactionNotFound:
			return nil, errors.NewNotFoundError("Không tìm thấy khoản thu")
		case errors.ErrAlreadyPaid:
			return nil, errors.NewInvalidStateError("Khoản thu đã được thanh toán trước đó")
		default:
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không gạch nợ được khoản thu", err)
		}
	}
	return tx, nil
}

// Delete xóa một khoản thu nhập sai, không khôi phục được
func (s *BillingService) Delete(id uint) error {
	if err := s.store.Transactions.Delete(id); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không xóa được khoản thu", err)
	}
	return nil
}

// RecordMeterReading ghi chỉ số điện mới cho phòng và phát sinh khoản
// tiền điện cho hợp đồng đang hiệu lực nếu có. Phòng trống vẫn ghi
// nhận chỉ số nhưng không phát sinh khoản thu. Chỉ số tụt (thay công
// tơ) tính tiền bằng 0 chứ không báo lỗi, chỉ số vẫn được cập nhật.
func (s *BillingService) RecordMeterReading(req dto.MeterReadingRequest) (*models.Transaction, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	readingDate, err := dto.ParseDate(req.ReadingDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày ghi điện không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}

	room, err := s.store.Rooms.GetByID(req.RoomID)
	if err != nil {
		return nil, errors.NewNotFoundError("Không tìm thấy phòng")
	}

	usage := req.NewReading - room.LastMeterReading
	if usage < 0 {
		s.logger.Info("Phòng %s: chỉ số điện tụt từ %d xuống %d, tính tiền bằng 0", room.Code, room.LastMeterReading, req.NewReading)
		usage = 0
	}

	rate := s.rates.Resolve(readingDate, &room.ID)
	cost := float64(usage) * rate

	var tx *models.Transaction
	activeLease, err := s.activeLeaseForRoom(room.ID)
	if err != nil {
		return nil, err
	}

	// Khoản thu và chỉ số mới ghi chung một transaction: không bao giờ có
	// khoản tiền điện mà chỉ số phòng chưa nhích theo, hay ngược lại
	err = s.store.Atomic(func(store *repository.Store) error {
		if activeLease != nil {
			tenantName := ""
			if tenant, err := store.Tenants.GetByID(activeLease.TenantID); err == nil {
				tenantName = tenant.FullName
			}
			meterStart := room.LastMeterReading
			meterEnd := req.NewReading
			tx = &models.Transaction{
				RoomID:     &room.ID,
				LeaseID:    &activeLease.ID,
				TenantName: tenantName,
				Category:   constants.CategoryElectricity,
				Amount:     cost,
				DueDate:    readingDate,
				Status:     constants.TransactionStatusPending,
				PeriodEnd:  &readingDate,
				MeterStart: &meterStart,
				MeterEnd:   &meterEnd,
			}
			if err := store.Transactions.Create(tx); err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không ghi được khoản tiền điện", err)
			}
		}
		if err := store.Rooms.SetMeterReading(room.ID, req.NewReading); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được chỉ số điện", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// RecordFinalBilling chốt tiền khi chấm dứt hợp đồng: một khoản tiền
// phòng lẻ ngày cho tháng cuối, và đúng một khoản tiền điện cuối nếu có
// chốt chỉ số. Ghi qua store của transaction đang mở ở phía gọi để cùng
// hoàn tác với bước chuyển trạng thái.
func (s *BillingService) RecordFinalBilling(store *repository.Store, lease *models.Lease, terminationDate time.Time, meterReadingDate *time.Time, finalMeterReading *int) error {
	tenantName := ""
	if tenant, err := store.Tenants.GetByID(lease.TenantID); err == nil {
		tenantName = tenant.FullName
	}

	prorated := CalculateProration(lease.MonthlyRent, terminationDate)
	monthStart := time.Date(terminationDate.Year(), terminationDate.Month(), 1, 0, 0, 0, 0, terminationDate.Location())
	rentTx := &models.Transaction{
		RoomID:      &lease.RoomID,
		LeaseID:     &lease.ID,
		TenantName:  tenantName,
		Category:    constants.CategoryRent,
		Amount:      float64(prorated),
		DueDate:     terminationDate,
		Status:      constants.TransactionStatusPending,
		PeriodStart: &monthStart,
		PeriodEnd:   &terminationDate,
	}
	if err := store.Transactions.Create(rentTx); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không ghi được tiền phòng tháng cuối", err)
	}

	if finalMeterReading == nil {
		return nil
	}
	readingDate := terminationDate
	if meterReadingDate != nil {
		readingDate = *meterReadingDate
	}

	room, err := store.Rooms.GetByID(lease.RoomID)
	if err != nil {
		return errors.NewNotFoundError("Không tìm thấy phòng")
	}
	usage := *finalMeterReading - room.LastMeterReading
	if usage < 0 {
		usage = 0
	}
	rate := s.rates.Resolve(readingDate, &room.ID)
	meterStart := room.LastMeterReading
	elecTx := &models.Transaction{
		RoomID:     &lease.RoomID,
		LeaseID:    &lease.ID,
		TenantName: tenantName,
		Category:   constants.CategoryElectricity,
		Amount:     float64(usage) * rate,
		DueDate:    terminationDate,
		Status:     constants.TransactionStatusPending,
		PeriodEnd:  &readingDate,
		MeterStart: &meterStart,
		MeterEnd:   finalMeterReading,
	}
	if err := store.Transactions.Create(elecTx); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không ghi được tiền điện cuối kỳ", err)
	}
	return store.Rooms.SetMeterReading(room.ID, *finalMeterReading)
}

// MarkOverdueTransactions chuyển các khoản pending đã quá hạn sang
// overdue, chạy định kỳ từ cron
func (s *BillingService) MarkOverdueTransactions() (int, error) {
	changed, err := s.store.Transactions.MarkOverdueBefore(time.Now())
	if err != nil {
		return 0, err
	}
	if changed > 0 {
		s.logger.Info("Đã chuyển %d khoản thu quá hạn sang overdue", changed)
	}
	return changed, nil
}

// activeLeaseForRoom trả về hợp đồng đang hiệu lực của phòng, nil nếu
// phòng trống
func (s *BillingService) activeLeaseForRoom(roomID uint) (*models.Lease, error) {
	leases, err := s.store.Leases.ListByRoom(roomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được hợp đồng của phòng", err)
	}
	for i := range leases {
		if leases[i].Status == constants.LeaseStatusActive {
			return &leases[i], nil
		}
	}
	return nil, nil
}
