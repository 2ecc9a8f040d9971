package services

import (
	"encoding/json"
	"fmt"
	"time"

	"qlnt/builders"
	"qlnt/constants"
	"qlnt/dto"
	"qlnt/errors"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/services/logger"
	"qlnt/validator"
)

// LeaseService quản lý vòng đời hợp đồng:
// draft → pending → active → {terminated, expired}.
// Bất biến: mỗi phòng tối đa một hợp đồng active tại mọi thời điểm.
type LeaseService struct {
	store   *repository.Store
	billing *BillingService
	logger  logger.Logger
}

type LeaseServiceOptions struct {
	Store   *repository.Store
	Billing *BillingService
	Logger  logger.Logger
}

func NewLeaseService(opts LeaseServiceOptions) *LeaseService {
	return &LeaseService{
		store:   opts.Store,
		billing: opts.Billing,
		logger:  opts.Logger,
	}
}

// Create tạo hợp đồng mới ở trạng thái draft (soạn trên UI) hoặc
// active (nhập hợp đồng giấy đã ký). Tạo active vào phòng đang có
// hợp đồng hiệu lực sẽ bị từ chối.
func (s *LeaseService) Create(req dto.CreateLeaseRequest) (*models.Lease, error) {
	if err := validator.ValidateCreateLease(req); err != nil {
		return nil, err
	}
	start, _ := dto.ParseDate(req.StartDate)
	end, _ := dto.ParseDate(req.EndDate)

	if _, err := s.store.Tenants.GetByID(req.TenantID); err != nil {
		return nil, errors.NewNotFoundError("Không tìm thấy khách thuê")
	}
	if _, err := s.store.Rooms.GetByID(req.RoomID); err != nil {
		return nil, errors.NewNotFoundError("Không tìm thấy phòng")
	}

	if req.Status == constants.LeaseStatusActive {
		if err := s.ensureRoomFree(req.RoomID); err != nil {
			return nil, err
		}
	}

	var assets json.RawMessage
	if len(req.Assets) > 0 {
		raw, err := json.Marshal(req.Assets)
		if err != nil {
			return nil, errors.NewValidationError("Danh sách tài sản bàn giao không hợp lệ")
		}
		assets = raw
	}

	lease := &models.Lease{
		TenantID:         req.TenantID,
		RoomID:           req.RoomID,
		StartDate:        start,
		EndDate:          end,
		MonthlyRent:      req.MonthlyRent,
		Deposit:          req.Deposit,
		PaymentFrequency: req.PaymentFrequency,
		DueDay:           req.DueDay,
		Status:           req.Status,
		VehiclePlate:     req.VehiclePlate,
		Assets:           assets,
	}
	if err := s.store.Leases.Create(lease); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không tạo được hợp đồng", err)
	}
	s.logger.Info("Tạo hợp đồng #%d cho phòng #%d, trạng thái %s", lease.ID, lease.RoomID, constants.LeaseStatusName(lease.Status))
	return lease, nil
}

// Submit nộp hợp đồng draft để duyệt: draft → pending, nộp lại lần hai
// bị từ chối
func (s *LeaseService) Submit(leaseID uint) (*models.Lease, error) {
	lease, err := s.getLease(leaseID)
	if err != nil {
		return nil, err
	}
	if lease.Status != constants.LeaseStatusDraft || lease.SubmittedAt != nil {
		return nil, errors.NewInvalidStateError(fmt.Sprintf(
			"Chỉ nộp được hợp đồng ở trạng thái draft chưa nộp, trạng thái hiện tại: %s",
			constants.LeaseStatusName(lease.Status)))
	}

	now := time.Now()
	pending := constants.LeaseStatusPending
	updated, err := s.store.Leases.Transition(leaseID,
		[]int{constants.LeaseStatusDraft},
		repository.LeaseTransition{Status: &pending, SubmittedAt: &now})
	if err != nil {
		return nil, s.transitionError(err, lease.Status)
	}
	return updated, nil
}

// Activate duyệt hợp đồng pending thành active, hoặc kích hoạt hợp
// đồng gia hạn đang ở draft. Kiểm tra bất biến một hợp đồng active
// mỗi phòng ngay trước khi chuyển.
func (s *LeaseService) Activate(leaseID uint) (*models.Lease, error) {
	lease, err := s.getLease(leaseID)
	if err != nil {
		return nil, err
	}
	if lease.Status != constants.LeaseStatusPending && lease.Status != constants.LeaseStatusDraft {
		return nil, errors.NewInvalidStateError(fmt.Sprintf(
			"Chỉ kích hoạt được hợp đồng draft hoặc pending, trạng thái hiện tại: %s",
			constants.LeaseStatusName(lease.Status)))
	}
	if err := s.ensureRoomFree(lease.RoomID); err != nil {
		return nil, err
	}

	active := constants.LeaseStatusActive
	updated, err := s.store.Leases.Transition(leaseID,
		[]int{constants.LeaseStatusDraft, constants.LeaseStatusPending},
		repository.LeaseTransition{Status: &active})
	if err != nil {
		return nil, s.transitionError(err, lease.Status)
	}
	s.logger.Info("Hợp đồng #%d chuyển sang active, phòng #%d", leaseID, lease.RoomID)
	return updated, nil
}

// Amend lập phụ lục điều chỉnh giá thuê của hợp đồng đang hiệu lực.
// Ngày áp dụng phải ở tương lai; khoản thu đã phát sinh không bị đụng tới.
func (s *LeaseService) Amend(req dto.AmendLeaseRequest) (*models.RentAmendment, error) {
	if err := validator.ValidateAmendLease(req); err != nil {
		return nil, err
	}
	effectiveDate, _ := dto.ParseDate(req.EffectiveDate)
	if !effectiveDate.After(time.Now()) {
		return nil, errors.NewValidationError("Ngày áp dụng giá mới phải ở tương lai")
	}

	lease, err := s.getLease(req.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease.Status != constants.LeaseStatusActive {
		return nil, errors.NewInvalidStateError(fmt.Sprintf(
			"Chỉ lập phụ lục cho hợp đồng active, trạng thái hiện tại: %s",
			constants.LeaseStatusName(lease.Status)))
	}
	if lease.MonthlyRent != req.OldRent {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"Giá thuê hiện tại là %d, không khớp giá cũ %d trong phụ lục", lease.MonthlyRent, req.OldRent))
	}

	// Giá mới và phụ lục phải cùng sống cùng chết: không bao giờ có giá
	// mới mà thiếu bản ghi phụ lục đối chứng
	amendment := &models.RentAmendment{
		LeaseID:       req.LeaseID,
		EffectiveDate: effectiveDate,
		OldRent:       req.OldRent,
		NewRent:       req.NewRent,
		Reason:        req.Reason,
	}
	err = s.store.Atomic(func(tx *repository.Store) error {
		if _, txErr := tx.Leases.Transition(req.LeaseID,
			[]int{constants.LeaseStatusActive},
			repository.LeaseTransition{MonthlyRent: &req.NewRent}); txErr != nil {
			return s.transitionError(txErr, lease.Status)
		}
		if txErr := tx.Amendments.Create(amendment); txErr != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không lưu được phụ lục", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Hợp đồng #%d điều chỉnh giá %d → %d từ %s", req.LeaseID, req.OldRent, req.NewRent, req.EffectiveDate)
	return amendment, nil
}

// Renew gia hạn: tạo hợp đồng MỚI chép các điều khoản không ghi đè từ
// hợp đồng gốc. Hợp đồng mới luôn ở trạng thái draft nên không thể vi
// phạm bất biến một active mỗi phòng; hợp đồng gốc giữ nguyên, việc
// chấm dứt nó là bước riêng của người vận hành.
func (s *LeaseService) Renew(req dto.RenewLeaseRequest) (*models.Lease, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	newEnd, err := dto.ParseDate(req.NewEndDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày kết thúc mới không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}

	src, err := s.getLease(req.LeaseID)
	if err != nil {
		return nil, err
	}
	if src.Status != constants.LeaseStatusActive {
		return nil, errors.NewInvalidStateError(fmt.Sprintf(
			"Chỉ gia hạn được hợp đồng active, trạng thái hiện tại: %s",
			constants.LeaseStatusName(src.Status)))
	}

	// Mặc định kỳ mới nối tiếp ngay sau kỳ cũ
	newStart := src.EndDate.AddDate(0, 0, 1)
	if req.NewStartDate != "" {
		parsed, err := dto.ParseDate(req.NewStartDate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày bắt đầu mới không hợp lệ, dùng định dạng yyyy-mm-dd", err)
		}
		newStart = parsed
	}
	if !newEnd.After(newStart) {
		return nil, errors.NewValidationError("Ngày kết thúc mới phải sau ngày bắt đầu kỳ gia hạn")
	}

	renewal := builders.FromLease(src).
		WithPeriod(newStart, newEnd).
		WithRent(req.NewRent).
		WithDeposit(req.NewDeposit).
		WithDueDay(req.NewDueDay).
		WithFrequency(req.NewFrequency).
		WithVehiclePlate(req.NewVehiclePlate).
		Build()

	if err := s.store.Leases.Create(renewal); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không tạo được hợp đồng gia hạn", err)
	}
	s.logger.Info("Gia hạn hợp đồng #%d thành hợp đồng mới #%d", src.ID, renewal.ID)
	return renewal, nil
}

// Terminate chấm dứt hợp đồng pending/active trước hạn: ghi ngày và lý
// do, chốt tiền phòng lẻ ngày, chốt tiền điện nếu có chỉ số cuối, và
// trả phòng về trạng thái trống. Hai lệnh chấm dứt gần đồng thời thì
// chỉ một lệnh thành công nhờ so khớp trạng thái ở tầng repository.
func (s *LeaseService) Terminate(req dto.TerminateLeaseRequest) (*models.Lease, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	terminationDate, err := dto.ParseDate(req.TerminationDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày chấm dứt không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}
	meterReadingDate, err := dto.ParseDatePtr(req.MeterReadingDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày chốt điện không hợp lệ, dùng định dạng yyyy-mm-dd", err)
	}

	lease, err := s.getLease(req.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease.Status != constants.LeaseStatusPending && lease.Status != constants.LeaseStatusActive {
		return nil, errors.NewInvalidStateError(fmt.Sprintf(
			"Chỉ chấm dứt được hợp đồng pending hoặc active, trạng thái hiện tại: %s",
			constants.LeaseStatusName(lease.Status)))
	}

	// Chuyển trạng thái và các khoản chốt tiền nằm chung một transaction:
	// chốt tiền hỏng thì hợp đồng vẫn ở trạng thái cũ, không được ghi dở
	wasActive := lease.Status == constants.LeaseStatusActive
	terminated := constants.LeaseStatusTerminated
	var updated *models.Lease
	err = s.store.Atomic(func(tx *repository.Store) error {
		var txErr error
		updated, txErr = tx.Leases.Transition(req.LeaseID,
			[]int{constants.LeaseStatusPending, constants.LeaseStatusActive},
			repository.LeaseTransition{
				Status:            &terminated,
				EndDate:           &terminationDate,
				TerminatedAt:      &terminationDate,
				TerminationReason: &req.Reason,
			})
		if txErr != nil {
			return s.transitionError(txErr, lease.Status)
		}
		// Chỉ hợp đồng đang hiệu lực mới phát sinh chốt tiền
		if wasActive {
			return s.billing.RecordFinalBilling(tx, updated, terminationDate, meterReadingDate, req.FinalMeterReading)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Hợp đồng #%d chấm dứt từ %s, phòng #%d được trả", lease.ID, req.TerminationDate, lease.RoomID)
	return updated, nil
}

// Get trả về hợp đồng theo id
func (s *LeaseService) Get(id uint) (*models.Lease, error) {
	return s.getLease(id)
}

// List trả về danh sách hợp đồng, mới nhất trước
func (s *LeaseService) List(page, limit int) ([]models.Lease, int, error) {
	leases, total, err := s.store.Leases.List(page, limit)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được danh sách hợp đồng", err)
	}
	return leases, total, nil
}

// Amendments trả về lịch sử phụ lục của một hợp đồng
func (s *LeaseService) Amendments(leaseID uint) ([]models.RentAmendment, error) {
	if _, err := s.getLease(leaseID); err != nil {
		return nil, err
	}
	amendments, err := s.store.Amendments.ListByLease(leaseID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được phụ lục", err)
	}
	return amendments, nil
}

// ActiveLeaseForRoom trả về hợp đồng đang hiệu lực của phòng, nil nếu
// phòng trống. Tình trạng phòng luôn suy ra từ đây, không lưu cờ riêng.
func (s *LeaseService) ActiveLeaseForRoom(roomID uint) (*models.Lease, error) {
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

// ensureRoomFree từ chối khi phòng còn hợp đồng active trong DB. Hợp
// đồng active đã qua ngày kết thúc vẫn giữ phòng cho đến khi được chấm
// dứt tường minh, chỉ khác thông báo để người vận hành biết bước cần làm.
func (s *LeaseService) ensureRoomFree(roomID uint) error {
	leases, err := s.store.Leases.ListByRoom(roomID)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không kiểm tra được tình trạng phòng", err)
	}
	now := time.Now()
	for i := range leases {
		if leases[i].Status != constants.LeaseStatusActive {
			continue
		}
		if leases[i].EffectiveStatus(now) == constants.LeaseStatusExpired {
			return errors.NewConflictError(fmt.Sprintf(
				"Hợp đồng #%d của phòng đã hết hạn nhưng chưa chấm dứt, chấm dứt hợp đồng đó trước", leases[i].ID))
		}
		return errors.NewConflictError("Phòng đang có hợp đồng hiệu lực, chấm dứt hợp đồng cũ trước")
	}
	return nil
}

func (s *LeaseService) getLease(id uint) (*models.Lease, error) {
	lease, err := s.store.Leases.GetByID(id)
	if err != nil {
		if err == errors.ErrLeaseNotFound {
			return nil, errors.NewNotFoundError("Không tìm thấy hợp đồng")
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được hợp đồng", err)
	}
	return lease, nil
}

func (s *LeaseService) transitionError(err error, currentStatus int) error {
	switch err {
	case errors.ErrLeaseNotFound:
		return errors.NewNotFoundError("Không tìm thấy hợp đồng")
	case errors.ErrLeaseStatusChanged:
		return errors.NewInvalidStateError(fmt.Sprintf(
			"Trạng thái hợp đồng đã thay đổi, trạng thái đọc được trước đó: %s",
			constants.LeaseStatusName(currentStatus)))
	default:
		return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được hợp đồng", err)
	}
}
