package repository

import (
	"errors"
	"time"

	"qlnt/constants"
	apperrors "qlnt/errors"
	"qlnt/models"

	"gorm.io/gorm"
)

// NewGormStore tạo Store chạy trên GORM (Postgres khi chạy thật,
// SQLite in-memory khi test)
func NewGormStore(db *gorm.DB) *Store {
	s := &Store{
		Buildings:    &gormBuildingRepo{db: db},
		Rooms:        &gormRoomRepo{db: db},
		Tenants:      &gormTenantRepo{db: db},
		Leases:       &gormLeaseRepo{db: db},
		Amendments:   &gormAmendmentRepo{db: db},
		Rates:        &gormRateRepo{db: db},
		Transactions: &gormTransactionRepo{db: db},
		Expenses:     &gormExpenseRepo{db: db},
	}
	s.Atomic = func(fn func(tx *Store) error) error {
		return db.Transaction(func(tx *gorm.DB) error {
			return fn(NewGormStore(tx))
		})
	}
	return s
}

// AutoMigrate tạo bảng cho toàn bộ entity
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Building{},
		&models.Room{},
		&models.Tenant{},
		&models.EmergencyContact{},
		&models.Lease{},
		&models.RentAmendment{},
		&models.ElectricityRate{},
		&models.Transaction{},
		&models.Expense{},
	)
}

type gormBuildingRepo struct{ db *gorm.DB }

func (r *gormBuildingRepo) Create(b *models.Building) error {
	return r.db.Create(b).Error
}

func (r *gormBuildingRepo) GetByID(id uint) (*models.Building, error) {
	var b models.Building
	if err := r.db.Preload("Rooms").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *gormBuildingRepo) List(page, limit int) ([]models.Building, int, error) {
	var buildings []models.Building
	var total int64
	if err := r.db.Model(&models.Building{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Offset((page - 1) * limit).Limit(limit).Find(&buildings).Error; err != nil {
		return nil, 0, err
	}
	return buildings, int(total), nil
}

func (r *gormBuildingRepo) Delete(id uint) error {
	return r.db.Delete(&models.Building{}, id).Error
}

type gormRoomRepo struct{ db *gorm.DB }

func (r *gormRoomRepo) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *gormRoomRepo) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *gormRoomRepo) Update(id uint, patch RoomPatch) (*models.Room, error) {
	room, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Floor != nil {
		room.Floor = *patch.Floor
	}
	if patch.Code != nil {
		room.Code = *patch.Code
	}
	if patch.Acreage != nil {
		room.Acreage = *patch.Acreage
	}
	if err := r.db.Save(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

func (r *gormRoomRepo) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *gormRoomRepo) Count() (int, error) {
	var total int64
	if err := r.db.Model(&models.Room{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *gormRoomRepo) SetMeterReading(id uint, reading int) error {
	res := r.db.Model(&models.Room{}).Where("id = ?", id).Update("last_meter_reading", reading)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

func (r *gormRoomRepo) Delete(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}

type gormTenantRepo struct{ db *gorm.DB }

func (r *gormTenantRepo) Create(t *models.Tenant) error {
	return r.db.Create(t).Error
}

func (r *gormTenantRepo) GetByID(id uint) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.Preload("EmergencyContacts").First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *gormTenantRepo) GetByGovernmentID(governmentID string) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.Where("government_id = ?", governmentID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *gormTenantRepo) Update(id uint, patch TenantPatch) (*models.Tenant, error) {
	t, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.FullName != nil {
		t.FullName = *patch.FullName
	}
	if patch.PhoneNumber != nil {
		t.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		t.Email = *patch.Email
	}
	if patch.HomeAddress != nil {
		t.HomeAddress = *patch.HomeAddress
	}
	if err := r.db.Save(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *gormTenantRepo) List(page, limit int) ([]models.Tenant, int, error) {
	var tenants []models.Tenant
	var total int64
	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Preload("EmergencyContacts").Offset((page - 1) * limit).Limit(limit).Find(&tenants).Error; err != nil {
		return nil, 0, err
	}
	return tenants, int(total), nil
}

func (r *gormTenantRepo) ListAll() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := r.db.Order("id").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *gormTenantRepo) Delete(id uint) error {
	// Xóa người liên hệ trước cho chắc, kể cả khi DB không bật cascade
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", id).Delete(&models.EmergencyContact{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tenant{}, id).Error
	})
}

type gormLeaseRepo struct{ db *gorm.DB }

func (r *gormLeaseRepo) Create(l *models.Lease) error {
	return r.db.Create(l).Error
}

func (r *gormLeaseRepo) GetByID(id uint) (*models.Lease, error) {
	var l models.Lease
	if err := r.db.Preload("Tenant").Preload("Room").First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaseNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *gormLeaseRepo) List(page, limit int) ([]models.Lease, int, error) {
	var leases []models.Lease
	var total int64
	if err := r.db.Model(&models.Lease{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Preload("Tenant").Preload("Room").
		Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&leases).Error; err != nil {
		return nil, 0, err
	}
	return leases, int(total), nil
}

func (r *gormLeaseRepo) ListByRoom(roomID uint) ([]models.Lease, error) {
	var leases []models.Lease
	if err := r.db.Where("room_id = ?", roomID).Order("id").Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *gormLeaseRepo) ListByStatus(status int) ([]models.Lease, error) {
	var leases []models.Lease
	if err := r.db.Where("status = ?", status).Order("id").Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *gormLeaseRepo) CountActiveByRoom(roomID uint) (int, error) {
	var total int64
	err := r.db.Model(&models.Lease{}).
		Where("room_id = ? AND status = ?", roomID, constants.LeaseStatusActive).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *gormLeaseRepo) Transition(id uint, fromStatuses []int, patch LeaseTransition) (*models.Lease, error) {
	updates := map[string]interface{}{}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.MonthlyRent != nil {
		updates["monthly_rent"] = *patch.MonthlyRent
	}
	if patch.SubmittedAt != nil {
		updates["submitted_at"] = *patch.SubmittedAt
	}
	if patch.EndDate != nil {
		updates["end_date"] = *patch.EndDate
	}
	if patch.TerminatedAt != nil {
		updates["terminated_at"] = *patch.TerminatedAt
	}
	if patch.TerminationReason != nil {
		updates["termination_reason"] = *patch.TerminationReason
	}

	// So khớp trạng thái ngay trong câu UPDATE: hai thao tác gần đồng
	// thời thì chỉ một bên có RowsAffected > 0
	res := r.db.Model(&models.Lease{}).
		Where("id = ? AND status IN ?", id, fromStatuses).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var total int64
		if err := r.db.Model(&models.Lease{}).Where("id = ?", id).Count(&total).Error; err != nil {
			return nil, err
		}
		if total == 0 {
			return nil, apperrors.ErrLeaseNotFound
		}
		return nil, apperrors.ErrLeaseStatusChanged
	}
	return r.GetByID(id)
}

type gormAmendmentRepo struct{ db *gorm.DB }

func (r *gormAmendmentRepo) Create(a *models.RentAmendment) error {
	return r.db.Create(a).Error
}

func (r *gormAmendmentRepo) ListByLease(leaseID uint) ([]models.RentAmendment, error) {
	var amendments []models.RentAmendment
	if err := r.db.Where("lease_id = ?", leaseID).Order("id").Find(&amendments).Error; err != nil {
		return nil, err
	}
	return amendments, nil
}

type gormRateRepo struct{ db *gorm.DB }

func (r *gormRateRepo) Create(rate *models.ElectricityRate) error {
	return r.db.Create(rate).Error
}

func (r *gormRateRepo) List() ([]models.ElectricityRate, error) {
	var rates []models.ElectricityRate
	if err := r.db.Order("id").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *gormRateRepo) Delete(id uint) error {
	return r.db.Delete(&models.ElectricityRate{}, id).Error
}

type gormTransactionRepo struct{ db *gorm.DB }

func (r *gormTransactionRepo) Create(t *models.Transaction) error {
	return r.db.Create(t).Error
}

func (r *gormTransactionRepo) GetByID(id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *gormTransactionRepo) List(page, limit int) ([]models.Transaction, int, error) {
	var transactions []models.Transaction
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&transactions).Error; err != nil {
		return nil, 0, err
	}
	return transactions, int(total), nil
}

func (r *gormTransactionRepo) ListAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("id DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *gormTransactionRepo) ListByLease(leaseID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("lease_id = ?", leaseID).Order("id DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *gormTransactionRepo) MarkPaid(id uint, method int, paidDate time.Time) (*models.Transaction, error) {
	res := r.db.Model(&models.Transaction{}).
		Where("id = ? AND status <> ?", id, constants.TransactionStatusPaid).
		Updates(map[string]interface{}{
			"status":  constants.TransactionStatusPaid,
			"method":  method,
			"paid_at": paidDate,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var total int64
		if err := r.db.Model(&models.Transaction{}).Where("id = ?", id).Count(&total).Error; err != nil {
			return nil, err
		}
		if total == 0 {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.ErrAlreadyPaid
	}
	return r.GetByID(id)
}

func (r *gormTransactionRepo) Delete(id uint) error {
	return r.db.Delete(&models.Transaction{}, id).Error
}

func (r *gormTransactionRepo) CountByStatus(status int) (int, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *gormTransactionRepo) MarkOverdueBefore(now time.Time) (int, error) {
	res := r.db.Model(&models.Transaction{}).
		Where("status = ? AND due_date < ?", constants.TransactionStatusPending, now).
		Update("status", constants.TransactionStatusOverdue)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

type gormExpenseRepo struct{ db *gorm.DB }

func (r *gormExpenseRepo) Create(e *models.Expense) error {
	return r.db.Create(e).Error
}

func (r *gormExpenseRepo) GetByID(id uint) (*models.Expense, error) {
	var e models.Expense
	if err := r.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *gormExpenseRepo) List(page, limit int) ([]models.Expense, int, error) {
	var expenses []models.Expense
	var total int64
	if err := r.db.Model(&models.Expense{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&expenses).Error; err != nil {
		return nil, 0, err
	}
	return expenses, int(total), nil
}

func (r *gormExpenseRepo) ListAll() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *gormExpenseRepo) Delete(id uint) error {
	return r.db.Delete(&models.Expense{}, id).Error
}
