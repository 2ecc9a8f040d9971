// Package repository tách logic nghiệp vụ khỏi nơi lưu trữ: cùng một
// tầng service chạy được trên Postgres thật (GormStore) hoặc bộ nhớ
// (MemoryStore) khi test và khi chạy chế độ mock.
package repository

import (
	"time"

	"qlnt/models"
)

// LeaseTransition là bản vá trạng thái tường minh. Mọi chuyển trạng
// thái hợp đồng đều đi qua Transition kèm điều kiện trạng thái hiện
// tại, để hai thao tác gần đồng thời không cùng "thành công".
type LeaseTransition struct {
	Status            *int
	MonthlyRent       *int
	SubmittedAt       *time.Time
	EndDate           *time.Time
	TerminatedAt      *time.Time
	TerminationReason *string
}

// RoomPatch liệt kê tường minh các trường phòng được phép sửa
type RoomPatch struct {
	Floor   *int
	Code    *string
	Acreage *int
}

// TenantPatch liệt kê tường minh các trường khách thuê được phép sửa
type TenantPatch struct {
	FullName    *string
	PhoneNumber *string
	Email       *string
	HomeAddress *string
}

type BuildingRepository interface {
	Create(b *models.Building) error
	GetByID(id uint) (*models.Building, error)
	List(page, limit int) ([]models.Building, int, error)
	Delete(id uint) error
}

type RoomRepository interface {
	Create(r *models.Room) error
	GetByID(id uint) (*models.Room, error)
	Update(id uint, patch RoomPatch) (*models.Room, error)
	List() ([]models.Room, error)
	Count() (int, error)
	// SetMeterReading ghi chỉ số điện mới nhất của phòng
	SetMeterReading(id uint, reading int) error
	Delete(id uint) error
}

type TenantRepository interface {
	Create(t *models.Tenant) error
	GetByID(id uint) (*models.Tenant, error)
	GetByGovernmentID(governmentID string) (*models.Tenant, error)
	Update(id uint, patch TenantPatch) (*models.Tenant, error)
	List(page, limit int) ([]models.Tenant, int, error)
	ListAll() ([]models.Tenant, error)
	// Delete xóa khách thuê kèm toàn bộ người liên hệ khẩn cấp
	Delete(id uint) error
}

type LeaseRepository interface {
	Create(l *models.Lease) error
	GetByID(id uint) (*models.Lease, error)
	List(page, limit int) ([]models.Lease, int, error)
	ListByRoom(roomID uint) ([]models.Lease, error)
	ListByStatus(status int) ([]models.Lease, error)
	CountActiveByRoom(roomID uint) (int, error)
	// Transition áp bản vá nếu trạng thái hiện tại nằm trong fromStatuses
	// và trả về bản ghi sau khi vá. Trả errors.ErrLeaseNotFound khi không
	// có bản ghi, errors.ErrLeaseStatusChanged khi trạng thái đã khác.
	Transition(id uint, fromStatuses []int, patch LeaseTransition) (*models.Lease, error)
}

type AmendmentRepository interface {
	Create(a *models.RentAmendment) error
	ListByLease(leaseID uint) ([]models.RentAmendment, error)
}

type RateRepository interface {
	Create(r *models.ElectricityRate) error
	// List trả về toàn bộ bảng giá theo thứ tự id tăng dần; thứ tự này
	// là luật phá hòa khi hai giá trùng ngày hiệu lực
	List() ([]models.ElectricityRate, error)
	Delete(id uint) error
}

type TransactionRepository interface {
	Create(t *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	// List trả về mới nhất trước
	List(page, limit int) ([]models.Transaction, int, error)
	ListAll() ([]models.Transaction, error)
	ListByLease(leaseID uint) ([]models.Transaction, error)
	// MarkPaid gạch nợ, chỉ khi khoản thu chưa paid. Trả
	// errors.ErrTransactionNotFound / errors.ErrAlreadyPaid.
	MarkPaid(id uint, method int, paidDate time.Time) (*models.Transaction, error)
	Delete(id uint) error
	CountByStatus(status int) (int, error)
	// MarkOverdueBefore chuyển các khoản pending đã quá hạn sang overdue,
	// trả về số bản ghi đổi trạng thái
	MarkOverdueBefore(now time.Time) (int, error)
}

type ExpenseRepository interface {
	Create(e *models.Expense) error
	GetByID(id uint) (*models.Expense, error)
	List(page, limit int) ([]models.Expense, int, error)
	ListAll() ([]models.Expense, error)
	Delete(id uint) error
}

// Store gom các repository theo từng collection.
//
// Atomic chạy fn trên một Store con mà mọi thao tác ghi nằm trong cùng
// một transaction: fn trả lỗi thì toàn bộ các lệnh ghi bên trong bị hoàn
// tác. Nghiệp vụ nào ghi nhiều bảng (phụ lục, chấm dứt hợp đồng, ghi
// điện) đều phải đi qua đây để không bao giờ ghi nửa chừng.
type Store struct {
	Buildings    BuildingRepository
	Rooms        RoomRepository
	Tenants      TenantRepository
	Leases       LeaseRepository
	Amendments   AmendmentRepository
	Rates        RateRepository
	Transactions TransactionRepository
	Expenses     ExpenseRepository

	Atomic func(fn func(tx *Store) error) error
}
