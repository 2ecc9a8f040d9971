package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"qlnt/constants"
	apperrors "qlnt/errors"
	"qlnt/models"
)

// memoryDB giữ toàn bộ dữ liệu trong RAM sau một mutex chung. Dùng cho
// test và cho chế độ chạy không cần Postgres.
type memoryDB struct {
	mu   sync.Mutex
	txMu sync.Mutex // tuần tự hóa các khối Atomic

	nextID       map[string]uint
	buildings    map[uint]models.Building
	rooms        map[uint]models.Room
	tenants      map[uint]models.Tenant
	leases       map[uint]models.Lease
	amendments   map[uint]models.RentAmendment
	rates        []models.ElectricityRate
	transactions []models.Transaction // mới nhất đứng đầu
	expenses     map[uint]models.Expense
}

// snapshot chép toàn bộ dữ liệu để Atomic có thể hoàn tác. Các repo đều
// lưu theo giá trị nên chép map và slice ở tầng ngoài là đủ.
func (db *memoryDB) snapshot() *memoryDB {
	snap := &memoryDB{
		nextID:       make(map[string]uint, len(db.nextID)),
		buildings:    make(map[uint]models.Building, len(db.buildings)),
		rooms:        make(map[uint]models.Room, len(db.rooms)),
		tenants:      make(map[uint]models.Tenant, len(db.tenants)),
		leases:       make(map[uint]models.Lease, len(db.leases)),
		amendments:   make(map[uint]models.RentAmendment, len(db.amendments)),
		rates:        make([]models.ElectricityRate, len(db.rates)),
		transactions: make([]models.Transaction, len(db.transactions)),
		expenses:     make(map[uint]models.Expense, len(db.expenses)),
	}
	for k, v := range db.nextID {
		snap.nextID[k] = v
	}
	for k, v := range db.buildings {
		snap.buildings[k] = v
	}
	for k, v := range db.rooms {
		snap.rooms[k] = v
	}
	for k, v := range db.tenants {
		snap.tenants[k] = v
	}
	for k, v := range db.leases {
		snap.leases[k] = v
	}
	for k, v := range db.amendments {
		snap.amendments[k] = v
	}
	copy(snap.rates, db.rates)
	copy(snap.transactions, db.transactions)
	for k, v := range db.expenses {
		snap.expenses[k] = v
	}
	return snap
}

func (db *memoryDB) restore(snap *memoryDB) {
	db.nextID = snap.nextID
	db.buildings = snap.buildings
	db.rooms = snap.rooms
	db.tenants = snap.tenants
	db.leases = snap.leases
	db.amendments = snap.amendments
	db.rates = snap.rates
	db.transactions = snap.transactions
	db.expenses = snap.expenses
}

// NewMemoryStore tạo Store chạy hoàn toàn trong bộ nhớ
func NewMemoryStore() *Store {
	db := &memoryDB{
		nextID:     map[string]uint{},
		buildings:  map[uint]models.Building{},
		rooms:      map[uint]models.Room{},
		tenants:    map[uint]models.Tenant{},
		leases:     map[uint]models.Lease{},
		amendments: map[uint]models.RentAmendment{},
		expenses:   map[uint]models.Expense{},
	}
	s := &Store{
		Buildings:    &memBuildingRepo{db: db},
		Rooms:        &memRoomRepo{db: db},
		Tenants:      &memTenantRepo{db: db},
		Leases:       &memLeaseRepo{db: db},
		Amendments:   &memAmendmentRepo{db: db},
		Rates:        &memRateRepo{db: db},
		Transactions: &memTransactionRepo{db: db},
		Expenses:     &memExpenseRepo{db: db},
	}
	s.Atomic = func(fn func(tx *Store) error) error {
		db.txMu.Lock()
		defer db.txMu.Unlock()
		db.mu.Lock()
		snap := db.snapshot()
		db.mu.Unlock()
		if err := fn(s); err != nil {
			db.mu.Lock()
			db.restore(snap)
			db.mu.Unlock()
			return err
		}
		return nil
	}
	return s
}

func (db *memoryDB) id(collection string) uint {
	db.nextID[collection]++
	return db.nextID[collection]
}

type memBuildingRepo struct{ db *memoryDB }

func (r *memBuildingRepo) Create(b *models.Building) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b.ID = r.db.id("buildings")
	b.CreatedAt = time.Now()
	r.db.buildings[b.ID] = *b
	return nil
}

func (r *memBuildingRepo) GetByID(id uint) (*models.Building, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.buildings[id]
	if !ok {
		return nil, apperrors.ErrBuildingNotFound
	}
	return &b, nil
}

func (r *memBuildingRepo) List(page, limit int) ([]models.Building, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := make([]models.Building, 0, len(r.db.buildings))
	for _, b := range r.db.buildings {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, page, limit), len(all), nil
}

func (r *memBuildingRepo) Delete(id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.buildings, id)
	return nil
}

type memRoomRepo struct{ db *memoryDB }

func (r *memRoomRepo) Create(room *models.Room) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	room.ID = r.db.id("rooms")
	room.CreatedAt = time.Now()
	r.db.rooms[room.ID] = *room
	return nil
}

func (r *memRoomRepo) GetByID(id uint) (*models.Room, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	room, ok := r.db.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return &room, nil
}

func (r *memRoomRepo) Update(id uint, patch RoomPatch) (*models.Room, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	room, ok := r.db.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
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
	room.UpdatedAt = time.Now()
	r.db.rooms[id] = room
	return &room, nil
}

func (r *memRoomRepo) List() ([]models.Room, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := make([]models.Room, 0, len(r.db.rooms))
	for _, room := range r.db.rooms {
		all = append(all, room)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *memRoomRepo) Count() (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.rooms), nil
}

func (r *memRoomRepo) SetMeterReading(id uint, reading int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	room, ok := r.db.rooms[id]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	room.LastMeterReading = reading
	room.UpdatedAt = time.Now()
	r.db.rooms[id] = room
	return nil
}

func (r *memRoomRepo) Delete(id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.rooms, id)
	return nil
}

type memTenantRepo struct{ db *memoryDB }

func (r *memTenantRepo) Create(t *models.Tenant) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.tenants {
		if existing.GovernmentID == t.GovernmentID {
			return apperrors.NewAppError(apperrors.ErrCodeDBDuplicate, "Số CCCD đã tồn tại", nil)
		}
	}
	t.ID = r.db.id("tenants")
	t.CreatedAt = time.Now()
	for i := range t.EmergencyContacts {
		t.EmergencyContacts[i].ID = r.db.id("emergency_contacts")
		t.EmergencyContacts[i].TenantID = t.ID
	}
	r.db.tenants[t.ID] = *t
	return nil
}

func (r *memTenantRepo) GetByID(id uint) (*models.Tenant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.tenants[id]
	if !ok {
		return nil, apperrors.ErrTenantNotFound
	}
	return &t, nil
}

func (r *memTenantRepo) GetByGovernmentID(governmentID string) (*models.Tenant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.tenants {
		if strings.EqualFold(t.GovernmentID, governmentID) {
			return &t, nil
		}
	}
	return nil, apperrors.ErrTenantNotFound
}

func (r *memTenantRepo) Update(id uint, patch TenantPatch) (*models.Tenant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.tenants[id]
	if !ok {
		return nil, apperrors.ErrTenantNotFound
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
	t.UpdatedAt = time.Now()
	r.db.tenants[id] = t
	return &t, nil
}

func (r *memTenantRepo) List(page, limit int) ([]models.Tenant, int, error) {
	all, _ := r.ListAll()
	return paginate(all, page, limit), len(all), nil
}

func (r *memTenantRepo) ListAll() ([]models.Tenant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := make([]models.Tenant, 0, len(r.db.tenants))
	for _, t := range r.db.tenants {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *memTenantRepo) Delete(id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	// Người liên hệ khẩn cấp nằm trong bản ghi khách thuê nên xóa theo luôn
	delete(r.db.tenants, id)
	return nil
}

type memLeaseRepo struct{ db *memoryDB }

func (r *memLeaseRepo) Create(l *models.Lease) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l.ID = r.db.id("leases")
	l.CreatedAt = time.Now()
	r.db.leases[l.ID] = *l
	return nil
}

func (r *memLeaseRepo) GetByID(id uint) (*models.Lease, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l, ok := r.db.leases[id]
	if !ok {
		return nil, apperrors.ErrLeaseNotFound
	}
	if tenant, ok := r.db.tenants[l.TenantID]; ok {
		l.Tenant = tenant
	}
	if room, ok := r.db.rooms[l.RoomID]; ok {
		l.Room = room
	}
	return &l, nil
}

func (r *memLeaseRepo) List(page, limit int) ([]models.Lease, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := make([]models.Lease, 0, len(r.db.leases))
	for _, l := range r.db.leases {
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return paginate(all, page, limit), len(all), nil
}

func (r *memLeaseRepo) ListByRoom(roomID uint) ([]models.Lease, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var leases []models.Lease
	for _, l := range r.db.leases {
		if l.RoomID == roomID {
			leases = append(leases, l)
		}
	}
	sort.Slice(leases, func(i, j int) bool { return leases[i].ID < leases[j].ID })
	return leases, nil
}

func (r *memLeaseRepo) ListByStatus(status int) ([]models.Lease, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var leases []models.Lease
	for _, l := range r.db.leases {
		if l.Status == status {
			leases = append(leases, l)
		}
	}
	sort.Slice(leases, func(i, j int) bool { return leases[i].ID < leases[j].ID })
	return leases, nil
}

func (r *memLeaseRepo) CountActiveByRoom(roomID uint) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	count := 0
	for _, l := range r.db.leases {
		if l.RoomID == roomID && l.Status == constants.LeaseStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *memLeaseRepo) Transition(id uint, fromStatuses []int, patch LeaseTransition) (*models.Lease, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	l, ok := r.db.leases[id]
	if !ok {
		return nil, apperrors.ErrLeaseNotFound
	}
	matched := false
	for _, s := range fromStatuses {
		if l.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return nil, apperrors.ErrLeaseStatusChanged
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.MonthlyRent != nil {
		l.MonthlyRent = *patch.MonthlyRent
	}
	if patch.SubmittedAt != nil {
		l.SubmittedAt = patch.SubmittedAt
	}
	if patch.EndDate != nil {
		l.EndDate = *patch.EndDate
	}
	if patch.TerminatedAt != nil {
		l.TerminatedAt = patch.TerminatedAt
	}
	if patch.TerminationReason != nil {
		l.TerminationReason = *patch.TerminationReason
	}
	l.UpdatedAt = time.Now()
	r.db.leases[id] = l
	return &l, nil
}

type memAmendmentRepo struct{ db *memoryDB }

func (r *memAmendmentRepo) Create(a *models.RentAmendment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a.ID = r.db.id("amendments")
	a.CreatedAt = time.Now()
	r.db.amendments[a.ID] = *a
	return nil
}

func (r *memAmendmentRepo) ListByLease(leaseID uint) ([]models.RentAmendment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var amendments []models.RentAmendment
	for _, a := range r.db.amendments {
		if a.LeaseID == leaseID {
			amendments = append(amendments, a)
		}
	}
	sort.Slice(amendments, func(i, j int) bool { return amendments[i].ID < amendments[j].ID })
	return amendments, nil
}

type memRateRepo struct{ db *memoryDB }

func (r *memRateRepo) Create(rate *models.ElectricityRate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rate.ID = r.db.id("rates")
	rate.CreatedAt = time.Now()
	r.db.rates = append(r.db.rates, *rate)
	return nil
}

func (r *memRateRepo) List() ([]models.ElectricityRate, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rates := make([]models.ElectricityRate, len(r.db.rates))
	copy(rates, r.db.rates)
	return rates, nil
}

func (r *memRateRepo) Delete(id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, rate := range r.db.rates {
		if rate.ID == id {
			r.db.rates = append(r.db.rates[:i], r.db.rates[i+1:]...)
			return nil
		}
	}
	return nil
}

type memTransactionRepo struct{ db *memoryDB }

func (r *memTransactionRepo) Create(t *models.Transaction) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t.ID = r.db.id("transactions")
	t.CreatedAt = time.Now()
	// Chèn lên đầu: hợp đồng đọc sổ là mới nhất trước
	r.db.transactions = append([]models.Transaction{*t}, r.db.transactions...)
	return nil
}

func (r *memTransactionRepo) GetByID(id uint) (*models.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.transactions {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

func (r *memTransactionRepo) List(page, limit int) ([]models.Transaction, int, error) {
	all, _ := r.ListAll()
	return paginate(all, page, limit), len(all), nil
}

func (r *memTransactionRepo) ListAll() ([]models.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := make([]models.Transaction, len(r.db.transactions))
	copy(all, r.db.transactions)
	return all, nil
}

func (r *memTransactionRepo) ListByLease(leaseID uint) ([]models.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var transactions []models.Transaction
	for _, t := range r.db.transactions {
		if t.LeaseID != nil && *t.LeaseID == leaseID {
			transactions = append(transactions, t)
		}
	}
	return transactions, nil
}

func (r *memTransactionRepo) MarkPaid(id uint, method int, paidDate time.Time) (*models.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, t := range r.db.transactions {
		if t.ID != id {
			continue
		}
		if t.Status == constants.TransactionStatusPaid {
			return nil, apperrors.ErrAlreadyPaid
		}
		t.Status = constants.TransactionStatusPaid
		t.Method = &method
		t.PaidAt = &paidDate
		t.UpdatedAt = time.Now()
		r.db.transactions[i] = t
		return &t, nil
	}
	return nil, apperrors.ErrTransactionNotFound
}

func (r *memTransactionRepo) Delete(id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, t := range r.db.transactions {
		if t.ID == id {
			r.db.transactions = append(r.db.transactions[:i], r.db.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memTransactionRepo) CountByStatus(status int) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	count := 0
	for _, t := range r.db.transactions {
		if t.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *memTransactionRepo) MarkOverdueBefore(now time.Time) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	changed := 0
	for i, t := range r.db.transactions {
		if t.Status == constants.TransactionStatusPending && t.DueDate.Before(now) {
			t.Status = constants.TransactionStatusOverdue
			t.UpdatedAt = time.Now()
			r.db.transactions[i] = t
			changed++
		}
	}
	return changed, nil
}

type memExpenseRepo struct{ db *memoryDB }

func (r *memExpenseRepo) Create(e *models.Expense) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e.ID = r.db.id("expenses")
	e.CreatedAt = time.Now()
	r.db.expenses[e.ID] = *e
	return nil
}

func (r *memExpenseRepo) GetByID(id uint) (*models.Expense, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.expenses[id]
	if !ok {
		return nil, apperrors.ErrExpenseNotFound
	}
	return &e, nil
}

func (r *memExpenseRepo) List(page, limit int) ([]models.Expense, int, error) {
	all, _ := r.ListAll()
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return paginate(all, page, limit), len(all), nil
}

func (r *memExpenseRepo) ListAll() ([]models.Expense, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := make([]models.Expense, 0, len(r.db.expenses))
	for _, e := range r.db.expenses {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *memExpenseRepo) Delete(id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.expenses, id)
	return nil
}

func paginate[T any](all []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(all)
	}
	start := (page - 1) * limit
	if start >= len(all) {
		return []T{}
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
