package services

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// fakeTx stands in for a database transaction. Only identity matters to the fake store.
type fakeTx struct {
	pgx.Tx
	id int
}

type stagedWrites struct {
	rows     []domain.Transaction
	counters map[string]int64
	paid     map[string]time.Time
}

// fakeLedgerStore is an in-memory ledger whose writes only become visible on Commit.
type fakeLedgerStore struct {
	mu       sync.Mutex
	nextTx   int
	staged   map[int]*stagedWrites
	rows     []domain.Transaction
	counters map[string]int64
	accounts map[string]domain.BankAccount
	missions map[string]domain.Mission
	payments []domain.Payment

	beginErr error
	syncErr  error
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		staged:   make(map[int]*stagedWrites),
		counters: make(map[string]int64),
		accounts: make(map[string]domain.BankAccount),
		missions: make(map[string]domain.Mission),
	}
}

func (f *fakeLedgerStore) addAccount(id string, currency domain.Currency, active bool) {
	f.accounts[id] = domain.BankAccount{ID: id, AccountName: "Account " + id, Currency: currency, IsActive: active}
}

// seedRow commits a row directly, bypassing the counters, as an import would.
func (f *fakeLedgerStore) seedRow(number string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, domain.Transaction{ID: "seed-" + number, TransactionNumber: number})
}

func (f *fakeLedgerStore) committedRows() []domain.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Transaction, len(f.rows))
	copy(out, f.rows)
	return out
}

func (f *fakeLedgerStore) stagedFor(tx pgx.Tx) *stagedWrites {
	ft, ok := tx.(*fakeTx)
	if !ok {
		return nil
	}
	return f.staged[ft.id]
}

// --- TransactionManager ---

func (f *fakeLedgerStore) Begin(ctx context.Context) (pgx.Tx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.nextTx++
	f.staged[f.nextTx] = &stagedWrites{counters: map[string]int64{}, paid: map[string]time.Time{}}
	return &fakeTx{id: f.nextTx}, nil
}

func (f *fakeLedgerStore) Commit(ctx context.Context, tx pgx.Tx) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.stagedFor(tx)
	if st == nil {
		return pgx.ErrTxClosed
	}
	f.rows = append(f.rows, st.rows...)
	for k, v := range st.counters {
		f.counters[k] = v
	}
	for id, at := range st.paid {
		paidAt := at
		m := f.missions[id]
		m.PaidAt = &paidAt
		f.missions[id] = m
	}
	delete(f.staged, tx.(*fakeTx).id)
	return nil
}

func (f *fakeLedgerStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ft, ok := tx.(*fakeTx); ok {
		delete(f.staged, ft.id)
	}
	return nil
}

// --- SequenceRepository ---

func (f *fakeLedgerStore) NextSequenceValue(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tx == nil {
		f.counters[prefix]++
		return f.counters[prefix], nil
	}
	st := f.stagedFor(tx)
	if st == nil {
		return 0, pgx.ErrTxClosed
	}
	current, ok := st.counters[prefix]
	if !ok {
		current = f.counters[prefix]
	}
	st.counters[prefix] = current + 1
	return current + 1, nil
}

func (f *fakeLedgerStore) SyncSequenceWithTransactions(ctx context.Context, prefix string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.syncErr != nil {
		return 0, f.syncErr
	}
	for _, r := range f.rows {
		if !strings.HasPrefix(r.TransactionNumber, prefix) {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimPrefix(r.TransactionNumber, prefix), 10, 64)
		if err == nil && n > f.counters[prefix] {
			f.counters[prefix] = n
		}
	}
	return f.counters[prefix], nil
}

// --- TransactionWriter ---

func (f *fakeLedgerStore) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.stagedFor(tx)
	if st == nil {
		return pgx.ErrTxClosed
	}
	used := make(map[string]bool)
	for _, r := range append(append([]domain.Transaction{}, f.rows...), st.rows...) {
		used[r.TransactionNumber] = true
	}
	for _, t := range txns {
		if used[t.TransactionNumber] {
			return apperrors.NewAppError(http.StatusConflict, "transaction number already used", apperrors.ErrDuplicate)
		}
		used[t.TransactionNumber] = true
	}
	st.rows = append(st.rows, txns...)
	return nil
}

// --- TransactionReader ---

func (f *fakeLedgerStore) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == transactionID {
			out := r
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFoundError("transaction " + transactionID)
}

func (f *fakeLedgerStore) matching(filter domain.TransactionFilter) []domain.Transaction {
	var out []domain.Transaction
	for _, r := range f.rows {
		if filter.AccountID != nil && r.EffectOn(*filter.AccountID) == 0 {
			continue
		}
		if filter.Type != nil && r.Type != *filter.Type {
			continue
		}
		if filter.Currency != nil && r.Currency != *filter.Currency {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeLedgerStore) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.matching(filter)
	if filter.Offset >= len(all) {
		return []domain.Transaction{}, nil
	}
	end := min(filter.Offset+filter.Limit, len(all))
	return all[filter.Offset:end], nil
}

func (f *fakeLedgerStore) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.matching(filter)), nil
}

func (f *fakeLedgerStore) SumAccountFlows(ctx context.Context, accountID string) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var credits, debits int64
	for _, r := range f.rows {
		if r.DestinationAccountID != nil && *r.DestinationAccountID == accountID {
			credits += r.Amount
		}
		if r.SourceAccountID != nil && *r.SourceAccountID == accountID {
			debits += r.Amount
		}
	}
	return credits, debits, nil
}

// --- BankAccountReader ---

func (f *fakeLedgerStore) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	acc, ok := f.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("bank account " + accountID)
	}
	return &acc, nil
}

func (f *fakeLedgerStore) FindBankAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.BankAccount, error) {
	out := make(map[string]domain.BankAccount)
	for _, id := range accountIDs {
		if acc, ok := f.accounts[id]; ok {
			out[id] = acc
		}
	}
	return out, nil
}

func (f *fakeLedgerStore) ListActiveBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	var out []domain.BankAccount
	for _, acc := range f.accounts {
		if acc.IsActive {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- MissionRepository ---

func (f *fakeLedgerStore) FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.missions[missionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("mission " + missionID)
	}
	return &m, nil
}

func (f *fakeLedgerStore) MarkMissionPaidInTx(ctx context.Context, tx pgx.Tx, missionID string, paidAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.stagedFor(tx)
	if st == nil {
		return pgx.ErrTxClosed
	}
	current, ok := f.missions[missionID]
	if !ok {
		return apperrors.NewNotFoundError("mission " + missionID)
	}
	if _, staged := st.paid[missionID]; current.PaidAt != nil || staged {
		return apperrors.NewAppError(http.StatusConflict, "mission "+missionID+" already paid", apperrors.ErrConflict)
	}
	if current.Status != domain.MissionValidated {
		return apperrors.NewAppError(http.StatusBadRequest, "mission "+missionID+" is "+string(current.Status), apperrors.ErrValidation)
	}
	st.paid[missionID] = paidAt
	return nil
}

// --- PaymentReader ---

func (f *fakeLedgerStore) FindPaymentsForParties(ctx context.Context, q domain.DuplicatePaymentQuery, from, to time.Time) ([]domain.Payment, error) {
	same := func(want, got *string) bool {
		return want == nil || (got != nil && *got == *want)
	}
	var out []domain.Payment
	for _, p := range f.payments {
		if q.ExcludePaymentID != nil && p.ID == *q.ExcludePaymentID {
			continue
		}
		if !same(q.StudentID, p.StudentID) || !same(q.MentorID, p.MentorID) || !same(q.ProfessorID, p.ProfessorID) {
			continue
		}
		if p.PaymentDate.Before(from) || p.PaymentDate.After(to) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// MockBalanceCache is a mock type for the BalanceCache interface
type MockBalanceCache struct {
	mock.Mock
}

func (m *MockBalanceCache) GetBalance(ctx context.Context, accountID string) (int64, bool, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockBalanceCache) Generation(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceCache) SetBalance(ctx context.Context, accountID string, balance int64, generation int64) (bool, error) {
	args := m.Called(ctx, accountID, balance, generation)
	return args.Bool(0), args.Error(1)
}

func (m *MockBalanceCache) Invalidate(ctx context.Context, accountIDs ...string) error {
	args := m.Called(ctx, accountIDs)
	return args.Error(0)
}

// MockPaymentReader is a mock type for the PaymentReader interface
type MockPaymentReader struct {
	mock.Mock
}

func (m *MockPaymentReader) FindPaymentsForParties(ctx context.Context, q domain.DuplicatePaymentQuery, from, to time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, q, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockSequenceRepository is a mock type for the SequenceRepository interface
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextSequenceValue(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	args := m.Called(ctx, tx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) SyncSequenceWithTransactions(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

var errStoreDown = errors.New("store unavailable")

func strPtr(s string) *string { return &s }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
