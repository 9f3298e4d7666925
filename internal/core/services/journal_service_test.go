package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	portssvc "github.com/kbouri/performup-platform-sub000/internal/core/ports/services"
	"github.com/kbouri/performup-platform-sub000/internal/platform/metrics"
)

const testActor = "user-ops"

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	store   *fakeLedgerStore
	service portssvc.JournalSvcFacade
	ctx     context.Context
	now     time.Time
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)
	suite.store = newFakeLedgerStore()
	suite.store.addAccount("eur-main", domain.CurrencyEUR, true)
	suite.store.addAccount("eur-savings", domain.CurrencyEUR, true)
	suite.store.addAccount("mad-main", domain.CurrencyMAD, true)
	suite.store.addAccount("eur-closed", domain.CurrencyEUR, false)
	suite.service = suite.newService()
}

func (suite *JournalServiceTestSuite) newService(opts ...JournalOption) portssvc.JournalSvcFacade {
	base := BaseService{Metrics: metrics.New(nil), Clock: fixedClock(suite.now)}
	refSvc := NewReferenceService(suite.store, base)
	validator := NewValidationService(suite.store, suite.store, base)
	return NewJournalService(suite.store, suite.store, suite.store, refSvc, validator, base, opts...)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func (suite *JournalServiceTestSuite) studentPayment(amount int64) domain.Payment {
	return domain.Payment{
		ID:            "pay-1",
		Amount:        amount,
		Currency:      domain.CurrencyEUR,
		PaymentDate:   suite.now,
		StudentID:     strPtr("student-1"),
		BankAccountID: strPtr("eur-main"),
	}
}

// --- Payments ---

func (suite *JournalServiceTestSuite) TestCreatePaymentTransaction_SequentialNumbers() {
	first, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(10000), testActor)
	suite.Require().NoError(err)
	second, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(5000), testActor)
	suite.Require().NoError(err)

	suite.Equal("TXN-2025-00001", first.TransactionNumber)
	suite.Equal("TXN-2025-00002", second.TransactionNumber)
	suite.Equal(domain.StudentPayment, first.Type)
	suite.Nil(first.SourceAccountID)
	suite.Equal("eur-main", *first.DestinationAccountID)
	suite.Equal("pay-1", *first.PaymentID)
	suite.Equal(testActor, first.CreatedBy)
	suite.Len(suite.store.committedRows(), 2)
}

func (suite *JournalServiceTestSuite) TestCreatePaymentTransaction_TypePriority() {
	p := suite.studentPayment(10000)
	p.MentorID = strPtr("mentor-1")
	p.ProfessorID = strPtr("prof-1")
	txn, err := suite.service.CreatePaymentTransaction(suite.ctx, p, testActor)
	suite.Require().NoError(err)
	suite.Equal(domain.MentorPayment, txn.Type)

	p.MentorID = nil
	txn, err = suite.service.CreatePaymentTransaction(suite.ctx, p, testActor)
	suite.Require().NoError(err)
	suite.Equal(domain.ProfessorPayment, txn.Type)
}

func (suite *JournalServiceTestSuite) TestCreatePaymentTransaction_Rejections() {
	missing := suite.studentPayment(10000)
	missing.BankAccountID = nil

	wrongCurrency := suite.studentPayment(10000)
	wrongCurrency.BankAccountID = strPtr("mad-main")

	inactive := suite.studentPayment(10000)
	inactive.BankAccountID = strPtr("eur-closed")

	unknown := suite.studentPayment(10000)
	unknown.BankAccountID = strPtr("nope")

	cases := []struct {
		name    string
		payment domain.Payment
		actor   string
		want    error
	}{
		{"missing receiving account", missing, testActor, ErrMissingReceivingAccount},
		{"zero amount", suite.studentPayment(0), testActor, ErrNonPositiveAmount},
		{"currency mismatch", wrongCurrency, testActor, ErrCurrencyMismatch},
		{"inactive account", inactive, testActor, ErrAccountInactive},
		{"unknown account", unknown, testActor, ErrAccountNotFound},
		{"missing actor", suite.studentPayment(10000), "", ErrMissingActor},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			txn, err := suite.service.CreatePaymentTransaction(suite.ctx, tc.payment, tc.actor)
			suite.Nil(txn)
			suite.ErrorIs(err, tc.want)
		})
	}
	suite.Empty(suite.store.committedRows())
}

// --- Balances ---

func (suite *JournalServiceTestSuite) TestBalanceIdentity() {
	_, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(10000), testActor)
	suite.Require().NoError(err)

	_, err = suite.service.CreateExpenseTransaction(suite.ctx, domain.Expense{
		ID:              "exp-1",
		Amount:          2500,
		Currency:        domain.CurrencyEUR,
		ExpenseDate:     suite.now,
		PayingAccountID: strPtr("eur-main"),
		Category:        "Software",
	}, testActor)
	suite.Require().NoError(err)

	_, err = suite.service.CreateTransferTransaction(suite.ctx, domain.TransferParams{
		Date:                 suite.now,
		SourceAccountID:      "eur-main",
		DestinationAccountID: "eur-savings",
		Amount:               4000,
		Currency:             domain.CurrencyEUR,
		CreatedBy:            testActor,
	})
	suite.Require().NoError(err)

	mainBalance, err := suite.service.CalculateAccountBalance(suite.ctx, "eur-main")
	suite.Require().NoError(err)
	suite.Equal(int64(3500), mainBalance)

	savings, err := suite.service.CalculateAccountBalance(suite.ctx, "eur-savings")
	suite.Require().NoError(err)
	suite.Equal(int64(4000), savings)

	// Sum of EffectOn over all rows must agree with the aggregate.
	var effect int64
	for _, r := range suite.store.committedRows() {
		effect += r.EffectOn("eur-main")
	}
	suite.Equal(mainBalance, effect)

	totals, err := suite.service.CalculateTotalsByCurrency(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(map[domain.Currency]int64{
		domain.CurrencyEUR: 7500,
		domain.CurrencyMAD: 0,
		domain.CurrencyUSD: 0,
	}, totals)
}

func (suite *JournalServiceTestSuite) TestCalculateAccountBalance_ClosedAccount() {
	balance, err := suite.service.CalculateAccountBalance(suite.ctx, "eur-closed")
	suite.Require().NoError(err)
	suite.Equal(int64(0), balance)

	acc, err := suite.service.GetBankAccount(suite.ctx, "eur-closed")
	suite.Require().NoError(err)
	suite.False(acc.IsActive)
}

func (suite *JournalServiceTestSuite) TestCalculateAccountBalance_UnknownAccount() {
	_, err := suite.service.CalculateAccountBalance(suite.ctx, "nope")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- FX ---

func (suite *JournalServiceTestSuite) fxParams() domain.FXExchangeParams {
	return domain.FXExchangeParams{
		Date:                 suite.now,
		SourceAccountID:      "eur-main",
		DestinationAccountID: "mad-main",
		SourceAmount:         100000,
		SourceCurrency:       domain.CurrencyEUR,
		DestinationAmount:    1085000,
		DestinationCurrency:  domain.CurrencyMAD,
		ExchangeRate:         decimal.RequireFromString("10.85"),
		Fees:                 1500,
		CreatedBy:            testActor,
	}
}

func (suite *JournalServiceTestSuite) TestCreateFXTransactions_LinkedLegs() {
	legs, err := suite.service.CreateFXTransactions(suite.ctx, suite.fxParams())
	suite.Require().NoError(err)
	suite.Require().Len(legs, 2)

	out, in := legs[0], legs[1]
	suite.Equal(domain.FXExchange, out.Type)
	suite.Equal(domain.CurrencyEUR, out.Currency)
	suite.Equal(int64(100000), out.Amount)
	suite.Equal("eur-main", *out.SourceAccountID)
	suite.Nil(out.DestinationAccountID)
	suite.Equal(int64(1500), *out.FXFees)
	suite.Nil(out.LinkedTransactionID)

	suite.Equal(domain.CurrencyMAD, in.Currency)
	suite.Equal(int64(1085000), in.Amount)
	suite.Equal("mad-main", *in.DestinationAccountID)
	suite.Nil(in.SourceAccountID)
	suite.Nil(in.FXFees)
	suite.Require().NotNil(in.LinkedTransactionID)
	suite.Equal(out.ID, *in.LinkedTransactionID)
	suite.True(in.ExchangeRate.Equal(decimal.RequireFromString("10.85")))

	suite.Equal("TXN-2025-00001", out.TransactionNumber)
	suite.Equal("TXN-2025-00002", in.TransactionNumber)

	eur, err := suite.service.CalculateAccountBalance(suite.ctx, "eur-main")
	suite.Require().NoError(err)
	suite.Equal(int64(-100000), eur)
	mad, err := suite.service.CalculateAccountBalance(suite.ctx, "mad-main")
	suite.Require().NoError(err)
	suite.Equal(int64(1085000), mad)
}

func (suite *JournalServiceTestSuite) TestCreateFXTransactions_Rejections() {
	same := suite.fxParams()
	same.DestinationCurrency = domain.CurrencyEUR
	same.DestinationAccountID = "eur-savings"

	wrongLeg := suite.fxParams()
	wrongLeg.DestinationAccountID = "eur-savings"

	badRate := suite.fxParams()
	badRate.ExchangeRate = decimal.Zero

	cases := []struct {
		name   string
		params domain.FXExchangeParams
		want   error
	}{
		{"same currency", same, ErrSameCurrencyFX},
		{"destination account currency", wrongLeg, ErrCurrencyMismatch},
		{"zero rate", badRate, ErrInvalidExchangeRate},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			legs, err := suite.service.CreateFXTransactions(suite.ctx, tc.params)
			suite.Nil(legs)
			suite.ErrorIs(err, tc.want)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.Empty(suite.store.committedRows())
}

// --- Transfers ---

func (suite *JournalServiceTestSuite) TestCreateTransferTransaction_CurrencyMismatchWritesNothing() {
	_, err := suite.service.CreateTransferTransaction(suite.ctx, domain.TransferParams{
		SourceAccountID:      "eur-main",
		DestinationAccountID: "mad-main",
		Amount:               4000,
		Currency:             domain.CurrencyEUR,
		CreatedBy:            testActor,
	})
	suite.ErrorIs(err, ErrCurrencyMismatch)
	suite.Empty(suite.store.committedRows())

	// The failed transfer did not consume a number.
	txn, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(100), testActor)
	suite.Require().NoError(err)
	suite.Equal("TXN-2025-00001", txn.TransactionNumber)
}

func (suite *JournalServiceTestSuite) TestCreateTransferTransaction_SameAccount() {
	_, err := suite.service.CreateTransferTransaction(suite.ctx, domain.TransferParams{
		SourceAccountID:      "eur-main",
		DestinationAccountID: "eur-main",
		Amount:               4000,
		Currency:             domain.CurrencyEUR,
		CreatedBy:            testActor,
	})
	suite.ErrorIs(err, ErrSameAccountTransfer)
}

// --- Missions ---

func (suite *JournalServiceTestSuite) validatedMission() domain.Mission {
	hours := decimal.NewFromInt(4)
	return domain.Mission{
		ID:          "mission-1",
		Title:       "GMAT coaching",
		Status:      domain.MissionValidated,
		Amount:      60000,
		Currency:    domain.CurrencyEUR,
		HoursWorked: &hours,
		MentorID:    strPtr("mentor-1"),
		StudentID:   strPtr("student-1"),
		MissionDate: suite.now,
	}
}

func (suite *JournalServiceTestSuite) TestCreateMissionPaymentTransaction_PaysOnce() {
	suite.store.missions["mission-1"] = suite.validatedMission()

	txn, err := suite.service.CreateMissionPaymentTransaction(suite.ctx, domain.Mission{ID: "mission-1"}, "eur-main", testActor)
	suite.Require().NoError(err)
	suite.Equal(domain.MentorPayment, txn.Type)
	suite.Equal(int64(60000), txn.Amount)
	suite.Equal("eur-main", *txn.SourceAccountID)
	suite.Nil(txn.DestinationAccountID)
	suite.Equal("mission-1", *txn.MissionID)
	suite.Require().NotNil(suite.store.missions["mission-1"].PaidAt)
	suite.Equal(suite.now, *suite.store.missions["mission-1"].PaidAt)

	_, err = suite.service.CreateMissionPaymentTransaction(suite.ctx, domain.Mission{ID: "mission-1"}, "eur-main", testActor)
	suite.ErrorIs(err, ErrMissionAlreadyPaid)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Len(suite.store.committedRows(), 1)
}

func (suite *JournalServiceTestSuite) TestCreateMissionPaymentTransaction_IgnoresCallerSnapshot() {
	draft := suite.validatedMission()
	draft.Status = domain.MissionDraft
	suite.store.missions["mission-1"] = draft

	claimed := suite.validatedMission()
	claimed.Amount = 1
	_, err := suite.service.CreateMissionPaymentTransaction(suite.ctx, claimed, "eur-main", testActor)
	suite.ErrorIs(err, ErrMissionNotValidated)
	suite.Empty(suite.store.committedRows())
	suite.Nil(suite.store.missions["mission-1"].PaidAt)

	suite.store.missions["mission-1"] = suite.validatedMission()
	txn, err := suite.service.CreateMissionPaymentTransaction(suite.ctx, claimed, "eur-main", testActor)
	suite.Require().NoError(err)
	suite.Equal(int64(60000), txn.Amount)
}

func (suite *JournalServiceTestSuite) TestCreateMissionPaymentTransaction_Rejections() {
	pending := suite.validatedMission()
	pending.ID = "mission-pending"
	pending.Status = domain.MissionPending
	suite.store.missions[pending.ID] = pending

	paid := suite.validatedMission()
	paid.ID = "mission-paid"
	paidAt := suite.now.Add(-time.Hour)
	paid.PaidAt = &paidAt
	suite.store.missions[paid.ID] = paid

	suite.store.missions["mission-1"] = suite.validatedMission()

	_, err := suite.service.CreateMissionPaymentTransaction(suite.ctx, pending, "eur-main", testActor)
	suite.ErrorIs(err, ErrMissionNotValidated)

	_, err = suite.service.CreateMissionPaymentTransaction(suite.ctx, paid, "eur-main", testActor)
	suite.ErrorIs(err, ErrMissionAlreadyPaid)

	_, err = suite.service.CreateMissionPaymentTransaction(suite.ctx, domain.Mission{ID: "ghost"}, "eur-main", testActor)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.CreateMissionPaymentTransaction(suite.ctx, suite.validatedMission(), "", testActor)
	suite.ErrorIs(err, ErrMissingPayingAccount)

	professor := suite.validatedMission()
	professor.ID = "mission-prof"
	professor.MentorID = nil
	professor.ProfessorID = strPtr("prof-1")
	suite.store.missions[professor.ID] = professor
	txn, err := suite.service.CreateMissionPaymentTransaction(suite.ctx, professor, "eur-main", testActor)
	suite.Require().NoError(err)
	suite.Equal(domain.ProfessorPayment, txn.Type)
}

// staleMissions serves a fixed mission record, as a reader racing another writer would see it.
type staleMissions struct {
	*fakeLedgerStore
	snapshot domain.Mission
}

func (s staleMissions) FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error) {
	m := s.snapshot
	return &m, nil
}

func (suite *JournalServiceTestSuite) TestCreateMissionPaymentTransaction_GuardedWrite() {
	base := BaseService{Metrics: metrics.New(nil), Clock: fixedClock(suite.now)}
	validator := NewValidationService(suite.store, suite.store, base)
	svc := NewJournalService(suite.store, suite.store, staleMissions{suite.store, suite.validatedMission()},
		NewReferenceService(suite.store, base), validator, base)

	suite.Run("paid concurrently", func() {
		paid := suite.validatedMission()
		paidAt := suite.now.Add(-time.Minute)
		paid.PaidAt = &paidAt
		suite.store.missions["mission-1"] = paid

		_, err := svc.CreateMissionPaymentTransaction(suite.ctx, domain.Mission{ID: "mission-1"}, "eur-main", testActor)
		suite.ErrorIs(err, ErrMissionAlreadyPaid)
	})

	suite.Run("cancelled concurrently", func() {
		cancelled := suite.validatedMission()
		cancelled.Status = domain.MissionCancelled
		suite.store.missions["mission-1"] = cancelled

		_, err := svc.CreateMissionPaymentTransaction(suite.ctx, domain.Mission{ID: "mission-1"}, "eur-main", testActor)
		suite.ErrorIs(err, ErrMissionNotValidated)
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.Empty(suite.store.committedRows())
}

// --- Distributions & expenses ---

func (suite *JournalServiceTestSuite) TestCreateDistributionTransaction() {
	txn, err := suite.service.CreateDistributionTransaction(suite.ctx, "dist-1", "eur-main", 30000, domain.CurrencyEUR, testActor)
	suite.Require().NoError(err)
	suite.Equal(domain.Distribution, txn.Type)
	suite.Equal("eur-main", *txn.SourceAccountID)
	suite.Nil(txn.DestinationAccountID)
	suite.Equal("dist-1", *txn.DistributionID)
}

func (suite *JournalServiceTestSuite) TestCreateExpenseTransaction_MissingPayingAccount() {
	_, err := suite.service.CreateExpenseTransaction(suite.ctx, domain.Expense{
		ID:       "exp-1",
		Amount:   2500,
		Currency: domain.CurrencyEUR,
	}, testActor)
	suite.ErrorIs(err, ErrMissingPayingAccount)
}

// --- Numbering retries ---

func (suite *JournalServiceTestSuite) TestPersist_CounterBehindStoredNumbers() {
	suite.store.seedRow("TXN-2025-00001")
	suite.store.seedRow("TXN-2025-00002")

	txn, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(100), testActor)
	suite.Require().NoError(err)
	suite.Equal("TXN-2025-00003", txn.TransactionNumber)

	next, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(200), testActor)
	suite.Require().NoError(err)
	suite.Equal("TXN-2025-00004", next.TransactionNumber)
	suite.Len(suite.store.committedRows(), 4)
}

func (suite *JournalServiceTestSuite) TestPersist_FXSecondLegClash() {
	suite.store.seedRow("TXN-2025-00002")

	legs, err := suite.service.CreateFXTransactions(suite.ctx, suite.fxParams())
	suite.Require().NoError(err)
	suite.Equal("TXN-2025-00003", legs[0].TransactionNumber)
	suite.Equal("TXN-2025-00004", legs[1].TransactionNumber)
	suite.Equal(legs[0].ID, *legs[1].LinkedTransactionID)
}

func (suite *JournalServiceTestSuite) TestPersist_GivesUpWhenCounterCannotBeRepaired() {
	suite.store.seedRow("TXN-2025-00001")
	suite.store.syncErr = errStoreDown

	_, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(100), testActor)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Len(suite.store.committedRows(), 1)
}

func (suite *JournalServiceTestSuite) TestPersist_BeginFailure() {
	suite.store.beginErr = errStoreDown
	_, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(100), testActor)
	suite.ErrorIs(err, errStoreDown)
}

// --- Reads ---

func (suite *JournalServiceTestSuite) TestGetTransactions_PaginatesWithAccounts() {
	for i := 0; i < 3; i++ {
		p := suite.studentPayment(int64(1000 * (i + 1)))
		p.PaymentDate = suite.now.AddDate(0, 0, i)
		_, err := suite.service.CreatePaymentTransaction(suite.ctx, p, testActor)
		suite.Require().NoError(err)
	}

	page, err := suite.service.GetTransactions(suite.ctx, domain.TransactionFilter{AccountID: strPtr("eur-main"), Limit: 2})
	suite.Require().NoError(err)
	suite.Equal(3, page.Total)
	suite.True(page.HasMore)
	suite.Require().Len(page.Transactions, 2)
	suite.Equal(int64(3000), page.Transactions[0].Amount)
	suite.Require().NotNil(page.Transactions[0].DestinationAccount)
	suite.Equal("Account eur-main", page.Transactions[0].DestinationAccount.AccountName)
	suite.Nil(page.Transactions[0].SourceAccount)

	page, err = suite.service.GetTransactions(suite.ctx, domain.TransactionFilter{AccountID: strPtr("eur-main"), Limit: 2, Offset: 2})
	suite.Require().NoError(err)
	suite.False(page.HasMore)
	suite.Len(page.Transactions, 1)
}

func (suite *JournalServiceTestSuite) TestGetTransaction() {
	created, err := suite.service.CreatePaymentTransaction(suite.ctx, suite.studentPayment(100), testActor)
	suite.Require().NoError(err)

	found, err := suite.service.GetTransaction(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal(created.TransactionNumber, found.TransactionNumber)
	suite.Equal(domain.CurrencyEUR, found.DestinationAccount.Currency)

	_, err = suite.service.GetTransaction(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Balance cache ---

func TestJournalService_BalanceCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	store := newFakeLedgerStore()
	store.addAccount("eur-main", domain.CurrencyEUR, true)

	cache := new(MockBalanceCache)
	base := BaseService{Clock: fixedClock(now)}
	validator := NewValidationService(store, store, base)
	svc := NewJournalService(store, store, store, NewReferenceService(store, base), validator, base, WithBalanceCache(cache))

	t.Run("hit skips the ledger", func(t *testing.T) {
		cache.On("GetBalance", mock.Anything, "eur-main").Return(int64(4242), true, nil).Once()
		balance, err := svc.CalculateAccountBalance(ctx, "eur-main")
		require.NoError(t, err)
		assert.Equal(t, int64(4242), balance)
	})

	t.Run("writes invalidate touched accounts", func(t *testing.T) {
		cache.On("Invalidate", mock.Anything, []string{"eur-main"}).Return(nil).Once()
		_, err := svc.CreatePaymentTransaction(ctx, domain.Payment{
			ID:            "pay-1",
			Amount:        700,
			Currency:      domain.CurrencyEUR,
			StudentID:     strPtr("student-1"),
			BankAccountID: strPtr("eur-main"),
		}, testActor)
		require.NoError(t, err)
	})

	t.Run("miss recomputes and stores", func(t *testing.T) {
		cache.On("GetBalance", mock.Anything, "eur-main").Return(int64(0), false, nil).Once()
		cache.On("Generation", mock.Anything, "eur-main").Return(int64(1), nil).Once()
		cache.On("SetBalance", mock.Anything, "eur-main", int64(700), int64(1)).Return(true, nil).Once()
		balance, err := svc.CalculateAccountBalance(ctx, "eur-main")
		require.NoError(t, err)
		assert.Equal(t, int64(700), balance)
	})

	t.Run("cache failure falls back to the ledger", func(t *testing.T) {
		cache.On("GetBalance", mock.Anything, "eur-main").Return(int64(0), false, errStoreDown).Once()
		cache.On("Generation", mock.Anything, "eur-main").Return(int64(1), nil).Once()
		cache.On("SetBalance", mock.Anything, "eur-main", int64(700), int64(1)).Return(false, errStoreDown).Once()
		balance, err := svc.CalculateAccountBalance(ctx, "eur-main")
		require.NoError(t, err)
		assert.Equal(t, int64(700), balance)
	})

	t.Run("invalidated while computing is not cached", func(t *testing.T) {
		cache.On("GetBalance", mock.Anything, "eur-main").Return(int64(0), false, nil).Once()
		cache.On("Generation", mock.Anything, "eur-main").Return(int64(1), nil).Once()
		cache.On("SetBalance", mock.Anything, "eur-main", int64(700), int64(1)).Return(false, nil).Once()
		balance, err := svc.CalculateAccountBalance(ctx, "eur-main")
		require.NoError(t, err)
		assert.Equal(t, int64(700), balance)
	})

	t.Run("generation failure skips caching", func(t *testing.T) {
		cache.On("GetBalance", mock.Anything, "eur-main").Return(int64(0), false, nil).Once()
		cache.On("Generation", mock.Anything, "eur-main").Return(int64(0), errStoreDown).Once()
		balance, err := svc.CalculateAccountBalance(ctx, "eur-main")
		require.NoError(t, err)
		assert.Equal(t, int64(700), balance)
	})

	t.Run("recompute bypasses the cache", func(t *testing.T) {
		cache.On("Generation", mock.Anything, "eur-main").Return(int64(1), nil).Once()
		cache.On("SetBalance", mock.Anything, "eur-main", int64(700), int64(1)).Return(true, nil).Once()
		balance, err := svc.RecomputeAccountBalance(ctx, "eur-main")
		require.NoError(t, err)
		assert.Equal(t, int64(700), balance)
	})

	cache.AssertExpectations(t)
}
