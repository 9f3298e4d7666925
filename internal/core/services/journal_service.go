package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	portssvc "github.com/kbouri/performup-platform-sub000/internal/core/ports/services"
	"github.com/kbouri/performup-platform-sub000/internal/utils/accounting"
	"github.com/kbouri/performup-platform-sub000/internal/utils/ids"
	"github.com/kbouri/performup-platform-sub000/internal/utils/pagination"
)

const (
	// maxNumberingAttempts bounds how often a write unit is replayed after a number clash.
	maxNumberingAttempts = 3
	// balanceWorkers bounds concurrent balance queries when totalling accounts.
	balanceWorkers = 4
)

// journalService records money movements as immutable ledger rows and derives balances from them.
type journalService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryWithTx
	accountRepo portsrepo.BankAccountReader
	missionRepo portsrepo.MissionRepository
	refSvc      portssvc.ReferenceSvc
	validator   portssvc.ValidationSvc
	cache       portsrepo.BalanceCache
}

// JournalOption configures optional journal service dependencies.
type JournalOption func(*journalService)

// WithBalanceCache enables cache-aside balance lookups.
func WithBalanceCache(cache portsrepo.BalanceCache) JournalOption {
	return func(s *journalService) {
		s.cache = cache
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	accountRepo portsrepo.BankAccountReader,
	missionRepo portsrepo.MissionRepository,
	refSvc portssvc.ReferenceSvc,
	validator portssvc.ValidationSvc,
	base BaseService,
	opts ...JournalOption,
) portssvc.JournalSvcFacade {
	s := &journalService{
		BaseService: base,
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		missionRepo: missionRepo,
		refSvc:      refSvc,
		validator:   validator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// --- Writes ---

func (s *journalService) CreatePaymentTransaction(ctx context.Context, payment domain.Payment, createdBy string) (*domain.Transaction, error) {
	if err := s.validator.ValidatePaymentAccount(payment); err != nil {
		return nil, err
	}
	if err := s.checkMovement(payment.Amount, payment.Currency, createdBy); err != nil {
		return nil, err
	}
	if _, err := s.validator.ValidateAccountCurrency(ctx, *payment.BankAccountID, payment.Currency); err != nil {
		return nil, err
	}

	txnType := paymentType(payment)
	row := s.newRow(txnType, payment.Amount, payment.Currency, payment.PaymentDate, paymentDescription(txnType), createdBy)
	row.DestinationAccountID = payment.BankAccountID
	row.PaymentID = domain.StringPtr(payment.ID)
	row.QuoteID = payment.QuoteID
	row.PaymentScheduleID = payment.PaymentScheduleID
	row.StudentID = payment.StudentID
	row.MentorID = payment.MentorID
	row.ProfessorID = payment.ProfessorID
	row.Notes = payment.Notes

	committed, err := s.persist(ctx, []domain.Transaction{row}, nil)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment transaction created",
		slog.String("transaction_number", committed[0].TransactionNumber),
		slog.String("payment_id", payment.ID))
	return &committed[0], nil
}

// paymentType checks mentor, then professor, and falls back to student.
func paymentType(payment domain.Payment) domain.TransactionType {
	switch {
	case payment.MentorID != nil:
		return domain.MentorPayment
	case payment.ProfessorID != nil:
		return domain.ProfessorPayment
	default:
		return domain.StudentPayment
	}
}

func paymentDescription(t domain.TransactionType) string {
	switch t {
	case domain.MentorPayment:
		return "Payment received from mentor"
	case domain.ProfessorPayment:
		return "Payment received from professor"
	default:
		return "Payment received from student"
	}
}

func (s *journalService) CreateExpenseTransaction(ctx context.Context, expense domain.Expense, createdBy string) (*domain.Transaction, error) {
	if expense.PayingAccountID == nil || *expense.PayingAccountID == "" {
		return nil, ErrMissingPayingAccount
	}
	if err := s.checkMovement(expense.Amount, expense.Currency, createdBy); err != nil {
		return nil, err
	}
	if _, err := s.validator.ValidateAccountCurrency(ctx, *expense.PayingAccountID, expense.Currency); err != nil {
		return nil, err
	}

	row := s.newRow(domain.ExpenseTxn, expense.Amount, expense.Currency, expense.ExpenseDate, expenseDescription(expense), createdBy)
	row.SourceAccountID = expense.PayingAccountID
	row.ExpenseID = domain.StringPtr(expense.ID)

	committed, err := s.persist(ctx, []domain.Transaction{row}, nil)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Expense transaction created",
		slog.String("transaction_number", committed[0].TransactionNumber),
		slog.String("expense_id", expense.ID))
	return &committed[0], nil
}

func expenseDescription(e domain.Expense) string {
	desc := "Expense"
	if e.Category != "" {
		desc += " - " + e.Category
	}
	if e.Supplier != nil && *e.Supplier != "" {
		desc += " (" + *e.Supplier + ")"
	}
	if e.Description != "" {
		desc += ": " + e.Description
	}
	return desc
}

// CreateMissionPaymentTransaction pays the stored mission identified by mission.ID. The
// other fields of mission are ignored.
func (s *journalService) CreateMissionPaymentTransaction(ctx context.Context, mission domain.Mission, paymentAccountID string, createdBy string) (*domain.Transaction, error) {
	stored, err := s.GetMission(ctx, mission.ID)
	if err != nil {
		return nil, err
	}
	mission = *stored

	if err := s.validator.ValidateMissionPayment(mission); err != nil {
		return nil, err
	}
	if paymentAccountID == "" {
		return nil, ErrMissingPayingAccount
	}
	if err := s.checkMovement(mission.Amount, mission.Currency, createdBy); err != nil {
		return nil, err
	}
	if _, err := s.validator.ValidateAccountCurrency(ctx, paymentAccountID, mission.Currency); err != nil {
		return nil, err
	}

	row := s.newRow(mission.PayeeType(), mission.Amount, mission.Currency, s.Now(), "Mission payment: "+mission.Title, createdBy)
	row.SourceAccountID = &paymentAccountID
	row.MissionID = &mission.ID
	row.MentorID = mission.MentorID
	row.ProfessorID = mission.ProfessorID
	row.StudentID = mission.StudentID

	paidAt := row.Date
	markPaid := func(ctx context.Context, tx pgx.Tx) error {
		err := s.missionRepo.MarkMissionPaidInTx(ctx, tx, mission.ID, paidAt)
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			return fmt.Errorf("%w: mission %s", ErrMissionAlreadyPaid, mission.ID)
		case errors.Is(err, apperrors.ErrValidation):
			return fmt.Errorf("%w: %w", ErrMissionNotValidated, err)
		}
		return err
	}

	committed, err := s.persist(ctx, []domain.Transaction{row}, markPaid)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Mission payment transaction created",
		slog.String("transaction_number", committed[0].TransactionNumber),
		slog.String("mission_id", mission.ID))
	return &committed[0], nil
}

func (s *journalService) CreateFXTransactions(ctx context.Context, params domain.FXExchangeParams) ([]domain.Transaction, error) {
	if !params.SourceCurrency.IsValid() || !params.DestinationCurrency.IsValid() {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnsupportedCurrency, params.SourceCurrency, params.DestinationCurrency)
	}
	if params.SourceCurrency == params.DestinationCurrency {
		return nil, ErrSameCurrencyFX
	}
	if err := s.validator.ValidatePositiveAmount(params.SourceAmount, "sourceAmount"); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePositiveAmount(params.DestinationAmount, "destinationAmount"); err != nil {
		return nil, err
	}
	if !params.ExchangeRate.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExchangeRate, params.ExchangeRate.String())
	}
	if params.Fees < 0 {
		return nil, ErrNegativeFees
	}
	if params.CreatedBy == "" {
		return nil, ErrMissingActor
	}
	if _, err := s.validator.ValidateAccountCurrency(ctx, params.SourceAccountID, params.SourceCurrency); err != nil {
		return nil, err
	}
	if _, err := s.validator.ValidateAccountCurrency(ctx, params.DestinationAccountID, params.DestinationCurrency); err != nil {
		return nil, err
	}

	desc := params.Description
	if desc == "" {
		desc = fmt.Sprintf("FX exchange %s -> %s at %s", params.SourceCurrency, params.DestinationCurrency, params.ExchangeRate.String())
	}
	rate := params.ExchangeRate
	fees := params.Fees

	out := s.newRow(domain.FXExchange, params.SourceAmount, params.SourceCurrency, params.Date, desc, params.CreatedBy)
	out.SourceAccountID = &params.SourceAccountID
	out.ExchangeRate = &rate
	out.FXFees = &fees
	out.Notes = params.Notes

	in := s.newRow(domain.FXExchange, params.DestinationAmount, params.DestinationCurrency, params.Date, desc, params.CreatedBy)
	in.DestinationAccountID = &params.DestinationAccountID
	in.ExchangeRate = &rate
	in.LinkedTransactionID = &out.ID
	in.Notes = params.Notes

	committed, err := s.persist(ctx, []domain.Transaction{out, in}, nil)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "FX exchange transactions created",
		slog.String("source_number", committed[0].TransactionNumber),
		slog.String("destination_number", committed[1].TransactionNumber))
	return committed, nil
}

func (s *journalService) CreateTransferTransaction(ctx context.Context, params domain.TransferParams) (*domain.Transaction, error) {
	if err := s.checkMovement(params.Amount, params.Currency, params.CreatedBy); err != nil {
		return nil, err
	}
	if params.SourceAccountID == params.DestinationAccountID {
		return nil, ErrSameAccountTransfer
	}
	if _, err := s.validator.ValidateAccountCurrency(ctx, params.SourceAccountID, params.Currency); err != nil {
		return nil, err
	}
	if _, err := s.validator.ValidateAccountCurrency(ctx, params.DestinationAccountID, params.Currency); err != nil {
		return nil, err
	}

	desc := params.Description
	if desc == "" {
		desc = "Transfer between accounts"
	}
	row := s.newRow(domain.Transfer, params.Amount, params.Currency, params.Date, desc, params.CreatedBy)
	row.SourceAccountID = &params.SourceAccountID
	row.DestinationAccountID = &params.DestinationAccountID
	row.Notes = params.Notes

	committed, err := s.persist(ctx, []domain.Transaction{row}, nil)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transfer transaction created", slog.String("transaction_number", committed[0].TransactionNumber))
	return &committed[0], nil
}

func (s *journalService) CreateDistributionTransaction(ctx context.Context, distributionID string, sourceAccountID string, amount int64, currency domain.Currency, createdBy string) (*domain.Transaction, error) {
	if err := s.checkMovement(amount, currency, createdBy); err != nil {
		return nil, err
	}
	if _, err := s.validator.ValidateAccountCurrency(ctx, sourceAccountID, currency); err != nil {
		return nil, err
	}

	row := s.newRow(domain.Distribution, amount, currency, s.Now(), "Profit distribution", createdBy)
	row.SourceAccountID = &sourceAccountID
	row.DistributionID = domain.StringPtr(distributionID)

	committed, err := s.persist(ctx, []domain.Transaction{row}, nil)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Distribution transaction created",
		slog.String("transaction_number", committed[0].TransactionNumber),
		slog.String("distribution_id", distributionID))
	return &committed[0], nil
}

// checkMovement holds the checks shared by every single-leg write.
func (s *journalService) checkMovement(amount int64, currency domain.Currency, createdBy string) error {
	if !currency.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}
	if err := s.validator.ValidatePositiveAmount(amount, "amount"); err != nil {
		return err
	}
	if createdBy == "" {
		return ErrMissingActor
	}
	return nil
}

func (s *journalService) newRow(t domain.TransactionType, amount int64, currency domain.Currency, date time.Time, description, createdBy string) domain.Transaction {
	now := s.Now()
	if date.IsZero() {
		date = now
	}
	return domain.Transaction{
		ID:          ids.NewAt(now),
		Date:        date,
		Type:        t,
		Amount:      amount,
		Currency:    currency,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   now,
	}
}

// afterInsertFunc runs inside the write unit, after the rows are inserted and before commit.
type afterInsertFunc func(ctx context.Context, tx pgx.Tx) error

// persist writes rows as one unit, retrying when a transaction number clashes.
func (s *journalService) persist(ctx context.Context, rows []domain.Transaction, afterInsert afterInsertFunc) ([]domain.Transaction, error) {
	var lastErr error
	for attempt := 1; attempt <= maxNumberingAttempts; attempt++ {
		committed, err := s.persistOnce(ctx, rows, afterInsert)
		if err == nil {
			s.afterCommit(ctx, committed)
			return committed, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		lastErr = err
		s.Metrics.NumberingRetry()
		s.LogWarn(ctx, "Transaction number clash, retrying", slog.Int("attempt", attempt), slog.String("error", err.Error()))
		// The rollback undid this attempt's counter bump, so move the counter past the
		// stored numbers before trying again.
		if err := s.refSvc.ResyncTransactionNumbers(ctx); err != nil {
			s.LogWarn(ctx, "Counter resync failed", slog.Int("attempt", attempt), slog.String("error", err.Error()))
		}
	}
	s.LogError(ctx, lastErr, "Giving up on transaction numbering", slog.Int("attempts", maxNumberingAttempts))
	return nil, fmt.Errorf("could not allocate a unique transaction number after %d attempts: %w", maxNumberingAttempts, lastErr)
}

func (s *journalService) persistOnce(ctx context.Context, rows []domain.Transaction, afterInsert afterInsertFunc) ([]domain.Transaction, error) {
	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin ledger transaction")
		return nil, fmt.Errorf("failed to begin ledger transaction: %w", err)
	}
	// No-op once committed.
	defer func() { _ = s.txnRepo.Rollback(ctx, tx) }()

	out := make([]domain.Transaction, len(rows))
	copy(out, rows)
	for i := range out {
		number, err := s.refSvc.NextTransactionNumberInTx(ctx, tx)
		if err != nil {
			return nil, err
		}
		out[i].TransactionNumber = number
	}

	if err := s.txnRepo.InsertTransactionsInTx(ctx, tx, out); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to insert ledger rows")
		}
		return nil, err
	}
	if afterInsert != nil {
		if err := afterInsert(ctx, tx); err != nil {
			return nil, err
		}
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit ledger transaction")
		return nil, fmt.Errorf("failed to commit ledger transaction: %w", err)
	}
	return out, nil
}

func (s *journalService) afterCommit(ctx context.Context, committed []domain.Transaction) {
	s.Metrics.TransactionCommitted(committed...)
	if s.cache == nil {
		return
	}
	seen := make(map[string]struct{})
	var touched []string
	for _, t := range committed {
		for _, id := range t.AccountIDs() {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				touched = append(touched, id)
			}
		}
	}
	if err := s.cache.Invalidate(ctx, touched...); err != nil {
		s.LogWarn(ctx, "Failed to invalidate cached balances", slog.Any("account_ids", touched), slog.String("error", err.Error()))
	}
}

// --- Reads ---

func (s *journalService) GetTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	filter.Limit, filter.Offset = pagination.Normalize(filter.Limit, filter.Offset)

	var (
		rows  []domain.Transaction
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.txnRepo.ListTransactions(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.txnRepo.CountTransactions(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	decorated, err := s.withAccounts(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &domain.TransactionPage{
		Transactions: decorated,
		Total:        total,
		HasMore:      pagination.HasMore(filter.Offset, len(rows), total),
	}, nil
}

func (s *journalService) GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionWithAccounts, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	decorated, err := s.withAccounts(ctx, []domain.Transaction{*txn})
	if err != nil {
		return nil, err
	}
	return &decorated[0], nil
}

func (s *journalService) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	if missionID == "" {
		return nil, fmt.Errorf("%w: mission id is required", apperrors.ErrValidation)
	}
	mission, err := s.missionRepo.FindMissionByID(ctx, missionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load mission", slog.String("mission_id", missionID))
		}
		return nil, err
	}
	return mission, nil
}

// withAccounts joins rows with summaries of the accounts they touch.
func (s *journalService) withAccounts(ctx context.Context, rows []domain.Transaction) ([]domain.TransactionWithAccounts, error) {
	out := make([]domain.TransactionWithAccounts, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	seen := make(map[string]struct{})
	var accountIDs []string
	for _, t := range rows {
		for _, id := range t.AccountIDs() {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				accountIDs = append(accountIDs, id)
			}
		}
	}
	accounts, err := s.accountRepo.FindBankAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for transactions")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	summary := func(id *string) *domain.AccountSummary {
		if id == nil {
			return nil
		}
		acc, ok := accounts[*id]
		if !ok {
			return nil
		}
		sum := acc.Summary()
		return &sum
	}
	for _, t := range rows {
		out = append(out, domain.TransactionWithAccounts{
			Transaction:        t,
			SourceAccount:      summary(t.SourceAccountID),
			DestinationAccount: summary(t.DestinationAccountID),
		})
	}
	return out, nil
}

// --- Balances ---

// GetBankAccount loads an account whether or not it is still active.
func (s *journalService) GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		s.LogError(ctx, err, "Failed to load bank account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load bank account %s: %w", accountID, err)
	}
	return account, nil
}

// CalculateAccountBalance also serves closed accounts, which can still hold a residual balance.
func (s *journalService) CalculateAccountBalance(ctx context.Context, accountID string) (int64, error) {
	if _, err := s.GetBankAccount(ctx, accountID); err != nil {
		return 0, err
	}
	return s.cachedBalance(ctx, accountID)
}

func (s *journalService) RecomputeAccountBalance(ctx context.Context, accountID string) (int64, error) {
	if _, err := s.GetBankAccount(ctx, accountID); err != nil {
		return 0, err
	}
	return s.refreshBalance(ctx, accountID)
}

func (s *journalService) CalculateTotalsByCurrency(ctx context.Context) (map[domain.Currency]int64, error) {
	accounts, err := s.accountRepo.ListActiveBankAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active bank accounts")
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	var mu sync.Mutex
	balances := make(map[string]int64, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(balanceWorkers)
	for _, acc := range accounts {
		acc := acc
		g.Go(func() error {
			balance, err := s.cachedBalance(gctx, acc.ID)
			if err != nil {
				return err
			}
			mu.Lock()
			balances[acc.ID] = balance
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return accounting.TotalsByCurrency(accounts, balances), nil
}

// cachedBalance reads through the balance cache. Cache failures degrade to a ledger read.
func (s *journalService) cachedBalance(ctx context.Context, accountID string) (int64, error) {
	if s.cache != nil {
		balance, ok, err := s.cache.GetBalance(ctx, accountID)
		switch {
		case err != nil:
			s.Metrics.BalanceCacheLookup("error")
			s.LogWarn(ctx, "Balance cache lookup failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		case ok:
			s.Metrics.BalanceCacheLookup("hit")
			return balance, nil
		default:
			s.Metrics.BalanceCacheLookup("miss")
		}
	}
	return s.refreshBalance(ctx, accountID)
}

// refreshBalance sums the ledger and caches the result, unless a write invalidated the
// account between taking the generation and storing the sum.
func (s *journalService) refreshBalance(ctx context.Context, accountID string) (int64, error) {
	cacheable := s.cache != nil
	var generation int64
	if cacheable {
		gen, err := s.cache.Generation(ctx, accountID)
		if err != nil {
			s.LogWarn(ctx, "Balance cache generation lookup failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
			cacheable = false
		}
		generation = gen
	}

	balance, err := s.computeBalance(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if !cacheable {
		return balance, nil
	}

	stored, err := s.cache.SetBalance(ctx, accountID, balance, generation)
	switch {
	case err != nil:
		s.LogWarn(ctx, "Failed to cache balance", slog.String("account_id", accountID), slog.String("error", err.Error()))
	case !stored:
		s.Metrics.BalanceCacheStaleWrite()
		s.LogDebug(ctx, "Balance changed while computing, not cached", slog.String("account_id", accountID))
	}
	return balance, nil
}

func (s *journalService) computeBalance(ctx context.Context, accountID string) (int64, error) {
	credits, debits, err := s.txnRepo.SumAccountFlows(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate account flows", slog.String("account_id", accountID))
		return 0, fmt.Errorf("failed to compute balance for %s: %w", accountID, err)
	}
	return accounting.BalanceFromFlows(credits, debits), nil
}
