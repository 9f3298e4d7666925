package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	"github.com/kbouri/performup-platform-sub000/internal/utils"
)

// PaymentAllocationRequest assigns part of a payment to a schedule installment.
type PaymentAllocationRequest struct {
	PaymentScheduleID string `json:"paymentScheduleId" binding:"required"`
	Amount            int64  `json:"amount" binding:"required"`
}

// CreatePaymentTransactionRequest books a finalized payment into the ledger.
// Amounts are minor units of Currency.
type CreatePaymentTransactionRequest struct {
	PaymentID         string                     `json:"paymentId" binding:"required"`
	Amount            int64                      `json:"amount" binding:"required"`
	Currency          string                     `json:"currency" binding:"required,ledgercurrency"`
	PaymentDate       *time.Time                 `json:"paymentDate"`
	BankAccountID     *string                    `json:"bankAccountId"`
	StudentID         *string                    `json:"studentId"`
	MentorID          *string                    `json:"mentorId"`
	ProfessorID       *string                    `json:"professorId"`
	PaymentScheduleID *string                    `json:"paymentScheduleId"`
	QuoteID           *string                    `json:"quoteId"`
	Notes             *string                    `json:"notes"`
	Allocations       []PaymentAllocationRequest `json:"allocations" binding:"omitempty,dive"`
}

// ToDomain converts the request into a domain.Payment.
func (r CreatePaymentTransactionRequest) ToDomain() domain.Payment {
	p := domain.Payment{
		ID:                r.PaymentID,
		Amount:            r.Amount,
		Currency:          domain.Currency(r.Currency),
		BankAccountID:     r.BankAccountID,
		StudentID:         r.StudentID,
		MentorID:          r.MentorID,
		ProfessorID:       r.ProfessorID,
		PaymentScheduleID: r.PaymentScheduleID,
		QuoteID:           r.QuoteID,
		Notes:             r.Notes,
	}
	if r.PaymentDate != nil {
		p.PaymentDate = *r.PaymentDate
	}
	return p
}

// DomainAllocations returns the allocations as domain values.
func (r CreatePaymentTransactionRequest) DomainAllocations() []domain.PaymentAllocation {
	out := make([]domain.PaymentAllocation, len(r.Allocations))
	for i, a := range r.Allocations {
		out[i] = domain.PaymentAllocation{PaymentScheduleID: a.PaymentScheduleID, Amount: a.Amount}
	}
	return out
}

// CreateExpenseTransactionRequest books an expense paid from a bank account.
type CreateExpenseTransactionRequest struct {
	ExpenseID       string     `json:"expenseId" binding:"required"`
	Amount          int64      `json:"amount" binding:"required"`
	Currency        string     `json:"currency" binding:"required,ledgercurrency"`
	ExpenseDate     *time.Time `json:"expenseDate"`
	PayingAccountID *string    `json:"payingAccountId"`
	Supplier        *string    `json:"supplier"`
	Category        string     `json:"category"`
	Description     string     `json:"description"`
}

// ToDomain converts the request into a domain.Expense.
func (r CreateExpenseTransactionRequest) ToDomain() domain.Expense {
	e := domain.Expense{
		ID:              r.ExpenseID,
		Amount:          r.Amount,
		Currency:        domain.Currency(r.Currency),
		PayingAccountID: r.PayingAccountID,
		Supplier:        r.Supplier,
		Category:        r.Category,
		Description:     r.Description,
	}
	if r.ExpenseDate != nil {
		e.ExpenseDate = *r.ExpenseDate
	}
	return e
}

// CreateMissionPaymentRequest pays out a validated mission. Amount, currency and payee
// come from the stored mission record.
type CreateMissionPaymentRequest struct {
	MissionID        string `json:"missionId" binding:"required"`
	PaymentAccountID string `json:"paymentAccountId" binding:"required"`
}

// CreateFXExchangeRequest converts money between two accounts holding different currencies.
type CreateFXExchangeRequest struct {
	Date                 *time.Time      `json:"date"`
	SourceAccountID      string          `json:"sourceAccountId" binding:"required"`
	DestinationAccountID string          `json:"destinationAccountId" binding:"required"`
	SourceAmount         int64           `json:"sourceAmount" binding:"required"`
	SourceCurrency       string          `json:"sourceCurrency" binding:"required,ledgercurrency"`
	DestinationAmount    int64           `json:"destinationAmount" binding:"required"`
	DestinationCurrency  string          `json:"destinationCurrency" binding:"required,ledgercurrency"`
	ExchangeRate         decimal.Decimal `json:"exchangeRate"`
	Fees                 int64           `json:"fees" binding:"gte=0"`
	Description          string          `json:"description"`
	Notes                *string         `json:"notes"`
}

// ToDomain converts the request into FX parameters.
func (r CreateFXExchangeRequest) ToDomain(createdBy string) domain.FXExchangeParams {
	return domain.FXExchangeParams{
		Date:                 derefTime(r.Date),
		SourceAccountID:      r.SourceAccountID,
		DestinationAccountID: r.DestinationAccountID,
		SourceAmount:         r.SourceAmount,
		SourceCurrency:       domain.Currency(r.SourceCurrency),
		DestinationAmount:    r.DestinationAmount,
		DestinationCurrency:  domain.Currency(r.DestinationCurrency),
		ExchangeRate:         r.ExchangeRate,
		Fees:                 r.Fees,
		Description:          r.Description,
		Notes:                r.Notes,
		CreatedBy:            createdBy,
	}
}

// CreateTransferRequest moves money between two same-currency accounts.
type CreateTransferRequest struct {
	Date                 *time.Time `json:"date"`
	SourceAccountID      string     `json:"sourceAccountId" binding:"required"`
	DestinationAccountID string     `json:"destinationAccountId" binding:"required"`
	Amount               int64      `json:"amount" binding:"required"`
	Currency             string     `json:"currency" binding:"required,ledgercurrency"`
	Description          string     `json:"description"`
	Notes                *string    `json:"notes"`
}

// ToDomain converts the request into transfer parameters.
func (r CreateTransferRequest) ToDomain(createdBy string) domain.TransferParams {
	return domain.TransferParams{
		Date:                 derefTime(r.Date),
		SourceAccountID:      r.SourceAccountID,
		DestinationAccountID: r.DestinationAccountID,
		Amount:               r.Amount,
		Currency:             domain.Currency(r.Currency),
		Description:          r.Description,
		Notes:                r.Notes,
		CreatedBy:            createdBy,
	}
}

// CreateDistributionRequest books a profit distribution leaving a bank account.
type CreateDistributionRequest struct {
	DistributionID  string `json:"distributionId" binding:"required"`
	SourceAccountID string `json:"sourceAccountId" binding:"required"`
	Amount          int64  `json:"amount" binding:"required"`
	Currency        string `json:"currency" binding:"required,ledgercurrency"`
}

// ListTransactionsParams are the query filters of the ledger listing.
type ListTransactionsParams struct {
	From        *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To          *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Currency    string     `form:"currency" binding:"omitempty,ledgercurrency"`
	Type        string     `form:"type" binding:"omitempty,oneof=STUDENT_PAYMENT MENTOR_PAYMENT PROFESSOR_PAYMENT EXPENSE DISTRIBUTION TRANSFER FX_EXCHANGE"`
	AccountID   string     `form:"accountId"`
	StudentID   string     `form:"studentId"`
	MentorID    string     `form:"mentorId"`
	ProfessorID string     `form:"professorId"`
	Limit       int        `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset      int        `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the query parameters into a domain filter. A date-only To bound
// covers the whole day.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	f := domain.TransactionFilter{
		From:        p.From,
		AccountID:   domain.StringPtr(p.AccountID),
		StudentID:   domain.StringPtr(p.StudentID),
		MentorID:    domain.StringPtr(p.MentorID),
		ProfessorID: domain.StringPtr(p.ProfessorID),
		Limit:       p.Limit,
		Offset:      p.Offset,
	}
	if p.To != nil {
		end := p.To.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}
	if p.Currency != "" {
		c := domain.Currency(p.Currency)
		f.Currency = &c
	}
	if p.Type != "" {
		t := domain.TransactionType(p.Type)
		f.Type = &t
	}
	return f
}

// TransactionResponse is a ledger row with its account summaries and a display amount.
type TransactionResponse struct {
	domain.TransactionWithAccounts
	FormattedAmount string `json:"formattedAmount"`
}

// ToTransactionResponse decorates a row for output.
func ToTransactionResponse(t domain.TransactionWithAccounts, f *utils.AmountFormatter) TransactionResponse {
	return TransactionResponse{
		TransactionWithAccounts: t,
		FormattedAmount:         f.Format(t.Amount, t.Currency),
	}
}

// LedgerWriteResponse is returned by every ledger write. Alerts are advisory.
type LedgerWriteResponse struct {
	Transaction  *TransactionResponse  `json:"transaction,omitempty"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
	Alerts       []domain.Alert        `json:"alerts"`
}

// ListTransactionsResponse is one page of the ledger.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	HasMore      bool                  `json:"hasMore"`
}

// ToListTransactionsResponse converts a domain page.
func ToListTransactionsResponse(page *domain.TransactionPage, f *utils.AmountFormatter) ListTransactionsResponse {
	out := make([]TransactionResponse, len(page.Transactions))
	for i, t := range page.Transactions {
		out[i] = ToTransactionResponse(t, f)
	}
	return ListTransactionsResponse{Transactions: out, Total: page.Total, HasMore: page.HasMore}
}

// AccountBalanceResponse is the derived balance of one account.
type AccountBalanceResponse struct {
	AccountID        string          `json:"accountId"`
	AccountName      string          `json:"accountName"`
	Currency         domain.Currency `json:"currency"`
	Balance          int64           `json:"balance"`
	FormattedBalance string          `json:"formattedBalance"`
}

// CurrencyTotalResponse is the combined balance of the active accounts in one currency.
type CurrencyTotalResponse struct {
	Currency       domain.Currency `json:"currency"`
	Total          int64           `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
}

// BalancesResponse lists totals in display order of the supported currencies.
type BalancesResponse struct {
	Totals []CurrencyTotalResponse `json:"totals"`
}

// ToBalancesResponse converts totals into the ordered response.
func ToBalancesResponse(totals map[domain.Currency]int64, f *utils.AmountFormatter) BalancesResponse {
	out := make([]CurrencyTotalResponse, 0, len(domain.SupportedCurrencies))
	for _, c := range domain.SupportedCurrencies {
		out = append(out, CurrencyTotalResponse{Currency: c, Total: totals[c], FormattedTotal: f.Format(totals[c], c)})
	}
	return BalancesResponse{Totals: out}
}

// QuoteNumberResponse carries a freshly minted quote reference.
type QuoteNumberResponse struct {
	QuoteNumber string `json:"quoteNumber"`
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
