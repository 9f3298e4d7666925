package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	portssvc "github.com/kbouri/performup-platform-sub000/internal/core/ports/services"
	"github.com/kbouri/performup-platform-sub000/internal/dto"
	"github.com/kbouri/performup-platform-sub000/internal/middleware"
	"github.com/kbouri/performup-platform-sub000/internal/utils"
)

// ledgerHandler handles HTTP requests for the transaction journal.
type ledgerHandler struct {
	journal    portssvc.JournalSvcFacade
	validation portssvc.ValidationSvcFacade
	reference  portssvc.ReferenceSvc
	formatter  *utils.AmountFormatter
}

func newLedgerHandler(services *portssvc.ServiceContainer, formatter *utils.AmountFormatter) *ledgerHandler {
	return &ledgerHandler{
		journal:    services.Journal,
		validation: services.Validation,
		reference:  services.Reference,
		formatter:  formatter,
	}
}

// registerLedgerRoutes registers the ledger routes. writeMiddleware guards every POST.
func registerLedgerRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, formatter *utils.AmountFormatter, writeMiddleware ...gin.HandlerFunc) {
	h := newLedgerHandler(services, formatter)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/transactions", h.listTransactions)
		ledger.GET("/transactions/:transactionID", h.getTransaction)
		ledger.GET("/accounts/:accountID/balance", h.getAccountBalance)
		ledger.GET("/balances", h.getBalances)
	}

	writes := ledger.Group("", append([]gin.HandlerFunc{middleware.ActorMiddleware(true)}, writeMiddleware...)...)
	{
		writes.POST("/payments", h.createPayment)
		writes.POST("/expenses", h.createExpense)
		writes.POST("/missions/payments", h.createMissionPayment)
		writes.POST("/fx-exchanges", h.createFXExchange)
		writes.POST("/transfers", h.createTransfer)
		writes.POST("/distributions", h.createDistribution)
		writes.POST("/quotes/numbers", h.createQuoteNumber)
	}
}

// actor returns the acting user set by ActorMiddleware.
func actor(c *gin.Context) string {
	actorID, _ := middleware.GetActorIDFromContext(c)
	return actorID
}

func (h *ledgerHandler) single(txn *domain.Transaction, alerts []domain.Alert) dto.LedgerWriteResponse {
	resp := dto.ToTransactionResponse(domain.TransactionWithAccounts{Transaction: *txn}, h.formatter)
	return dto.LedgerWriteResponse{Transaction: &resp, Alerts: nonNilAlerts(alerts)}
}

func nonNilAlerts(alerts []domain.Alert) []domain.Alert {
	if alerts == nil {
		return []domain.Alert{}
	}
	return alerts
}

// createPayment godoc
// @Summary Book a payment
// @Description Records a received payment on its bank account and returns advisory alerts
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   payment body dto.CreatePaymentTransactionRequest true "Payment"
// @Success 201 {object} dto.LedgerWriteResponse
// @Failure 400 {object} map[string]string "Invalid input or business rule violation"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /ledger/payments [post]
func (h *ledgerHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.validation.ValidateAllocationAmount(req.Amount, req.DomainAllocations()); err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}

	payment := req.ToDomain()
	alerts, err := h.validation.GenerateAlerts(c.Request.Context(), domain.PaymentAlertInput{Payment: payment})
	if err != nil {
		respondError(c, err, "Failed to evaluate payment alerts")
		return
	}

	txn, err := h.journal.CreatePaymentTransaction(c.Request.Context(), payment, actor(c))
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}

	logger.Info("Payment booked", slog.String("transaction_number", txn.TransactionNumber), slog.Int("alerts", len(alerts)))
	c.JSON(http.StatusCreated, h.single(txn, alerts))
}

// createExpense godoc
// @Summary Book an expense
// @Description Records an expense leaving its paying account and returns advisory alerts
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   expense body dto.CreateExpenseTransactionRequest true "Expense"
// @Success 201 {object} dto.LedgerWriteResponse
// @Failure 400 {object} map[string]string "Invalid input or business rule violation"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /ledger/expenses [post]
func (h *ledgerHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense := req.ToDomain()
	alerts, err := h.validation.GenerateAlerts(c.Request.Context(), domain.ExpenseAlertInput{Expense: expense})
	if err != nil {
		respondError(c, err, "Failed to evaluate expense alerts")
		return
	}

	txn, err := h.journal.CreateExpenseTransaction(c.Request.Context(), expense, actor(c))
	if err != nil {
		respondError(c, err, "Failed to record expense")
		return
	}

	logger.Info("Expense booked", slog.String("transaction_number", txn.TransactionNumber))
	c.JSON(http.StatusCreated, h.single(txn, alerts))
}

// createMissionPayment godoc
// @Summary Pay a mission
// @Description Pays a validated mission from a bank account. A mission can only be paid once.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   mission body dto.CreateMissionPaymentRequest true "Mission ID and paying account"
// @Success 201 {object} dto.LedgerWriteResponse
// @Failure 400 {object} map[string]string "Invalid input or mission not payable"
// @Failure 404 {object} map[string]string "Mission or bank account not found"
// @Failure 409 {object} map[string]string "Mission already paid"
// @Failure 500 {object} map[string]string "Failed to pay mission"
// @Router /ledger/missions/payments [post]
func (h *ledgerHandler) createMissionPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMissionPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMissionPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	mission, err := h.journal.GetMission(c.Request.Context(), req.MissionID)
	if err != nil {
		respondError(c, err, "Failed to pay mission")
		return
	}
	alerts, err := h.validation.GenerateAlerts(c.Request.Context(), domain.MissionAlertInput{Mission: *mission})
	if err != nil {
		respondError(c, err, "Failed to evaluate mission alerts")
		return
	}

	txn, err := h.journal.CreateMissionPaymentTransaction(c.Request.Context(), *mission, req.PaymentAccountID, actor(c))
	if err != nil {
		respondError(c, err, "Failed to pay mission")
		return
	}

	logger.Info("Mission paid", slog.String("transaction_number", txn.TransactionNumber), slog.String("mission_id", mission.ID))
	c.JSON(http.StatusCreated, h.single(txn, alerts))
}

// createFXExchange godoc
// @Summary Book a currency exchange
// @Description Creates the two linked legs of an exchange between accounts in different currencies
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   exchange body dto.CreateFXExchangeRequest true "Exchange"
// @Success 201 {object} dto.LedgerWriteResponse
// @Failure 400 {object} map[string]string "Invalid input or currency mismatch"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to record exchange"
// @Router /ledger/fx-exchanges [post]
func (h *ledgerHandler) createFXExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFXExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFXExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	legs, err := h.journal.CreateFXTransactions(c.Request.Context(), req.ToDomain(actor(c)))
	if err != nil {
		respondError(c, err, "Failed to record exchange")
		return
	}

	out := make([]dto.TransactionResponse, len(legs))
	for i, leg := range legs {
		out[i] = dto.ToTransactionResponse(domain.TransactionWithAccounts{Transaction: leg}, h.formatter)
	}
	logger.Info("FX exchange booked", slog.String("source_number", legs[0].TransactionNumber))
	c.JSON(http.StatusCreated, dto.LedgerWriteResponse{Transactions: out, Alerts: []domain.Alert{}})
}

// createTransfer godoc
// @Summary Book a transfer
// @Description Moves money between two accounts holding the same currency
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   transfer body dto.CreateTransferRequest true "Transfer"
// @Success 201 {object} dto.LedgerWriteResponse
// @Failure 400 {object} map[string]string "Invalid input or currency mismatch"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to record transfer"
// @Router /ledger/transfers [post]
func (h *ledgerHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	params := req.ToDomain(actor(c))
	alerts, err := h.validation.GenerateAlerts(c.Request.Context(), domain.TransferAlertInput{Amount: params.Amount, Currency: params.Currency})
	if err != nil {
		respondError(c, err, "Failed to evaluate transfer alerts")
		return
	}

	txn, err := h.journal.CreateTransferTransaction(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to record transfer")
		return
	}

	logger.Info("Transfer booked", slog.String("transaction_number", txn.TransactionNumber))
	c.JSON(http.StatusCreated, h.single(txn, alerts))
}

// createDistribution godoc
// @Summary Book a profit distribution
// @Description Records money leaving the business to its partners
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Actor-ID header string true "Acting user ID"
// @Param   distribution body dto.CreateDistributionRequest true "Distribution"
// @Success 201 {object} dto.LedgerWriteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to record distribution"
// @Router /ledger/distributions [post]
func (h *ledgerHandler) createDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDistribution", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.journal.CreateDistributionTransaction(c.Request.Context(), req.DistributionID, req.SourceAccountID, req.Amount, domain.Currency(req.Currency), actor(c))
	if err != nil {
		respondError(c, err, "Failed to record distribution")
		return
	}

	logger.Info("Distribution booked", slog.String("transaction_number", txn.TransactionNumber))
	c.JSON(http.StatusCreated, h.single(txn, nil))
}

// createQuoteNumber godoc
// @Summary Mint a quote number
// @Description Allocates the next QUOTE-<year>-NNN reference
// @Tags ledger
// @Produce  json
// @Param   X-Actor-ID header string true "Acting user ID"
// @Success 201 {object} dto.QuoteNumberResponse
// @Failure 500 {object} map[string]string "Failed to generate quote number"
// @Router /ledger/quotes/numbers [post]
func (h *ledgerHandler) createQuoteNumber(c *gin.Context) {
	number, err := h.reference.GenerateQuoteNumber(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to generate quote number")
		return
	}
	c.JSON(http.StatusCreated, dto.QuoteNumberResponse{QuoteNumber: number})
}

// listTransactions godoc
// @Summary List ledger transactions
// @Description Filtered, paginated ledger rows, newest first
// @Tags ledger
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param   currency query string false "Currency code"
// @Param   type query string false "Transaction type"
// @Param   accountId query string false "Source or destination account"
// @Param   studentId query string false "Student ID"
// @Param   mentorId query string false "Mentor ID"
// @Param   professorId query string false "Professor ID"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /ledger/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.journal.GetTransactions(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page, h.formatter))
}

// getTransaction godoc
// @Summary Get a ledger transaction
// @Tags ledger
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /ledger/transactions/{transactionID} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	txn, err := h.journal.GetTransaction(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn, h.formatter))
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Balance derived from the ledger. refresh=true bypasses the balance cache.
// @Tags ledger
// @Produce  json
// @Param   accountID path string true "Bank account ID"
// @Param   refresh query bool false "Recompute and refresh the cached value"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /ledger/accounts/{accountID}/balance [get]
func (h *ledgerHandler) getAccountBalance(c *gin.Context) {
	ctx := c.Request.Context()
	accountID := c.Param("accountID")

	account, err := h.journal.GetBankAccount(ctx, accountID)
	if err != nil {
		respondError(c, err, "Failed to compute balance")
		return
	}

	calculate := h.journal.CalculateAccountBalance
	if refresh, _ := strconv.ParseBool(c.Query("refresh")); refresh {
		calculate = h.journal.RecomputeAccountBalance
	}
	balance, err := calculate(ctx, accountID)
	if err != nil {
		respondError(c, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID:        account.ID,
		AccountName:      account.AccountName,
		Currency:         account.Currency,
		Balance:          balance,
		FormattedBalance: h.formatter.Format(balance, account.Currency),
	})
}

// getBalances godoc
// @Summary Get totals by currency
// @Description Sum of the balances of all active accounts, per currency
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.BalancesResponse
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /ledger/balances [get]
func (h *ledgerHandler) getBalances(c *gin.Context) {
	totals, err := h.journal.CalculateTotalsByCurrency(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalancesResponse(totals, h.formatter))
}
