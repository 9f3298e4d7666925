package domain

// AlertLevel is the severity of a soft warning raised on a money movement.
type AlertLevel string

const (
	AlertInfo    AlertLevel = "INFO"
	AlertWarning AlertLevel = "WARNING"
	AlertError   AlertLevel = "ERROR"
)

// Alert types.
const (
	AlertLargeAmount        = "LARGE_AMOUNT"
	AlertPotentialDuplicate = "POTENTIAL_DUPLICATE"
	AlertMissingSupplier    = "MISSING_SUPPLIER"
	AlertLargeMission       = "LARGE_MISSION"
	AlertMissingHours       = "MISSING_HOURS"
	AlertLargeTransfer      = "LARGE_TRANSFER"
)

// Alert is advisory; it never blocks the operation it describes.
type Alert struct {
	Level   AlertLevel     `json:"level"`
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// AlertOperation names the kind of money movement an alert run is for.
type AlertOperation string

const (
	OperationPayment  AlertOperation = "PAYMENT"
	OperationExpense  AlertOperation = "EXPENSE"
	OperationMission  AlertOperation = "MISSION"
	OperationTransfer AlertOperation = "TRANSFER"
)

// AlertInput is implemented only by the per-operation inputs below, so every
// alert generator receives exactly the fields it reads.
type AlertInput interface {
	Operation() AlertOperation
	sealedAlertInput()
}

// PaymentAlertInput feeds large-amount and duplicate checks for an incoming payment.
type PaymentAlertInput struct {
	Payment Payment
}

// ExpenseAlertInput feeds large-amount and missing-supplier checks.
type ExpenseAlertInput struct {
	Expense Expense
}

// MissionAlertInput feeds large-mission and missing-hours checks.
type MissionAlertInput struct {
	Mission Mission
}

// TransferAlertInput feeds the large-transfer check.
type TransferAlertInput struct {
	Amount   int64
	Currency Currency
}

func (PaymentAlertInput) Operation() AlertOperation  { return OperationPayment }
func (ExpenseAlertInput) Operation() AlertOperation  { return OperationExpense }
func (MissionAlertInput) Operation() AlertOperation  { return OperationMission }
func (TransferAlertInput) Operation() AlertOperation { return OperationTransfer }

func (PaymentAlertInput) sealedAlertInput()  {}
func (ExpenseAlertInput) sealedAlertInput()  {}
func (MissionAlertInput) sealedAlertInput()  {}
func (TransferAlertInput) sealedAlertInput() {}
