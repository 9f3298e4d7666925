package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	"github.com/kbouri/performup-platform-sub000/internal/models"
	"github.com/kbouri/performup-platform-sub000/internal/utils/mapping"
)

const transactionColumns = `t.transaction_id, t.transaction_number, t.transaction_date, t.transaction_type,
	t.amount, t.currency_code, t.source_account_id, t.destination_account_id,
	t.payment_id, t.expense_id, t.distribution_id, t.mission_id, t.quote_id, t.payment_schedule_id,
	t.student_id, t.mentor_id, t.professor_id, t.linked_transaction_id,
	t.exchange_rate, t.fx_fees, t.description, t.notes, t.created_by, t.created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger rows.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// InsertTransactionsInTx inserts every row in a single batch inside tx.
func (r *PgxTransactionRepository) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	query := `
		INSERT INTO transactions (
			transaction_id, transaction_number, transaction_date, transaction_type,
			amount, currency_code, source_account_id, destination_account_id,
			payment_id, expense_id, distribution_id, mission_id, quote_id, payment_schedule_id,
			student_id, mentor_id, professor_id, linked_transaction_id,
			exchange_rate, fx_fees, description, notes, created_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	// Rows are queued in order so a linked leg is inserted after the row it references.
	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID, m.TransactionNumber, m.TransactionDate, m.TransactionType,
			m.Amount, m.CurrencyCode, m.SourceAccountID, m.DestinationAccountID,
			m.PaymentID, m.ExpenseID, m.DistributionID, m.MissionID, m.QuoteID, m.PaymentScheduleID,
			m.StudentID, m.MentorID, m.ProfessorID, m.LinkedTransactionID,
			m.ExchangeRate, m.FXFees, m.Description, m.Notes, m.CreatedBy, m.CreatedAt,
		)
	}

	br := r.db(tx).SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return apperrors.NewAppError(409, "duplicate ledger row ("+constraint+")", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert ledger rows", err)
	}
	return nil
}

// FindTransactionByID retrieves a ledger row by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions returns one page, newest first; ties are broken by creation time then ID.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	w := transactionFilterWhere(filter)
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions t`)
	sb.WriteString(w.clause())
	sb.WriteString(` ORDER BY t.transaction_date DESC, t.created_at DESC, t.transaction_id DESC`)
	fmt.Fprintf(&sb, ` LIMIT %s OFFSET %s;`, w.next(filter.Limit), w.next(filter.Offset))

	rows, err := r.Pool.Query(ctx, sb.String(), w.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	out := make([]domain.Transaction, 0, filter.Limit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction", err)
		}
		out = append(out, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transactions", err)
	}
	return out, nil
}

// CountTransactions counts rows matching filter.
func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error) {
	w := transactionFilterWhere(filter)
	query := `SELECT COUNT(*) FROM transactions t` + w.clause() + `;`

	var total int
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&total); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}
	return total, nil
}

// SumAccountFlows aggregates credits and debits for an account over the whole ledger.
func (r *PgxTransactionRepository) SumAccountFlows(ctx context.Context, accountID string) (int64, int64, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE destination_account_id = $1), 0)::BIGINT AS credits,
			COALESCE(SUM(amount) FILTER (WHERE source_account_id = $1), 0)::BIGINT AS debits
		FROM transactions
		WHERE source_account_id = $1 OR destination_account_id = $1;
	`
	var credits, debits int64
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&credits, &debits); err != nil {
		return 0, 0, apperrors.NewAppError(500, "failed to sum flows for account "+accountID, err)
	}
	return credits, debits, nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.TransactionNumber, &m.TransactionDate, &m.TransactionType,
		&m.Amount, &m.CurrencyCode, &m.SourceAccountID, &m.DestinationAccountID,
		&m.PaymentID, &m.ExpenseID, &m.DistributionID, &m.MissionID, &m.QuoteID, &m.PaymentScheduleID,
		&m.StudentID, &m.MentorID, &m.ProfessorID, &m.LinkedTransactionID,
		&m.ExchangeRate, &m.FXFees, &m.Description, &m.Notes, &m.CreatedBy, &m.CreatedAt,
	)
	return m, err
}
