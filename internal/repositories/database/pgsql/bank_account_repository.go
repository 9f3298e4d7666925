package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	"github.com/kbouri/performup-platform-sub000/internal/models"
	"github.com/kbouri/performup-platform-sub000/internal/utils/mapping"
)

const bankAccountColumns = `account_id, account_name, currency_code, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBankAccountRepository struct {
	BaseRepository
}

func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountReader {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountReader = (*PgxBankAccountRepository)(nil)

// FindBankAccountByID retrieves an account regardless of its active flag.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_id = $1;`

	m, err := scanBankAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank account " + accountID)
		}
		return nil, apperrors.NewAppError(500, "failed to find bank account "+accountID, err)
	}
	d := mapping.ToDomainBankAccount(m)
	return &d, nil
}

// FindBankAccountsByIDs retrieves every existing account among accountIDs.
func (r *PgxBankAccountRepository) FindBankAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.BankAccount, error) {
	out := make(map[string]domain.BankAccount, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bank accounts", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank account", err)
		}
		out[m.AccountID] = mapping.ToDomainBankAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank accounts", err)
	}
	return out, nil
}

// ListActiveBankAccounts retrieves all active accounts ordered by name.
func (r *PgxBankAccountRepository) ListActiveBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE is_active = TRUE ORDER BY account_name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list bank accounts", err)
	}
	defer rows.Close()

	var out []domain.BankAccount
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank account", err)
		}
		out = append(out, mapping.ToDomainBankAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank accounts", err)
	}
	return out, nil
}

func scanBankAccount(row pgx.Row) (models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.AccountID, &m.AccountName, &m.CurrencyCode, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
