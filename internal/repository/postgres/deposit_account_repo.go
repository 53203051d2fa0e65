// internal/repository/postgres/deposit_account_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"bankops-service/internal/domain/account"
	xerrors "bankops-service/internal/pkg/errors"

	"github.com/shopspring/decimal"
)

type DepositAccountRepository struct {
	db *DB
}

func NewDepositAccountRepository(db *DB) *DepositAccountRepository {
	return &DepositAccountRepository{db: db}
}

// Create inserts an account. A second account for the same customer yields ErrConflict.
func (r *DepositAccountRepository) Create(ctx context.Context, a *account.DepositAccount) error {
	query := `
		INSERT INTO deposit_accounts (id, customer_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $5)
	`

	_, err := r.db.conn(ctx).Exec(
		ctx, query,
		a.ID, a.CustomerID, a.Amount.String(), a.Status, a.CreatedAt,
	)

	return mapError(err, "deposit account")
}

// FindByCustomerIdentificationNo retrieves the account owned by the customer
// with the given identification number.
func (r *DepositAccountRepository) FindByCustomerIdentificationNo(ctx context.Context, idNo string) (*account.DepositAccount, error) {
	return r.findByIdentificationNo(ctx, idNo, false)
}

// LockByCustomerIdentificationNo also holds a row lock until the unit of work ends.
func (r *DepositAccountRepository) LockByCustomerIdentificationNo(ctx context.Context, idNo string) (*account.DepositAccount, error) {
	return r.findByIdentificationNo(ctx, idNo, true)
}

func (r *DepositAccountRepository) findByIdentificationNo(ctx context.Context, idNo string, lock bool) (*account.DepositAccount, error) {
	query := `
		SELECT a.id, a.customer_id, a.amount::text, a.status, a.created_at, a.updated_at
		FROM deposit_accounts a
		JOIN customers c ON c.id = a.customer_id
		WHERE c.identification_no = $1
	`
	if lock {
		query += ` FOR UPDATE OF a`
	}

	var a account.DepositAccount
	var amount string

	err := r.db.conn(ctx).QueryRow(ctx, query, idNo).Scan(
		&a.ID, &a.CustomerID, &amount, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "deposit account")
	}

	a.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account amount %q: %w", amount, err)
	}

	return &a, nil
}

// Update persists the balance and status of the account.
func (r *DepositAccountRepository) Update(ctx context.Context, a *account.DepositAccount) error {
	query := `
		UPDATE deposit_accounts
		SET amount = $1::numeric, status = $2, updated_at = $3
		WHERE id = $4
	`

	now := time.Now()
	result, err := r.db.conn(ctx).Exec(ctx, query, a.Amount.String(), a.Status, now, a.ID)
	if err != nil {
		return mapError(err, "deposit account")
	}

	if result.RowsAffected() == 0 {
		return xerrors.New(xerrors.ErrNotFound, "deposit account not found")
	}
	a.UpdatedAt = now

	return nil
}
