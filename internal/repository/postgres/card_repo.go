// internal/repository/postgres/card_repo.go
package postgres

import (
	"context"
	"time"

	"bankops-service/internal/domain/card"
	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
)

type CardRepository struct {
	db *DB
}

func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts a card. A second card for the same account yields ErrConflict.
func (r *CardRepository) Create(ctx context.Context, c *card.Card) error {
	query := `
		INSERT INTO cards (
			id, account_id, card_number, pin_number, transaction_limit, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`

	_, err := r.db.conn(ctx).Exec(
		ctx, query,
		c.ID, c.AccountID, c.CardNumber, c.PinNumber, c.TransactionLimit, c.Status, c.CreatedAt,
	)

	return mapError(err, "card")
}

// FindByAccountID retrieves the card linked to an account
func (r *CardRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*card.Card, error) {
	return r.findByAccountID(ctx, accountID, false)
}

// LockByAccountID also holds a row lock until the unit of work ends.
func (r *CardRepository) LockByAccountID(ctx context.Context, accountID uuid.UUID) (*card.Card, error) {
	return r.findByAccountID(ctx, accountID, true)
}

func (r *CardRepository) findByAccountID(ctx context.Context, accountID uuid.UUID, lock bool) (*card.Card, error) {
	query := `
		SELECT id, account_id, card_number, pin_number, transaction_limit, status, created_at, updated_at
		FROM cards
		WHERE account_id = $1
	`
	if lock {
		query += ` FOR UPDATE`
	}

	var c card.Card
	err := r.db.conn(ctx).QueryRow(ctx, query, accountID).Scan(
		&c.ID, &c.AccountID, &c.CardNumber, &c.PinNumber,
		&c.TransactionLimit, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "card")
	}

	return &c, nil
}

// Update persists pin, limit and status.
func (r *CardRepository) Update(ctx context.Context, c *card.Card) error {
	query := `
		UPDATE cards
		SET pin_number = $1, transaction_limit = $2, status = $3, updated_at = $4
		WHERE id = $5
	`

	now := time.Now()
	result, err := r.db.conn(ctx).Exec(ctx, query, c.PinNumber, c.TransactionLimit, c.Status, now, c.ID)
	if err != nil {
		return mapError(err, "card")
	}

	if result.RowsAffected() == 0 {
		return xerrors.New(xerrors.ErrNotFound, "card not found")
	}
	c.UpdatedAt = now

	return nil
}
