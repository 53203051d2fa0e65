// internal/repository/postgres/support_ticket_repo.go
package postgres

import (
	"context"
	"time"

	"bankops-service/internal/domain/ticket"
	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
)

type SupportTicketRepository struct {
	db *DB
}

func NewSupportTicketRepository(db *DB) *SupportTicketRepository {
	return &SupportTicketRepository{db: db}
}

func (r *SupportTicketRepository) Create(ctx context.Context, t *ticket.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (
			id, customer_id, title, description, status, assigned_staff_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`

	_, err := r.db.conn(ctx).Exec(
		ctx, query,
		t.ID, t.CustomerID, t.Title, t.Description, t.Status, t.AssignedStaffID, t.CreatedAt,
	)

	return mapError(err, "support ticket")
}

func (r *SupportTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.SupportTicket, error) {
	return r.findByID(ctx, id, false)
}

// LockByID also holds a row lock until the unit of work ends.
func (r *SupportTicketRepository) LockByID(ctx context.Context, id uuid.UUID) (*ticket.SupportTicket, error) {
	return r.findByID(ctx, id, true)
}

func (r *SupportTicketRepository) findByID(ctx context.Context, id uuid.UUID, lock bool) (*ticket.SupportTicket, error) {
	query := `
		SELECT id, customer_id, title, description, status, assigned_staff_id, created_at, updated_at
		FROM support_tickets
		WHERE id = $1
	`
	if lock {
		query += ` FOR UPDATE`
	}

	var t ticket.SupportTicket
	err := r.db.conn(ctx).QueryRow(ctx, query, id).Scan(
		&t.ID, &t.CustomerID, &t.Title, &t.Description, &t.Status,
		&t.AssignedStaffID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "support ticket")
	}

	return &t, nil
}

func (r *SupportTicketRepository) Update(ctx context.Context, t *ticket.SupportTicket) error {
	query := `
		UPDATE support_tickets
		SET title = $1, description = $2, status = $3, assigned_staff_id = $4, updated_at = $5
		WHERE id = $6
	`

	now := time.Now()
	result, err := r.db.conn(ctx).Exec(
		ctx, query,
		t.Title, t.Description, t.Status, t.AssignedStaffID, now, t.ID,
	)
	if err != nil {
		return mapError(err, "support ticket")
	}

	if result.RowsAffected() == 0 {
		return xerrors.New(xerrors.ErrNotFound, "support ticket not found")
	}
	t.UpdatedAt = now

	return nil
}
