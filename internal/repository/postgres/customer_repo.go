// internal/repository/postgres/customer_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"bankops-service/internal/domain/customer"
	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db *DB
}

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `
	id, identification_no, phone_no, name, address, password_hash, status, created_at, updated_at
`

// Create inserts a customer. Duplicate identification or phone numbers yield ErrConflict.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (
			id, identification_no, phone_no, name, address, password_hash, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.conn(ctx).QueryRow(
		ctx, query,
		c.ID, c.IdentificationNo, c.PhoneNo, c.Name, c.Address, c.PasswordHash, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return mapError(err, "customer")
}

// FindByIdentificationNo retrieves a customer by identification number
func (r *CustomerRepository) FindByIdentificationNo(ctx context.Context, idNo string) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE identification_no = $1`
	return r.scanOne(ctx, query, idNo)
}

// LockByIdentificationNo is FindByIdentificationNo holding a row lock until the unit of work ends.
func (r *CustomerRepository) LockByIdentificationNo(ctx context.Context, idNo string) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE identification_no = $1 FOR UPDATE`
	return r.scanOne(ctx, query, idNo)
}

// FindByID retrieves a customer by ID
func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *CustomerRepository) scanOne(ctx context.Context, query string, arg any) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.conn(ctx).QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.IdentificationNo, &c.PhoneNo, &c.Name, &c.Address,
		&c.PasswordHash, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "customer")
	}
	return &c, nil
}

// Update overwrites every mutable column of the customer.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET identification_no = $1, phone_no = $2, name = $3, address = $4,
		    password_hash = $5, status = $6, updated_at = $7
		WHERE id = $8
	`

	now := time.Now()
	result, err := r.db.conn(ctx).Exec(
		ctx, query,
		c.IdentificationNo, c.PhoneNo, c.Name, c.Address,
		c.PasswordHash, c.Status, now, c.ID,
	)
	if err != nil {
		return mapError(err, "customer")
	}

	if result.RowsAffected() == 0 {
		return xerrors.New(xerrors.ErrNotFound, "customer not found")
	}
	c.UpdatedAt = now

	return nil
}

// UpdateStatus overwrites the status of the customer with the given identification number.
func (r *CustomerRepository) UpdateStatus(ctx context.Context, idNo string, status customer.Status) (bool, error) {
	query := `UPDATE customers SET status = $1, updated_at = $2 WHERE identification_no = $3`

	result, err := r.db.conn(ctx).Exec(ctx, query, status, time.Now(), idNo)
	if err != nil {
		return false, fmt.Errorf("failed to update customer status: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
