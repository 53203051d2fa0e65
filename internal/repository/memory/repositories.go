package memory

import (
	"context"
	"time"

	"bankops-service/internal/domain/account"
	"bankops-service/internal/domain/card"
	"bankops-service/internal/domain/customer"
	"bankops-service/internal/domain/ticket"
	xerrors "bankops-service/internal/pkg/errors"

	"github.com/google/uuid"
)

// ---------- customers ----------

type CustomerRepository struct {
	s *Store
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	var err error
	r.s.do(ctx, func() {
		for _, existing := range r.s.customers {
			if existing.IdentificationNo == c.IdentificationNo || existing.PhoneNo == c.PhoneNo {
				err = xerrors.New(xerrors.ErrConflict, "customer already exists")
				return
			}
		}
		now := time.Now()
		c.CreatedAt, c.UpdatedAt = now, now
		r.s.customers[c.ID] = *c
	})
	return err
}

func (r *CustomerRepository) FindByIdentificationNo(ctx context.Context, idNo string) (*customer.Customer, error) {
	var found *customer.Customer
	r.s.do(ctx, func() {
		found = r.s.customerByIDNo(idNo)
	})
	if found == nil {
		return nil, xerrors.New(xerrors.ErrNotFound, "customer not found")
	}
	return found, nil
}

func (r *CustomerRepository) LockByIdentificationNo(ctx context.Context, idNo string) (*customer.Customer, error) {
	return r.FindByIdentificationNo(ctx, idNo)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var (
		c  customer.Customer
		ok bool
	)
	r.s.do(ctx, func() {
		c, ok = r.s.customers[id]
	})
	if !ok {
		return nil, xerrors.New(xerrors.ErrNotFound, "customer not found")
	}
	return &c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	var err error
	r.s.do(ctx, func() {
		if _, ok := r.s.customers[c.ID]; !ok {
			err = xerrors.New(xerrors.ErrNotFound, "customer not found")
			return
		}
		for id, existing := range r.s.customers {
			if id != c.ID && (existing.IdentificationNo == c.IdentificationNo || existing.PhoneNo == c.PhoneNo) {
				err = xerrors.New(xerrors.ErrConflict, "customer already exists")
				return
			}
		}
		c.UpdatedAt = time.Now()
		r.s.customers[c.ID] = *c
	})
	return err
}

func (r *CustomerRepository) UpdateStatus(ctx context.Context, idNo string, status customer.Status) (bool, error) {
	var updated bool
	r.s.do(ctx, func() {
		c := r.s.customerByIDNo(idNo)
		if c == nil {
			return
		}
		c.Status = status
		c.UpdatedAt = time.Now()
		r.s.customers[c.ID] = *c
		updated = true
	})
	return updated, nil
}

// customerByIDNo must be called with the store lock held.
func (s *Store) customerByIDNo(idNo string) *customer.Customer {
	for _, c := range s.customers {
		if c.IdentificationNo == idNo {
			return &c
		}
	}
	return nil
}

// ---------- deposit accounts ----------

type DepositAccountRepository struct {
	s *Store
}

func (r *DepositAccountRepository) Create(ctx context.Context, a *account.DepositAccount) error {
	var err error
	r.s.do(ctx, func() {
		if _, ok := r.s.customers[a.CustomerID]; !ok {
			err = xerrors.New(xerrors.ErrNotFound, "customer not found")
			return
		}
		for _, existing := range r.s.accounts {
			if existing.CustomerID == a.CustomerID {
				err = xerrors.New(xerrors.ErrConflict, "deposit account already exists")
				return
			}
		}
		r.s.accounts[a.ID] = *a
	})
	return err
}

func (r *DepositAccountRepository) FindByCustomerIdentificationNo(ctx context.Context, idNo string) (*account.DepositAccount, error) {
	var found *account.DepositAccount
	r.s.do(ctx, func() {
		c := r.s.customerByIDNo(idNo)
		if c == nil {
			return
		}
		for _, a := range r.s.accounts {
			if a.CustomerID == c.ID {
				found = &a
				return
			}
		}
	})
	if found == nil {
		return nil, xerrors.New(xerrors.ErrNotFound, "deposit account not found")
	}
	return found, nil
}

func (r *DepositAccountRepository) LockByCustomerIdentificationNo(ctx context.Context, idNo string) (*account.DepositAccount, error) {
	return r.FindByCustomerIdentificationNo(ctx, idNo)
}

func (r *DepositAccountRepository) Update(ctx context.Context, a *account.DepositAccount) error {
	var err error
	r.s.do(ctx, func() {
		if _, ok := r.s.accounts[a.ID]; !ok {
			err = xerrors.New(xerrors.ErrNotFound, "deposit account not found")
			return
		}
		a.UpdatedAt = time.Now()
		r.s.accounts[a.ID] = *a
	})
	return err
}

// ---------- cards ----------

type CardRepository struct {
	s *Store
}

func (r *CardRepository) Create(ctx context.Context, c *card.Card) error {
	var err error
	r.s.do(ctx, func() {
		for _, existing := range r.s.cards {
			if existing.AccountID == c.AccountID || existing.CardNumber == c.CardNumber {
				err = xerrors.New(xerrors.ErrConflict, "card already exists")
				return
			}
		}
		r.s.cards[c.ID] = *c
	})
	return err
}

func (r *CardRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*card.Card, error) {
	var found *card.Card
	r.s.do(ctx, func() {
		for _, c := range r.s.cards {
			if c.AccountID == accountID {
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, xerrors.New(xerrors.ErrNotFound, "card not found")
	}
	return found, nil
}

func (r *CardRepository) LockByAccountID(ctx context.Context, accountID uuid.UUID) (*card.Card, error) {
	return r.FindByAccountID(ctx, accountID)
}

func (r *CardRepository) Update(ctx context.Context, c *card.Card) error {
	var err error
	r.s.do(ctx, func() {
		if _, ok := r.s.cards[c.ID]; !ok {
			err = xerrors.New(xerrors.ErrNotFound, "card not found")
			return
		}
		c.UpdatedAt = time.Now()
		r.s.cards[c.ID] = *c
	})
	return err
}

// ---------- support tickets ----------

type SupportTicketRepository struct {
	s *Store
}

func (r *SupportTicketRepository) Create(ctx context.Context, t *ticket.SupportTicket) error {
	var err error
	r.s.do(ctx, func() {
		if _, ok := r.s.customers[t.CustomerID]; !ok {
			err = xerrors.New(xerrors.ErrNotFound, "customer not found")
			return
		}
		r.s.tickets[t.ID] = cloneTicket(*t)
	})
	return err
}

func (r *SupportTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.SupportTicket, error) {
	var (
		t  ticket.SupportTicket
		ok bool
	)
	r.s.do(ctx, func() {
		t, ok = r.s.tickets[id]
	})
	if !ok {
		return nil, xerrors.New(xerrors.ErrNotFound, "support ticket not found")
	}
	t = cloneTicket(t)
	return &t, nil
}

func (r *SupportTicketRepository) LockByID(ctx context.Context, id uuid.UUID) (*ticket.SupportTicket, error) {
	return r.FindByID(ctx, id)
}

func (r *SupportTicketRepository) Update(ctx context.Context, t *ticket.SupportTicket) error {
	var err error
	r.s.do(ctx, func() {
		if _, ok := r.s.tickets[t.ID]; !ok {
			err = xerrors.New(xerrors.ErrNotFound, "support ticket not found")
			return
		}
		t.UpdatedAt = time.Now()
		r.s.tickets[t.ID] = cloneTicket(*t)
	})
	return err
}

// cloneTicket detaches the assignee pointer from the caller's copy.
func cloneTicket(t ticket.SupportTicket) ticket.SupportTicket {
	if t.AssignedStaffID != nil {
		id := *t.AssignedStaffID
		t.AssignedStaffID = &id
	}
	return t
}
