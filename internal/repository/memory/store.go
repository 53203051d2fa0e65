// Package memory keeps every entity in process memory. It backs local runs
// without a database (STORAGE_DRIVER=memory) and the service tests.
//
// A single mutex serialises units of work, so concurrent mutations of the
// same row cannot interleave. A failed unit of work restores the snapshot
// taken when it began.
package memory

import (
	"context"
	"maps"
	"sync"

	"bankops-service/internal/domain/account"
	"bankops-service/internal/domain/card"
	"bankops-service/internal/domain/customer"
	"bankops-service/internal/domain/ticket"

	"github.com/google/uuid"
)

type txKey struct{}

type Store struct {
	mu        sync.Mutex
	customers map[uuid.UUID]customer.Customer
	accounts  map[uuid.UUID]account.DepositAccount
	cards     map[uuid.UUID]card.Card
	tickets   map[uuid.UUID]ticket.SupportTicket
}

func NewStore() *Store {
	return &Store{
		customers: make(map[uuid.UUID]customer.Customer),
		accounts:  make(map[uuid.UUID]account.DepositAccount),
		cards:     make(map[uuid.UUID]card.Card),
		tickets:   make(map[uuid.UUID]ticket.SupportTicket),
	}
}

type snapshot struct {
	customers map[uuid.UUID]customer.Customer
	accounts  map[uuid.UUID]account.DepositAccount
	cards     map[uuid.UUID]card.Card
	tickets   map[uuid.UUID]ticket.SupportTicket
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		customers: maps.Clone(s.customers),
		accounts:  maps.Clone(s.accounts),
		cards:     maps.Clone(s.cards),
		tickets:   maps.Clone(s.tickets),
	}
}

func (s *Store) restore(snap snapshot) {
	s.customers = snap.customers
	s.accounts = snap.accounts
	s.cards = snap.cards
	s.tickets = snap.tickets
}

// WithinTx implements repository.Transactor.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// do runs fn under the store lock unless ctx already holds it.
func (s *Store) do(ctx context.Context, fn func()) {
	if s.inTx(ctx) {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Customers returns the customer repository view of the store.
func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{s: s} }

func (s *Store) Accounts() *DepositAccountRepository { return &DepositAccountRepository{s: s} }

func (s *Store) Cards() *CardRepository { return &CardRepository{s: s} }

func (s *Store) Tickets() *SupportTicketRepository { return &SupportTicketRepository{s: s} }
