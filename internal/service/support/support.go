// internal/service/support/support.go
package support

import (
	"context"
	"time"

	"bankops-service/internal/domain/customer"
	"bankops-service/internal/domain/ticket"
	"bankops-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, t *ticket.SupportTicket) error
	FindByID(ctx context.Context, id uuid.UUID) (*ticket.SupportTicket, error)
	LockByID(ctx context.Context, id uuid.UUID) (*ticket.SupportTicket, error)
	Update(ctx context.Context, t *ticket.SupportTicket) error
}

// CustomerDirectory authenticates customers and resolves ticket owners.
type CustomerDirectory interface {
	Authenticate(ctx context.Context, idNo, password string) (*customer.Customer, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type SupportService struct {
	ticketRepo Repository
	customers  CustomerDirectory
	tx         repository.Transactor
	logger     *zap.Logger
}

func NewSupportService(ticketRepo Repository, customers CustomerDirectory, tx repository.Transactor, logger *zap.Logger) *SupportService {
	return &SupportService{
		ticketRepo: ticketRepo,
		customers:  customers,
		tx:         tx,
		logger:     logger,
	}
}

// OpenTicket files an unassigned OPEN ticket for the authenticated customer.
func (s *SupportService) OpenTicket(ctx context.Context, idNo, password, subject, message string) (*ticket.SupportTicket, error) {
	owner, err := s.customers.Authenticate(ctx, idNo, password)
	if err != nil {
		return nil, err
	}

	t := ticket.Open(owner.ID, subject, message, time.Now())
	if err := s.ticketRepo.Create(ctx, &t); err != nil {
		s.logger.Error("failed to create support ticket", zap.Error(err))
		return nil, err
	}

	s.logger.Info("support ticket opened",
		zap.String("ticket_id", t.ID.String()),
		zap.String("customer_id", owner.ID.String()),
	)
	return &t, nil
}

// ReviseTicketDetails lets the ticket's owner edit its subject or message
// until it is resolved.
func (s *SupportService) ReviseTicketDetails(ctx context.Context, ticketID uuid.UUID, password string, subject, message *string) (*ticket.SupportTicket, error) {
	existing, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	owner, err := s.customers.CustomerByID(ctx, existing.CustomerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.customers.Authenticate(ctx, owner.IdentificationNo, password); err != nil {
		return nil, err
	}

	return s.mutate(ctx, ticketID, "support ticket details revised", func(t ticket.SupportTicket) (ticket.SupportTicket, error) {
		return ticket.Revise(t, subject, message)
	})
}

// AllocateTicket assigns staff to a ticket once. It does not authenticate the caller.
func (s *SupportService) AllocateTicket(ctx context.Context, ticketID uuid.UUID, assigneeID string) (*ticket.SupportTicket, error) {
	return s.mutate(ctx, ticketID, "support ticket allocated", func(t ticket.SupportTicket) (ticket.SupportTicket, error) {
		return ticket.Assign(t, assigneeID)
	})
}

// ChangeTicketStatus is reserved for the assigned staff member.
func (s *SupportService) ChangeTicketStatus(ctx context.Context, ticketID uuid.UUID, status ticket.Status, actionedBy string) (*ticket.SupportTicket, error) {
	return s.mutate(ctx, ticketID, "support ticket status changed", func(t ticket.SupportTicket) (ticket.SupportTicket, error) {
		return ticket.ChangeStatus(t, status, actionedBy)
	})
}

func (s *SupportService) mutate(
	ctx context.Context,
	ticketID uuid.UUID,
	event string,
	apply func(ticket.SupportTicket) (ticket.SupportTicket, error),
) (*ticket.SupportTicket, error) {
	var result ticket.SupportTicket
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.ticketRepo.LockByID(ctx, ticketID)
		if err != nil {
			return err
		}

		next, err := apply(*current)
		if err != nil {
			return err
		}

		if err := s.ticketRepo.Update(ctx, &next); err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(event,
		zap.String("ticket_id", result.ID.String()),
		zap.String("status", string(result.Status)),
		zap.String("assignee", result.Assignee()),
	)
	return &result, nil
}
