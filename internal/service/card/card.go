// internal/service/card/card.go
package card

import (
	"context"
	"errors"
	"time"

	"bankops-service/internal/domain/account"
	"bankops-service/internal/domain/card"
	"bankops-service/internal/domain/customer"
	xerrors "bankops-service/internal/pkg/errors"
	"bankops-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, c *card.Card) error
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*card.Card, error)
	LockByAccountID(ctx context.Context, accountID uuid.UUID) (*card.Card, error)
	Update(ctx context.Context, c *card.Card) error
}

type Authenticator interface {
	Authenticate(ctx context.Context, idNo, password string) (*customer.Customer, error)
}

// AccountLookup resolves the deposit account of an authenticated customer.
type AccountLookup interface {
	Lookup(ctx context.Context, idNo string) (*account.DepositAccount, error)
}

type CardService struct {
	cardRepo  Repository
	customers Authenticator
	accounts  AccountLookup
	tx        repository.Transactor
	logger    *zap.Logger
}

func NewCardService(
	cardRepo Repository,
	customers Authenticator,
	accounts AccountLookup,
	tx repository.Transactor,
	logger *zap.Logger,
) *CardService {
	return &CardService{
		cardRepo:  cardRepo,
		customers: customers,
		accounts:  accounts,
		tx:        tx,
		logger:    logger,
	}
}

// CreateCard issues an INACTIVE card with a fresh number for the caller's ACTIVE account.
func (s *CardService) CreateCard(ctx context.Context, idNo, password, pin string) (*card.View, error) {
	if _, err := s.customers.Authenticate(ctx, idNo, password); err != nil {
		return nil, err
	}

	var issued card.Card
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		acct, err := s.accounts.Lookup(ctx, idNo)
		if err != nil {
			return err
		}
		if acct.Status != account.StatusActive {
			return xerrors.New(xerrors.ErrIllegalState, "deposit account must be ACTIVE to create a card")
		}

		_, err = s.cardRepo.FindByAccountID(ctx, acct.ID)
		switch {
		case err == nil:
			return xerrors.New(xerrors.ErrIllegalState, "a card already exists for this deposit account")
		case !errors.Is(err, xerrors.ErrNotFound):
			return err
		}

		number, err := card.GenerateNumber()
		if err != nil {
			return err
		}

		issued, err = card.Issue(*acct, pin, number, time.Now())
		if err != nil {
			return err
		}
		return s.cardRepo.Create(ctx, &issued)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card created",
		zap.String("card_id", issued.ID.String()),
		zap.String("account_id", issued.AccountID.String()),
		zap.String("card_number", issued.MaskedNumber()),
	)
	return issued.View(), nil
}

// GetCard returns the caller's card after bringing its status in line with the account.
func (s *CardService) GetCard(ctx context.Context, idNo, password string) (*card.View, error) {
	return s.mutate(ctx, idNo, password, "", func(c card.Card, _ account.Status) (card.Card, error) {
		return c, nil
	})
}

func (s *CardService) UpdateCardPin(ctx context.Context, idNo, password, currentPin, newPin string) (*card.View, error) {
	return s.mutate(ctx, idNo, password, "card PIN updated", func(c card.Card, _ account.Status) (card.Card, error) {
		return card.ChangePin(c, currentPin, newPin)
	})
}

func (s *CardService) UpdateCardTransactionLimit(ctx context.Context, idNo, password, pin string, limit int) (*card.View, error) {
	return s.mutate(ctx, idNo, password, "card transaction limit updated", func(c card.Card, _ account.Status) (card.Card, error) {
		return card.ChangeLimit(c, pin, limit)
	})
}

func (s *CardService) UpdateCardStatus(ctx context.Context, idNo, password, pin string, action card.Action) (*card.View, error) {
	return s.mutate(ctx, idNo, password, "card status updated", func(c card.Card, accountStatus account.Status) (card.Card, error) {
		if err := card.CheckPin(c, pin); err != nil {
			return c, err
		}
		parsed, err := card.ParseAction(string(action))
		if err != nil {
			return c, err
		}
		return card.ApplyAction(c, accountStatus, parsed)
	})
}

// mutate loads the caller's card under lock, resyncs it to the account,
// applies fn and saves. An empty event marks a read that only persists a resync.
func (s *CardService) mutate(
	ctx context.Context,
	idNo, password, event string,
	fn func(c card.Card, accountStatus account.Status) (card.Card, error),
) (*card.View, error) {
	if _, err := s.customers.Authenticate(ctx, idNo, password); err != nil {
		return nil, err
	}

	var result card.Card
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		acct, err := s.accounts.Lookup(ctx, idNo)
		if err != nil {
			return err
		}
		current, err := s.cardRepo.LockByAccountID(ctx, acct.ID)
		if err != nil {
			return err
		}

		synced, resynced := card.Resync(*current, acct.Status)
		if resynced {
			s.logger.Info("card status resynced to account",
				zap.String("card_id", synced.ID.String()),
				zap.String("account_status", string(acct.Status)),
				zap.String("card_status", string(synced.Status)),
			)
		}

		next, err := fn(synced, acct.Status)
		if err != nil {
			return err
		}

		if event != "" || resynced {
			if err := s.cardRepo.Update(ctx, &next); err != nil {
				return err
			}
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event != "" {
		s.logger.Info(event,
			zap.String("card_id", result.ID.String()),
			zap.String("card_number", result.MaskedNumber()),
			zap.String("status", string(result.Status)),
		)
	}
	return result.View(), nil
}
