// internal/service/account/account.go
package account

import (
	"context"
	"errors"
	"time"

	"bankops-service/internal/domain/account"
	"bankops-service/internal/domain/customer"
	xerrors "bankops-service/internal/pkg/errors"
	"bankops-service/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, a *account.DepositAccount) error
	FindByCustomerIdentificationNo(ctx context.Context, idNo string) (*account.DepositAccount, error)
	LockByCustomerIdentificationNo(ctx context.Context, idNo string) (*account.DepositAccount, error)
	Update(ctx context.Context, a *account.DepositAccount) error
}

// Authenticator checks a customer's credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, idNo, password string) (*customer.Customer, error)
}

type AccountService struct {
	accountRepo Repository
	customers   Authenticator
	tx          repository.Transactor
	logger      *zap.Logger
}

func NewAccountService(accountRepo Repository, customers Authenticator, tx repository.Transactor, logger *zap.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		customers:   customers,
		tx:          tx,
		logger:      logger,
	}
}

// CreateAccount opens the customer's single deposit account with the given
// starting balance.
func (s *AccountService) CreateAccount(ctx context.Context, idNo, password string, initial decimal.Decimal) (*account.DepositAccount, error) {
	owner, err := s.customers.Authenticate(ctx, idNo, password)
	if err != nil {
		return nil, err
	}

	var created account.DepositAccount
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.accountRepo.FindByCustomerIdentificationNo(ctx, idNo)
		switch {
		case err == nil:
			return xerrors.New(xerrors.ErrConflict, "deposit account already exists for this customer")
		case !errors.Is(err, xerrors.ErrNotFound):
			return err
		}

		created, err = account.Open(owner.ID, initial, time.Now())
		if err != nil {
			return err
		}
		return s.accountRepo.Create(ctx, &created)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("deposit account created",
		zap.String("account_id", created.ID.String()),
		zap.String("customer_id", owner.ID.String()),
		zap.String("amount", created.Amount.String()),
	)
	return &created, nil
}

func (s *AccountService) GetAccount(ctx context.Context, idNo, password string) (*account.DepositAccount, error) {
	if _, err := s.customers.Authenticate(ctx, idNo, password); err != nil {
		return nil, err
	}
	return s.accountRepo.FindByCustomerIdentificationNo(ctx, idNo)
}

// CloseAccount moves the account to CLOSED for good.
func (s *AccountService) CloseAccount(ctx context.Context, idNo, password string) (*account.DepositAccount, error) {
	return s.mutate(ctx, idNo, password, "deposit account closed", account.Close)
}

func (s *AccountService) DepositFunds(ctx context.Context, idNo, password string, amount decimal.Decimal) (*account.DepositAccount, error) {
	return s.mutate(ctx, idNo, password, "funds deposited", func(a account.DepositAccount) (account.DepositAccount, error) {
		return account.Deposit(a, amount)
	})
}

func (s *AccountService) WithdrawFunds(ctx context.Context, idNo, password string, amount decimal.Decimal) (*account.DepositAccount, error) {
	return s.mutate(ctx, idNo, password, "funds withdrawn", func(a account.DepositAccount) (account.DepositAccount, error) {
		return account.Withdraw(a, amount)
	})
}

// UpdateStatus freezes or unfreezes the account. The action is parsed only
// after the caller has authenticated.
func (s *AccountService) UpdateStatus(ctx context.Context, idNo, password string, action account.Action) (*account.DepositAccount, error) {
	return s.mutate(ctx, idNo, password, "deposit account status updated", func(a account.DepositAccount) (account.DepositAccount, error) {
		parsed, err := account.ParseAction(string(action))
		if err != nil {
			return a, err
		}
		return account.ApplyAction(a, parsed)
	})
}

// mutate authenticates, then locks, transforms and saves the account in one unit of work.
func (s *AccountService) mutate(
	ctx context.Context,
	idNo, password, event string,
	apply func(account.DepositAccount) (account.DepositAccount, error),
) (*account.DepositAccount, error) {
	if _, err := s.customers.Authenticate(ctx, idNo, password); err != nil {
		return nil, err
	}

	var result account.DepositAccount
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.accountRepo.LockByCustomerIdentificationNo(ctx, idNo)
		if err != nil {
			return err
		}

		next, err := apply(*current)
		if err != nil {
			return err
		}

		if err := s.accountRepo.Update(ctx, &next); err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(event,
		zap.String("account_id", result.ID.String()),
		zap.String("status", string(result.Status)),
		zap.String("amount", result.Amount.String()),
	)
	return &result, nil
}

// Lookup returns the account of an already authenticated customer. Inside a
// unit of work the row stays locked until it ends.
func (s *AccountService) Lookup(ctx context.Context, idNo string) (*account.DepositAccount, error) {
	return s.accountRepo.LockByCustomerIdentificationNo(ctx, idNo)
}
