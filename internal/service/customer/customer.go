// internal/service/customer/customer.go
package customer

import (
	"context"
	"errors"
	"strings"

	"bankops-service/internal/domain/customer"
	xerrors "bankops-service/internal/pkg/errors"
	"bankops-service/internal/pkg/password"
	"bankops-service/internal/pkg/ratelimit"
	"bankops-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the customer storage the service needs.
type Repository interface {
	Create(ctx context.Context, c *customer.Customer) error
	FindByIdentificationNo(ctx context.Context, idNo string) (*customer.Customer, error)
	LockByIdentificationNo(ctx context.Context, idNo string) (*customer.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) error
	UpdateStatus(ctx context.Context, idNo string, status customer.Status) (bool, error)
}

type CustomerService struct {
	customerRepo Repository
	tx           repository.Transactor
	hasher       password.Hasher
	limiter      ratelimit.Limiter
	logger       *zap.Logger
}

// NewCustomerService builds the customer directory. limiter may be nil, in
// which case failed logins are not counted.
func NewCustomerService(
	customerRepo Repository,
	tx repository.Transactor,
	hasher password.Hasher,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		tx:           tx,
		hasher:       hasher,
		limiter:      limiter,
		logger:       logger,
	}
}

// CreateProfile registers a new ACTIVE customer.
func (s *CustomerService) CreateProfile(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.Profile, error) {
	if !password.IsAcceptable(req.Password) {
		return nil, xerrors.New(xerrors.ErrInvalidInput,
			"password must be at least 8 characters long and contain at least one letter and one digit")
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	c := &customer.Customer{
		ID:               uuid.New(),
		IdentificationNo: strings.TrimSpace(req.IdentificationNo),
		PhoneNo:          strings.TrimSpace(req.PhoneNo),
		Name:             req.Name,
		Address:          req.Address,
		PasswordHash:     digest,
		Status:           customer.StatusActive,
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		if !errors.Is(err, xerrors.ErrConflict) {
			s.logger.Error("failed to create customer", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("customer created",
		zap.String("customer_id", c.ID.String()),
		zap.String("identification_no", c.IdentificationNo),
	)

	return c.Profile(), nil
}

// GetProfile retrieves a customer by identification number
func (s *CustomerService) GetProfile(ctx context.Context, idNo string) (*customer.Profile, error) {
	c, err := s.customerRepo.FindByIdentificationNo(ctx, idNo)
	if err != nil {
		return nil, err
	}
	return c.Profile(), nil
}

// UpdateProfile applies the non-nil fields of req once the current password checks out.
func (s *CustomerService) UpdateProfile(ctx context.Context, idNo string, req *customer.UpdateCustomerRequest) (*customer.Profile, error) {
	var updated *customer.Customer

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.customerRepo.LockByIdentificationNo(ctx, idNo)
		if err != nil {
			return err
		}

		if !s.hasher.Verify(req.CurrentPassword, c.PasswordHash) {
			return xerrors.New(xerrors.ErrUnauthorized, "current password is incorrect")
		}

		for field, v := range map[string]*string{
			"name":              req.Name,
			"identification_no": req.IdentificationNo,
			"phone_no":          req.PhoneNo,
		} {
			if v != nil && strings.TrimSpace(*v) == "" {
				return xerrors.Newf(xerrors.ErrInvalidInput, "%s must not be blank", field)
			}
		}

		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.IdentificationNo != nil {
			c.IdentificationNo = strings.TrimSpace(*req.IdentificationNo)
		}
		if req.PhoneNo != nil {
			c.PhoneNo = strings.TrimSpace(*req.PhoneNo)
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.Status != nil {
			status, err := customer.ParseStatus(*req.Status)
			if err != nil {
				return err
			}
			c.Status = status
		}
		if req.NewPassword != nil {
			if !password.IsAcceptable(*req.NewPassword) {
				return xerrors.New(xerrors.ErrInvalidInput,
					"new password must be at least 8 characters long and contain at least one letter and one digit")
			}
			digest, err := s.hasher.Hash(*req.NewPassword)
			if err != nil {
				return err
			}
			c.PasswordHash = digest
		}

		if err := s.customerRepo.Update(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer profile updated", zap.String("customer_id", updated.ID.String()))
	return updated.Profile(), nil
}

// UpdateStatus overwrites the customer's status. It reports false when no
// customer has that identification number.
func (s *CustomerService) UpdateStatus(ctx context.Context, idNo string, status customer.Status) (bool, error) {
	ok, err := s.customerRepo.UpdateStatus(ctx, idNo, status)
	if err != nil {
		s.logger.Error("failed to update customer status", zap.String("identification_no", idNo), zap.Error(err))
		return false, err
	}
	if ok {
		s.logger.Info("customer status updated",
			zap.String("identification_no", idNo),
			zap.String("status", string(status)),
		)
	}
	return ok, nil
}

// VerifyLogin reports whether idNo names an ACTIVE customer whose digest
// matches password. Lookup failures count as a mismatch.
func (s *CustomerService) VerifyLogin(ctx context.Context, idNo, password string) bool {
	_, ok := s.verify(ctx, idNo, password)
	return ok
}

func (s *CustomerService) verify(ctx context.Context, idNo, password string) (*customer.Customer, bool) {
	c, err := s.customerRepo.FindByIdentificationNo(ctx, idNo)
	if err != nil {
		if !errors.Is(err, xerrors.ErrNotFound) {
			s.logger.Warn("login lookup failed", zap.String("identification_no", idNo), zap.Error(err))
		}
		return nil, false
	}
	if !c.Status.IsActive() {
		return nil, false
	}
	if !s.hasher.Verify(password, c.PasswordHash) {
		return nil, false
	}
	return c, true
}

// Authenticate is VerifyLogin for the other components: it returns the
// customer, or ErrUnauthorized. With a limiter configured, repeated failures
// lock the identification number out with ErrRateLimited. Limiter outages
// are logged and ignored.
func (s *CustomerService) Authenticate(ctx context.Context, idNo, password string) (*customer.Customer, error) {
	if s.limiter != nil {
		locked, err := s.limiter.Locked(ctx, idNo)
		if err != nil {
			s.logger.Warn("login limiter unavailable", zap.Error(err))
		} else if locked {
			return nil, xerrors.New(xerrors.ErrRateLimited, "too many failed login attempts, try again later")
		}
	}

	c, ok := s.verify(ctx, idNo, password)
	if !ok {
		if s.limiter != nil {
			if err := s.limiter.RecordFailure(ctx, idNo); err != nil {
				s.logger.Warn("failed to record login failure", zap.Error(err))
			}
		}
		return nil, xerrors.New(xerrors.ErrUnauthorized, "invalid identification number or password")
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, idNo); err != nil {
			s.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}
	return c, nil
}

// CustomerByID is used to resolve the owner of a child record.
func (s *CustomerService) CustomerByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}
