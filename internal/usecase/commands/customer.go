package commands

import (
	"context"
	"log/slog"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/pkg/clock"
	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/usecase/shared"
)

var errCodeSpaceExhausted = errs.New("could not allocate a unique customer code")

type CreateCustomerRequest struct {
	AuthProviderID string
	Email          string
	Name           string
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*customer.Customer, error)
	RenameCustomer(ctx context.Context, subject, name string) (*customer.Customer, error)
	// DeleteCustomer is terminal and takes the customer's whole ledger with it.
	DeleteCustomer(ctx context.Context, subject string) error
}

type customerUseCaseImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	codeAttempts int
	newCode      func() (customer.Code, error)
	logger       *slog.Logger
}

func NewCustomerUseCase(uow shared.UnitOfWork, clk clock.Clock, codeAttempts int, logger *slog.Logger) CustomerCommands {
	return newCustomerUseCase(uow, clk, codeAttempts, customer.GenerateCode, logger)
}

func newCustomerUseCase(uow shared.UnitOfWork, clk clock.Clock, codeAttempts int, newCode func() (customer.Code, error), logger *slog.Logger) *customerUseCaseImpl {
	if codeAttempts <= 0 {
		codeAttempts = 1
	}
	return &customerUseCaseImpl{uow: uow, clock: clk, codeAttempts: codeAttempts, newCode: newCode, logger: logger}
}

func (uc *customerUseCaseImpl) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*customer.Customer, error) {
	reg, err := customer.NewRegistration(req.AuthProviderID, req.Email, req.Name)
	if err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	for attempt := 1; attempt <= uc.codeAttempts; attempt++ {
		code, err := uc.newCode()
		if err != nil {
			return nil, classify(uc.logger, "generate customer code", err)
		}
		taken, err := reads.CodeExists(ctx, code.Value())
		if err != nil {
			return nil, classify(uc.logger, "check customer code", err)
		}
		if taken {
			uc.logger.Warn("customer code collision", slog.Int("attempt", attempt))
			continue
		}

		c, err := customer.NewCustomer(reg, code, uc.clock.Now())
		if err != nil {
			return nil, err
		}
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Customers().Create(ctx, c)
		})
		switch {
		case err == nil:
			uc.logger.Info("customer created", slog.String("customer_id", c.ID().String()))
			return c, nil
		case infra.IsKind(err, infra.KindDuplicateKey):
			switch infra.ViolatedConstraint(err) {
			case infra.ConstraintCustomerEmail:
				return nil, customer.ErrEmailTaken
			case infra.ConstraintCustomerCode:
				uc.logger.Warn("customer code collision on insert", slog.Int("attempt", attempt))
				continue
			default:
				return nil, customer.ErrAlreadyRegistered
			}
		default:
			return nil, classify(uc.logger, "create customer", err)
		}
	}

	return nil, classify(uc.logger, "create customer", errCodeSpaceExhausted)
}

func (uc *customerUseCaseImpl) RenameCustomer(ctx context.Context, subject, name string) (*customer.Customer, error) {
	var renamed *customer.Customer
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CustomerByAuthID(ctx, subject)
		if err != nil {
			return shared.TranslateNotFound(err, customer.ErrNotFound)
		}
		if err := c.Rename(name); err != nil {
			return err
		}
		if err := tx.Customers().UpdateName(ctx, c); err != nil {
			return shared.TranslateNotFound(err, customer.ErrNotFound)
		}
		renamed = c
		return nil
	})
	if err != nil {
		return nil, classify(uc.logger, "rename customer", err)
	}
	return renamed, nil
}

func (uc *customerUseCaseImpl) DeleteCustomer(ctx context.Context, subject string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CustomerByAuthID(ctx, subject)
		if err != nil {
			return shared.TranslateNotFound(err, customer.ErrNotFound)
		}
		if err := tx.Customers().Delete(ctx, c.ID()); err != nil {
			return shared.TranslateNotFound(err, customer.ErrNotFound)
		}
		uc.logger.Info("customer deleted", slog.String("customer_id", c.ID().String()))
		return nil
	})
	return classify(uc.logger, "delete customer", err)
}
