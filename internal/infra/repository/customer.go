package repository

import (
	"context"
	"log/slog"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, arg dbq.CreateCustomerParams) error
	UpdateCustomerName(ctx context.Context, id pgtype.UUID, name string) (int64, error)
	DeleteCustomer(ctx context.Context, id pgtype.UUID) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	logger  *slog.Logger
}

func NewCustomerRepository(queries CustomerWriteQueries, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if err := r.queries.CreateCustomer(ctx, converter.CustomerToCreateParams(c)); err != nil {
		return infra.WrapPgErr(r.logger, "failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) UpdateName(ctx context.Context, c *customer.Customer) error {
	n, err := r.queries.UpdateCustomerName(ctx, converter.UUIDToPgtype(c.ID()), c.Name().Value())
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to rename customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", nil)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteCustomer(ctx, converter.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", nil)
	}
	return nil
}
