package readstore

import (
	"context"
	"log/slog"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/pkg/pgconv"
)

type CustomerReadQueries interface {
	GetCustomerByCode(ctx context.Context, code string) (dbq.Customer, error)
	GetCustomerByAuthID(ctx context.Context, authProviderID string) (dbq.Customer, error)
	CustomerCodeExists(ctx context.Context, code string) (bool, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	logger  *slog.Logger
}

func NewCustomerReadStore(queries CustomerReadQueries, logger *slog.Logger) *CustomerReadStore {
	return &CustomerReadStore{queries: queries, logger: logger}
}

func (r *CustomerReadStore) FindByCode(ctx context.Context, code string) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByCode(ctx, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get customer by code", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *CustomerReadStore) FindByAuthID(ctx context.Context, authProviderID string) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByAuthID(ctx, authProviderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get customer by auth id", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *CustomerReadStore) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.queries.CustomerCodeExists(ctx, code)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check customer code", err)
	}
	return exists, nil
}
