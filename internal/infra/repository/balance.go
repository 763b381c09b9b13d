package repository

import (
	"context"
	"log/slog"
	"time"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BalanceWriteQueries interface {
	EnsureBalance(ctx context.Context, arg dbq.EnsureBalanceParams) error
	LockBalance(ctx context.Context, customerID, rewardID pgtype.UUID) (dbq.Balance, error)
	UpdateBalance(ctx context.Context, arg dbq.UpdateBalanceParams) (int64, error)
	ExpireBalance(ctx context.Context, arg dbq.ExpireBalanceParams) (int64, error)
}

type BalanceRepository struct {
	queries BalanceWriteQueries
	logger  *slog.Logger
}

func NewBalanceRepository(queries BalanceWriteQueries, logger *slog.Logger) *BalanceRepository {
	return &BalanceRepository{
		queries: queries,
		logger:  logger,
	}
}

// Acquire inserts an empty row if the pair has none, then takes the row lock.
// Concurrent scans of the same pair queue on that lock until commit.
func (r *BalanceRepository) Acquire(ctx context.Context, customerID, rewardID uuid.UUID, now time.Time) (*ledger.Balance, error) {
	fresh := ledger.NewBalance(customerID, rewardID, now)
	err := r.queries.EnsureBalance(ctx, dbq.EnsureBalanceParams{
		ID:          converter.UUIDToPgtype(fresh.ID()),
		CustomerID:  converter.UUIDToPgtype(customerID),
		RewardID:    converter.UUIDToPgtype(rewardID),
		LastUpdated: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to create balance", err)
	}

	row, err := r.queries.LockBalance(ctx, converter.UUIDToPgtype(customerID), converter.UUIDToPgtype(rewardID))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to lock balance", err)
	}
	return converter.BalanceFromRow(row), nil
}

func (r *BalanceRepository) Save(ctx context.Context, b *ledger.Balance) error {
	n, err := r.queries.UpdateBalance(ctx, converter.BalanceToUpdateParams(b))
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update balance", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "balance not found", nil)
	}
	return nil
}

func (r *BalanceRepository) ExpireIfUnchanged(ctx context.Context, id uuid.UUID, observed, now time.Time) (bool, error) {
	n, err := r.queries.ExpireBalance(ctx, dbq.ExpireBalanceParams{
		ID:       converter.UUIDToPgtype(id),
		Observed: pgconv.TimeToPgtype(observed),
		Now:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapPgErr(r.logger, "failed to expire balance", err)
	}
	return n > 0, nil
}
