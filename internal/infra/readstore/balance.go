package readstore

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

type BalanceReadQueries interface {
	GetBalance(ctx context.Context, customerID, rewardID pgtype.UUID) (dbq.Balance, error)
	LastScanAt(ctx context.Context, customerID, rewardID pgtype.UUID) (pgtype.Timestamptz, error)
	LastRedemptionAt(ctx context.Context, customerID, rewardID pgtype.UUID) (pgtype.Timestamptz, error)
}

// BalanceReadStore serves point lookups of one (customer, reward) pair.
type BalanceReadStore struct {
	queries BalanceReadQueries
	logger  *slog.Logger
}

func NewBalanceReadStore(queries BalanceReadQueries, logger *slog.Logger) *BalanceReadStore {
	return &BalanceReadStore{queries: queries, logger: logger}
}

// Find returns nil when the pair has never accrued.
func (r *BalanceReadStore) Find(ctx context.Context, customerID, rewardID uuid.UUID) (*ledger.Balance, error) {
	row, err := r.queries.GetBalance(ctx, converter.UUIDToPgtype(customerID), converter.UUIDToPgtype(rewardID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get balance", err)
	}
	return converter.BalanceFromRow(row), nil
}

func (r *BalanceReadStore) LastScanAt(ctx context.Context, customerID, rewardID uuid.UUID) (*time.Time, error) {
	t, err := r.queries.LastScanAt(ctx, converter.UUIDToPgtype(customerID), converter.UUIDToPgtype(rewardID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get last scan", err)
	}
	return pgconv.TimePtrFromPgtype(t), nil
}

func (r *BalanceReadStore) LastRedemptionAt(ctx context.Context, customerID, rewardID uuid.UUID) (*time.Time, error) {
	t, err := r.queries.LastRedemptionAt(ctx, converter.UUIDToPgtype(customerID), converter.UUIDToPgtype(rewardID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get last redemption", err)
	}
	return pgconv.TimePtrFromPgtype(t), nil
}
