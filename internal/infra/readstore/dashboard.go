package readstore

import (
	"context"
	"log/slog"
	"time"

	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/pkg/pgconv"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DashboardViewQueries interface {
	ListCustomerBalances(ctx context.Context, customerID pgtype.UUID) ([]dbq.ListCustomerBalancesRow, error)
	MostRecentScanAtBusiness(ctx context.Context, customerID, businessID pgtype.UUID) (pgtype.Timestamptz, error)
	ActivitySince(ctx context.Context, customerID pgtype.UUID, since pgtype.Timestamptz) (dbq.ActivitySinceRow, error)
	LifetimeTotals(ctx context.Context, customerID pgtype.UUID) (dbq.LifetimeTotalsRow, error)
}

// DashboardReadStore serves the customer dashboard aggregates.
type DashboardReadStore struct {
	queries DashboardViewQueries
	logger  *slog.Logger
}

func NewDashboardReadStore(queries DashboardViewQueries, logger *slog.Logger) *DashboardReadStore {
	return &DashboardReadStore{queries: queries, logger: logger}
}

func (r *DashboardReadStore) ListBalances(ctx context.Context, customerID uuid.UUID) ([]shared.BalanceHolding, error) {
	rows, err := r.queries.ListCustomerBalances(ctx, converter.UUIDToPgtype(customerID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list balances", err)
	}

	holdings := make([]shared.BalanceHolding, 0, len(rows))
	for _, row := range rows {
		rw := converter.RewardFromRow(row.Reward)
		holdings = append(holdings, shared.BalanceHolding{
			Balance: converter.BalanceFromRow(row.Balance),
			Reward:  rw,
			Business: shared.BusinessSummary{
				ID:       rw.BusinessID(),
				Name:     row.BusinessName,
				Category: pgconv.StringPtrFromPgtype(row.CategoryName),
			},
		})
	}
	return holdings, nil
}

func (r *DashboardReadStore) MostRecentScanAtBusiness(ctx context.Context, customerID, businessID uuid.UUID) (*time.Time, error) {
	t, err := r.queries.MostRecentScanAtBusiness(ctx, converter.UUIDToPgtype(customerID), converter.UUIDToPgtype(businessID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get last scan at business", err)
	}
	return pgconv.TimePtrFromPgtype(t), nil
}

func (r *DashboardReadStore) ActivitySince(ctx context.Context, customerID uuid.UUID, since time.Time) (shared.ActivityTotals, error) {
	row, err := r.queries.ActivitySince(ctx, converter.UUIDToPgtype(customerID), pgconv.TimeToPgtype(since))
	if err != nil {
		return shared.ActivityTotals{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get recent activity", err)
	}
	return shared.ActivityTotals{
		PointsEarned: int(row.PointsEarned),
		Scans:        int(row.Scans),
		Redemptions:  int(row.Redemptions),
	}, nil
}

func (r *DashboardReadStore) LifetimeTotals(ctx context.Context, customerID uuid.UUID) (shared.LifetimeTotals, error) {
	row, err := r.queries.LifetimeTotals(ctx, converter.UUIDToPgtype(customerID))
	if err != nil {
		return shared.LifetimeTotals{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get lifetime totals", err)
	}
	return shared.LifetimeTotals{
		Redemptions:  int(row.Redemptions),
		PointsEarned: int(row.PointsEarned),
	}, nil
}
