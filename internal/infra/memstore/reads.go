package memstore

import (
	"context"
	"log/slog"
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"
	"perks-ledger/internal/pkg/ptr"
	"perks-ledger/internal/usecase/queries"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

// ReadStore serves command lookups and every query-side read store.
type ReadStore struct {
	read   func() *memdb.Txn
	logger *slog.Logger
}

func (r *ReadStore) first(table, index string, args ...any) (any, error) {
	raw, err := r.read().First(table, index, args...)
	if err != nil {
		return nil, failure(r.logger, "failed to read "+table, err)
	}
	return raw, nil
}

func (r *ReadStore) each(table, index string, fn func(raw any), args ...any) error {
	it, err := r.read().Get(table, index, args...)
	if err != nil {
		return failure(r.logger, "failed to scan "+table, err)
	}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		fn(raw)
	}
	return nil
}

func (r *ReadStore) CustomerByCode(ctx context.Context, code string) (*customer.Customer, error) {
	return r.customerBy(ctx, "code", code)
}

func (r *ReadStore) CustomerByAuthID(ctx context.Context, authProviderID string) (*customer.Customer, error) {
	return r.customerBy(ctx, "auth", authProviderID)
}

func (r *ReadStore) customerBy(ctx context.Context, index, value string) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, failure(r.logger, "failed to get customer", err)
	}
	if value == "" {
		return nil, notFound(r.logger, "customer not found")
	}
	raw, err := r.first(tableCustomers, index, value)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, notFound(r.logger, "customer not found")
	}
	return customerFromRow(raw.(*customerRow)), nil
}

func (r *ReadStore) CodeExists(ctx context.Context, code string) (bool, error) {
	raw, err := r.first(tableCustomers, "code", code)
	if err != nil {
		return false, err
	}
	return raw != nil, nil
}

func (r *ReadStore) RewardByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	if err := ctx.Err(); err != nil {
		return nil, failure(r.logger, "failed to get reward", err)
	}
	raw, err := r.first(tableRewards, "id", id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, notFound(r.logger, "reward not found")
	}
	return rewardFromRow(raw.(*rewardRow)), nil
}

func (r *ReadStore) FindBalance(ctx context.Context, customerID, rewardID uuid.UUID) (*ledger.Balance, error) {
	raw, err := r.first(tableBalances, "pair", customerID.String(), rewardID.String())
	if err != nil || raw == nil {
		return nil, err
	}
	return balanceFromRow(raw.(*balanceRow)), nil
}

func (r *ReadStore) LastScanAt(ctx context.Context, customerID, rewardID uuid.UUID) (*time.Time, error) {
	var last *time.Time
	err := r.each(tableScanEvents, "pair", func(raw any) {
		last = later(last, raw.(*scanEventRow).ScannedAt)
	}, customerID.String(), rewardID.String())
	return last, err
}

func (r *ReadStore) LastRedemptionAt(ctx context.Context, customerID, rewardID uuid.UUID) (*time.Time, error) {
	var last *time.Time
	err := r.each(tableRedemptions, "pair", func(raw any) {
		last = later(last, raw.(*redemptionRow).RedeemedAt)
	}, customerID.String(), rewardID.String())
	return last, err
}

func (r *ReadStore) ListBalances(ctx context.Context, customerID uuid.UUID) ([]shared.BalanceHolding, error) {
	var rows []*balanceRow
	if err := r.each(tableBalances, "customer", func(raw any) {
		rows = append(rows, raw.(*balanceRow))
	}, customerID.String()); err != nil {
		return nil, err
	}

	holdings := make([]shared.BalanceHolding, 0, len(rows))
	for _, b := range rows {
		rawReward, err := r.first(tableRewards, "id", b.RewardID)
		if err != nil {
			return nil, err
		}
		if rawReward == nil {
			continue
		}
		rw := rawReward.(*rewardRow)
		biz, err := r.businessSummary(rw.BusinessID)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, shared.BalanceHolding{
			Balance:  balanceFromRow(b),
			Reward:   rewardFromRow(rw),
			Business: biz,
		})
	}
	return holdings, nil
}

func (r *ReadStore) businessSummary(businessID string) (shared.BusinessSummary, error) {
	summary := shared.BusinessSummary{ID: parseID(businessID)}
	raw, err := r.first(tableBusinesses, "id", businessID)
	if err != nil || raw == nil {
		return summary, err
	}
	biz := raw.(*businessRow)
	summary.Name = biz.Name
	if biz.CategoryID != "" {
		rawCat, err := r.first(tableCategories, "id", biz.CategoryID)
		if err != nil {
			return summary, err
		}
		if rawCat != nil {
			summary.Category = ptr.To(rawCat.(*categoryRow).Name)
		}
	}
	return summary, nil
}

func (r *ReadStore) MostRecentScanAtBusiness(ctx context.Context, customerID, businessID uuid.UUID) (*time.Time, error) {
	var last *time.Time
	want := businessID.String()
	err := r.each(tableScanEvents, "customer", func(raw any) {
		if ev := raw.(*scanEventRow); ev.BusinessID == want {
			last = later(last, ev.ScannedAt)
		}
	}, customerID.String())
	return last, err
}

func (r *ReadStore) ActivitySince(ctx context.Context, customerID uuid.UUID, since time.Time) (shared.ActivityTotals, error) {
	var totals shared.ActivityTotals
	if err := r.each(tableScanEvents, "customer", func(raw any) {
		ev := raw.(*scanEventRow)
		if ev.ScannedAt.Before(since) {
			return
		}
		totals.Scans++
		if ev.PointsChange > 0 {
			totals.PointsEarned += ev.PointsChange
		}
	}, customerID.String()); err != nil {
		return shared.ActivityTotals{}, err
	}
	if err := r.each(tableRedemptions, "customer", func(raw any) {
		if !raw.(*redemptionRow).RedeemedAt.Before(since) {
			totals.Redemptions++
		}
	}, customerID.String()); err != nil {
		return shared.ActivityTotals{}, err
	}
	return totals, nil
}

func (r *ReadStore) LifetimeTotals(ctx context.Context, customerID uuid.UUID) (shared.LifetimeTotals, error) {
	var totals shared.LifetimeTotals
	if err := r.each(tableScanEvents, "customer", func(raw any) {
		if d := raw.(*scanEventRow).PointsChange; d > 0 {
			totals.PointsEarned += d
		}
	}, customerID.String()); err != nil {
		return shared.LifetimeTotals{}, err
	}
	if err := r.each(tableRedemptions, "customer", func(raw any) {
		totals.Redemptions++
	}, customerID.String()); err != nil {
		return shared.LifetimeTotals{}, err
	}
	return totals, nil
}

func (r *ReadStore) FindByID(ctx context.Context, rewardID, id uuid.UUID) (*queries.ScanEventView, error) {
	raw, err := r.first(tableScanEvents, "id", id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil || raw.(*scanEventRow).RewardID != rewardID.String() {
		return nil, notFound(r.logger, "scan event not found")
	}
	ev := raw.(*scanEventRow)
	return &queries.ScanEventView{
		ID:             parseID(ev.ID),
		CustomerID:     parseID(ev.CustomerID),
		RewardID:       parseID(ev.RewardID),
		BusinessUserID: parseOptionalID(ev.BusinessUserID),
		Code:           ev.Code,
		PointsChange:   ev.PointsChange,
		ScannedAt:      ev.ScannedAt,
	}, nil
}

func (r *ReadStore) FindIDByAuthID(ctx context.Context, authProviderID string) (uuid.UUID, error) {
	raw, err := r.first(tableBusinessUsers, "auth", authProviderID)
	if err != nil {
		return uuid.Nil, err
	}
	if raw == nil {
		return uuid.Nil, notFound(r.logger, "business user not found")
	}
	return parseID(raw.(*businessUserRow).ID), nil
}

func later(cur *time.Time, t time.Time) *time.Time {
	if cur == nil || t.After(*cur) {
		return &t
	}
	return cur
}
