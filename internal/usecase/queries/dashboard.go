package queries

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/pkg/clock"
	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrDashboardUnavailable hides which part of the aggregation failed.
var ErrDashboardUnavailable = errs.Mark(errs.New("failed to load dashboard"), errs.ErrUnexpected)

type Progress struct {
	CurrentTotalPoints int
	RewardsAvailable   int
}

type Achievements struct {
	TotalRewardsRedeemed int
	TotalPointsEarned    int
}

type BusinessActivity struct {
	BusinessID      uuid.UUID
	BusinessName    string
	Category        *string
	RewardID        uuid.UUID
	RewardName      string
	Balance         int
	CostPoints      int
	AffordableUnits int
	LastScanAt      *time.Time
}

type RecentActivity struct {
	Days         int
	PointsEarned int
	Scans        int
	Redemptions  int
}

type ExpiringBalance struct {
	BusinessID      uuid.UUID
	BusinessName    string
	RewardID        uuid.UUID
	RewardName      string
	Balance         int
	AffordableUnits int
	DaysUntilExpiry int
}

type Dashboard struct {
	Progress       Progress
	Achievements   Achievements
	TopBusinesses  []BusinessActivity
	RecentActivity RecentActivity
	ExpiringSoon   []ExpiringBalance
}

type DashboardReadStore interface {
	ListBalances(ctx context.Context, customerID uuid.UUID) ([]shared.BalanceHolding, error)
	MostRecentScanAtBusiness(ctx context.Context, customerID, businessID uuid.UUID) (*time.Time, error)
	ActivitySince(ctx context.Context, customerID uuid.UUID, since time.Time) (shared.ActivityTotals, error)
	LifetimeTotals(ctx context.Context, customerID uuid.UUID) (shared.LifetimeTotals, error)
}

type DashboardOptions struct {
	RecentActivityDays int
	ExpiringSoonDays   int
	TopBusinesses      int
}

type DashboardQueries interface {
	BuildDashboard(ctx context.Context, customerID uuid.UUID) (*Dashboard, error)
}

type dashboardQueriesImpl struct {
	store     DashboardReadStore
	evaluator shared.BalanceEvaluator
	clock     clock.Clock
	opts      DashboardOptions
	logger    *slog.Logger
}

func NewDashboardQueries(store DashboardReadStore, evaluator shared.BalanceEvaluator, clk clock.Clock, opts DashboardOptions, logger *slog.Logger) DashboardQueries {
	return &dashboardQueriesImpl{store: store, evaluator: evaluator, clock: clk, opts: opts, logger: logger}
}

type activeHolding struct {
	shared.BalanceHolding
	effective ledger.Effective
}

func (q *dashboardQueriesImpl) BuildDashboard(ctx context.Context, customerID uuid.UUID) (*Dashboard, error) {
	d, err := q.build(ctx, customerID)
	if err != nil {
		q.logger.Error("failed to build dashboard",
			slog.String("customer_id", customerID.String()),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 8)))
		return nil, ErrDashboardUnavailable
	}
	return d, nil
}

func (q *dashboardQueriesImpl) build(ctx context.Context, customerID uuid.UUID) (*Dashboard, error) {
	holdings, err := q.store.ListBalances(ctx, customerID)
	if err != nil {
		return nil, err
	}

	active := make([]activeHolding, 0, len(holdings))
	for _, h := range holdings {
		eff, err := q.evaluator.Effective(ctx, h.Reward, h.Balance)
		if err != nil {
			return nil, err
		}
		if eff.Value > 0 {
			active = append(active, activeHolding{BalanceHolding: h, effective: eff})
		}
	}

	lifetime, err := q.store.LifetimeTotals(ctx, customerID)
	if err != nil {
		return nil, err
	}

	top, err := q.topBusinesses(ctx, customerID, active)
	if err != nil {
		return nil, err
	}

	since := q.clock.Now().AddDate(0, 0, -q.opts.RecentActivityDays)
	recent, err := q.store.ActivitySince(ctx, customerID, since)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Progress: progressOf(active),
		Achievements: Achievements{
			TotalRewardsRedeemed: lifetime.Redemptions,
			TotalPointsEarned:    lifetime.PointsEarned,
		},
		TopBusinesses: top,
		RecentActivity: RecentActivity{
			Days:         q.opts.RecentActivityDays,
			PointsEarned: recent.PointsEarned,
			Scans:        recent.Scans,
			Redemptions:  recent.Redemptions,
		},
		ExpiringSoon: expiringSoon(active, q.opts.ExpiringSoonDays),
	}, nil
}

func progressOf(active []activeHolding) Progress {
	var p Progress
	for _, a := range active {
		p.CurrentTotalPoints += a.effective.Value
		if a.effective.Value >= a.Reward.CostPoints() {
			p.RewardsAvailable++
		}
	}
	return p
}

func (q *dashboardQueriesImpl) topBusinesses(ctx context.Context, customerID uuid.UUID, active []activeHolding) ([]BusinessActivity, error) {
	lastScans := make(map[uuid.UUID]*time.Time)
	items := make([]BusinessActivity, 0, len(active))
	for _, a := range active {
		last, seen := lastScans[a.Business.ID]
		if !seen {
			var err error
			last, err = q.store.MostRecentScanAtBusiness(ctx, customerID, a.Business.ID)
			if err != nil {
				return nil, err
			}
			lastScans[a.Business.ID] = last
		}
		items = append(items, BusinessActivity{
			BusinessID:      a.Business.ID,
			BusinessName:    a.Business.Name,
			Category:        a.Business.Category,
			RewardID:        a.Reward.ID(),
			RewardName:      a.Reward.Name(),
			Balance:         a.effective.Value,
			CostPoints:      a.Reward.CostPoints(),
			AffordableUnits: a.Reward.AffordableUnits(a.effective.Value),
			LastScanAt:      last,
		})
	}

	// Most recent first; businesses never scanned go last.
	slices.SortStableFunc(items, func(a, b BusinessActivity) int {
		switch {
		case a.LastScanAt == nil && b.LastScanAt == nil:
			return 0
		case a.LastScanAt == nil:
			return 1
		case b.LastScanAt == nil:
			return -1
		default:
			return b.LastScanAt.Compare(*a.LastScanAt)
		}
	})

	if q.opts.TopBusinesses >= 0 && len(items) > q.opts.TopBusinesses {
		items = items[:q.opts.TopBusinesses]
	}
	return items, nil
}

func expiringSoon(active []activeHolding, withinDays int) []ExpiringBalance {
	items := make([]ExpiringBalance, 0)
	for _, a := range active {
		days := a.effective.DaysUntilExpiry
		if days == nil || *days > withinDays {
			continue
		}
		items = append(items, ExpiringBalance{
			BusinessID:      a.Business.ID,
			BusinessName:    a.Business.Name,
			RewardID:        a.Reward.ID(),
			RewardName:      a.Reward.Name(),
			Balance:         a.effective.Value,
			AffordableUnits: a.Reward.AffordableUnits(a.effective.Value),
			DaysUntilExpiry: *days,
		})
	}
	slices.SortStableFunc(items, func(a, b ExpiringBalance) int {
		return cmp.Compare(a.DaysUntilExpiry, b.DaysUntilExpiry)
	})
	return items
}
