package expiry

import (
	"context"
	"log/slog"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"
	"perks-ledger/internal/pkg/clock"
	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/usecase/shared"
)

type evaluator struct {
	uow    shared.UnitOfWork
	policy ledger.ExpiryPolicy
	clock  clock.Clock
	logger *slog.Logger
}

func NewEvaluator(uow shared.UnitOfWork, policy ledger.ExpiryPolicy, clk clock.Clock, logger *slog.Logger) shared.BalanceEvaluator {
	return &evaluator{uow: uow, policy: policy, clock: clk, logger: logger}
}

func (e *evaluator) Assess(ctx context.Context, reads shared.ActivityReader, r *reward.Reward, b *ledger.Balance) (ledger.Effective, error) {
	if b == nil {
		return ledger.Effective{}, nil
	}
	if _, ok := r.ExpiryWindow(); !ok || b.Value() == 0 {
		return e.policy.EvaluateReward(r, b.Value(), nil, e.clock.Now()), nil
	}

	lastScan, err := reads.LastScanAt(ctx, b.CustomerID(), b.RewardID())
	if err != nil {
		return ledger.Effective{}, errs.Wrap(err, "load last scan")
	}
	lastRedemption, err := reads.LastRedemptionAt(ctx, b.CustomerID(), b.RewardID())
	if err != nil {
		return ledger.Effective{}, errs.Wrap(err, "load last redemption")
	}

	return e.policy.EvaluateReward(r, b.Value(), ledger.LatestActivity(lastScan, lastRedemption), e.clock.Now()), nil
}

// Effective zeroes a stale balance in storage before reporting it. The write
// is conditional on the balance being unchanged since it was read.
func (e *evaluator) Effective(ctx context.Context, r *reward.Reward, b *ledger.Balance) (ledger.Effective, error) {
	eff, err := e.Assess(ctx, e.uow.CommandReads(), r, b)
	if err != nil || !eff.Expired {
		return eff, err
	}

	now := e.clock.Now()
	observed := b.LastUpdated()
	var changed bool
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var werr error
		changed, werr = tx.Balances().ExpireIfUnchanged(ctx, b.ID(), observed, now)
		return werr
	})
	if err != nil {
		return ledger.Effective{}, errs.Wrap(err, "persist balance expiry")
	}

	if !changed {
		// Someone else wrote the row first: a scan refreshed it or another
		// reader already zeroed it. Report what is stored now.
		return e.reassess(ctx, r, b)
	}

	b.Expire(now)
	e.logger.Info("balance expired",
		slog.String("balance_id", b.ID().String()),
		slog.String("reward_id", r.ID().String()))
	return eff, nil
}

func (e *evaluator) reassess(ctx context.Context, r *reward.Reward, b *ledger.Balance) (ledger.Effective, error) {
	reads := e.uow.CommandReads()
	fresh, err := reads.FindBalance(ctx, b.CustomerID(), b.RewardID())
	if err != nil {
		return ledger.Effective{}, errs.Wrap(err, "reload balance")
	}
	if fresh == nil {
		b.Expire(e.clock.Now())
		return ledger.Effective{}, nil
	}
	*b = *fresh
	return e.Assess(ctx, reads, r, b)
}
