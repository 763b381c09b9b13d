package commands

import (
	"context"
	"log/slog"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"
	"perks-ledger/internal/pkg/clock"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScanRequest struct {
	CustomerCode string
	RewardID     uuid.UUID
	PointsChange int
	ClaimUnits   int
	// ActorID is the business user resolved from the caller's token.
	ActorID *uuid.UUID
}

type RewardSummary struct {
	ID             uuid.UUID
	Name           string
	Type           reward.Type
	RequiredPoints int
}

type ClaimSummary struct {
	Count               int
	RewardName          string
	TotalPointsDeducted int
	RedemptionIDs       []uuid.UUID
}

type ScanResult struct {
	CustomerID      uuid.UUID
	CustomerName    string
	Balance         *ledger.Balance
	Event           *ledger.ScanEvent
	IsClaimable     bool
	AffordableUnits int
	// AvailableReward is set while the balance still covers one unit.
	AvailableReward *RewardSummary
	// Claimed is set when the scan redeemed units.
	Claimed *ClaimSummary
}

type ScanCommands interface {
	ProcessScan(ctx context.Context, req ScanRequest) (*ScanResult, error)
}

type scanUseCaseImpl struct {
	uow       shared.UnitOfWork
	evaluator shared.BalanceEvaluator
	clock     clock.Clock
	logger    *slog.Logger
}

func NewScanUseCase(uow shared.UnitOfWork, evaluator shared.BalanceEvaluator, clk clock.Clock, logger *slog.Logger) ScanCommands {
	return &scanUseCaseImpl{uow: uow, evaluator: evaluator, clock: clk, logger: logger}
}

// ProcessScan accrues points and optionally claims reward units in one
// transaction. The balance row stays locked from read to commit.
func (uc *scanUseCaseImpl) ProcessScan(ctx context.Context, req ScanRequest) (*ScanResult, error) {
	if err := ledger.ValidateClaimUnits(req.ClaimUnits); err != nil {
		return nil, err
	}

	var result *ScanResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		reads := tx.Reads()

		cust, err := reads.CustomerByCode(ctx, req.CustomerCode)
		if err != nil {
			return shared.TranslateNotFound(err, ledger.ErrUnknownCodeOrReward)
		}
		rw, err := reads.RewardByID(ctx, req.RewardID)
		if err != nil {
			return shared.TranslateNotFound(err, ledger.ErrUnknownCodeOrReward)
		}

		bal, err := tx.Balances().Acquire(ctx, cust.ID(), rw.ID(), now)
		if err != nil {
			return err
		}

		// A stale balance is forfeited before this scan counts.
		eff, err := uc.evaluator.Assess(ctx, reads, rw, bal)
		if err != nil {
			return err
		}
		if eff.Expired {
			bal.Expire(now)
		}

		out, err := ledger.ApplyScan(bal, rw, ledger.ScanInput{
			Code:         cust.Code().Value(),
			PointsChange: req.PointsChange,
			ClaimUnits:   req.ClaimUnits,
			ActorID:      req.ActorID,
			Now:          now,
		})
		if err != nil {
			return err
		}

		if err := tx.Balances().Save(ctx, out.Balance); err != nil {
			return err
		}
		if err := tx.Activity().AppendRedemptions(ctx, out.Redemptions); err != nil {
			return err
		}
		if err := tx.Activity().AppendScanEvent(ctx, out.Event); err != nil {
			return err
		}

		result = newScanResult(cust.ID(), cust.Name().Value(), rw, out, req.ClaimUnits)
		return nil
	})
	if err != nil {
		return nil, classify(uc.logger, "process scan", err)
	}

	uc.logger.Info("scan processed",
		slog.String("scan_event_id", result.Event.ID().String()),
		slog.String("reward_id", req.RewardID.String()),
		slog.Int("points_change", req.PointsChange),
		slog.Int("claimed_units", req.ClaimUnits))
	return result, nil
}

func newScanResult(customerID uuid.UUID, customerName string, rw *reward.Reward, out *ledger.ScanOutcome, units int) *ScanResult {
	value := out.Balance.Value()
	res := &ScanResult{
		CustomerID:      customerID,
		CustomerName:    customerName,
		Balance:         out.Balance,
		Event:           out.Event,
		IsClaimable:     rw.IsClaimable(value),
		AffordableUnits: rw.AffordableUnits(value),
	}
	if res.IsClaimable {
		res.AvailableReward = &RewardSummary{
			ID:             rw.ID(),
			Name:           rw.Name(),
			Type:           rw.Type(),
			RequiredPoints: rw.CostPoints(),
		}
	}
	if units > 0 {
		res.Claimed = &ClaimSummary{
			Count:               units,
			RewardName:          rw.Name(),
			TotalPointsDeducted: out.PointsSpent,
			RedemptionIDs:       out.RedemptionIDs(),
		}
	}
	return res
}
