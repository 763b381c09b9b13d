package queries

import (
	"context"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceInfo struct {
	CustomerName    string
	RewardID        uuid.UUID
	RewardName      string
	CostPoints      int
	Balance         int
	DaysUntilExpiry *int
	IsClaimable     bool
	AffordableUnits int
}

type BalanceQueries interface {
	GetBalanceInfo(ctx context.Context, rewardID uuid.UUID, customerCode string) (*BalanceInfo, error)
}

type balanceQueriesImpl struct {
	reads     shared.CommandReads
	evaluator shared.BalanceEvaluator
}

func NewBalanceQueries(reads shared.CommandReads, evaluator shared.BalanceEvaluator) BalanceQueries {
	return &balanceQueriesImpl{reads: reads, evaluator: evaluator}
}

func (q *balanceQueriesImpl) GetBalanceInfo(ctx context.Context, rewardID uuid.UUID, customerCode string) (*BalanceInfo, error) {
	cust, err := q.reads.CustomerByCode(ctx, customerCode)
	if err != nil {
		return nil, shared.TranslateNotFound(err, ledger.ErrUnknownCodeOrReward)
	}
	rw, err := q.reads.RewardByID(ctx, rewardID)
	if err != nil {
		return nil, shared.TranslateNotFound(err, ledger.ErrUnknownCodeOrReward)
	}

	bal, err := q.reads.FindBalance(ctx, cust.ID(), rw.ID())
	if err != nil {
		return nil, err
	}
	eff, err := q.evaluator.Effective(ctx, rw, bal)
	if err != nil {
		return nil, err
	}

	return &BalanceInfo{
		CustomerName:    cust.Name().Value(),
		RewardID:        rw.ID(),
		RewardName:      rw.Name(),
		CostPoints:      rw.CostPoints(),
		Balance:         eff.Value,
		DaysUntilExpiry: eff.DaysUntilExpiry,
		IsClaimable:     rw.IsClaimable(eff.Value),
		AffordableUnits: rw.AffordableUnits(eff.Value),
	}, nil
}
