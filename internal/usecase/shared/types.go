package shared

import (
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

type BusinessSummary struct {
	ID       uuid.UUID
	Name     string
	Category *string
}

// BalanceHolding is one stored balance joined with its reward and business.
type BalanceHolding struct {
	Balance  *ledger.Balance
	Reward   *reward.Reward
	Business BusinessSummary
}

type ActivityTotals struct {
	PointsEarned int
	Scans        int
	Redemptions  int
}

type LifetimeTotals struct {
	Redemptions  int
	PointsEarned int
}
