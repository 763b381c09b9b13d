//go:build unit || e2e

package builder

import (
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// Fixed reference instant used across ledger tests.
var Now = time.Date(2026, 5, 20, 15, 30, 0, 0, time.UTC)

type RewardBuilder struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	CostPoints int
	Type       reward.Type
	ExpireDays *int
	IsActive   bool
	CreatedAt  time.Time
}

func NewRewardBuilder() *RewardBuilder {
	return &RewardBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Name:       "Free Coffee",
		CostPoints: 5,
		Type:       reward.TypeIncrementalPoints,
		IsActive:   true,
		CreatedAt:  Now.AddDate(0, -6, 0),
	}
}

func (b *RewardBuilder) With(mutate func(*RewardBuilder)) *RewardBuilder {
	mutate(b)
	return b
}

func (b *RewardBuilder) WithCost(cost int) *RewardBuilder {
	b.CostPoints = cost
	return b
}

func (b *RewardBuilder) WithExpireDays(days int) *RewardBuilder {
	b.ExpireDays = &days
	return b
}

func (b *RewardBuilder) BuildDomain() *reward.Reward {
	return reward.Reconstruct(b.ID, b.BusinessID, b.Name, b.CostPoints, b.Type, b.ExpireDays, b.IsActive, b.CreatedAt)
}

type CustomerBuilder struct {
	ID             uuid.UUID
	AuthProviderID string
	Email          string
	Name           string
	Code           string
	CreatedAt      time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	id := uuid.New()
	return &CustomerBuilder{
		ID:             id,
		AuthProviderID: "auth0|" + id.String(),
		Email:          id.String()[:8] + "@example.com",
		Name:           "Alice Example",
		Code:           "perk_" + id.String()[:8],
		CreatedAt:      Now.AddDate(0, -3, 0),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain() *customer.Customer {
	return customer.Reconstruct(b.ID, b.AuthProviderID, b.Email, b.Name, b.Code, b.CreatedAt)
}

type BalanceBuilder struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	RewardID    uuid.UUID
	Value       int
	LastUpdated time.Time
}

func NewBalanceBuilder() *BalanceBuilder {
	return &BalanceBuilder{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		RewardID:    uuid.New(),
		LastUpdated: Now.AddDate(0, 0, -1),
	}
}

func (b *BalanceBuilder) With(mutate func(*BalanceBuilder)) *BalanceBuilder {
	mutate(b)
	return b
}

func (b *BalanceBuilder) For(c *customer.Customer, r *reward.Reward) *BalanceBuilder {
	b.CustomerID = c.ID()
	b.RewardID = r.ID()
	return b
}

func (b *BalanceBuilder) WithValue(v int) *BalanceBuilder {
	b.Value = v
	return b
}

func (b *BalanceBuilder) BuildDomain() *ledger.Balance {
	return ledger.ReconstructBalance(b.ID, b.CustomerID, b.RewardID, b.Value, b.LastUpdated)
}

// Holding pairs a balance with its reward and an owning business for
// dashboard tests.
func Holding(b *ledger.Balance, r *reward.Reward, businessName string) shared.BalanceHolding {
	return shared.BalanceHolding{
		Balance: b,
		Reward:  r,
		Business: shared.BusinessSummary{
			ID:   r.BusinessID(),
			Name: businessName,
		},
	}
}
