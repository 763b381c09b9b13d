package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Balance is the materialized point count a customer holds toward one reward.
// Its value never drops below zero.
type Balance struct {
	id          uuid.UUID
	customerID  uuid.UUID
	rewardID    uuid.UUID
	value       int
	lastUpdated time.Time
}

// NewBalance opens an empty balance for a (customer, reward) pair.
func NewBalance(customerID, rewardID uuid.UUID, now time.Time) *Balance {
	return &Balance{
		id:          uuid.New(),
		customerID:  customerID,
		rewardID:    rewardID,
		lastUpdated: now,
	}
}

func ReconstructBalance(id, customerID, rewardID uuid.UUID, value int, lastUpdated time.Time) *Balance {
	return &Balance{
		id:          id,
		customerID:  customerID,
		rewardID:    rewardID,
		value:       value,
		lastUpdated: lastUpdated,
	}
}

func (b *Balance) ID() uuid.UUID          { return b.id }
func (b *Balance) CustomerID() uuid.UUID  { return b.customerID }
func (b *Balance) RewardID() uuid.UUID    { return b.rewardID }
func (b *Balance) Value() int             { return b.value }
func (b *Balance) LastUpdated() time.Time { return b.lastUpdated }

// ValueOf treats an absent balance as zero.
func ValueOf(b *Balance) int {
	if b == nil {
		return 0
	}
	return b.value
}

func (b *Balance) accrue(delta int, now time.Time) error {
	if err := ValidatePointsChange(delta); err != nil {
		return err
	}
	next := b.value + delta
	if next < 0 {
		return newNegativeBalanceError(b.value, delta)
	}
	if next > MaxBalance {
		return ErrBalanceLimit
	}
	b.value = next
	b.lastUpdated = now
	return nil
}

func (b *Balance) deduct(points int, now time.Time) error {
	if points > b.value {
		return newInsufficientBalanceError(points, b.value)
	}
	b.value -= points
	b.lastUpdated = now
	return nil
}

// Expire zeroes the balance. It reports whether anything changed.
func (b *Balance) Expire(now time.Time) bool {
	if b.value == 0 {
		return false
	}
	b.value = 0
	b.lastUpdated = now
	return true
}
