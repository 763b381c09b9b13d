package shared

import (
	"context"
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction and retries on serialization
	// failures. Nothing fn wrote survives a returned error.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: point lookups outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Balances() BalanceRepository
	Activity() ActivityRepository
	Customers() CustomerRepository
	Reads() CommandReads
}

type CustomerReader interface {
	CustomerByCode(ctx context.Context, code string) (*customer.Customer, error)
	CustomerByAuthID(ctx context.Context, authProviderID string) (*customer.Customer, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

type RewardReader interface {
	RewardByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error)
}

// ActivityReader reports the latest ledger activity of one (customer, reward)
// pair. A nil time means no such activity exists.
type ActivityReader interface {
	LastScanAt(ctx context.Context, customerID, rewardID uuid.UUID) (*time.Time, error)
	LastRedemptionAt(ctx context.Context, customerID, rewardID uuid.UUID) (*time.Time, error)
}

type CommandReads interface {
	CustomerReader
	RewardReader
	ActivityReader
	// FindBalance returns nil without error when the pair has no balance yet.
	FindBalance(ctx context.Context, customerID, rewardID uuid.UUID) (*ledger.Balance, error)
}

type BalanceRepository interface {
	// Acquire returns the pair's balance locked for the rest of the
	// transaction, creating an empty one first if needed.
	Acquire(ctx context.Context, customerID, rewardID uuid.UUID, now time.Time) (*ledger.Balance, error)
	Save(ctx context.Context, b *ledger.Balance) error
	// ExpireIfUnchanged zeroes a balance only if it still carries the
	// observed lastUpdated and a non-zero value. It reports whether a row
	// changed, so a concurrent second zeroing is a no-op.
	ExpireIfUnchanged(ctx context.Context, id uuid.UUID, observed, now time.Time) (bool, error)
}

type ActivityRepository interface {
	AppendScanEvent(ctx context.Context, e *ledger.ScanEvent) error
	AppendRedemptions(ctx context.Context, rs []*ledger.Redemption) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	UpdateName(ctx context.Context, c *customer.Customer) error
	// Delete removes the customer together with every balance, scan event
	// and redemption it owns.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BalanceEvaluator applies the expiry policy before a balance value is shown.
type BalanceEvaluator interface {
	// Assess evaluates without persisting anything.
	Assess(ctx context.Context, reads ActivityReader, r *reward.Reward, b *ledger.Balance) (ledger.Effective, error)
	// Effective evaluates and durably zeroes a stale balance.
	Effective(ctx context.Context, r *reward.Reward, b *ledger.Balance) (ledger.Effective, error)
}
