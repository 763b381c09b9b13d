package reward

import (
	"strings"
	"time"

	"perks-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCost    = errs.Mark(errs.New("reward cost must be a positive number of points"), errs.ErrInvalidArgument)
	ErrInvalidName    = errs.Mark(errs.New("reward name is required"), errs.ErrInvalidArgument)
	ErrUnknownType    = errs.Mark(errs.New("unknown reward type"), errs.ErrInvalidArgument)
	ErrMissingOwner   = errs.Mark(errs.New("reward must belong to a business"), errs.ErrInvalidArgument)
	ErrInvalidExpires = errs.Mark(errs.New("expiry window must not be negative"), errs.ErrInvalidArgument)
)

type Type string

const (
	TypeIncrementalPoints Type = "incremental_points"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeIncrementalPoints:
		return TypeIncrementalPoints, nil
	default:
		return "", ErrUnknownType
	}
}

func (t Type) String() string { return string(t) }

// Reward is immutable once created.
type Reward struct {
	id         uuid.UUID
	businessID uuid.UUID
	name       string
	costPoints int
	rewardType Type
	expireDays *int
	isActive   bool
	createdAt  time.Time
}

func NewReward(businessID uuid.UUID, name string, costPoints int, rewardType Type, expireDays *int, now time.Time) (*Reward, error) {
	if businessID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if costPoints <= 0 {
		return nil, ErrInvalidCost
	}
	if _, err := ParseType(string(rewardType)); err != nil {
		return nil, err
	}
	if expireDays != nil && *expireDays < 0 {
		return nil, ErrInvalidExpires
	}
	return &Reward{
		id:         uuid.New(),
		businessID: businessID,
		name:       name,
		costPoints: costPoints,
		rewardType: rewardType,
		expireDays: expireDays,
		isActive:   true,
		createdAt:  now,
	}, nil
}

// Reconstruct rebuilds a stored reward without re-validating it.
func Reconstruct(id, businessID uuid.UUID, name string, costPoints int, rewardType Type, expireDays *int, isActive bool, createdAt time.Time) *Reward {
	return &Reward{
		id:         id,
		businessID: businessID,
		name:       name,
		costPoints: costPoints,
		rewardType: rewardType,
		expireDays: expireDays,
		isActive:   isActive,
		createdAt:  createdAt,
	}
}

func (r *Reward) ID() uuid.UUID         { return r.id }
func (r *Reward) BusinessID() uuid.UUID { return r.businessID }
func (r *Reward) Name() string          { return r.name }
func (r *Reward) CostPoints() int       { return r.costPoints }
func (r *Reward) Type() Type            { return r.rewardType }
func (r *Reward) ExpireDays() *int      { return r.expireDays }
func (r *Reward) IsActive() bool        { return r.isActive }
func (r *Reward) CreatedAt() time.Time  { return r.createdAt }

// ExpiryWindow reports the inactivity window in days. A nil or non-positive
// setting means balances for this reward never expire.
func (r *Reward) ExpiryWindow() (int, bool) {
	if r.expireDays == nil || *r.expireDays <= 0 {
		return 0, false
	}
	return *r.expireDays, true
}

// RequiredPoints is the cost of claiming units of this reward.
func (r *Reward) RequiredPoints(units int) int {
	return r.costPoints * units
}

// AffordableUnits is how many units balance can pay for. Only point-based
// rewards are claimable by balance; other types report zero.
func (r *Reward) AffordableUnits(balance int) int {
	switch r.rewardType {
	case TypeIncrementalPoints:
		if r.costPoints <= 0 || balance <= 0 {
			return 0
		}
		return balance / r.costPoints
	default:
		return 0
	}
}

func (r *Reward) IsClaimable(balance int) bool {
	return r.AffordableUnits(balance) > 0
}
