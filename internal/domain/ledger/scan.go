package ledger

import (
	"time"

	"perks-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

// ScanEvent is the append-only record of one accrual occurrence.
type ScanEvent struct {
	id             uuid.UUID
	customerID     uuid.UUID
	rewardID       uuid.UUID
	businessUserID *uuid.UUID
	code           string
	pointsChange   int
	scannedAt      time.Time
}

func ReconstructScanEvent(id, customerID, rewardID uuid.UUID, businessUserID *uuid.UUID, code string, pointsChange int, scannedAt time.Time) *ScanEvent {
	return &ScanEvent{
		id:             id,
		customerID:     customerID,
		rewardID:       rewardID,
		businessUserID: businessUserID,
		code:           code,
		pointsChange:   pointsChange,
		scannedAt:      scannedAt,
	}
}

func (e *ScanEvent) ID() uuid.UUID              { return e.id }
func (e *ScanEvent) CustomerID() uuid.UUID      { return e.customerID }
func (e *ScanEvent) RewardID() uuid.UUID        { return e.rewardID }
func (e *ScanEvent) BusinessUserID() *uuid.UUID { return e.businessUserID }
func (e *ScanEvent) Code() string               { return e.code }
func (e *ScanEvent) PointsChange() int          { return e.pointsChange }
func (e *ScanEvent) ScannedAt() time.Time       { return e.scannedAt }

// Redemption is one claimed reward unit.
type Redemption struct {
	id             uuid.UUID
	customerID     uuid.UUID
	rewardID       uuid.UUID
	businessUserID *uuid.UUID
	redeemedAt     time.Time
}

func ReconstructRedemption(id, customerID, rewardID uuid.UUID, businessUserID *uuid.UUID, redeemedAt time.Time) *Redemption {
	return &Redemption{
		id:             id,
		customerID:     customerID,
		rewardID:       rewardID,
		businessUserID: businessUserID,
		redeemedAt:     redeemedAt,
	}
}

func (r *Redemption) ID() uuid.UUID              { return r.id }
func (r *Redemption) CustomerID() uuid.UUID      { return r.customerID }
func (r *Redemption) RewardID() uuid.UUID        { return r.rewardID }
func (r *Redemption) BusinessUserID() *uuid.UUID { return r.businessUserID }
func (r *Redemption) RedeemedAt() time.Time      { return r.redeemedAt }

type ScanInput struct {
	Code         string
	PointsChange int
	ClaimUnits   int
	ActorID      *uuid.UUID
	Now          time.Time
}

// ScanOutcome is the exact write set of one scan: the mutated balance, the
// redemptions to append and the scan event to append.
type ScanOutcome struct {
	Balance     *Balance
	Event       *ScanEvent
	Redemptions []*Redemption
	PointsSpent int
}

func (o *ScanOutcome) RedemptionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.Redemptions))
	for _, r := range o.Redemptions {
		ids = append(ids, r.id)
	}
	return ids
}

// ApplyScan accrues in.PointsChange on balance and claims in.ClaimUnits of r.
// Sufficiency is checked against the balance as it stood before this scan.
// On error balance is left untouched.
func ApplyScan(balance *Balance, r *reward.Reward, in ScanInput) (*ScanOutcome, error) {
	if err := ValidateClaimUnits(in.ClaimUnits); err != nil {
		return nil, err
	}
	if err := ValidatePointsChange(in.PointsChange); err != nil {
		return nil, err
	}

	required := r.RequiredPoints(in.ClaimUnits)
	if in.ClaimUnits > 0 && balance.value < required {
		return nil, newInsufficientBalanceError(required, balance.value)
	}

	next := *balance
	if err := next.accrue(in.PointsChange, in.Now); err != nil {
		return nil, err
	}

	var redemptions []*Redemption
	if in.ClaimUnits > 0 {
		if err := next.deduct(required, in.Now); err != nil {
			return nil, err
		}
		redemptions = make([]*Redemption, 0, in.ClaimUnits)
		for range in.ClaimUnits {
			redemptions = append(redemptions, &Redemption{
				id:             uuid.New(),
				customerID:     balance.customerID,
				rewardID:       balance.rewardID,
				businessUserID: in.ActorID,
				redeemedAt:     in.Now,
			})
		}
	}

	*balance = next
	return &ScanOutcome{
		Balance: balance,
		Event: &ScanEvent{
			id:             uuid.New(),
			customerID:     balance.customerID,
			rewardID:       balance.rewardID,
			businessUserID: in.ActorID,
			code:           in.Code,
			pointsChange:   in.PointsChange,
			scannedAt:      in.Now,
		},
		Redemptions: redemptions,
		PointsSpent: required,
	}, nil
}
