package ledger

import (
	"time"

	"perks-ledger/internal/domain/reward"
)

// Effective is a balance after the expiry policy has been applied.
type Effective struct {
	Value int
	// DaysUntilExpiry is nil for rewards that never expire and for balances
	// with nothing left to expire.
	DaysUntilExpiry *int
	// Expired reports that a stored positive value must be zeroed.
	Expired bool
}

// ExpiryPolicy decides staleness by calendar date in Location.
type ExpiryPolicy struct {
	Location *time.Location
}

func NewExpiryPolicy(loc *time.Location) ExpiryPolicy {
	if loc == nil {
		loc = time.UTC
	}
	return ExpiryPolicy{Location: loc}
}

// LatestActivity returns the later of the two timestamps, or nil if neither exists.
func LatestActivity(lastScan, lastRedemption *time.Time) *time.Time {
	switch {
	case lastScan == nil:
		return lastRedemption
	case lastRedemption == nil:
		return lastScan
	case lastRedemption.After(*lastScan):
		return lastRedemption
	default:
		return lastScan
	}
}

// Evaluate applies a window of windowDays (ok=false means the reward never
// expires) to a stored value last touched by activity at lastActivity.
func (p ExpiryPolicy) Evaluate(windowDays int, ok bool, stored int, lastActivity *time.Time, now time.Time) Effective {
	if !ok {
		return Effective{Value: stored}
	}
	if stored == 0 {
		return Effective{}
	}
	if lastActivity == nil {
		return Effective{Expired: true}
	}

	since := p.DaysBetween(*lastActivity, now)
	if since > windowDays {
		return Effective{Expired: true}
	}
	remaining := windowDays - since
	return Effective{Value: stored, DaysUntilExpiry: &remaining}
}

// EvaluateReward applies r's expiry window.
func (p ExpiryPolicy) EvaluateReward(r *reward.Reward, stored int, lastActivity *time.Time, now time.Time) Effective {
	days, ok := r.ExpiryWindow()
	return p.Evaluate(days, ok, stored, lastActivity, now)
}

// DaysBetween counts calendar days from a to b, ignoring time of day.
func (p ExpiryPolicy) DaysBetween(a, b time.Time) int {
	da := civilDate(a.In(p.Location))
	db := civilDate(b.In(p.Location))
	return int(db.Sub(da).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
