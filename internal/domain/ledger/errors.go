package ledger

import (
	"fmt"
	"math"

	"perks-ledger/internal/pkg/errs"
)

const (
	MaxClaimUnits = 100
	// MaxPointsChange bounds one scan's delta in either direction.
	MaxPointsChange = 1_000_000
	// MaxBalance is the largest value a stored balance can hold.
	MaxBalance = math.MaxInt32
)

var (
	ErrInvalidClaimUnits = errs.Mark(
		errs.Newf("number of rewards to claim must be between 0 and %d", MaxClaimUnits),
		errs.ErrInvalidArgument,
	)
	ErrPointsChangeOutOfRange = errs.Mark(
		errs.Newf("points change must be between -%d and %d", MaxPointsChange, MaxPointsChange),
		errs.ErrInvalidArgument,
	)
	ErrBalanceLimit = errs.Mark(
		errs.Newf("balance cannot exceed %d points", MaxBalance),
		errs.ErrInvalidArgument,
	)
	// ErrUnknownCodeOrReward is shared by both lookups so callers cannot tell
	// which one failed.
	ErrUnknownCodeOrReward = errs.Mark(errs.New("invalid code or reward"), errs.ErrNotFound)
	ErrScanEventNotFound   = errs.Mark(errs.New("scan event not found"), errs.ErrNotFound)
)

// InsufficientBalanceError describes the caller's own balance, so the exact
// figures are safe to show.
type InsufficientBalanceError struct {
	Required  int
	Available int
}

func newInsufficientBalanceError(required, available int) error {
	return errs.Mark(&InsufficientBalanceError{Required: required, Available: available}, errs.ErrInsufficientBalance)
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient points. required: %d, available: %d", e.Required, e.Available)
}

// NegativeBalanceError is returned when a negative points change would take
// the balance below zero.
type NegativeBalanceError struct {
	Current int
	Delta   int
}

func (e *NegativeBalanceError) Error() string {
	return fmt.Sprintf("points change %d exceeds current balance %d", e.Delta, e.Current)
}

func newNegativeBalanceError(current, delta int) error {
	return errs.Mark(&NegativeBalanceError{Current: current, Delta: delta}, errs.ErrInvalidArgument)
}

func ValidateClaimUnits(units int) error {
	if units < 0 || units > MaxClaimUnits {
		return ErrInvalidClaimUnits
	}
	return nil
}

func ValidatePointsChange(delta int) error {
	if delta < -MaxPointsChange || delta > MaxPointsChange {
		return ErrPointsChangeOutOfRange
	}
	return nil
}
