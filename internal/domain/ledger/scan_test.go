//go:build unit

package ledger_test

import (
	"testing"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyScan(t *testing.T) {
	r := builder.NewRewardBuilder().WithCost(5).BuildDomain()
	actor := uuid.New()

	type want struct {
		value       int
		redemptions int
		spent       int
	}

	tests := []struct {
		name    string
		start   int
		delta   int
		units   int
		want    want
		errKind error
	}{
		{name: "accrual only", start: 0, delta: 1, want: want{value: 1}},
		{name: "accrual with zero delta", start: 3, delta: 0, want: want{value: 3}},
		{name: "claim exactly the cost", start: 5, delta: 0, units: 1, want: want{value: 0, redemptions: 1, spent: 5}},
		{name: "accrue then claim", start: 10, delta: 1, units: 2, want: want{value: 1, redemptions: 2, spent: 10}},
		{name: "claim uses balance before accrual", start: 4, delta: 1, units: 1, errKind: errs.ErrInsufficientBalance},
		{name: "claim above balance", start: 3, delta: 1, units: 1, errKind: errs.ErrInsufficientBalance},
		{name: "claim units above limit", start: 1000, delta: 0, units: ledger.MaxClaimUnits + 1, errKind: errs.ErrInvalidArgument},
		{name: "claim units at limit", start: 500, delta: 0, units: ledger.MaxClaimUnits, want: want{value: 0, redemptions: 100, spent: 500}},
		{name: "negative claim units", start: 10, delta: 0, units: -1, errKind: errs.ErrInvalidArgument},
		{name: "negative delta within balance", start: 3, delta: -2, want: want{value: 1}},
		{name: "negative delta below zero", start: 1, delta: -2, errKind: errs.ErrInvalidArgument},
		{name: "negative delta leaves too little to claim", start: 5, delta: -1, units: 1, errKind: errs.ErrInsufficientBalance},
		{name: "delta at limit", start: 0, delta: ledger.MaxPointsChange, want: want{value: ledger.MaxPointsChange}},
		{name: "delta above limit", start: 10, delta: 1 << 32, errKind: errs.ErrInvalidArgument},
		{name: "delta below negative limit", start: 10, delta: -ledger.MaxPointsChange - 1, errKind: errs.ErrInvalidArgument},
		{name: "balance up to the storage limit", start: ledger.MaxBalance - 1000, delta: 1000, want: want{value: ledger.MaxBalance}},
		{name: "balance past the storage limit", start: 2147483000, delta: 1000, errKind: errs.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bal := builder.NewBalanceBuilder().WithValue(tt.start).BuildDomain()
			before := bal.LastUpdated()

			out, err := ledger.ApplyScan(bal, r, ledger.ScanInput{
				Code:         "perk_abc",
				PointsChange: tt.delta,
				ClaimUnits:   tt.units,
				ActorID:      &actor,
				Now:          builder.Now,
			})

			if tt.errKind != nil {
				require.Error(t, err)
				assert.Equal(t, tt.errKind, errs.KindOf(err))
				assert.Nil(t, out)
				assert.Equal(t, tt.start, bal.Value(), "balance must be untouched on failure")
				assert.Equal(t, before, bal.LastUpdated())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.value, bal.Value())
			assert.Equal(t, builder.Now, bal.LastUpdated())
			assert.Len(t, out.Redemptions, tt.want.redemptions)
			assert.Equal(t, tt.want.spent, out.PointsSpent)
			assert.Equal(t, tt.delta, out.Event.PointsChange())
			assert.Equal(t, "perk_abc", out.Event.Code())
			assert.Equal(t, &actor, out.Event.BusinessUserID())

			seen := map[uuid.UUID]bool{}
			for _, id := range out.RedemptionIDs() {
				assert.False(t, seen[id], "redemption ids must be distinct")
				seen[id] = true
			}
		})
	}
}

func TestApplyScan_InsufficientBalanceDetails(t *testing.T) {
	r := builder.NewRewardBuilder().WithCost(5).BuildDomain()
	bal := builder.NewBalanceBuilder().WithValue(3).BuildDomain()

	_, err := ledger.ApplyScan(bal, r, ledger.ScanInput{PointsChange: 1, ClaimUnits: 1, Now: builder.Now})

	var insufficient *ledger.InsufficientBalanceError
	require.True(t, errs.As(err, &insufficient))
	assert.Equal(t, 5, insufficient.Required)
	assert.Equal(t, 3, insufficient.Available)
	assert.Contains(t, err.Error(), "required: 5, available: 3")
}

func TestApplyScan_AccrualSumsDeltas(t *testing.T) {
	r := builder.NewRewardBuilder().BuildDomain()
	bal := builder.NewBalanceBuilder().BuildDomain()

	deltas := []int{1, 3, 2, 7, 1}
	sum := 0
	for _, d := range deltas {
		_, err := ledger.ApplyScan(bal, r, ledger.ScanInput{PointsChange: d, Now: builder.Now})
		require.NoError(t, err)
		sum += d
	}
	assert.Equal(t, sum, bal.Value())
}

func TestBalanceExpire(t *testing.T) {
	bal := builder.NewBalanceBuilder().WithValue(7).BuildDomain()

	assert.True(t, bal.Expire(builder.Now))
	assert.Equal(t, 0, bal.Value())
	assert.False(t, bal.Expire(builder.Now), "second expiry is a no-op")
	assert.Equal(t, 0, ledger.ValueOf(nil))
}
