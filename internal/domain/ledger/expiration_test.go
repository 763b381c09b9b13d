//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/pkg/ptr"
	"perks-ledger/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
)

func TestExpiryPolicy_Evaluate(t *testing.T) {
	policy := ledger.NewExpiryPolicy(time.UTC)
	now := builder.Now
	daysAgo := func(n int) *time.Time { return ptr.To(now.AddDate(0, 0, -n)) }

	tests := []struct {
		name         string
		window       int
		expires      bool
		stored       int
		lastActivity *time.Time
		want         ledger.Effective
	}{
		{name: "never expires", expires: false, stored: 7, lastActivity: daysAgo(400), want: ledger.Effective{Value: 7}},
		{name: "zero stored value", window: 10, expires: true, stored: 0, lastActivity: nil, want: ledger.Effective{}},
		{name: "no activity ever", window: 10, expires: true, stored: 7, lastActivity: nil, want: ledger.Effective{Expired: true}},
		{name: "stale by fifteen days", window: 10, expires: true, stored: 7, lastActivity: daysAgo(15), want: ledger.Effective{Expired: true}},
		{name: "one day past window", window: 10, expires: true, stored: 7, lastActivity: daysAgo(11), want: ledger.Effective{Expired: true}},
		{name: "last day of window", window: 10, expires: true, stored: 7, lastActivity: daysAgo(10), want: ledger.Effective{Value: 7, DaysUntilExpiry: ptr.To(0)}},
		{name: "fresh activity", window: 10, expires: true, stored: 7, lastActivity: daysAgo(3), want: ledger.Effective{Value: 7, DaysUntilExpiry: ptr.To(7)}},
		{name: "activity today", window: 10, expires: true, stored: 7, lastActivity: daysAgo(0), want: ledger.Effective{Value: 7, DaysUntilExpiry: ptr.To(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Evaluate(tt.window, tt.expires, tt.stored, tt.lastActivity, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpiryPolicy_IgnoresTimeOfDay(t *testing.T) {
	policy := ledger.NewExpiryPolicy(time.UTC)

	lateNight := time.Date(2026, 5, 10, 23, 59, 0, 0, time.UTC)
	earlyMorning := time.Date(2026, 5, 20, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 10, policy.DaysBetween(lateNight, earlyMorning))
	got := policy.Evaluate(10, true, 4, &lateNight, earlyMorning)
	assert.False(t, got.Expired)
	assert.Equal(t, 0, *got.DaysUntilExpiry)
}

func TestExpiryPolicy_UsesConfiguredCalendar(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	policy := ledger.NewExpiryPolicy(tokyo)

	// 2026-05-09 16:00 UTC is already 2026-05-10 in Tokyo.
	activity := time.Date(2026, 5, 9, 16, 0, 0, 0, time.UTC)
	now := time.Date(2026, 5, 20, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, policy.DaysBetween(activity, now))
	assert.Equal(t, 11, ledger.NewExpiryPolicy(nil).DaysBetween(activity, now))
}

func TestLatestActivity(t *testing.T) {
	older := ptr.To(builder.Now.AddDate(0, 0, -5))
	newer := ptr.To(builder.Now.AddDate(0, 0, -1))

	assert.Nil(t, ledger.LatestActivity(nil, nil))
	assert.Equal(t, older, ledger.LatestActivity(older, nil))
	assert.Equal(t, newer, ledger.LatestActivity(nil, newer))
	assert.Equal(t, newer, ledger.LatestActivity(older, newer))
	assert.Equal(t, newer, ledger.LatestActivity(newer, older))
}

func TestExpiryPolicy_EvaluateReward(t *testing.T) {
	policy := ledger.NewExpiryPolicy(time.UTC)
	expiring := builder.NewRewardBuilder().WithExpireDays(10).BuildDomain()
	forever := builder.NewRewardBuilder().BuildDomain()
	stale := ptr.To(builder.Now.AddDate(0, 0, -15))

	assert.True(t, policy.EvaluateReward(expiring, 7, stale, builder.Now).Expired)
	assert.Equal(t, ledger.Effective{Value: 7}, policy.EvaluateReward(forever, 7, stale, builder.Now))
}
