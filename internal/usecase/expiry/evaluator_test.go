//go:build unit

package expiry_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perks-ledger/internal/domain/ledger"
	sharedmock "perks-ledger/internal/mock/shared"
	"perks-ledger/internal/pkg/clock"
	"perks-ledger/internal/pkg/ptr"
	"perks-ledger/internal/testutil/builder"
	"perks-ledger/internal/usecase/expiry"
	"perks-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type evaluatorFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	balances *sharedmock.MockBalanceRepository
	subject  shared.BalanceEvaluator
}

func newEvaluatorFixture(t *testing.T) *evaluatorFixture {
	ctrl := gomock.NewController(t)
	f := &evaluatorFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		balances: sharedmock.NewMockBalanceRepository(ctrl),
	}
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Balances().Return(f.balances).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.subject = expiry.NewEvaluator(f.uow, ledger.NewExpiryPolicy(time.UTC), clock.NewMockClock(builder.Now), logger)
	return f
}

func TestEvaluator_Assess(t *testing.T) {
	ctx := context.Background()
	expiring := builder.NewRewardBuilder().WithExpireDays(10).BuildDomain()
	forever := builder.NewRewardBuilder().BuildDomain()

	t.Run("nil balance is zero", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		eff, err := f.subject.Assess(ctx, f.reads, expiring, nil)
		require.NoError(t, err)
		assert.Equal(t, ledger.Effective{}, eff)
	})

	t.Run("non-expiring reward skips activity lookups", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bal := builder.NewBalanceBuilder().WithValue(9).BuildDomain()
		eff, err := f.subject.Assess(ctx, f.reads, forever, bal)
		require.NoError(t, err)
		assert.Equal(t, ledger.Effective{Value: 9}, eff)
	})

	t.Run("latest activity decides", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bal := builder.NewBalanceBuilder().WithValue(4).BuildDomain()
		f.reads.EXPECT().LastScanAt(ctx, bal.CustomerID(), bal.RewardID()).
			Return(ptr.To(builder.Now.AddDate(0, 0, -20)), nil)
		f.reads.EXPECT().LastRedemptionAt(ctx, bal.CustomerID(), bal.RewardID()).
			Return(ptr.To(builder.Now.AddDate(0, 0, -2)), nil)

		eff, err := f.subject.Assess(ctx, f.reads, expiring, bal)
		require.NoError(t, err)
		assert.False(t, eff.Expired)
		assert.Equal(t, 4, eff.Value)
		assert.Equal(t, 8, *eff.DaysUntilExpiry)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bal := builder.NewBalanceBuilder().WithValue(4).BuildDomain()
		f.reads.EXPECT().LastScanAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := f.subject.Assess(ctx, f.reads, expiring, bal)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestEvaluator_Effective(t *testing.T) {
	ctx := context.Background()
	expiring := builder.NewRewardBuilder().WithExpireDays(10).BuildDomain()
	stale := ptr.To(builder.Now.AddDate(0, 0, -15))

	t.Run("stale balance is zeroed in storage", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bal := builder.NewBalanceBuilder().WithValue(7).BuildDomain()
		observed := bal.LastUpdated()
		f.reads.EXPECT().LastScanAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(stale, nil)
		f.reads.EXPECT().LastRedemptionAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.balances.EXPECT().ExpireIfUnchanged(gomock.Any(), bal.ID(), observed, builder.Now).Return(true, nil)

		eff, err := f.subject.Effective(ctx, expiring, bal)
		require.NoError(t, err)
		assert.True(t, eff.Expired)
		assert.Equal(t, 0, eff.Value)
		assert.Equal(t, 0, bal.Value())
	})

	t.Run("concurrent expiry is a no-op", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bb := builder.NewBalanceBuilder().WithValue(7)
		bal := bb.BuildDomain()
		zeroed := bb.With(func(b *builder.BalanceBuilder) { b.LastUpdated = builder.Now }).WithValue(0).BuildDomain()
		f.reads.EXPECT().LastScanAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(stale, nil)
		f.reads.EXPECT().LastRedemptionAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.balances.EXPECT().ExpireIfUnchanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.reads.EXPECT().FindBalance(gomock.Any(), bal.CustomerID(), bal.RewardID()).Return(zeroed, nil)

		eff, err := f.subject.Effective(ctx, expiring, bal)
		require.NoError(t, err)
		assert.Equal(t, 0, eff.Value)
		assert.Equal(t, 0, bal.Value())
	})

	t.Run("balance refreshed by a concurrent scan is reported as stored", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bb := builder.NewBalanceBuilder().WithValue(7)
		bal := bb.BuildDomain()
		refreshed := bb.With(func(b *builder.BalanceBuilder) { b.LastUpdated = builder.Now }).WithValue(8).BuildDomain()
		gomock.InOrder(
			f.reads.EXPECT().LastScanAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(stale, nil),
			f.reads.EXPECT().LastScanAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(ptr.To(builder.Now), nil),
		)
		f.reads.EXPECT().LastRedemptionAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		f.balances.EXPECT().ExpireIfUnchanged(gomock.Any(), bal.ID(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.reads.EXPECT().FindBalance(gomock.Any(), bal.CustomerID(), bal.RewardID()).Return(refreshed, nil)

		eff, err := f.subject.Effective(ctx, expiring, bal)
		require.NoError(t, err)
		assert.False(t, eff.Expired)
		assert.Equal(t, 8, eff.Value)
		assert.Equal(t, 10, *eff.DaysUntilExpiry)
		assert.Equal(t, 8, bal.Value())
	})

	t.Run("reload failure surfaces", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bal := builder.NewBalanceBuilder().WithValue(7).BuildDomain()
		f.reads.EXPECT().LastScanAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(stale, nil)
		f.reads.EXPECT().LastRedemptionAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.balances.EXPECT().ExpireIfUnchanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.reads.EXPECT().FindBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := f.subject.Effective(ctx, expiring, bal)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("fresh balance writes nothing", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bal := builder.NewBalanceBuilder().WithValue(7).BuildDomain()
		f.reads.EXPECT().LastScanAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(ptr.To(builder.Now), nil)
		f.reads.EXPECT().LastRedemptionAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		eff, err := f.subject.Effective(ctx, expiring, bal)
		require.NoError(t, err)
		assert.Equal(t, 7, eff.Value)
		assert.Equal(t, 10, *eff.DaysUntilExpiry)
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		f := newEvaluatorFixture(t)
		bal := builder.NewBalanceBuilder().WithValue(7).BuildDomain()
		f.reads.EXPECT().LastScanAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().LastRedemptionAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.balances.EXPECT().ExpireIfUnchanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, assert.AnError)

		_, err := f.subject.Effective(ctx, expiring, bal)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 7, bal.Value())
	})
}
