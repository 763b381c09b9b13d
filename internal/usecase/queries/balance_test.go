//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/infra"
	queriesmock "perks-ledger/internal/mock/queries"
	sharedmock "perks-ledger/internal/mock/shared"
	"perks-ledger/internal/pkg/ptr"
	"perks-ledger/internal/testutil/builder"
	"perks-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func notFound(msg string) error {
	return infra.WrapRepoErr(discard, infra.KindNotFound, msg, nil)
}

func TestGetBalanceInfo(t *testing.T) {
	ctx := context.Background()
	cust := builder.NewCustomerBuilder().BuildDomain()
	rw := builder.NewRewardBuilder().WithCost(5).WithExpireDays(30).BuildDomain()

	t.Run("reports the effective balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)
		evaluator := sharedmock.NewMockBalanceEvaluator(ctrl)
		bal := builder.NewBalanceBuilder().For(cust, rw).WithValue(11).BuildDomain()

		reads.EXPECT().CustomerByCode(ctx, cust.Code().Value()).Return(cust, nil)
		reads.EXPECT().RewardByID(ctx, rw.ID()).Return(rw, nil)
		reads.EXPECT().FindBalance(ctx, cust.ID(), rw.ID()).Return(bal, nil)
		evaluator.EXPECT().Effective(ctx, rw, bal).Return(ledger.Effective{Value: 11, DaysUntilExpiry: ptr.To(12)}, nil)

		info, err := queries.NewBalanceQueries(reads, evaluator).GetBalanceInfo(ctx, rw.ID(), cust.Code().Value())

		require.NoError(t, err)
		assert.Equal(t, &queries.BalanceInfo{
			CustomerName:    cust.Name().Value(),
			RewardID:        rw.ID(),
			RewardName:      rw.Name(),
			CostPoints:      5,
			Balance:         11,
			DaysUntilExpiry: ptr.To(12),
			IsClaimable:     true,
			AffordableUnits: 2,
		}, info)
	})

	t.Run("pair without a balance reads as zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)
		evaluator := sharedmock.NewMockBalanceEvaluator(ctrl)

		reads.EXPECT().CustomerByCode(gomock.Any(), gomock.Any()).Return(cust, nil)
		reads.EXPECT().RewardByID(gomock.Any(), gomock.Any()).Return(rw, nil)
		reads.EXPECT().FindBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		evaluator.EXPECT().Effective(gomock.Any(), rw, nil).Return(ledger.Effective{}, nil)

		info, err := queries.NewBalanceQueries(reads, evaluator).GetBalanceInfo(ctx, rw.ID(), cust.Code().Value())

		require.NoError(t, err)
		assert.Equal(t, 0, info.Balance)
		assert.False(t, info.IsClaimable)
		assert.Nil(t, info.DaysUntilExpiry)
	})

	t.Run("unknown code and unknown reward look the same", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)
		evaluator := sharedmock.NewMockBalanceEvaluator(ctrl)
		q := queries.NewBalanceQueries(reads, evaluator)

		reads.EXPECT().CustomerByCode(gomock.Any(), "bogus").Return(nil, notFound("customer by code"))
		_, errCode := q.GetBalanceInfo(ctx, rw.ID(), "bogus")

		reads.EXPECT().CustomerByCode(gomock.Any(), cust.Code().Value()).Return(cust, nil)
		reads.EXPECT().RewardByID(gomock.Any(), gomock.Any()).Return(nil, notFound("reward by id"))
		_, errReward := q.GetBalanceInfo(ctx, uuid.New(), cust.Code().Value())

		assert.ErrorIs(t, errCode, ledger.ErrUnknownCodeOrReward)
		assert.ErrorIs(t, errReward, ledger.ErrUnknownCodeOrReward)
		assert.Equal(t, errCode.Error(), errReward.Error())
	})
}

func TestGetScanEvent(t *testing.T) {
	ctx := context.Background()
	rewardID, eventID := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		store := queriesmock.NewMockScanEventReadStore(gomock.NewController(t))
		view := &queries.ScanEventView{ID: eventID, RewardID: rewardID, PointsChange: 1, ScannedAt: builder.Now}
		store.EXPECT().FindByID(ctx, rewardID, eventID).Return(view, nil)

		got, err := queries.NewScanEventQueries(store).GetScanEvent(ctx, rewardID, eventID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("not found", func(t *testing.T) {
		store := queriesmock.NewMockScanEventReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, rewardID, eventID).Return(nil, notFound("scan event by id"))

		_, err := queries.NewScanEventQueries(store).GetScanEvent(ctx, rewardID, eventID)

		assert.ErrorIs(t, err, ledger.ErrScanEventNotFound)
	})
}

func TestGetBySubject(t *testing.T) {
	ctx := context.Background()
	cust := builder.NewCustomerBuilder().BuildDomain()

	reads := sharedmock.NewMockCommandReads(gomock.NewController(t))
	reads.EXPECT().CustomerByAuthID(ctx, cust.AuthProviderID()).Return(cust, nil)
	reads.EXPECT().CustomerByAuthID(ctx, "stranger").Return(nil, notFound("customer by auth id"))
	q := queries.NewCustomerQueries(reads)

	view, err := q.GetBySubject(ctx, cust.AuthProviderID())
	require.NoError(t, err)
	assert.Equal(t, cust.Code().Value(), view.Code)
	assert.Equal(t, cust.Email().Value(), view.Email)

	_, err = q.GetBySubject(ctx, "stranger")
	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestResolveBusinessUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	store := queriesmock.NewMockBusinessUserReadStore(gomock.NewController(t))
	store.EXPECT().FindIDByAuthID(ctx, "auth0|staff").Return(userID, nil)
	store.EXPECT().FindIDByAuthID(ctx, "auth0|customer").Return(uuid.Nil, notFound("business user by auth id"))
	q := queries.NewActorQueries(store)

	got, err := q.ResolveBusinessUser(ctx, "auth0|staff")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = q.ResolveBusinessUser(ctx, "auth0|customer")
	assert.ErrorIs(t, err, queries.ErrNotBusinessUser)

	_, err = q.ResolveBusinessUser(ctx, "")
	assert.ErrorIs(t, err, queries.ErrNotBusinessUser)
}
