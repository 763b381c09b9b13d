//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBalanceReadQueries struct {
	mock.Mock
}

func (m *MockBalanceReadQueries) GetBalance(ctx context.Context, customerID, rewardID pgtype.UUID) (dbq.Balance, error) {
	args := m.Called(ctx, customerID, rewardID)
	return args.Get(0).(dbq.Balance), args.Error(1)
}

func (m *MockBalanceReadQueries) LastScanAt(ctx context.Context, customerID, rewardID pgtype.UUID) (pgtype.Timestamptz, error) {
	args := m.Called(ctx, customerID, rewardID)
	return args.Get(0).(pgtype.Timestamptz), args.Error(1)
}

func (m *MockBalanceReadQueries) LastRedemptionAt(ctx context.Context, customerID, rewardID pgtype.UUID) (pgtype.Timestamptz, error) {
	args := m.Called(ctx, customerID, rewardID)
	return args.Get(0).(pgtype.Timestamptz), args.Error(1)
}

func TestBalanceReadStore_Find(t *testing.T) {
	customerID, rewardID := uuid.New(), uuid.New()
	row := dbq.Balance{
		ID:          converter.UUIDToPgtype(uuid.New()),
		CustomerID:  converter.UUIDToPgtype(customerID),
		RewardID:    converter.UUIDToPgtype(rewardID),
		Value:       8,
		LastUpdated: pgconv.TimeToPgtype(time.Now().UTC()),
	}

	tests := []struct {
		name      string
		mockErr   error
		wantNil   bool
		wantError bool
	}{
		{name: "found"},
		{name: "never accrued", mockErr: pgx.ErrNoRows, wantNil: true},
		{name: "database error", mockErr: assert.AnError, wantNil: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBalanceReadQueries)
			q.On("GetBalance", mock.Anything, row.CustomerID, row.RewardID).Return(row, tt.mockErr)

			bal, err := NewBalanceReadStore(q, testLogger).Find(context.Background(), customerID, rewardID)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, bal)
			} else {
				assert.Equal(t, 8, bal.Value())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestBalanceReadStore_LastActivity(t *testing.T) {
	customerID, rewardID := uuid.New(), uuid.New()
	when := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	q := new(MockBalanceReadQueries)
	q.On("LastScanAt", mock.Anything, mock.Anything, mock.Anything).Return(pgconv.TimeToPgtype(when), nil)
	q.On("LastRedemptionAt", mock.Anything, mock.Anything, mock.Anything).Return(pgtype.Timestamptz{}, nil)
	store := NewBalanceReadStore(q, testLogger)

	scan, err := store.LastScanAt(context.Background(), customerID, rewardID)
	require.NoError(t, err)
	require.NotNil(t, scan)
	assert.True(t, when.Equal(*scan))

	redemption, err := store.LastRedemptionAt(context.Background(), customerID, rewardID)
	require.NoError(t, err)
	assert.Nil(t, redemption, "max() over no rows is NULL")
}
