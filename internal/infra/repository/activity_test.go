//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/dbq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockActivityWriteQueries struct {
	mock.Mock
}

func (m *MockActivityWriteQueries) InsertScanEvent(ctx context.Context, e dbq.ScanEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockActivityWriteQueries) CopyRedemptions(ctx context.Context, rs []dbq.Redemption) (int64, error) {
	args := m.Called(ctx, rs)
	return args.Get(0).(int64), args.Error(1)
}

func redemptions(n int) []*ledger.Redemption {
	customerID, rewardID := uuid.New(), uuid.New()
	rs := make([]*ledger.Redemption, 0, n)
	for range n {
		rs = append(rs, ledger.ReconstructRedemption(uuid.New(), customerID, rewardID, nil, time.Now().UTC()))
	}
	return rs
}

func TestActivityRepository_AppendRedemptions(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		copied   int64
		err      error
		wantKind infra.RepositoryErrorKind
		noCall   bool
	}{
		{name: "nothing to append", count: 0, noCall: true},
		{name: "bulk copy", count: 3, copied: 3},
		{name: "short copy", count: 3, copied: 2, wantKind: infra.KindDBFailure},
		{name: "unknown customer", count: 1, err: &pgconn.PgError{Code: "23503", ConstraintName: "redemptions_customer_id_fkey"}, wantKind: infra.KindForeignKeyViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockActivityWriteQueries)
			if !tt.noCall {
				q.On("CopyRedemptions", mock.Anything, mock.MatchedBy(func(rows []dbq.Redemption) bool {
					return len(rows) == tt.count
				})).Return(tt.copied, tt.err)
			}

			err := NewActivityRepository(q, testLogger).AppendRedemptions(context.Background(), redemptions(tt.count))

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
			if tt.noCall {
				q.AssertNotCalled(t, "CopyRedemptions", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestActivityRepository_AppendScanEvent(t *testing.T) {
	actor := uuid.New()
	ev := ledger.ReconstructScanEvent(uuid.New(), uuid.New(), uuid.New(), &actor, "perk_x", 2, time.Now().UTC())

	q := new(MockActivityWriteQueries)
	q.On("InsertScanEvent", mock.Anything, mock.MatchedBy(func(row dbq.ScanEvent) bool {
		return row.Code == "perk_x" && row.PointsChange == 2 && row.BusinessUserID.Valid
	})).Return(nil)

	assert.NoError(t, NewActivityRepository(q, testLogger).AppendScanEvent(context.Background(), ev))
	q.AssertExpectations(t)
}
