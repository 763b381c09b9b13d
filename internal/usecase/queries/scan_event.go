package queries

import (
	"context"
	"time"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScanEventView struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	RewardID       uuid.UUID
	BusinessUserID *uuid.UUID
	Code           string
	PointsChange   int
	ScannedAt      time.Time
}

type ScanEventReadStore interface {
	FindByID(ctx context.Context, rewardID, id uuid.UUID) (*ScanEventView, error)
}

type ScanEventQueries interface {
	GetScanEvent(ctx context.Context, rewardID, scanEventID uuid.UUID) (*ScanEventView, error)
}

type scanEventQueriesImpl struct {
	store ScanEventReadStore
}

func NewScanEventQueries(store ScanEventReadStore) ScanEventQueries {
	return &scanEventQueriesImpl{store: store}
}

// GetScanEvent only finds events recorded against rewardID.
func (q *scanEventQueriesImpl) GetScanEvent(ctx context.Context, rewardID, scanEventID uuid.UUID) (*ScanEventView, error) {
	ev, err := q.store.FindByID(ctx, rewardID, scanEventID)
	if err != nil {
		return nil, shared.TranslateNotFound(err, ledger.ErrScanEventNotFound)
	}
	return ev, nil
}
