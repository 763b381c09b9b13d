package readstore

import (
	"context"
	"log/slog"

	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/pkg/pgconv"
	"perks-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ScanEventViewQueries interface {
	GetScanEvent(ctx context.Context, id, rewardID pgtype.UUID) (dbq.ScanEvent, error)
}

type ScanEventReadStore struct {
	queries ScanEventViewQueries
	logger  *slog.Logger
}

func NewScanEventReadStore(queries ScanEventViewQueries, logger *slog.Logger) *ScanEventReadStore {
	return &ScanEventReadStore{queries: queries, logger: logger}
}

func (r *ScanEventReadStore) FindByID(ctx context.Context, rewardID, id uuid.UUID) (*queries.ScanEventView, error) {
	row, err := r.queries.GetScanEvent(ctx, converter.UUIDToPgtype(id), converter.UUIDToPgtype(rewardID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "scan event not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get scan event", err)
	}
	return &queries.ScanEventView{
		ID:             converter.UUIDFromPgtype(row.ID),
		CustomerID:     converter.UUIDFromPgtype(row.CustomerID),
		RewardID:       converter.UUIDFromPgtype(row.RewardID),
		BusinessUserID: pgconv.UUIDPtrFromPgtype(row.BusinessUserID),
		Code:           row.Code,
		PointsChange:   int(row.PointsChange),
		ScannedAt:      pgconv.TimeFromPgtype(row.ScannedAt),
	}, nil
}
