package repository

import (
	"context"
	"log/slog"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/pkg/errs"
)

type ActivityWriteQueries interface {
	InsertScanEvent(ctx context.Context, e dbq.ScanEvent) error
	CopyRedemptions(ctx context.Context, rs []dbq.Redemption) (int64, error)
}

// ActivityRepository appends to the immutable scan and redemption logs.
type ActivityRepository struct {
	queries ActivityWriteQueries
	logger  *slog.Logger
}

func NewActivityRepository(queries ActivityWriteQueries, logger *slog.Logger) *ActivityRepository {
	return &ActivityRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *ActivityRepository) AppendScanEvent(ctx context.Context, e *ledger.ScanEvent) error {
	if err := r.queries.InsertScanEvent(ctx, converter.ScanEventToRow(e)); err != nil {
		return infra.WrapPgErr(r.logger, "failed to append scan event", err)
	}
	return nil
}

func (r *ActivityRepository) AppendRedemptions(ctx context.Context, rs []*ledger.Redemption) error {
	if len(rs) == 0 {
		return nil
	}
	n, err := r.queries.CopyRedemptions(ctx, converter.RedemptionsToRows(rs))
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to append redemptions", err)
	}
	if n != int64(len(rs)) {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to append redemptions",
			errs.Newf("copied %d of %d rows", n, len(rs)))
	}
	return nil
}
