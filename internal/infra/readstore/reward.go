package readstore

import (
	"context"
	"log/slog"

	"perks-ledger/internal/domain/reward"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RewardReadQueries interface {
	GetRewardByID(ctx context.Context, id pgtype.UUID) (dbq.Reward, error)
}

type RewardReadStore struct {
	queries RewardReadQueries
	logger  *slog.Logger
}

func NewRewardReadStore(queries RewardReadQueries, logger *slog.Logger) *RewardReadStore {
	return &RewardReadStore{queries: queries, logger: logger}
}

func (r *RewardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	row, err := r.queries.GetRewardByID(ctx, converter.UUIDToPgtype(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reward not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get reward", err)
	}
	return converter.RewardFromRow(row), nil
}
