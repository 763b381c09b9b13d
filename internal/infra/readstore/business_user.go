package readstore

import (
	"context"
	"log/slog"

	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BusinessUserReadQueries interface {
	GetBusinessUserIDByAuthID(ctx context.Context, authProviderID string) (pgtype.UUID, error)
}

type BusinessUserReadStore struct {
	queries BusinessUserReadQueries
	logger  *slog.Logger
}

func NewBusinessUserReadStore(queries BusinessUserReadQueries, logger *slog.Logger) *BusinessUserReadStore {
	return &BusinessUserReadStore{queries: queries, logger: logger}
}

func (r *BusinessUserReadStore) FindIDByAuthID(ctx context.Context, authProviderID string) (uuid.UUID, error) {
	id, err := r.queries.GetBusinessUserIDByAuthID(ctx, authProviderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "business user not found", err)
		}
		return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get business user", err)
	}
	return converter.UUIDFromPgtype(id), nil
}
