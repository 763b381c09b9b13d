package queries

import (
	"context"

	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrNotBusinessUser is an authorization failure, outside the ledger taxonomy.
var ErrNotBusinessUser = errs.New("caller is not a business user")

type BusinessUserReadStore interface {
	FindIDByAuthID(ctx context.Context, authProviderID string) (uuid.UUID, error)
}

type ActorQueries interface {
	// ResolveBusinessUser maps a verified token subject to the acting
	// business user recorded on scans.
	ResolveBusinessUser(ctx context.Context, subject string) (uuid.UUID, error)
}

type actorQueriesImpl struct {
	store BusinessUserReadStore
}

func NewActorQueries(store BusinessUserReadStore) ActorQueries {
	return &actorQueriesImpl{store: store}
}

func (q *actorQueriesImpl) ResolveBusinessUser(ctx context.Context, subject string) (uuid.UUID, error) {
	if subject == "" {
		return uuid.Nil, ErrNotBusinessUser
	}
	id, err := q.store.FindIDByAuthID(ctx, subject)
	if err != nil {
		return uuid.Nil, shared.TranslateNotFound(err, ErrNotBusinessUser)
	}
	return id, nil
}
