package components

import (
	"log/slog"

	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/infra/memstore"
	"perks-ledger/internal/infra/readstore"
	"perks-ledger/internal/infra/uow"
	"perks-ledger/internal/pkg/clock"
	"perks-ledger/internal/pkg/config"
	"perks-ledger/internal/usecase/queries"
	"perks-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
	commandReadsOption,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Dashboard
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.DashboardViewQueries)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
		// ScanEvent
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.ScanEventViewQueries)),
		),
		fx.Annotate(
			readstore.NewScanEventReadStore,
			fx.As(new(queries.ScanEventReadStore)),
		),
		// BusinessUser
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.BusinessUserReadQueries)),
		),
		fx.Annotate(
			readstore.NewBusinessUserReadStore,
			fx.As(new(queries.BusinessUserReadStore)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		NewMemoryStore,
		func(s *memstore.Store) shared.UnitOfWork { return s.UnitOfWork() },
		fx.Annotate(
			func(s *memstore.Store) *memstore.ReadStore { return s.Reads() },
			fx.As(new(queries.DashboardReadStore)),
			fx.As(new(queries.ScanEventReadStore)),
			fx.As(new(queries.BusinessUserReadStore)),
		),
	),
	commandReadsOption,
)

// Point lookups outside a transaction come from whichever store is wired.
var commandReadsOption = fx.Provide(
	fx.Annotate(
		func(u shared.UnitOfWork) shared.CommandReads { return u.CommandReads() },
		fx.As(new(shared.CommandReads)),
		fx.As(new(shared.CustomerReader)),
	),
)

func NewQueries(pool *pgxpool.Pool) *dbq.Queries {
	return dbq.New(pool)
}

// NewMemoryStore builds the in-process store and loads STORE_SEED_FILE if set.
func NewMemoryStore(cfg config.Config, clk clock.Clock, logger *slog.Logger) (*memstore.Store, error) {
	store, err := memstore.New(logger)
	if err != nil {
		return nil, err
	}
	if cfg.Server.SeedFile == "" {
		logger.Warn("memory store started empty; set STORE_SEED_FILE to load fixtures")
		return store, nil
	}
	fixtures, err := memstore.LoadFixtures(cfg.Server.SeedFile)
	if err != nil {
		return nil, err
	}
	if err := store.Seed(fixtures, clk.Now()); err != nil {
		return nil, err
	}
	logger.Info("memory store seeded", slog.String("file", cfg.Server.SeedFile))
	return store, nil
}
