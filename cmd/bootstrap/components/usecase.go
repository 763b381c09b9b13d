package components

import (
	"log/slog"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/pkg/clock"
	"perks-ledger/internal/pkg/config"
	"perks-ledger/internal/usecase/commands"
	"perks-ledger/internal/usecase/expiry"
	"perks-ledger/internal/usecase/queries"
	"perks-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewExpiryPolicy,
	expiry.NewEvaluator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewScanUseCase,
		func(u shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.CustomerCommands {
			return commands.NewCustomerUseCase(u, clk, cfg.Ledger.CodeAttempts, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBalanceQueries,
		queries.NewScanEventQueries,
		queries.NewCustomerQueries,
		queries.NewActorQueries,
		NewDashboardOptions,
		queries.NewDashboardQueries,
	),
)

func NewExpiryPolicy(cfg config.Config) (ledger.ExpiryPolicy, error) {
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return ledger.ExpiryPolicy{}, err
	}
	return ledger.NewExpiryPolicy(loc), nil
}

func NewDashboardOptions(cfg config.Config) queries.DashboardOptions {
	return queries.DashboardOptions{
		RecentActivityDays: cfg.Ledger.RecentActivityDays,
		ExpiringSoonDays:   cfg.Ledger.ExpiringSoonDays,
		TopBusinesses:      cfg.Ledger.TopBusinesses,
	}
}
