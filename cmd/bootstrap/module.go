package bootstrap

import (
	"perks-ledger/cmd/bootstrap/components"
	"perks-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		AuthModule,
		PersistenceModule(cfg.Server.StoreDriver),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

// PersistenceModule selects the store behind the usecase ports.
func PersistenceModule(driver string) fx.Option {
	if driver == config.StoreDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(
		DBModule,
		components.PostgresPersistenceModule,
	)
}
