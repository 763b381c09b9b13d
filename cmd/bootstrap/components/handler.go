package components

import (
	"perks-ledger/internal/handler"
	"perks-ledger/internal/handler/api"
	"perks-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScanHandler,
		api.NewCustomerHandler,
		middleware.NewAuthMiddleware,
		func(scans *api.ScanHandler, customers *api.CustomerHandler, auth *middleware.AuthMiddleware) handler.Handlers {
			return handler.Handlers{Scans: scans, Customers: customers, Auth: auth}
		},
	),
	fx.Invoke(handler.NewRouter),
)
