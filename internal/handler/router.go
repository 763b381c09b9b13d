package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"perks-ledger/internal/handler/api"
	"perks-ledger/internal/handler/middleware"
	"perks-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Scans     *api.ScanHandler
	Customers *api.CustomerHandler
	Auth      *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery is outermost so it also covers the other middleware.
	engine.Use(middleware.CustomRecovery(logger.Slog()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.Slog()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		scans := apiGroup.Group("/business/scans")
		scans.Use(h.Scans.RequireBusinessUser)
		addRoutes(scans, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Scans.ProcessScan},
			{Method: http.MethodGet, Path: "/rewards/:rewardId/events/:scanEventId", Handler: h.Scans.GetScanEvent},
			{Method: http.MethodGet, Path: "/rewards/:rewardId/customers/:code/balance", Handler: h.Scans.GetBalance},
		})

		customers := apiGroup.Group("/customers")
		addRoutes(customers, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customers.Create},
			{Method: http.MethodGet, Path: "/me", Handler: h.Customers.Me},
			{Method: http.MethodPatch, Path: "/me", Handler: h.Customers.Rename},
			{Method: http.MethodDelete, Path: "/me", Handler: h.Customers.Delete},
			{Method: http.MethodGet, Path: "/me/dashboard", Handler: h.Customers.Dashboard},
		})
	}

	slog.Debug("routes registered", slog.Int("count", len(engine.Routes())))
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
