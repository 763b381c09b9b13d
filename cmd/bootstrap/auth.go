package bootstrap

import (
	"perks-ledger/internal/handler/middleware"
	"perks-ledger/internal/pkg/config"
	"perks-ledger/internal/pkg/jwt"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		fx.Annotate(
			NewVerifier,
			fx.As(new(middleware.SubjectVerifier)),
		),
	),
)

func NewVerifier(cfg config.Config) *jwt.Verifier {
	return jwt.NewVerifier(cfg.Auth.Secret, jwt.VerifierOptions{
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		Leeway:   cfg.Auth.Leeway,
	})
}
