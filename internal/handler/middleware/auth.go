package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"perks-ledger/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const ctxSubjectKey = "subject"

// SubjectVerifier validates a bearer token and returns its sub claim.
type SubjectVerifier interface {
	VerifySubject(token string) (string, error)
}

type AuthMiddleware struct {
	verifier SubjectVerifier
	logger   *slog.Logger
}

func NewAuthMiddleware(verifier SubjectVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "access token required", nil)
			return
		}

		subject, err := m.verifier.VerifySubject(token)
		if err != nil {
			m.logger.Warn("token verification failed", slog.String("error", err.Error()))
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "invalid or expired token", nil)
			return
		}

		SetSubject(c, subject)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

func SetSubject(c *gin.Context, subject string) {
	c.Set(ctxSubjectKey, subject)
}

// GetSubject returns the verified token subject. Only set behind RequireAuth.
func GetSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok && subject != ""
}
