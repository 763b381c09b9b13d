//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"perks-ledger/internal/handler/middleware"
	"perks-ledger/internal/pkg/jwt"
	"perks-ledger/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

var now = time.Date(2026, 5, 20, 15, 30, 0, 0, time.UTC)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := jwt.NewVerifier(secret, jwt.VerifierOptions{Now: func() time.Time { return now }})

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/me", middleware.NewAuthMiddleware(verifier, logger).RequireAuth(), func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter(t)

	valid, err := jwt.Sign(secret, "auth0|alice", time.Hour, now)
	require.NoError(t, err)
	expired, err := jwt.Sign(secret, "auth0|alice", time.Hour, now.Add(-3*time.Hour))
	require.NoError(t, err)
	forged, err := jwt.Sign("other-secret", "auth0|alice", time.Hour, now)
	require.NoError(t, err)
	anonymous, err := jwt.Sign(secret, "", time.Hour, now)
	require.NoError(t, err)

	t.Run("valid token exposes the subject", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, valid)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "auth0|alice", body["subject"])
	})

	rejected := []struct {
		name  string
		token string
		msg   string
	}{
		{name: "missing", token: "", msg: "access token required"},
		{name: "expired", token: expired, msg: "invalid or expired token"},
		{name: "wrong signature", token: forged, msg: "invalid or expired token"},
		{name: "no subject", token: anonymous, msg: "invalid or expired token"},
		{name: "garbage", token: "not.a.jwt", msg: "invalid or expired token"},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, tc.token)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tc.msg)
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Use(middleware.ErrorHandler())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "internal server error")
}

func TestErrorHandler_PrivateErrorBecomes500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/fail", func(c *gin.Context) { _ = c.Error(assert.AnError) })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/fail", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "internal server error")
}
