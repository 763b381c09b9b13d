package api

import (
	"net/http"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/handler/httperr"
	"perks-ledger/internal/handler/middleware"
	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgUnauthorized     = "access token required"
	msgNotBusinessUser  = "business user required"
	msgInvalidRequest   = "invalid request"
	msgInvalidRewardID  = "invalid reward id"
	msgInvalidScanEvent = "invalid scan event id"
)

func abortWithError(c *gin.Context, err error) {
	var insufficient *ledger.InsufficientBalanceError
	switch {
	case errs.Is(err, queries.ErrNotBusinessUser):
		httperr.AbortWithError(c, http.StatusForbidden, err, msgNotBusinessUser, nil)
	case errs.As(err, &insufficient):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, insufficient.Error(), gin.H{
			"required":  insufficient.Required,
			"available": insufficient.Available,
		})
	default:
		httperr.Abort(c, err)
	}
}

func requireSubject(c *gin.Context) (string, bool) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized, nil)
	}
	return subject, ok
}
