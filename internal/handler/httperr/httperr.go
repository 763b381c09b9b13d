package httperr

import (
	"errors"
	"net/http"

	"perks-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const MsgInternal = "internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError attaches err to the gin context so the logging middleware
// records it, then writes the JSON body.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrInvalidArgument:
		return http.StatusBadRequest
	case errs.ErrInsufficientBalance:
		return http.StatusUnprocessableEntity
	case errs.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes the status for err's kind. Unexpected failures never leak
// their message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := MsgInternal
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, nil)
}
