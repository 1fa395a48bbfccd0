package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/remote"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// FromRemote answers with the failure of a backend call. Backend HTTP
// errors keep their status and message; transport and decode failures
// become 502.
func FromRemote(c *gin.Context, err error) {
	status, code, message := Classify(err)
	Write(c, status, code, message)
}

// Classify maps an error from the remote client to a response status, an
// error code and a user-facing message.
func Classify(err error) (int, string, string) {
	var re *remote.Error
	if !errors.As(err, &re) {
		return http.StatusInternalServerError, "internal_error", "request failed"
	}

	switch re.Kind {
	case remote.KindNotAuthenticated:
		return http.StatusUnauthorized, "not_authenticated", re.Message
	case remote.KindHTTP:
		status := re.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return status, "backend_error", re.Message
	case remote.KindConnection:
		return http.StatusBadGateway, "connection_failed", re.Message
	case remote.KindDecode:
		return http.StatusBadGateway, "invalid_response", re.Message
	default:
		return http.StatusInternalServerError, "internal_error", re.Message
	}
}
