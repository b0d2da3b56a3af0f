package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Field   string `json:"field,omitempty"`
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

func ConflictStatus(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
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

// WriteError maps an application error to its HTTP status. Unknown
// errors become a 500 without leaking internals.
func WriteError(c *gin.Context, err error) {
	ae, ok := As(err)
	if !ok {
		Internal(c, "internal_error", "unexpected error")
		return
	}

	status := http.StatusBadRequest
	switch ae.Kind {
	case KindConflict:
		status = http.StatusConflict
	case KindNotFound:
		status = http.StatusNotFound
	}

	c.JSON(status, HTTPError{
		Code:    ae.Code,
		Field:   ae.Field,
		Message: ae.Message,
	})
}
