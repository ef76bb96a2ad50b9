package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
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

func Conflict(c *gin.Context, code, message string) {
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

// WriteBusiness maps a use-case error to the right HTTP status. Anything
// that is not a BusinessError is treated as an internal failure.
func WriteBusiness(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Terjadi kesalahan internal.")
		return
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, "Permintaan tidak valid.")
	case KindNotFound:
		NotFound(c, be.Code, "Data tidak ditemukan.")
	case KindConflict:
		Conflict(c, be.Code, "Permintaan bentrok dengan data yang ada.")
	case KindFatal:
		Internal(c, be.Code, "Data tidak konsisten. Hubungi administrator.")
	default:
		Internal(c, "internal_error", "Terjadi kesalahan internal.")
	}
}
