package util

import (
	"exam_admin_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Every response body carries a success boolean; failures add error and,
// when a lower-level cause exists, details. Existing clients depend on these
// exact field names.

// OK writes 200 with success=true merged into the given fields.
func OK(c *gin.Context, fields gin.H) {
	OKStatus(c, http.StatusOK, fields)
}

func Created(c *gin.Context, fields gin.H) {
	OKStatus(c, http.StatusCreated, fields)
}

func OKStatus(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

func Fail(c *gin.Context, status int, errMsg, details string) {
	body := gin.H{"success": false, "error": errMsg}
	if details != "" {
		body["details"] = details
	}
	c.JSON(status, body)
}

// FromError maps an AppError kind to its status; anything untyped is an
// upstream failure and gets logged before the 500 goes out.
func FromError(c *gin.Context, err error) {
	if ae, ok := AsAppError(err); ok {
		details := ""
		if ae.Err != nil {
			details = ae.Err.Error()
		}
		if ae.HTTPStatus() >= http.StatusInternalServerError {
			logger.Log.Error(ae.Message, zap.Error(err))
		}
		Fail(c, ae.HTTPStatus(), ae.Message, details)
		return
	}

	logger.Log.Error("Internal server error", zap.Error(err))
	Fail(c, http.StatusInternalServerError, "internal server error", err.Error())
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message, "")
}

func Unauthorized(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, "unauthorized", "")
}

func Forbidden(c *gin.Context) {
	Fail(c, http.StatusForbidden, "forbidden", "")
}
