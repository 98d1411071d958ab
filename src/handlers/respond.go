package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/middleware"
)

// respondError maps the error taxonomy to HTTP statuses. Internal errors are
// logged with detail and returned opaque.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	kind := apperrors.KindOf(err)

	if kind == apperrors.KindInternal {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  apperrors.KindInternal,
			"error": "internal server error",
		})
		return
	}

	c.JSON(statusFor(kind), gin.H{
		"code":  kind,
		"error": err.Error(),
	})
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidArgument, apperrors.KindFailedPrecondition:
		return http.StatusBadRequest
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// actingUser pulls the authenticated identity set by the middleware; a
// missing identity is a 401, never a panic.
func actingUser(c *gin.Context) (middleware.AuthUser, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":  apperrors.KindUnauthenticated,
			"error": "authentication required",
		})
	}
	return user, ok
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":  apperrors.KindInvalidArgument,
		"error": err.Error(),
	})
}
