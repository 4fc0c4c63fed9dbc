package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskify/taskify-api/internal/domain/apperror"
	"github.com/taskify/taskify-api/pkg/helpers"
	"github.com/taskify/taskify-api/pkg/response"
)

func ok[T any](c *gin.Context, status int, data T, message string, meta any) {
	resp := response.Success(c, status, data, message, meta)
	c.JSON(resp.Status, resp)
}

func fail(c *gin.Context, status int, message string, details any) {
	resp := response.Error[any](c, status, message, details)
	c.JSON(resp.Status, resp)
}

// domainError maps an application-layer error onto the response envelope.
// Domain errors carry their own message, code, and suggested status;
// anything else is an unexpected failure that gets logged and hidden behind
// a generic message.
func domainError(c *gin.Context, logger *logrus.Logger, err error) {
	if ae, isDomain := apperror.FromError(err); isDomain {
		fail(c, ae.StatusCode, ae.Message, map[string]string{"code": ae.Code})
		return
	}
	if logger != nil {
		helpers.LogError(logger, "unexpected error", err, logrus.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		})
	}
	fail(c, http.StatusInternalServerError, "internal server error", nil)
}
