package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/internal/application"
	"github.com/musemarket/musemarket-api/pkg/helpers"
	"github.com/musemarket/musemarket-api/pkg/response"
)

var statusByErr = []struct {
	err    error
	status int
}{
	{application.ErrInvalidCredentials, http.StatusBadRequest},
	{application.ErrUsernameTaken, http.StatusBadRequest},
	{application.ErrEmailExists, http.StatusBadRequest},
	{application.ErrInvalidRole, http.StatusBadRequest},
	{application.ErrInvalidAge, http.StatusBadRequest},
	{application.ErrUserNotFound, http.StatusNotFound},
	{application.ErrArtworkNotFound, http.StatusNotFound},
	{application.ErrArtworkSold, http.StatusConflict},
	{application.ErrArtworkUnavailable, http.StatusConflict},
	{application.ErrPaymentReused, http.StatusConflict},
	{application.ErrImageRequired, http.StatusBadRequest},
	{application.ErrImageType, http.StatusBadRequest},
	{application.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
	{application.ErrInvalidPrice, http.StatusBadRequest},
	{application.ErrInvalidStatus, http.StatusBadRequest},
	{application.ErrPaymentFailed, http.StatusPaymentRequired},
	{application.ErrPaymentUnavailable, http.StatusBadGateway},
}

// writeError maps service errors to statuses. Anything unknown is logged and
// answered with a generic 500.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	for _, m := range statusByErr {
		if errors.Is(err, m.err) {
			response.Error[any](c, m.status, m.err.Error(), nil)
			return
		}
	}
	helpers.RequestLogger(logger, c).WithError(err).WithField("path", c.FullPath()).Error("request failed")
	response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
}
