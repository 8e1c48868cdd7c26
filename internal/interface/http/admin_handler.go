package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/pkg/helpers"
	"github.com/musemarket/musemarket-api/pkg/response"
)

const dashboardErrMessage = "Failed to fetch dashboard statistics"

type AdminHandler struct {
	Dashboard DashboardUseCase
	Logger    *logrus.Logger
}

func NewAdminHandler(d DashboardUseCase, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Dashboard: d, Logger: logger}
}

// DashboardStats answers with the bare report object; the admin frontend
// reads its fields at the top level.
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	report, err := h.Dashboard.ComputeDashboardReport(c.Request.Context())
	if err != nil {
		helpers.RequestLogger(h.Logger, c).WithError(err).Error("dashboard stats failed")
		response.Error[any](c, http.StatusInternalServerError, dashboardErrMessage, nil)
		return
	}
	c.JSON(http.StatusOK, report)
}
