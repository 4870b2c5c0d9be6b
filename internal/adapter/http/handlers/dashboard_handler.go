package handlers

import (
	"net/http"

	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the derived metrics consumed by the management
// dashboard. Responses are the computed entities themselves; there is no
// request payload to bind.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Metrics(c *gin.Context) {
	metrics, err := h.usecase.ComputeDashboardMetrics(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *DashboardHandler) StatusDistribution(c *gin.Context) {
	distribution, err := h.usecase.StatusDistribution(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, distribution)
}

func (h *DashboardHandler) FinancialSummary(c *gin.Context) {
	summary, err := h.usecase.FinancialSummary(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}
