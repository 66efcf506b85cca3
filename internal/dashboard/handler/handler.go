// Package handler provides HTTP handlers for dashboard endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/dashboard/service"
)

// ErrorResponse is the dashboard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler handles HTTP requests for dashboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new dashboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Summary handles GET /admin/dashboard-summary request.
func (h *Handler) Summary(c *gin.Context) {
	resp, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.logger.Errorw("Summary handler failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
