// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/statistics/service"
)

// ErrorResponse is the statistics error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// MembersStatistics handles GET /admin/members-statistics request.
func (h *Handler) MembersStatistics(c *gin.Context) {
	resp, err := h.service.MembersStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("MembersStatistics handler failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build member statistics"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MembershipLogs handles GET /admin/membership-logs request.
func (h *Handler) MembershipLogs(c *gin.Context) {
	entries, err := h.service.MembershipLogs(c.Request.Context())
	if err != nil {
		h.logger.Errorw("MembershipLogs handler failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load membership logs"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Summary handles GET /admin/statistics-summary request.
func (h *Handler) Summary(c *gin.Context) {
	resp, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.logger.Errorw("Summary handler failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build statistics summary"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
