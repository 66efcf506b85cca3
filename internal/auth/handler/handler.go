// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/auth/model"
	"github.com/nwssu/gymadmin/internal/auth/service"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Login handles POST /admin/login request. The form and JSON shapes are
// both accepted.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.LoginResponse{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.service.Login(c.Request.Context(), &req); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, model.LoginResponse{
				Success: false,
				Error:   model.ErrInvalidCredentials.Error(),
			})
			return
		}
		h.logger.Errorw("Login handler failed", "error", err)
		c.JSON(http.StatusInternalServerError, model.LoginResponse{
			Success: false,
			Error:   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{Success: true})
}
