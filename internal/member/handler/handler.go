// Package handler provides HTTP handlers for member endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/member/model"
	"github.com/nwssu/gymadmin/internal/member/service"
)

// Handler handles HTTP requests for member endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new member handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /admin/members-json request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		failureResponse(c, http.StatusInternalServerError, "failed to load members")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /admin/member/:id request.
func (h *Handler) Get(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		failureResponse(c, http.StatusBadRequest, "invalid member id")
		return
	}

	view, err := h.service.Get(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			failureResponse(c, http.StatusNotFound, "Member not found")
			return
		}
		failureResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, view)
}

// Create handles POST /admin/add-member request. The admin form submits
// multipart form fields, so binding goes through the form tags.
func (h *Handler) Create(c *gin.Context) {
	var req model.AddMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		failureResponse(c, http.StatusBadRequest, "invalid form data")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			failureResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("Create handler failed", "error", err)
		failureResponse(c, http.StatusInternalServerError, "failed to register member")
		return
	}

	successResponse(c, result.Message)
}

// Update handles POST /admin/member/:id/edit request with a JSON body of
// partial fields.
func (h *Handler) Update(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		failureResponse(c, http.StatusBadRequest, "invalid member id")
		return
	}

	var req model.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failureResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Update(c.Request.Context(), memberID, &req); err != nil {
		switch {
		case errors.Is(err, model.ErrMemberNotFound):
			failureResponse(c, http.StatusNotFound, "Member not found")
		case isValidationError(err):
			failureResponse(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Errorw("Update handler failed", "member_id", memberID, "error", err)
			failureResponse(c, http.StatusInternalServerError, "failed to update member")
		}
		return
	}

	successResponse(c, "Member updated successfully!")
}

// Delete handles DELETE /admin/member/:id/delete request.
func (h *Handler) Delete(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		failureResponse(c, http.StatusBadRequest, "invalid member id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), memberID); err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			failureResponse(c, http.StatusNotFound, "Member not found")
			return
		}
		h.logger.Errorw("Delete handler failed", "member_id", memberID, "error", err)
		failureResponse(c, http.StatusInternalServerError, "failed to delete member")
		return
	}

	successResponse(c, "Member deleted successfully!")
}

// isValidationError reports whether the error maps to a 400 rather than a 500.
func isValidationError(err error) bool {
	return errors.Is(err, model.ErrMissingRequiredFields) ||
		errors.Is(err, model.ErrInvalidDate) ||
		errors.Is(err, model.ErrInvalidDateRange) ||
		errors.Is(err, model.ErrInvalidMemberType) ||
		errors.Is(err, model.ErrInvalidGymPlan) ||
		errors.Is(err, model.ErrInvalidStatus)
}
