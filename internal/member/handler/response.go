package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nwssu/gymadmin/internal/member/model"
)

// successResponse writes the success-flag envelope the admin pages consume.
func successResponse(c *gin.Context, message string) {
	c.JSON(200, model.MutationResponse{Success: true, Message: message})
}

// failureResponse writes a failed mutation envelope with the given status.
func failureResponse(c *gin.Context, statusCode int, errMessage string) {
	c.JSON(statusCode, model.MutationResponse{Success: false, Error: errMessage})
}
