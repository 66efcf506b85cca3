// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nwssu/gymadmin/internal/auth/handler"
	"github.com/nwssu/gymadmin/internal/auth/repository"
	"github.com/nwssu/gymadmin/internal/auth/service"
)

// RegisterRoutes registers auth module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/admin/login", h.Login)
}
