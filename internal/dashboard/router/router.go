// Package router provides dashboard module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nwssu/gymadmin/internal/dashboard/handler"
	"github.com/nwssu/gymadmin/internal/dashboard/repository"
	"github.com/nwssu/gymadmin/internal/dashboard/service"
	memberRepo "github.com/nwssu/gymadmin/internal/member/repository"
)

// RegisterRoutes registers dashboard module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, loc *time.Location) {
	repo := repository.New(db, logger)
	members := memberRepo.New(db, logger)
	svc := service.New(repo, members, logger, loc)
	h := handler.New(svc, logger)

	r.GET("/admin/dashboard-summary", h.Summary)
}
