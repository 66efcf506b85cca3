// Package router provides statistics module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nwssu/gymadmin/internal/statistics/handler"
	"github.com/nwssu/gymadmin/internal/statistics/repository"
	"github.com/nwssu/gymadmin/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, loc *time.Location) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger, loc)
	h := handler.New(svc, logger)

	r.GET("/admin/members-statistics", h.MembersStatistics)
	r.GET("/admin/membership-logs", h.MembershipLogs)
	r.GET("/admin/statistics-summary", h.Summary)
}
