// Package router provides member module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nwssu/gymadmin/internal/member/handler"
	"github.com/nwssu/gymadmin/internal/member/repository"
	"github.com/nwssu/gymadmin/internal/member/service"
	pricingRepo "github.com/nwssu/gymadmin/internal/pricing/repository"
)

// RegisterRoutes registers member module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, loc *time.Location) {
	repo := repository.New(db, logger)
	pricing := pricingRepo.New(db, logger)
	svc := service.New(repo, pricing, logger, loc)
	h := handler.New(svc, logger)

	r.GET("/admin/members-json", h.List)
	r.GET("/admin/member/:id", h.Get)
	r.POST("/admin/add-member", h.Create)
	r.POST("/admin/member/:id/edit", h.Update)
	r.DELETE("/admin/member/:id/delete", h.Delete)
}
