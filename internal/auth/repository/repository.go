// Package repository provides data access for administrator accounts.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nwssu/gymadmin/internal/auth/model"
)

// Repository defines the interface for admin account data access.
type Repository interface {
	// GetByUsername returns the admin with the given username, or
	// model.ErrInvalidCredentials when absent.
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)

	// Create inserts a new admin account.
	Create(ctx context.Context, admin *model.Admin) error

	// SeedDefault inserts the default admin account when no account with
	// that username exists yet.
	SeedDefault(ctx context.Context, username, password string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new auth repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		r.logger.Errorw("GetByUsername failed", "username", username, "error", err)
		return nil, err
	}
	return &admin, nil
}

func (r *repository) Create(ctx context.Context, admin *model.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		r.logger.Errorw("Create failed", "username", admin.Username, "error", err)
		return err
	}
	return nil
}

func (r *repository) SeedDefault(ctx context.Context, username, password string) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Admin{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := model.Admin{Username: username}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}

	r.logger.Infow("SeedDefault created default admin", "username", username)
	return nil
}
