// Package service provides business logic layer for the auth module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/auth/model"
	"github.com/nwssu/gymadmin/internal/auth/repository"
)

// Service defines the interface for auth business logic operations.
type Service interface {
	// Login checks the credentials against the stored admin accounts.
	Login(ctx context.Context, req *model.LoginRequest) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Login(ctx context.Context, req *model.LoginRequest) error {
	if req.Username == "" || req.Password == "" {
		return model.ErrInvalidCredentials
	}

	admin, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, model.ErrInvalidCredentials) {
			s.logger.Errorw("Login lookup failed", "error", err)
		}
		return err
	}

	if !admin.CheckPassword(req.Password) {
		return model.ErrInvalidCredentials
	}

	s.logger.Infow("Login succeeded", "username", req.Username)
	return nil
}
