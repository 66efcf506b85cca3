// Package repository provides data access layer for the member module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nwssu/gymadmin/internal/member/model"
)

// Repository defines the interface for member data access operations.
type Repository interface {
	// List returns every member, oldest registration first.
	List(ctx context.Context) ([]model.Member, error)

	// GetByID finds a member by member_id.
	GetByID(ctx context.Context, memberID int) (*model.Member, error)

	// Create persists a new member.
	Create(ctx context.Context, member *model.Member) error

	// Update persists every field of an existing member.
	Update(ctx context.Context, member *model.Member) error

	// Delete removes a member and its membership logs.
	Delete(ctx context.Context, memberID int) error

	// CodesWithPrefix returns every unique code starting with prefix
	// followed by a dash.
	CodesWithPrefix(ctx context.Context, prefix string) ([]string, error)

	// ExpireOverdue flips members whose membership ended before today to
	// Expired and returns the affected rows.
	ExpireOverdue(ctx context.Context, today time.Time) ([]model.Member, error)

	// AddLog appends a membership log entry.
	AddLog(ctx context.Context, log *model.MembershipLog) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new member repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) List(ctx context.Context) ([]model.Member, error) {
	r.logger.Debugw("List called")

	var members []model.Member
	err := r.db.WithContext(ctx).
		Order("member_id ASC").
		Find(&members).Error
	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}

	if members == nil {
		members = []model.Member{}
	}

	r.logger.Debugw("List completed", "count", len(members))
	return members, nil
}

func (r *repository) GetByID(ctx context.Context, memberID int) (*model.Member, error) {
	r.logger.Debugw("GetByID called", "member_id", memberID)

	var member model.Member
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID member not found", "member_id", memberID)
			return nil, model.ErrMemberNotFound
		}
		r.logger.Errorw("GetByID database error", "member_id", memberID, "error", err)
		return nil, err
	}

	return &member, nil
}

func (r *repository) Create(ctx context.Context, member *model.Member) error {
	r.logger.Infow("Create called", "unique_code", member.UniqueCode)

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		r.logger.Errorw("Create database error", "unique_code", member.UniqueCode, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "member_id", member.MemberID, "unique_code", member.UniqueCode)
	return nil
}

func (r *repository) Update(ctx context.Context, member *model.Member) error {
	r.logger.Infow("Update called", "member_id", member.MemberID)

	result := r.db.WithContext(ctx).Save(member)
	if result.Error != nil {
		r.logger.Errorw("Update database error", "member_id", member.MemberID, "error", result.Error)
		return result.Error
	}

	r.logger.Infow("Update completed", "member_id", member.MemberID)
	return nil
}

func (r *repository) Delete(ctx context.Context, memberID int) error {
	r.logger.Infow("Delete called", "member_id", memberID)

	// Logs first so no orphan rows remain on engines without FK cascades.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", memberID).Delete(&model.MembershipLog{}).Error; err != nil {
			return err
		}

		result := tx.Where("member_id = ?", memberID).Delete(&model.Member{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return model.ErrMemberNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			r.logger.Debugw("Delete member not found", "member_id", memberID)
		} else {
			r.logger.Errorw("Delete database error", "member_id", memberID, "error", err)
		}
		return err
	}

	r.logger.Infow("Delete completed", "member_id", memberID)
	return nil
}

func (r *repository) CodesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	r.logger.Debugw("CodesWithPrefix called", "prefix", prefix)

	var codes []string
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("unique_code LIKE ?", prefix+"-%").
		Pluck("unique_code", &codes).Error
	if err != nil {
		r.logger.Errorw("CodesWithPrefix database error", "prefix", prefix, "error", err)
		return nil, err
	}

	return codes, nil
}

func (r *repository) ExpireOverdue(ctx context.Context, today time.Time) ([]model.Member, error) {
	r.logger.Debugw("ExpireOverdue called", "today", today.Format(model.DateFormat))

	var overdue []model.Member
	err := r.db.WithContext(ctx).
		Where("end_date < ? AND status <> ?", today, model.StatusExpired).
		Find(&overdue).Error
	if err != nil {
		r.logger.Errorw("ExpireOverdue database error", "error", err)
		return nil, err
	}

	if len(overdue) == 0 {
		return []model.Member{}, nil
	}

	ids := make([]int, 0, len(overdue))
	for i := range overdue {
		ids = append(ids, overdue[i].MemberID)
		overdue[i].Status = model.StatusExpired
	}

	err = r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("member_id IN ?", ids).
		Update("status", model.StatusExpired).Error
	if err != nil {
		r.logger.Errorw("ExpireOverdue update error", "error", err)
		return nil, err
	}

	r.logger.Infow("ExpireOverdue completed", "expired_count", len(overdue))
	return overdue, nil
}

func (r *repository) AddLog(ctx context.Context, log *model.MembershipLog) error {
	r.logger.Debugw("AddLog called", "member_id", log.MemberID, "action_type", log.ActionType)

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		r.logger.Errorw("AddLog database error", "member_id", log.MemberID, "error", err)
		return err
	}

	return nil
}
