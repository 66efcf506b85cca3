// Package repository provides data access for the statistics module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	memberModel "github.com/nwssu/gymadmin/internal/member/model"
)

// LogWithMember pairs a membership log with the member it refers to.
type LogWithMember struct {
	LogID      int       `gorm:"column:log_id"`
	MemberID   int       `gorm:"column:member_id"`
	FirstName  string    `gorm:"column:first_name"`
	LastName   string    `gorm:"column:last_name"`
	ActionType string    `gorm:"column:action_type"`
	ActionDate time.Time `gorm:"column:action_date"`
	Remarks    string    `gorm:"column:remarks"`
}

// Repository defines the interface for statistics data access.
type Repository interface {
	// AllMembers returns every member ordered by id.
	AllMembers(ctx context.Context) ([]memberModel.Member, error)

	// RecentLogs returns logs since the cutoff joined with member names,
	// newest first.
	RecentLogs(ctx context.Context, since time.Time) ([]LogWithMember, error)

	// RegistrationsByType counts members of the given type registered in
	// the [start, end) interval.
	RegistrationsByType(ctx context.Context, memberType string, start, end time.Time) (int64, error)

	// TotalMembers returns the overall member count.
	TotalMembers(ctx context.Context) (int64, error)

	// ActiveMembers returns the active member count.
	ActiveMembers(ctx context.Context) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) AllMembers(ctx context.Context) ([]memberModel.Member, error) {
	var members []memberModel.Member
	err := r.db.WithContext(ctx).Order("member_id ASC").Find(&members).Error
	if err != nil {
		r.logger.Errorw("AllMembers failed", "error", err)
		return nil, err
	}
	return members, nil
}

func (r *repository) RecentLogs(ctx context.Context, since time.Time) ([]LogWithMember, error) {
	var rows []LogWithMember
	err := r.db.WithContext(ctx).
		Model(&memberModel.MembershipLog{}).
		Select("membership_logs.log_id, membership_logs.member_id, members.first_name, "+
			"members.last_name, membership_logs.action_type, membership_logs.action_date, "+
			"membership_logs.remarks").
		Joins("JOIN members ON membership_logs.member_id = members.member_id").
		Where("membership_logs.action_date >= ?", since).
		Order("membership_logs.action_date DESC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("RecentLogs failed", "error", err)
		return nil, err
	}
	if rows == nil {
		rows = []LogWithMember{}
	}
	return rows, nil
}

func (r *repository) RegistrationsByType(
	ctx context.Context,
	memberType string,
	start, end time.Time,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&memberModel.Member{}).
		Where("member_type = ? AND date_registered >= ? AND date_registered < ?", memberType, start, end).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("RegistrationsByType failed", "member_type", memberType, "error", err)
		return 0, err
	}
	return count, nil
}

func (r *repository) TotalMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&memberModel.Member{}).Count(&count).Error
	if err != nil {
		r.logger.Errorw("TotalMembers failed", "error", err)
		return 0, err
	}
	return count, nil
}

func (r *repository) ActiveMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&memberModel.Member{}).
		Where("status = ?", memberModel.StatusActive).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("ActiveMembers failed", "error", err)
		return 0, err
	}
	return count, nil
}
