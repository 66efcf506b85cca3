// Package repository provides aggregate queries backing the dashboard.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	memberModel "github.com/nwssu/gymadmin/internal/member/model"
)

// Repository defines the interface for dashboard aggregation queries.
type Repository interface {
	// StatusCounts returns member counts grouped by status.
	StatusCounts(ctx context.Context) (map[string]int64, error)

	// ActiveTypeCounts returns active-member counts grouped by member type.
	ActiveTypeCounts(ctx context.Context) (map[string]int64, error)

	// ActiveTypeCountsOverlapping returns active-member counts grouped by
	// member type for memberships overlapping the [start, end] interval.
	ActiveTypeCountsOverlapping(ctx context.Context, start, end time.Time) (map[string]int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new dashboard repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

type groupedCount struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}

func toMap(rows []groupedCount) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts
}

func (r *repository) StatusCounts(ctx context.Context) (map[string]int64, error) {
	var rows []groupedCount
	err := r.db.WithContext(ctx).
		Model(&memberModel.Member{}).
		Select("status AS key, COUNT(member_id) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("StatusCounts failed", "error", err)
		return nil, err
	}
	return toMap(rows), nil
}

func (r *repository) ActiveTypeCounts(ctx context.Context) (map[string]int64, error) {
	var rows []groupedCount
	err := r.db.WithContext(ctx).
		Model(&memberModel.Member{}).
		Select("member_type AS key, COUNT(member_id) AS count").
		Where("status = ?", memberModel.StatusActive).
		Group("member_type").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("ActiveTypeCounts failed", "error", err)
		return nil, err
	}
	return toMap(rows), nil
}

func (r *repository) ActiveTypeCountsOverlapping(
	ctx context.Context,
	start, end time.Time,
) (map[string]int64, error) {
	var rows []groupedCount
	err := r.db.WithContext(ctx).
		Model(&memberModel.Member{}).
		Select("member_type AS key, COUNT(member_id) AS count").
		Where("status = ? AND start_date <= ? AND end_date >= ?", memberModel.StatusActive, end, start).
		Group("member_type").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("ActiveTypeCountsOverlapping failed", "error", err)
		return nil, err
	}
	return toMap(rows), nil
}
