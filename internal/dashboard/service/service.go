// Package service provides business logic layer for the dashboard module.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/dashboard/model"
	"github.com/nwssu/gymadmin/internal/dashboard/repository"
	memberModel "github.com/nwssu/gymadmin/internal/member/model"
	memberRepo "github.com/nwssu/gymadmin/internal/member/repository"
)

// cacheTTL keeps the dashboard cheap under polling without going stale.
const cacheTTL = 10 * time.Second

// Service defines the interface for dashboard business logic operations.
type Service interface {
	// Summary builds the dashboard-summary payload, served from a short
	// cache when fresh.
	Summary(ctx context.Context) (*model.SummaryResponse, error)
}

type service struct {
	repo    repository.Repository
	members memberRepo.Repository
	logger  *zap.SugaredLogger
	loc     *time.Location
	now     func() time.Time

	mu       sync.Mutex
	cached   *model.SummaryResponse
	cachedAt time.Time
}

// New creates a new dashboard service instance.
func New(
	repo repository.Repository,
	members memberRepo.Repository,
	logger *zap.SugaredLogger,
	loc *time.Location,
) Service {
	return &service{
		repo:    repo,
		members: members,
		logger:  logger,
		loc:     loc,
		now:     time.Now,
	}
}

// expireOverdue flips past-due memberships before the counts are taken, so
// the dashboard never reports an overdue member as active.
func (s *service) expireOverdue(ctx context.Context) {
	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	expired, err := s.members.ExpireOverdue(ctx, today)
	if err != nil {
		s.logger.Errorw("expireOverdue failed", "error", err)
		return
	}
	for i := range expired {
		m := &expired[i]
		logErr := s.members.AddLog(ctx, &memberModel.MembershipLog{
			MemberID:   m.MemberID,
			ActionType: memberModel.ActionStatusUpdate,
			Remarks: fmt.Sprintf("Automatically marked as expired (End date: %s).",
				m.EndDate.Format(memberModel.DateFormat)),
		})
		if logErr != nil {
			s.logger.Errorw("expireOverdue log failed", "member_id", m.MemberID, "error", logErr)
		}
	}
}

func (s *service) Summary(ctx context.Context) (*model.SummaryResponse, error) {
	s.expireOverdue(ctx)

	s.mu.Lock()
	if s.cached != nil && s.now().Sub(s.cachedAt) < cacheTTL {
		cached := s.cached
		s.mu.Unlock()
		s.logger.Debugw("Summary served from cache")
		return cached, nil
	}
	s.mu.Unlock()

	resp, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = resp
	s.cachedAt = s.now()
	s.mu.Unlock()

	return resp, nil
}

func (s *service) build(ctx context.Context) (*model.SummaryResponse, error) {
	statusCounts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	typeCounts, err := s.repo.ActiveTypeCounts(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range statusCounts {
		total += count
	}

	studentActive := typeCounts[memberModel.TypeStudent]
	facultyActive := typeCounts[memberModel.TypeFaculty]
	outsiderActive := typeCounts[memberModel.TypeOutsider]

	mostActive := memberModel.TypeStudent
	mostCount := studentActive
	if facultyActive > mostCount {
		mostActive, mostCount = memberModel.TypeFaculty, facultyActive
	}
	if outsiderActive > mostCount {
		mostActive = memberModel.TypeOutsider
	}

	overview, err := s.buildOverview(ctx)
	if err != nil {
		return nil, err
	}

	resp := &model.SummaryResponse{
		Summary: model.Summary{
			Total:      total,
			Active:     statusCounts[memberModel.StatusActive],
			MostActive: mostActive,
		},
		OverviewChart: *overview,
		StatusChart: model.Chart{
			Labels: []string{memberModel.TypeStudent, memberModel.TypeFaculty, memberModel.TypeOutsider},
			Values: []int64{studentActive, facultyActive, outsiderActive},
		},
		StatusOverview: model.Chart{
			Labels: []string{memberModel.StatusActive, memberModel.StatusInactive, memberModel.StatusExpired},
			Values: []int64{
				statusCounts[memberModel.StatusActive],
				statusCounts[memberModel.StatusInactive],
				statusCounts[memberModel.StatusExpired],
			},
		},
	}

	s.logger.Debugw("Summary built", "total", total, "active", resp.Summary.Active)
	return resp, nil
}

// buildOverview counts active memberships overlapping each of the past six
// calendar months, current month included.
func (s *service) buildOverview(ctx context.Context) (*model.OverviewChart, error) {
	now := s.now().In(s.loc)

	overview := &model.OverviewChart{
		Labels:    make([]string, 0, 6),
		Students:  make([]int64, 0, 6),
		Faculty:   make([]int64, 0, 6),
		Outsiders: make([]int64, 0, 6),
	}

	for i := 5; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, s.loc)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

		counts, err := s.repo.ActiveTypeCountsOverlapping(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		overview.Labels = append(overview.Labels, monthStart.Format("Jan"))
		overview.Students = append(overview.Students, counts[memberModel.TypeStudent])
		overview.Faculty = append(overview.Faculty, counts[memberModel.TypeFaculty])
		overview.Outsiders = append(overview.Outsiders, counts[memberModel.TypeOutsider])
	}

	return overview, nil
}
