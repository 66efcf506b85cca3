// Package service provides business logic layer for the statistics module.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	memberModel "github.com/nwssu/gymadmin/internal/member/model"
	"github.com/nwssu/gymadmin/internal/statistics/model"
	"github.com/nwssu/gymadmin/internal/statistics/repository"
)

// logWindow bounds the activity feed to the last week.
const logWindow = 7 * 24 * time.Hour

// Service defines the interface for statistics business logic operations.
type Service interface {
	// MembersStatistics returns the per-member table plus revenue counters.
	MembersStatistics(ctx context.Context) (*model.MembersStatisticsResponse, error)

	// MembershipLogs returns the last week of log entries, newest first.
	MembershipLogs(ctx context.Context) ([]model.LogEntry, error)

	// Summary returns headline cards plus the registrations-per-month chart.
	Summary(ctx context.Context) (*model.SummaryResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
	loc    *time.Location
	now    func() time.Time
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger, loc *time.Location) Service {
	return &service{
		repo:   repo,
		logger: logger,
		loc:    loc,
		now:    time.Now,
	}
}

func (s *service) MembersStatistics(ctx context.Context) (*model.MembersStatisticsResponse, error) {
	s.logger.Debugw("MembersStatistics called")

	now := s.now().In(s.loc)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)

	members, err := s.repo.AllMembers(ctx)
	if err != nil {
		return nil, err
	}

	resp := &model.MembersStatisticsResponse{
		Members: make([]model.MemberRow, 0, len(members)),
	}
	resp.Stats.TotalMembers = len(members)

	for i := range members {
		m := &members[i]
		registered := m.DateRegistered.In(s.loc)

		resp.Stats.TotalRevenue += m.PricePaid
		if !registered.Before(startOfMonth) {
			resp.Stats.MonthlyRevenue += m.PricePaid
		}
		if !registered.Before(startOfDay) {
			resp.Stats.DailyRevenue += m.PricePaid
		}
		if strings.EqualFold(m.Status, memberModel.StatusActive) {
			resp.Stats.ActiveMembers++
		}

		resp.Members = append(resp.Members, model.MemberRow{
			ID:         m.MemberID,
			UniqueCode: m.UniqueCode,
			FirstName:  m.FirstName,
			LastName:   m.LastName,
			PricePaid:  m.PricePaid,
			MemberType: m.MemberType,
			GymPlan:    m.GymPlan,
			Status:     m.Status,
			CreatedAt:  registered.Format(model.TimestampFormat),
		})
	}

	s.logger.Debugw("MembersStatistics completed",
		"total_members", resp.Stats.TotalMembers,
		"total_revenue", resp.Stats.TotalRevenue,
	)
	return resp, nil
}

func (s *service) MembershipLogs(ctx context.Context) ([]model.LogEntry, error) {
	s.logger.Debugw("MembershipLogs called")

	since := s.now().In(s.loc).Add(-logWindow)
	rows, err := s.repo.RecentLogs(ctx, since)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.LogEntry{
			LogID:      row.LogID,
			MemberID:   row.MemberID,
			MemberName: row.FirstName + " " + row.LastName,
			ActionType: row.ActionType,
			ActionDate: row.ActionDate.In(s.loc).Format(model.TimestampFormat),
			Remarks:    row.Remarks,
		})
	}

	return entries, nil
}

func (s *service) Summary(ctx context.Context) (*model.SummaryResponse, error) {
	s.logger.Debugw("Summary called")

	now := s.now().In(s.loc)

	chart := model.RegistrationChart{
		Labels:    make([]string, 0, 6),
		Students:  make([]int64, 0, 6),
		Faculty:   make([]int64, 0, 6),
		Outsiders: make([]int64, 0, 6),
	}
	var studentTotal, facultyTotal, outsiderTotal int64

	for i := 5; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, s.loc)
		end := start.AddDate(0, 1, 0)

		students, err := s.repo.RegistrationsByType(ctx, memberModel.TypeStudent, start, end)
		if err != nil {
			return nil, err
		}
		faculty, err := s.repo.RegistrationsByType(ctx, memberModel.TypeFaculty, start, end)
		if err != nil {
			return nil, err
		}
		outsiders, err := s.repo.RegistrationsByType(ctx, memberModel.TypeOutsider, start, end)
		if err != nil {
			return nil, err
		}

		chart.Labels = append(chart.Labels, fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month())))
		chart.Students = append(chart.Students, students)
		chart.Faculty = append(chart.Faculty, faculty)
		chart.Outsiders = append(chart.Outsiders, outsiders)

		studentTotal += students
		facultyTotal += faculty
		outsiderTotal += outsiders
	}

	total, err := s.repo.TotalMembers(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.repo.ActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	mostActive := memberModel.TypeStudent
	mostCount := studentTotal
	if facultyTotal > mostCount {
		mostActive, mostCount = memberModel.TypeFaculty, facultyTotal
	}
	if outsiderTotal > mostCount {
		mostActive = memberModel.TypeOutsider
	}

	return &model.SummaryResponse{
		Summary: model.SummaryCards{
			Total:      total,
			Active:     active,
			MostActive: mostActive,
		},
		OverviewChart: chart,
	}, nil
}
