// Package service provides business logic layer for the member module.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/member/model"
	"github.com/nwssu/gymadmin/internal/member/repository"
	pricingRepo "github.com/nwssu/gymadmin/internal/pricing/repository"
)

// Service defines the interface for member business logic operations.
type Service interface {
	// List returns every member after running the auto-expiry pass.
	List(ctx context.Context) (*model.ListResponse, error)

	// Get returns one member's full detail.
	Get(ctx context.Context, memberID int) (*model.MemberView, error)

	// Create registers a new member, resolving the paid price from the
	// current rate card.
	Create(ctx context.Context, req *model.AddMemberRequest) (*model.CreateResult, error)

	// Update applies a partial edit to an existing member.
	Update(ctx context.Context, memberID int, req *model.UpdateMemberRequest) (*model.Member, error)

	// Delete removes a member.
	Delete(ctx context.Context, memberID int) error
}

type service struct {
	repo    repository.Repository
	pricing pricingRepo.Repository
	logger  *zap.SugaredLogger
	loc     *time.Location
	now     func() time.Time
}

// New creates a new member service instance.
func New(
	repo repository.Repository,
	pricing pricingRepo.Repository,
	logger *zap.SugaredLogger,
	loc *time.Location,
) Service {
	return &service{
		repo:    repo,
		pricing: pricing,
		logger:  logger,
		loc:     loc,
		now:     time.Now,
	}
}

// today returns midnight of the current day in the gym's timezone.
func (s *service) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

// expireOverdue flips past-due memberships to Expired and logs each change.
// Failures are logged and swallowed so a read never fails on bookkeeping.
func (s *service) expireOverdue(ctx context.Context) {
	expired, err := s.repo.ExpireOverdue(ctx, s.today())
	if err != nil {
		s.logger.Errorw("expireOverdue failed", "error", err)
		return
	}

	for i := range expired {
		m := &expired[i]
		logErr := s.repo.AddLog(ctx, &model.MembershipLog{
			MemberID:   m.MemberID,
			ActionType: model.ActionStatusUpdate,
			Remarks: fmt.Sprintf("Automatically marked as expired (End date: %s).",
				m.EndDate.Format(model.DateFormat)),
		})
		if logErr != nil {
			s.logger.Errorw("expireOverdue log failed", "member_id", m.MemberID, "error", logErr)
		}
	}
}

func (s *service) List(ctx context.Context) (*model.ListResponse, error) {
	s.logger.Debugw("List called")

	s.expireOverdue(ctx)

	members, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("List failed", "error", err)
		return nil, err
	}

	views := make([]model.MemberView, 0, len(members))
	for i := range members {
		views = append(views, members[i].View())
	}

	s.logger.Debugw("List completed", "count", len(views))
	return &model.ListResponse{Members: views}, nil
}

func (s *service) Get(ctx context.Context, memberID int) (*model.MemberView, error) {
	s.logger.Debugw("Get called", "member_id", memberID)

	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	view := member.View()
	return &view, nil
}

func (s *service) Create(ctx context.Context, req *model.AddMemberRequest) (*model.CreateResult, error) {
	s.logger.Debugw("Create called", "member_type", req.MemberType, "gym_plan", req.GymPlan)

	if req.FirstName == "" || req.LastName == "" || req.MemberType == "" ||
		req.GymPlan == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, model.ErrMissingRequiredFields
	}
	if !model.ValidType(req.MemberType) {
		return nil, model.ErrInvalidMemberType
	}
	if !model.ValidPlan(req.GymPlan) {
		return nil, model.ErrInvalidGymPlan
	}

	startDate, err := model.ParseWireDate(req.StartDate, s.loc)
	if err != nil {
		return nil, err
	}
	endDate, err := model.ParseWireDate(req.EndDate, s.loc)
	if err != nil {
		return nil, err
	}
	if startDate.After(endDate) {
		return nil, model.ErrInvalidDateRange
	}

	price, err := s.pricing.CurrentPrice(ctx, req.MemberType, req.GymPlan)
	if err != nil {
		s.logger.Errorw("Create price lookup failed", "error", err)
		return nil, err
	}

	codes, err := s.repo.CodesWithPrefix(ctx, model.CodePrefix(req.MemberType))
	if err != nil {
		s.logger.Errorw("Create code lookup failed", "error", err)
		return nil, err
	}

	member := model.Member{
		UniqueCode:    model.NextUniqueCode(req.MemberType, codes),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		Gender:        req.Gender,
		MemberType:    req.MemberType,
		GymPlan:       req.GymPlan,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        model.StatusActive,
		PricePaid:     price,
	}
	// Student numbers only apply to students.
	if req.MemberType == model.TypeStudent && req.StudentNumber != "" {
		studentNumber := req.StudentNumber
		member.StudentNumber = &studentNumber
	}

	if err := s.repo.Create(ctx, &member); err != nil {
		s.logger.Errorw("Create failed", "error", err)
		return nil, err
	}

	logErr := s.repo.AddLog(ctx, &model.MembershipLog{
		MemberID:   member.MemberID,
		ActionType: model.ActionRegistered,
		Remarks:    fmt.Sprintf("Member %s registered successfully.", member.FullName()),
	})
	if logErr != nil {
		s.logger.Errorw("Create log failed", "member_id", member.MemberID, "error", logErr)
	}

	s.logger.Infow("Create completed",
		"member_id", member.MemberID,
		"unique_code", member.UniqueCode,
		"price_paid", member.PricePaid,
	)
	return &model.CreateResult{
		Member:  member,
		Message: fmt.Sprintf("New member registered successfully! Paid ₱%.2f", member.PricePaid),
	}, nil
}

func (s *service) Update(ctx context.Context, memberID int, req *model.UpdateMemberRequest) (*model.Member, error) {
	s.logger.Debugw("Update called", "member_id", memberID)

	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Age != nil {
		member.Age = req.Age
	}
	if req.Gender != nil {
		member.Gender = *req.Gender
	}
	if req.MemberType != nil && *req.MemberType != member.MemberType {
		if !model.ValidType(*req.MemberType) {
			return nil, model.ErrInvalidMemberType
		}
		codes, err := s.repo.CodesWithPrefix(ctx, model.CodePrefix(*req.MemberType))
		if err != nil {
			s.logger.Errorw("Update code lookup failed", "member_id", memberID, "error", err)
			return nil, err
		}
		member.MemberType = *req.MemberType
		member.UniqueCode = model.NextUniqueCode(*req.MemberType, codes)
		if member.MemberType != model.TypeStudent {
			member.StudentNumber = nil
		}
	}
	if req.StudentNumber != nil && member.MemberType == model.TypeStudent {
		member.StudentNumber = req.StudentNumber
	}
	if req.GymPlan != nil {
		if !model.ValidPlan(*req.GymPlan) {
			return nil, model.ErrInvalidGymPlan
		}
		member.GymPlan = *req.GymPlan
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.ContactNumber != nil {
		member.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		member.Address = *req.Address
	}
	if req.StartDate != nil {
		startDate, err := model.ParseWireDate(*req.StartDate, s.loc)
		if err != nil {
			return nil, err
		}
		member.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := model.ParseWireDate(*req.EndDate, s.loc)
		if err != nil {
			return nil, err
		}
		member.EndDate = endDate
	}
	if member.StartDate.After(member.EndDate) {
		return nil, model.ErrInvalidDateRange
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return nil, model.ErrInvalidStatus
		}
		member.Status = *req.Status
	}

	if err := s.repo.Update(ctx, member); err != nil {
		s.logger.Errorw("Update failed", "member_id", memberID, "error", err)
		return nil, err
	}

	logErr := s.repo.AddLog(ctx, &model.MembershipLog{
		MemberID:   member.MemberID,
		ActionType: model.ActionUpdated,
		Remarks:    fmt.Sprintf("Updated information for %s.", member.FullName()),
	})
	if logErr != nil {
		s.logger.Errorw("Update log failed", "member_id", member.MemberID, "error", logErr)
	}

	s.logger.Infow("Update completed", "member_id", member.MemberID)
	return member, nil
}

func (s *service) Delete(ctx context.Context, memberID int) error {
	s.logger.Debugw("Delete called", "member_id", memberID)

	member, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, memberID); err != nil {
		s.logger.Errorw("Delete failed", "member_id", memberID, "error", err)
		return err
	}

	logErr := s.repo.AddLog(ctx, &model.MembershipLog{
		MemberID:   member.MemberID,
		ActionType: model.ActionDeleted,
		Remarks:    fmt.Sprintf("Deleted member %s (%s).", member.FullName(), member.UniqueCode),
	})
	if logErr != nil {
		s.logger.Errorw("Delete log failed", "member_id", member.MemberID, "error", logErr)
	}

	s.logger.Infow("Delete completed", "member_id", memberID, "unique_code", member.UniqueCode)
	return nil
}
