package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/member/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]model.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Member), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, memberID int) (*model.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, member *model.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, member *model.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, memberID int) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *mockRepository) CodesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRepository) ExpireOverdue(ctx context.Context, today time.Time) ([]model.Member, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Member), args.Error(1)
}

func (m *mockRepository) AddLog(ctx context.Context, log *model.MembershipLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

type mockPricing struct {
	mock.Mock
}

func (m *mockPricing) CurrentPrice(ctx context.Context, memberType, planType string) (float64, error) {
	args := m.Called(ctx, memberType, planType)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockPricing) SetPrice(ctx context.Context, memberType, planType string, price float64) error {
	args := m.Called(ctx, memberType, planType, price)
	return args.Error(0)
}

func (m *mockPricing) SeedDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newService(repo *mockRepository, pricing *mockPricing) Service {
	return New(repo, pricing, zap.NewNop().Sugar(), time.UTC)
}

func validAddRequest() *model.AddMemberRequest {
	return &model.AddMemberRequest{
		FirstName:  "Ana",
		LastName:   "Reyes",
		MemberType: model.TypeStudent,
		GymPlan:    model.PlanMonthly,
		StartDate:  "2026-09-01",
		EndDate:    "2026-10-01",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success resolves price and code", func(t *testing.T) {
		repo := new(mockRepository)
		pricing := new(mockPricing)
		svc := newService(repo, pricing)

		pricing.On("CurrentPrice", ctx, model.TypeStudent, model.PlanMonthly).Return(500.0, nil)
		repo.On("CodesWithPrefix", ctx, "STU").Return([]string{"STU-0002"}, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*model.Member")).Return(nil)
		repo.On("AddLog", ctx, mock.AnythingOfType("*model.MembershipLog")).Return(nil)

		result, err := svc.Create(ctx, validAddRequest())

		require.NoError(t, err)
		assert.Equal(t, "STU-0003", result.Member.UniqueCode)
		assert.Equal(t, 500.0, result.Member.PricePaid)
		assert.Equal(t, model.StatusActive, result.Member.Status)
		assert.Equal(t, "New member registered successfully! Paid ₱500.00", result.Message)
		repo.AssertExpectations(t)
		pricing.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		repo := new(mockRepository)
		pricing := new(mockPricing)
		svc := newService(repo, pricing)

		req := validAddRequest()
		req.FirstName = ""

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, model.ErrMissingRequiredFields)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("invalid member type", func(t *testing.T) {
		svc := newService(new(mockRepository), new(mockPricing))

		req := validAddRequest()
		req.MemberType = "Guest"

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, model.ErrInvalidMemberType)
	})

	t.Run("start date after end date", func(t *testing.T) {
		svc := newService(new(mockRepository), new(mockPricing))

		req := validAddRequest()
		req.StartDate = "2026-10-02"

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, model.ErrInvalidDateRange)
	})

	t.Run("unpriced combination registers at zero", func(t *testing.T) {
		repo := new(mockRepository)
		pricing := new(mockPricing)
		svc := newService(repo, pricing)

		req := validAddRequest()
		req.GymPlan = model.PlanAnnual

		pricing.On("CurrentPrice", ctx, model.TypeStudent, model.PlanAnnual).Return(0.0, nil)
		repo.On("CodesWithPrefix", ctx, "STU").Return([]string{}, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*model.Member")).Return(nil)
		repo.On("AddLog", ctx, mock.AnythingOfType("*model.MembershipLog")).Return(nil)

		result, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "New member registered successfully! Paid ₱0.00", result.Message)
	})

	t.Run("student number kept for students only", func(t *testing.T) {
		repo := new(mockRepository)
		pricing := new(mockPricing)
		svc := newService(repo, pricing)

		req := validAddRequest()
		req.MemberType = model.TypeFaculty
		req.StudentNumber = "2020-1234"

		pricing.On("CurrentPrice", ctx, model.TypeFaculty, model.PlanMonthly).Return(500.0, nil)
		repo.On("CodesWithPrefix", ctx, "FCT").Return([]string{}, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*model.Member")).Return(nil)
		repo.On("AddLog", ctx, mock.AnythingOfType("*model.MembershipLog")).Return(nil)

		result, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Nil(t, result.Member.StudentNumber)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	studentNumber := "2023-00123"
	existing := func() *model.Member {
		return &model.Member{
			MemberID:      1,
			UniqueCode:    "STU-0001",
			FirstName:     "Ana",
			LastName:      "Reyes",
			StudentNumber: &studentNumber,
			MemberType:    model.TypeStudent,
			GymPlan:       model.PlanMonthly,
			StartDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			Status:        model.StatusActive,
		}
	}

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 1).Return(existing(), nil)
		repo.On("Update", ctx, mock.AnythingOfType("*model.Member")).Return(nil)
		repo.On("AddLog", ctx, mock.AnythingOfType("*model.MembershipLog")).Return(nil)

		plan := model.PlanAnnual
		updated, err := svc.Update(ctx, 1, &model.UpdateMemberRequest{GymPlan: &plan})

		require.NoError(t, err)
		assert.Equal(t, model.PlanAnnual, updated.GymPlan)
		assert.Equal(t, "Ana", updated.FirstName)
		assert.Equal(t, model.TypeStudent, updated.MemberType, "absent type field leaves type alone")
		repo.AssertExpectations(t)
	})

	t.Run("type change reissues unique code", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 1).Return(existing(), nil)
		repo.On("CodesWithPrefix", ctx, "OTD-").Return([]string{"OTD-0004"}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*model.Member")).Return(nil)
		repo.On("AddLog", ctx, mock.AnythingOfType("*model.MembershipLog")).Return(nil)

		memberType := model.TypeOutsider
		updated, err := svc.Update(ctx, 1, &model.UpdateMemberRequest{MemberType: &memberType})

		require.NoError(t, err)
		assert.Equal(t, model.TypeOutsider, updated.MemberType)
		assert.Equal(t, "OTD-0005", updated.UniqueCode)
		assert.Nil(t, updated.StudentNumber, "student number cleared for non-students")
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 99).Return(nil, model.ErrMemberNotFound)

		_, err := svc.Update(ctx, 99, &model.UpdateMemberRequest{})
		assert.ErrorIs(t, err, model.ErrMemberNotFound)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 1).Return(existing(), nil)

		badStart := "2026-12-01"
		_, err := svc.Update(ctx, 1, &model.UpdateMemberRequest{StartDate: &badStart})
		assert.ErrorIs(t, err, model.ErrInvalidDateRange)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 1).Return(existing(), nil)

		status := "Paused"
		_, err := svc.Update(ctx, 1, &model.UpdateMemberRequest{Status: &status})
		assert.ErrorIs(t, err, model.ErrInvalidStatus)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 1).Return(&model.Member{MemberID: 1, UniqueCode: "STU-0001"}, nil)
		repo.On("Delete", ctx, 1).Return(nil)
		repo.On("AddLog", ctx, mock.MatchedBy(func(log *model.MembershipLog) bool {
			return log.ActionType == model.ActionDeleted
		})).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 1))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 99).Return(nil, model.ErrMemberNotFound)

		err := svc.Delete(ctx, 99)
		assert.ErrorIs(t, err, model.ErrMemberNotFound)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("runs expiry pass then lists", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		overdue := model.Member{
			MemberID:   2,
			UniqueCode: "STU-0002",
			Status:     model.StatusExpired,
			EndDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		repo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).Return([]model.Member{overdue}, nil)
		repo.On("AddLog", ctx, mock.MatchedBy(func(log *model.MembershipLog) bool {
			return log.ActionType == model.ActionStatusUpdate && log.MemberID == 2
		})).Return(nil)
		repo.On("List", ctx).Return([]model.Member{overdue}, nil)

		resp, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, resp.Members, 1)
		assert.Equal(t, model.StatusExpired, resp.Members[0].Status)
		repo.AssertExpectations(t)
	})

	t.Run("expiry failure does not block the listing", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("db down"))
		repo.On("List", ctx).Return([]model.Member{}, nil)

		resp, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, resp.Members)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns wire view", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 1).Return(&model.Member{
			MemberID:   1,
			UniqueCode: "STU-0001",
			StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		view, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "2026-09-01", view.StartDate)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newService(repo, new(mockPricing))

		repo.On("GetByID", ctx, 404).Return(nil, model.ErrMemberNotFound)

		_, err := svc.Get(ctx, 404)
		assert.ErrorIs(t, err, model.ErrMemberNotFound)
	})
}
