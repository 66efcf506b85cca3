//go:build integration
// +build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	authModel "github.com/nwssu/gymadmin/internal/auth/model"
	authRepo "github.com/nwssu/gymadmin/internal/auth/repository"
	authRouter "github.com/nwssu/gymadmin/internal/auth/router"
	dashboardRouter "github.com/nwssu/gymadmin/internal/dashboard/router"
	memberModel "github.com/nwssu/gymadmin/internal/member/model"
	memberRouter "github.com/nwssu/gymadmin/internal/member/router"
	pricingModel "github.com/nwssu/gymadmin/internal/pricing/model"
	pricingRepo "github.com/nwssu/gymadmin/internal/pricing/repository"
	statisticsRouter "github.com/nwssu/gymadmin/internal/statistics/router"
	"github.com/nwssu/gymadmin/pkg/adminclient"
)

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&memberModel.Member{},
		&memberModel.MembershipLog{},
		&pricingModel.GymPricing{},
		&pricingModel.PriceHistory{},
		&authModel.Admin{},
	))

	zlog := zap.NewNop().Sugar()
	require.NoError(t, pricingRepo.New(db, zlog).SeedDefaults(context.Background()))
	require.NoError(t, authRepo.New(db, zlog).SeedDefault(context.Background(), "admin", "admin123"))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	authRouter.RegisterRoutes(r, db, zlog)
	memberRouter.RegisterRoutes(r, db, zlog, time.UTC)
	dashboardRouter.RegisterRoutes(r, db, zlog, time.UTC)
	statisticsRouter.RegisterRoutes(r, db, zlog, time.UTC)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, db
}

func newClient(t *testing.T, server *httptest.Server) *adminclient.Client {
	t.Helper()
	return adminclient.New(server.URL, zap.NewNop().Sugar())
}

func TestMemberLifecycle(t *testing.T) {
	server, _ := newTestServer(t)
	client := newClient(t, server)
	ctx := context.Background()

	// Create picks up the seeded Student/Monthly price.
	result, err := client.Create(ctx, adminclient.CreateForm{
		FirstName:  "Ana",
		LastName:   "Reyes",
		MemberType: "Student",
		GymPlan:    "Monthly",
		StartDate:  "2026-09-01",
		EndDate:    "2026-12-01",
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "New member registered successfully! Paid ₱500.00", result.Message)

	members, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	created := members[0]
	assert.Equal(t, "STU-0001", created.UniqueCode)
	assert.Equal(t, 500.0, created.PricePaid)
	assert.Equal(t, "Active", created.Status)

	// Partial edit leaves the rest untouched.
	plan := "Annual"
	updateResult, err := client.Update(ctx, created.MemberID, adminclient.UpdateFields{GymPlan: &plan})
	require.NoError(t, err)
	require.True(t, updateResult.Success, updateResult.Error)

	fetched, err := client.Get(ctx, created.MemberID)
	require.NoError(t, err)
	assert.Equal(t, "Annual", fetched.GymPlan)
	assert.Equal(t, "Ana", fetched.FirstName)
	assert.Equal(t, "Student", fetched.MemberType)

	// Delete removes the member and its logs.
	deleteResult, err := client.Delete(ctx, created.MemberID)
	require.NoError(t, err)
	require.True(t, deleteResult.Success)

	_, err = client.Get(ctx, created.MemberID)
	assert.ErrorIs(t, err, adminclient.ErrMemberNotFound)

	members, err = client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestUniqueCodesSurviveDeletion(t *testing.T) {
	server, _ := newTestServer(t)
	client := newClient(t, server)
	ctx := context.Background()

	create := func(first string) adminclient.Member {
		result, err := client.Create(ctx, adminclient.CreateForm{
			FirstName:  first,
			LastName:   "Cruz",
			MemberType: "Outsider",
			GymPlan:    "Daily",
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-02",
		})
		require.NoError(t, err)
		require.True(t, result.Success, result.Error)

		members, err := client.List(ctx)
		require.NoError(t, err)
		return members[len(members)-1]
	}

	first := create("Ben")
	second := create("Carla")
	assert.Equal(t, "OTD-0001", first.UniqueCode)
	assert.Equal(t, "OTD-0002", second.UniqueCode)

	_, err := client.Delete(ctx, second.MemberID)
	require.NoError(t, err)

	third := create("Dina")
	assert.Equal(t, "OTD-0003", third.UniqueCode, "codes advance past deleted members")
}

func TestValidationFailuresKeepEnvelope(t *testing.T) {
	server, _ := newTestServer(t)
	client := newClient(t, server)
	ctx := context.Background()

	result, err := client.Create(ctx, adminclient.CreateForm{FirstName: "Ana"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	result, err = client.Create(ctx, adminclient.CreateForm{
		FirstName:  "Ana",
		LastName:   "Reyes",
		MemberType: "Student",
		GymPlan:    "Monthly",
		StartDate:  "2026-12-01",
		EndDate:    "2026-09-01",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestExpiryPassFlipsOverdueMembers(t *testing.T) {
	server, db := newTestServer(t)
	client := newClient(t, server)
	ctx := context.Background()

	overdue := memberModel.Member{
		UniqueCode: "STU-0001",
		FirstName:  "Old",
		LastName:   "Timer",
		MemberType: "Student",
		GymPlan:    "Monthly",
		StartDate:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:     "Active",
	}
	require.NoError(t, db.Create(&overdue).Error)

	members, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Expired", members[0].Status, "listing runs the expiry pass")

	var logCount int64
	require.NoError(t, db.Model(&memberModel.MembershipLog{}).
		Where("action_type = ?", memberModel.ActionStatusUpdate).
		Count(&logCount).Error)
	assert.Equal(t, int64(1), logCount)
}

func TestDashboardAndStatistics(t *testing.T) {
	server, _ := newTestServer(t)
	client := newClient(t, server)
	ctx := context.Background()

	for _, seed := range []struct{ first, memberType, plan string }{
		{"Ana", "Student", "Monthly"},
		{"Ben", "Faculty", "Monthly"},
		{"Carla", "Outsider", "Daily"},
	} {
		result, err := client.Create(ctx, adminclient.CreateForm{
			FirstName:  seed.first,
			LastName:   "Test",
			MemberType: seed.memberType,
			GymPlan:    seed.plan,
			StartDate:  time.Now().UTC().Format("2006-01-02"),
			EndDate:    time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02"),
		})
		require.NoError(t, err)
		require.True(t, result.Success, result.Error)
	}

	summary, err := client.GetDashboardSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Summary.Total)
	assert.Equal(t, int64(3), summary.Summary.Active)
	assert.Len(t, summary.OverviewChart.Labels, 6)

	stats, err := client.GetMembersStatistics(ctx)
	require.NoError(t, err)
	// Student 500 + Faculty 500 + Outsider 60 from the seeded rate card.
	assert.Equal(t, 1060.0, stats.Stats.TotalRevenue)
	assert.Equal(t, 3, stats.Stats.TotalMembers)

	logs, err := client.GetMembershipLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 3, "each registration is logged")
}

func TestLogin(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()

	httpClient := server.Client()

	login := func(body string) int {
		req, err := http.NewRequestWithContext(ctx, "POST", server.URL+"/admin/login",
			strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, 200, login(`{"username":"admin","password":"admin123"}`))
	assert.Equal(t, 401, login(`{"username":"admin","password":"wrong"}`))
}
