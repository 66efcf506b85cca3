package adminclient

import "context"

// DashboardSummary is the /admin/dashboard-summary payload.
type DashboardSummary struct {
	Summary struct {
		Total      int64  `json:"total"`
		Active     int64  `json:"active"`
		MostActive string `json:"most_active"`
	} `json:"summary"`
	OverviewChart struct {
		Labels    []string `json:"labels"`
		Students  []int64  `json:"students"`
		Faculty   []int64  `json:"faculty"`
		Outsiders []int64  `json:"outsiders"`
	} `json:"overview_chart"`
	StatusChart    ChartData `json:"status_chart"`
	StatusOverview ChartData `json:"status_overview"`
}

// ChartData is a label/value pairing for the pie charts.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// MembersStatistics is the /admin/members-statistics payload.
type MembersStatistics struct {
	Members []StatisticsRow `json:"members"`
	Stats   struct {
		TotalRevenue   float64 `json:"total_revenue"`
		MonthlyRevenue float64 `json:"monthly_revenue"`
		DailyRevenue   float64 `json:"daily_revenue"`
		TotalMembers   int     `json:"total_members"`
		ActiveMembers  int     `json:"active_members"`
	} `json:"stats"`
}

// StatisticsRow is one member line of the statistics table.
type StatisticsRow struct {
	ID         int     `json:"id"`
	UniqueCode string  `json:"unique_code"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	PricePaid  float64 `json:"price_paid"`
	MemberType string  `json:"member_type"`
	GymPlan    string  `json:"gym_plan"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

// LogEntry is one row of the recent activity feed.
type LogEntry struct {
	LogID      int    `json:"log_id"`
	MemberID   int    `json:"member_id"`
	MemberName string `json:"member_name"`
	ActionType string `json:"action_type"`
	ActionDate string `json:"action_date"`
	Remarks    string `json:"remarks"`
}

// StatisticsSummary is the /admin/statistics-summary payload.
type StatisticsSummary struct {
	Summary struct {
		Total      int64  `json:"total"`
		Active     int64  `json:"active"`
		MostActive string `json:"most_active"`
	} `json:"summary"`
	OverviewChart struct {
		Labels    []string `json:"labels"`
		Students  []int64  `json:"students"`
		Faculty   []int64  `json:"faculty"`
		Outsiders []int64  `json:"outsiders"`
	} `json:"overview_chart"`
}

// GetDashboardSummary fetches the dashboard counters and chart series.
func (c *Client) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.getJSON(ctx, "/admin/dashboard-summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetMembersStatistics fetches the revenue counters and per-member table.
func (c *Client) GetMembersStatistics(ctx context.Context) (*MembersStatistics, error) {
	var stats MembersStatistics
	if err := c.getJSON(ctx, "/admin/members-statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetMembershipLogs fetches the last week of membership activity.
func (c *Client) GetMembershipLogs(ctx context.Context) ([]LogEntry, error) {
	var entries []LogEntry
	if err := c.getJSON(ctx, "/admin/membership-logs", &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []LogEntry{}
	}
	return entries, nil
}

// GetStatisticsSummary fetches the registrations-per-month summary.
func (c *Client) GetStatisticsSummary(ctx context.Context) (*StatisticsSummary, error) {
	var summary StatisticsSummary
	if err := c.getJSON(ctx, "/admin/statistics-summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
