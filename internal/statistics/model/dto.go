// Package model defines response types for the statistics module.
package model

// TimestampFormat renders registration and log timestamps on the wire.
const TimestampFormat = "2006-01-02 15:04:05"

// MemberRow is the per-member line of the statistics table.
type MemberRow struct {
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

// RevenueStats carries the revenue and membership counters.
type RevenueStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	DailyRevenue   float64 `json:"daily_revenue"`
	TotalMembers   int     `json:"total_members"`
	ActiveMembers  int     `json:"active_members"`
}

// MembersStatisticsResponse is the /admin/members-statistics payload.
type MembersStatisticsResponse struct {
	Members []MemberRow  `json:"members"`
	Stats   RevenueStats `json:"stats"`
}

// LogEntry is one row of the recent membership activity feed.
type LogEntry struct {
	LogID      int    `json:"log_id"`
	MemberID   int    `json:"member_id"`
	MemberName string `json:"member_name"`
	ActionType string `json:"action_type"`
	ActionDate string `json:"action_date"`
	Remarks    string `json:"remarks"`
}

// RegistrationChart is the registrations-per-month series keyed by
// YYYY-MM labels.
type RegistrationChart struct {
	Labels    []string `json:"labels"`
	Students  []int64  `json:"students"`
	Faculty   []int64  `json:"faculty"`
	Outsiders []int64  `json:"outsiders"`
}

// SummaryCards carries the headline counters of the statistics page.
type SummaryCards struct {
	Total      int64  `json:"total"`
	Active     int64  `json:"active"`
	MostActive string `json:"most_active"`
}

// SummaryResponse is the /admin/statistics-summary payload.
type SummaryResponse struct {
	Summary       SummaryCards      `json:"summary"`
	OverviewChart RegistrationChart `json:"overview_chart"`
}
