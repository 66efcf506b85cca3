// Package model defines response types for the dashboard module.
package model

// Summary carries the headline numbers of the admin dashboard.
type Summary struct {
	Total      int64  `json:"total"`
	Active     int64  `json:"active"`
	MostActive string `json:"most_active"`
}

// OverviewChart is the six-month active-members-by-type series.
type OverviewChart struct {
	Labels    []string `json:"labels"`
	Students  []int64  `json:"students"`
	Faculty   []int64  `json:"faculty"`
	Outsiders []int64  `json:"outsiders"`
}

// Chart is a generic label/value pairing used by the pie charts.
type Chart struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// SummaryResponse is the /admin/dashboard-summary payload.
type SummaryResponse struct {
	Summary        Summary       `json:"summary"`
	OverviewChart  OverviewChart `json:"overview_chart"`
	StatusChart    Chart         `json:"status_chart"`
	StatusOverview Chart         `json:"status_overview"`
}
