// Package tableview implements the member-table filter and pagination engine.
package tableview

import (
	"strings"

	"github.com/nwssu/gymadmin/pkg/adminclient"
)

// PageSize is the fixed number of rows shown per page.
const PageSize = 10

// FilterCriteria is the active set of table-filter field values. An empty
// string means no constraint on that field.
type FilterCriteria struct {
	IDSubstring string
	Type        string
	Plan        string
	Status      string
}

// Filter returns the rows matching every set criteria field, preserving the
// input order. The identifier match is a case-insensitive substring test;
// type, plan and status match exactly.
func Filter(rows []adminclient.Member, criteria FilterCriteria) []adminclient.Member {
	idNeedle := strings.ToLower(criteria.IDSubstring)

	matched := make([]adminclient.Member, 0, len(rows))
	for _, row := range rows {
		if idNeedle != "" && !strings.Contains(strings.ToLower(row.UniqueCode), idNeedle) {
			continue
		}
		if criteria.Type != "" && row.MemberType != criteria.Type {
			continue
		}
		if criteria.Plan != "" && row.GymPlan != criteria.Plan {
			continue
		}
		if criteria.Status != "" && row.Status != criteria.Status {
			continue
		}
		matched = append(matched, row)
	}
	return matched
}

// Page is the outcome of paginating a filtered row set.
type Page struct {
	// VisibleRows is the slice of rows shown on the current page.
	VisibleRows []adminclient.Member
	// TotalPages is ceil(len(filtered)/PageSize); zero only when the
	// filtered set is empty.
	TotalPages int
	// Indicators lists the 1-based page numbers to render as controls,
	// at least one even for an empty set.
	Indicators []int
	// Current is the 1-based page the slice was taken from.
	Current int
	// PrevDisabled and NextDisabled give the nav control states.
	PrevDisabled bool
	NextDisabled bool
}

// Paginate slices the filtered rows for the given 1-based page. The slice
// bounds are clamped to the row set, and an empty set still renders one
// page indicator with both nav controls disabled.
func Paginate(filtered []adminclient.Member, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	indicatorCount := totalPages
	if indicatorCount < 1 {
		indicatorCount = 1
	}
	indicators := make([]int, indicatorCount)
	for i := range indicators {
		indicators[i] = i + 1
	}

	return Page{
		VisibleRows:  filtered[start:end],
		TotalPages:   totalPages,
		Indicators:   indicators,
		Current:      page,
		PrevDisabled: page == 1,
		NextDisabled: page == totalPages || totalPages == 0,
	}
}

// State holds the filter criteria and pagination cursor for one table.
type State struct {
	rows     []adminclient.Member
	criteria FilterCriteria
	page     int
	pageSize int
}

// NewState creates a table state over the given rows, on page 1 with no
// filters applied.
func NewState(rows []adminclient.Member) *State {
	return &State{
		rows:     rows,
		page:     1,
		pageSize: PageSize,
	}
}

// SetRows replaces the backing row set, keeping the criteria but clamping
// the cursor to the new filtered extent.
func (s *State) SetRows(rows []adminclient.Member) {
	s.rows = rows
	s.clampPage()
}

// SetCriteria replaces the filter criteria and resets to page 1.
func (s *State) SetCriteria(criteria FilterCriteria) {
	s.criteria = criteria
	s.page = 1
}

// Criteria returns the active filter criteria.
func (s *State) Criteria() FilterCriteria {
	return s.criteria
}

// GoTo moves to the given 1-based page, clamped to the filtered extent.
func (s *State) GoTo(page int) {
	s.page = page
	s.clampPage()
}

// Next advances one page unless already on the last one.
func (s *State) Next() {
	s.GoTo(s.page + 1)
}

// Prev steps back one page unless already on the first one.
func (s *State) Prev() {
	s.GoTo(s.page - 1)
}

// CurrentPage returns the 1-based cursor position.
func (s *State) CurrentPage() int {
	return s.page
}

// Render computes the page view for the current criteria and cursor.
func (s *State) Render() Page {
	return Paginate(Filter(s.rows, s.criteria), s.pageSize, s.page)
}

func (s *State) clampPage() {
	totalPages := (len(Filter(s.rows, s.criteria)) + s.pageSize - 1) / s.pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if s.page > totalPages {
		s.page = totalPages
	}
	if s.page < 1 {
		s.page = 1
	}
}
