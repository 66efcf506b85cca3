package model

import "time"

// MemberView is the wire representation of a member.
// Dates are rendered as YYYY-MM-DD strings, matching the admin endpoints.
type MemberView struct {
	MemberID      int     `json:"member_id"`
	UniqueCode    string  `json:"unique_code"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Age           *int    `json:"age"`
	Gender        string  `json:"gender"`
	MemberType    string  `json:"member_type"`
	StudentNumber *string `json:"student_number,omitempty"`
	GymPlan       string  `json:"gym_plan"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contact_number"`
	Address       string  `json:"address"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	PricePaid     float64 `json:"price_paid"`
}

// View converts a member entity to its wire representation.
func (m *Member) View() MemberView {
	return MemberView{
		MemberID:      m.MemberID,
		UniqueCode:    m.UniqueCode,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Age:           m.Age,
		Gender:        m.Gender,
		MemberType:    m.MemberType,
		StudentNumber: m.StudentNumber,
		GymPlan:       m.GymPlan,
		Email:         m.Email,
		ContactNumber: m.ContactNumber,
		Address:       m.Address,
		StartDate:     m.StartDate.Format(DateFormat),
		EndDate:       m.EndDate.Format(DateFormat),
		Status:        m.Status,
		PricePaid:     m.PricePaid,
	}
}

// ListResponse represents the members listing payload.
type ListResponse struct {
	Members []MemberView `json:"members"`
}

// AddMemberRequest carries the registration form fields.
// Bound from a multipart form submission.
type AddMemberRequest struct {
	FirstName     string `form:"first_name"`
	LastName      string `form:"last_name"`
	Age           *int   `form:"age"`
	Gender        string `form:"gender"`
	MemberType    string `form:"member_type"`
	StudentNumber string `form:"student_number"`
	GymPlan       string `form:"gym_plan"`
	Email         string `form:"email"`
	ContactNumber string `form:"contact_number"`
	Address       string `form:"address"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
}

// UpdateMemberRequest carries the editable field set as a JSON body.
// Nil fields are left unchanged. A member type change reissues the
// unique code under the new prefix.
type UpdateMemberRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Age           *int    `json:"age"`
	Gender        *string `json:"gender"`
	MemberType    *string `json:"member_type"`
	StudentNumber *string `json:"student_number"`
	GymPlan       *string `json:"gym_plan"`
	Email         *string `json:"email"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Status        *string `json:"status"`
}

// MutationResponse is the success-flag envelope shared by the mutating
// member endpoints.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CreateResult is what the service returns after a successful registration.
type CreateResult struct {
	Member  Member
	Message string
}

// ParseWireDate parses a YYYY-MM-DD wire date in the given location.
func ParseWireDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
