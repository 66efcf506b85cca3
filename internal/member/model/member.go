// Package model provides entities and wire types for the member module.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Member type enum values.
const (
	TypeStudent  = "Student"
	TypeFaculty  = "Faculty"
	TypeOutsider = "Outsider"
)

// Gym plan enum values.
const (
	PlanDaily   = "Daily"
	PlanMonthly = "Monthly"
	PlanAnnual  = "Annual"
)

// Membership status enum values.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusExpired  = "Expired"
)

// DateFormat is the wire format for membership dates.
const DateFormat = "2006-01-02"

// Member represents a gym membership record.
// Matches the members table schema.
type Member struct {
	MemberID       int       `gorm:"primaryKey;column:member_id;autoIncrement"`
	UniqueCode     string    `gorm:"column:unique_code;type:varchar(10);uniqueIndex;not null"`
	FirstName      string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName       string    `gorm:"column:last_name;type:varchar(100);not null"`
	Age            *int      `gorm:"column:age"`
	Gender         string    `gorm:"column:gender;type:varchar(10)"`
	MemberType     string    `gorm:"column:member_type;type:varchar(20);not null;index:idx_members_type"`
	StudentNumber  *string   `gorm:"column:student_number;type:varchar(20)"`
	GymPlan        string    `gorm:"column:gym_plan;type:varchar(20);not null"`
	Email          string    `gorm:"column:email;type:varchar(150)"`
	ContactNumber  string    `gorm:"column:contact_number;type:varchar(20)"`
	Address        string    `gorm:"column:address;type:varchar(255)"`
	StartDate      time.Time `gorm:"column:start_date;not null"`
	EndDate        time.Time `gorm:"column:end_date;not null"`
	Status         string    `gorm:"column:status;type:varchar(20);not null;default:Active;index:idx_members_status"`
	DateRegistered time.Time `gorm:"column:date_registered;autoCreateTime"`
	PricePaid      float64   `gorm:"column:price_paid"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "members"
}

// FullName returns the member's display name.
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// codePrefixes maps member types to unique-code prefixes.
var codePrefixes = map[string]string{
	TypeStudent:  "STU",
	TypeFaculty:  "FCT",
	TypeOutsider: "OTD",
}

// CodePrefix returns the unique-code prefix for a member type,
// falling back to MBR for unknown types.
func CodePrefix(memberType string) string {
	if prefix, ok := codePrefixes[memberType]; ok {
		return prefix
	}
	return "MBR"
}

// NextUniqueCode computes the next code for a member type given every code
// already issued with the same prefix. The sequence never reuses a number
// even after deletions: the result is always one past the highest suffix seen.
func NextUniqueCode(memberType string, existingCodes []string) string {
	prefix := CodePrefix(memberType)

	maxNum := 0
	for _, code := range existingCodes {
		rest, ok := strings.CutPrefix(code, prefix+"-")
		if !ok {
			continue
		}
		num, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if num > maxNum {
			maxNum = num
		}
	}

	return fmt.Sprintf("%s-%04d", prefix, maxNum+1)
}

// ValidType reports whether memberType is a known member type.
func ValidType(memberType string) bool {
	_, ok := codePrefixes[memberType]
	return ok
}

// ValidPlan reports whether plan is a known gym plan.
func ValidPlan(plan string) bool {
	return plan == PlanDaily || plan == PlanMonthly || plan == PlanAnnual
}

// ValidStatus reports whether status is a known membership status.
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive || status == StatusExpired
}

// MembershipLog records one action taken on a member.
type MembershipLog struct {
	LogID      int       `gorm:"primaryKey;column:log_id;autoIncrement"`
	MemberID   int       `gorm:"column:member_id;not null;index:idx_logs_member"`
	ActionType string    `gorm:"column:action_type;type:varchar(50);not null"`
	ActionDate time.Time `gorm:"column:action_date;autoCreateTime;index:idx_logs_date"`
	Remarks    string    `gorm:"column:remarks;type:varchar(255)"`
}

// TableName specifies the table name for GORM.
func (MembershipLog) TableName() string {
	return "membership_logs"
}

// Log action types.
const (
	ActionRegistered   = "Registered"
	ActionUpdated      = "Updated"
	ActionDeleted      = "Deleted"
	ActionStatusUpdate = "Status Update"
)
