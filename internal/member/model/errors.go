package model

import "errors"

var (
	// ErrMemberNotFound indicates that the requested member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMissingRequiredFields indicates that a required registration field is empty.
	ErrMissingRequiredFields = errors.New("please fill in all required fields")
	// ErrInvalidDate indicates a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
	// ErrInvalidDateRange indicates a start date after the end date.
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	// ErrInvalidMemberType indicates an unknown member type.
	ErrInvalidMemberType = errors.New("invalid member type")
	// ErrInvalidGymPlan indicates an unknown gym plan.
	ErrInvalidGymPlan = errors.New("invalid gym plan")
	// ErrInvalidStatus indicates an unknown membership status.
	ErrInvalidStatus = errors.New("invalid membership status")
)
