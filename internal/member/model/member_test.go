package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextUniqueCode(t *testing.T) {
	t.Run("first code for type", func(t *testing.T) {
		assert.Equal(t, "STU-0001", NextUniqueCode(TypeStudent, nil))
	})

	t.Run("increments past the highest suffix", func(t *testing.T) {
		codes := []string{"FCT-0001", "FCT-0003", "FCT-0002"}
		assert.Equal(t, "FCT-0004", NextUniqueCode(TypeFaculty, codes))
	})

	t.Run("never reuses a number after deletion", func(t *testing.T) {
		// 0001 and 0002 were deleted; only 0005 remains.
		codes := []string{"OTD-0005"}
		assert.Equal(t, "OTD-0006", NextUniqueCode(TypeOutsider, codes))
	})

	t.Run("ignores malformed codes", func(t *testing.T) {
		codes := []string{"STU-xyz", "STU-", "garbage", "STU-0002"}
		assert.Equal(t, "STU-0003", NextUniqueCode(TypeStudent, codes))
	})

	t.Run("unknown type falls back to MBR prefix", func(t *testing.T) {
		assert.Equal(t, "MBR-0001", NextUniqueCode("Alien", nil))
	})
}

func TestCodePrefix(t *testing.T) {
	assert.Equal(t, "STU", CodePrefix(TypeStudent))
	assert.Equal(t, "FCT", CodePrefix(TypeFaculty))
	assert.Equal(t, "OTD", CodePrefix(TypeOutsider))
	assert.Equal(t, "MBR", CodePrefix("unknown"))
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, ValidType(TypeStudent))
	assert.False(t, ValidType("Guest"))

	assert.True(t, ValidPlan(PlanAnnual))
	assert.False(t, ValidPlan("Weekly"))

	assert.True(t, ValidStatus(StatusExpired))
	assert.False(t, ValidStatus("Paused"))
}

func TestMember_View(t *testing.T) {
	age := 21
	m := Member{
		MemberID:   7,
		UniqueCode: "STU-0007",
		FirstName:  "Ana",
		LastName:   "Reyes",
		Age:        &age,
		MemberType: TypeStudent,
		GymPlan:    PlanMonthly,
		StartDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		Status:     StatusActive,
		PricePaid:  500,
	}

	view := m.View()
	assert.Equal(t, "2026-01-15", view.StartDate)
	assert.Equal(t, "2026-02-15", view.EndDate)
	assert.Equal(t, "STU-0007", view.UniqueCode)
	require.NotNil(t, view.Age)
	assert.Equal(t, 21, *view.Age)
}

func TestParseWireDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		d, err := ParseWireDate("2026-09-01", loc)
		require.NoError(t, err)
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, time.September, d.Month())
		assert.Equal(t, loc, d.Location())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseWireDate("01/09/2026", loc)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestMember_FullName(t *testing.T) {
	m := Member{FirstName: "Juan", LastName: "Dela Cruz"}
	assert.Equal(t, "Juan Dela Cruz", m.FullName())
}
