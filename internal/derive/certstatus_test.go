package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Active(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusActive, Status("2027-06-01", now))
}

func TestStatus_ExpiringSoon(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusExpiringSoon, Status("2026-02-01", now))
}

func TestStatus_Expired(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusExpired, Status("2024-12-31", now))
}

func TestStatus_ExactWindowBoundary(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	// Exactly 30 days out counts as expiring
	assert.Equal(t, StatusExpiringSoon, Status("2026-02-14", now))
}

func TestStatus_NoExpiryDate(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusActive, Status("", now))
}

func TestStatus_UnparseableDate(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusActive, Status("someday", now))
}

func TestStatus_YearMonthLayout(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusExpired, Status("2025-06", now))
}
