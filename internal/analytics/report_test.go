package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvedIn(category *uuid.UUID, name string, created time.Time, hours float64) *models.Complaint {
	c := complaintWithoutLocation(models.StatusResolved)
	c.CategoryID = category
	c.CategoryName = name
	c.CreatedAt = created
	resolved := created.Add(time.Duration(hours * float64(time.Hour)))
	c.ResolvedAt = &resolved
	return c
}

func TestCategoryResolutionTimes(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	lights := uuid.New()
	water := uuid.New()

	complaints := []*models.Complaint{
		resolvedIn(&lights, "Alumbrado", base, 10),
		resolvedIn(&lights, "Alumbrado", base, 20),
		resolvedIn(&water, "Agua", base, 48),
		resolvedIn(nil, "", base, 5),
		complaintWithoutLocation(models.StatusNew),
	}

	result := CategoryResolutionTimes(complaints)

	require.Len(t, result, 3)
	assert.Equal(t, "Agua", result[0].CategoryName)
	assert.Equal(t, 48.0, result[0].AvgResolutionHours)

	assert.Equal(t, "Alumbrado", result[1].CategoryName)
	assert.Equal(t, 2, result[1].ResolvedCount)
	assert.Equal(t, 15.0, result[1].AvgResolutionHours)
	assert.Equal(t, 20.0, result[1].MaxResolutionHours)

	assert.Equal(t, "uncategorized", result[2].CategoryName)
	assert.Nil(t, result[2].CategoryID)
}

func TestWeeklyTrend(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	created := func(ago time.Duration) *models.Complaint {
		c := complaintWithoutLocation(models.StatusNew)
		c.CreatedAt = now.Add(-ago)
		return c
	}
	resolved := created(20 * day)
	resolved.Status = models.StatusResolved
	resolvedAt := now.Add(-2 * day)
	resolved.ResolvedAt = &resolvedAt

	complaints := []*models.Complaint{
		created(1 * day),
		created(3 * day),
		created(10 * day),
		created(40 * day),
		resolved,
	}

	trend := WeeklyTrend(complaints, 4, now)

	require.Len(t, trend, 4)
	assert.Equal(t, now.Add(-28*day), trend[0].WeekStart)
	assert.Equal(t, 1, trend[1].CreatedCount)
	assert.Equal(t, 1, trend[2].CreatedCount)
	assert.Equal(t, 2, trend[3].CreatedCount)
	assert.Equal(t, 1, trend[3].ResolvedCount)
	assert.Equal(t, 0, trend[0].CreatedCount)
}

func TestWeeklyTrend_NoWeeks(t *testing.T) {
	assert.Empty(t, WeeklyTrend(nil, 0, time.Now()))
}
