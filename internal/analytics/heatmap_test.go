package analytics

import (
	"testing"

	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntensity(t *testing.T) {
	tests := map[string]struct {
		status   models.ComplaintStatus
		priority *int
		expected float64
	}{
		"new priority 1":         {models.StatusNew, ptr(1), 1.5},
		"new priority 5":         {models.StatusNew, ptr(5), 0.3},
		"in progress priority 3": {models.StatusInProgress, ptr(3), 0.72},
		"assigned priority 2":    {models.StatusAssigned, ptr(2), 0.8},
		"resolved no priority":   {models.StatusResolved, nil, 1.0},
		"new no priority":        {models.StatusNew, nil, 1.5},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Intensity(tc.status, tc.priority), 1e-9)
		})
	}
}

func TestIntensity_DecreasesWithPriority(t *testing.T) {
	statuses := []models.ComplaintStatus{
		models.StatusNew, models.StatusAssigned, models.StatusInProgress, models.StatusResolved, models.StatusRejected,
	}
	for _, status := range statuses {
		prev := Intensity(status, ptr(1))
		for p := 2; p <= 5; p++ {
			cur := Intensity(status, ptr(p))
			assert.Lessf(t, cur, prev, "status %s priority %d", status, p)
			prev = cur
		}
	}
}

func TestHeatmapPoints(t *testing.T) {
	located := complaintAt(19.4, -99.1, models.StatusNew, ptr(1))
	located.CategoryName = "Alumbrado"

	points := HeatmapPoints([]*models.Complaint{
		located,
		complaintWithoutLocation(models.StatusNew),
	})

	require.Len(t, points, 1)
	assert.Equal(t, located.ID, points[0].ComplaintID)
	assert.Equal(t, 19.4, points[0].Latitude)
	assert.Equal(t, -99.1, points[0].Longitude)
	assert.Equal(t, 1.5, points[0].Intensity)
	assert.Equal(t, "Alumbrado", points[0].CategoryName)
	assert.Equal(t, models.StatusNew, points[0].Status)
}
