package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvedBy(crew *models.Crew, lat, lon float64, resolvedAt time.Time) *models.Complaint {
	c := complaintAt(lat, lon, models.StatusResolved, nil)
	c.CrewID = &crew.ID
	c.ResolvedAt = &resolvedAt
	return c
}

func TestEstimateCrewTravel_TemporalOrder(t *testing.T) {
	// Подготовка
	office := geo.Point{Lat: 0, Lon: 0}
	crew := &models.Crew{ID: uuid.New(), Name: "Cuadrilla 1"}
	base := time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC)

	// во входе порядок обратный порядку решения
	second := resolvedBy(crew, 0, 2*kmToLonDeg, base.Add(2*time.Hour))
	first := resolvedBy(crew, 0, 1*kmToLonDeg, base.Add(time.Hour))

	// Действие
	result := EstimateCrewTravel([]*models.Crew{crew}, []*models.Complaint{second, first}, office)

	// Проверки
	require.Len(t, result, 1)
	assert.Equal(t, crew.ID, result[0].CrewID)
	assert.Equal(t, "Cuadrilla 1", result[0].CrewName)
	assert.Equal(t, 2, result[0].ComplaintCount)
	// 1 км + 1 км + 2 км обратно
	assert.InDelta(t, 4.0, result[0].TotalDistanceKm, 0.01)
	assert.InDelta(t, 2.0, result[0].AvgDistanceKm, 0.01)
}

func TestEstimateCrewTravel_OrderMatters(t *testing.T) {
	office := geo.Point{Lat: 0, Lon: 0}
	crew := &models.Crew{ID: uuid.New()}
	base := time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC)

	// маршрут идет по времени решения, а не по близости: восток, запад, снова восток
	east := resolvedBy(crew, 0, 1*kmToLonDeg, base)
	west := resolvedBy(crew, 0, -1*kmToLonDeg, base.Add(time.Hour))
	eastAgain := resolvedBy(crew, 0, 1*kmToLonDeg, base.Add(2*time.Hour))

	result := EstimateCrewTravel([]*models.Crew{crew}, []*models.Complaint{east, west, eastAgain}, office)

	require.Len(t, result, 1)
	// 1 + 2 + 2 + 1
	assert.InDelta(t, 6.0, result[0].TotalDistanceKm, 0.01)
	assert.InDelta(t, 2.0, result[0].AvgDistanceKm, 0.01)
}

func TestEstimateCrewTravel_SkipsIneligible(t *testing.T) {
	office := geo.Point{Lat: 0, Lon: 0}
	busy := &models.Crew{ID: uuid.New(), Name: "busy"}
	idle := &models.Crew{ID: uuid.New(), Name: "idle"}
	now := time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC)

	open := complaintAt(0, kmToLonDeg, models.StatusInProgress, nil)
	open.CrewID = &idle.ID

	noLocation := complaintWithoutLocation(models.StatusResolved)
	noLocation.CrewID = &idle.ID
	noLocation.ResolvedAt = &now

	unassigned := complaintAt(0, kmToLonDeg, models.StatusResolved, nil)
	unassigned.ResolvedAt = &now

	complaints := []*models.Complaint{open, noLocation, unassigned, resolvedBy(busy, 0, kmToLonDeg, now)}

	result := EstimateCrewTravel([]*models.Crew{busy, idle}, complaints, office)

	require.Len(t, result, 1)
	assert.Equal(t, busy.ID, result[0].CrewID)
	assert.InDelta(t, 2.0, result[0].TotalDistanceKm, 0.01)
}

func TestEstimateCrewTravel_SortedByTotalDistance(t *testing.T) {
	office := geo.Point{Lat: 0, Lon: 0}
	near := &models.Crew{ID: uuid.New(), Name: "near"}
	far := &models.Crew{ID: uuid.New(), Name: "far"}
	now := time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC)

	result := EstimateCrewTravel([]*models.Crew{near, far}, []*models.Complaint{
		resolvedBy(near, 0, kmToLonDeg, now),
		resolvedBy(far, 0, 5*kmToLonDeg, now),
	}, office)

	require.Len(t, result, 2)
	assert.Equal(t, "far", result[0].CrewName)
	assert.Equal(t, "near", result[1].CrewName)
}

func TestRouteDistanceKm_Empty(t *testing.T) {
	assert.Equal(t, 0.0, RouteDistanceKm(geo.Point{}, nil))
}
