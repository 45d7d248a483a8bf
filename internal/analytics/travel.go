package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/pkg/geo"
)

// EstimateCrewTravel оценивает пробег каждой бригады по решенным обращениям.
//
// Обращения бригады упорядочиваются по времени решения, маршрут считается как
// офис -> первое обращение -> ... -> последнее обращение -> офис. Это эвристика
// по времени, а не кратчайший маршрут. Бригады без решенных обращений с координатами
// не попадают в результат.
func EstimateCrewTravel(crews []*models.Crew, complaints []*models.Complaint, office geo.Point) []models.CrewTravel {
	names := make(map[uuid.UUID]string, len(crews))
	for _, crew := range crews {
		names[crew.ID] = crew.Name
	}

	byCrew := make(map[uuid.UUID][]*models.Complaint)
	order := make([]uuid.UUID, 0)
	for _, c := range complaints {
		if c.CrewID == nil || c.Status != models.StatusResolved || c.ResolvedAt == nil || !c.HasLocation() {
			continue
		}
		if _, seen := byCrew[*c.CrewID]; !seen {
			order = append(order, *c.CrewID)
		}
		byCrew[*c.CrewID] = append(byCrew[*c.CrewID], c)
	}

	result := make([]models.CrewTravel, 0, len(byCrew))
	for _, crewID := range order {
		route := byCrew[crewID]
		sort.SliceStable(route, func(i, j int) bool {
			return route[i].ResolvedAt.Before(*route[j].ResolvedAt)
		})

		total := RouteDistanceKm(office, route)
		result = append(result, models.CrewTravel{
			CrewID:          crewID,
			CrewName:        names[crewID],
			ComplaintCount:  len(route),
			TotalDistanceKm: round(total, 2),
			AvgDistanceKm:   round(total/float64(len(route)), 2),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalDistanceKm > result[j].TotalDistanceKm
	})
	return result
}

// RouteDistanceKm - длина замкнутого маршрута из офиса через точки в заданном порядке
func RouteDistanceKm(office geo.Point, route []*models.Complaint) float64 {
	if len(route) == 0 {
		return 0
	}
	total := 0.0
	prev := office
	for _, c := range route {
		p := c.Location()
		total += geo.DistanceKm(prev, p)
		prev = p
	}
	return total + geo.DistanceKm(prev, office)
}
