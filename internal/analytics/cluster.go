package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/pkg/geo"
)

const (
	DefaultClusterRadiusKm   = 0.5
	DefaultClusterMinMembers = 3
)

// BuildClusters жадно группирует обращения вокруг "затравок" за один проход.
//
// Обращения перебираются в порядке входа. Каждое еще не занятое обращение открывает
// кластер, в который попадают все свободные обращения не дальше radiusKm от затравки
// (а не от других членов). Кластер меньше minMembers отбрасывается, его члены остаются
// вне кластеров и повторно не рассматриваются. Обращения без координат пропускаются.
func BuildClusters(complaints []*models.Complaint, radiusKm float64, minMembers int) []models.Cluster {
	located := make([]*models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if c.HasLocation() {
			located = append(located, c)
		}
	}

	claimed := make([]bool, len(located))
	clusters := make([]models.Cluster, 0)

	for i, seed := range located {
		if claimed[i] {
			continue
		}
		claimed[i] = true
		members := []*models.Complaint{seed}
		seedPoint := seed.Location()

		for j := i + 1; j < len(located); j++ {
			if claimed[j] {
				continue
			}
			if geo.DistanceKm(seedPoint, located[j].Location()) <= radiusKm {
				claimed[j] = true
				members = append(members, located[j])
			}
		}

		if len(members) < minMembers {
			continue
		}
		clusters = append(clusters, newCluster(members, radiusKm))
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Count > clusters[j].Count
	})
	return clusters
}

func newCluster(members []*models.Complaint, radiusKm float64) models.Cluster {
	var sumLat, sumLon float64
	var sumPriority int
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		p := m.Location()
		sumLat += p.Lat
		sumLon += p.Lon
		sumPriority += m.PriorityOrDefault()
		ids = append(ids, m.ID)
	}
	n := float64(len(members))
	return models.Cluster{
		CentroidLatitude:  sumLat / n,
		CentroidLongitude: sumLon / n,
		ComplaintIDs:      ids,
		Count:             len(members),
		AvgPriority:       round(float64(sumPriority)/n, 2),
		RadiusKm:          radiusKm,
	}
}
