package analytics

import (
	"github.com/shenikar/complaint_analytics/internal/models"
)

// Intensity возвращает вес обращения для тепловой карты.
// Базовый вес зависит от статуса и умножается на (6 - priority) / 5, если приоритет задан.
func Intensity(status models.ComplaintStatus, priority *int) float64 {
	weight := 1.0
	switch status {
	case models.StatusNew:
		weight = 1.5
	case models.StatusInProgress:
		weight = 1.2
	}
	if priority != nil {
		weight *= float64(6-*priority) / 5
	}
	return round(weight, 2)
}

// HeatmapPoints строит точки тепловой карты по обращениям с координатами
func HeatmapPoints(complaints []*models.Complaint) []models.HeatmapPoint {
	points := make([]models.HeatmapPoint, 0, len(complaints))
	for _, c := range complaints {
		if !c.HasLocation() {
			continue
		}
		points = append(points, models.HeatmapPoint{
			ComplaintID:  c.ID,
			Latitude:     *c.Latitude,
			Longitude:    *c.Longitude,
			Intensity:    Intensity(c.Status, c.Priority),
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Status:       c.Status,
		})
	}
	return points
}
