package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
)

// kmToLonDeg - сколько градусов долготы на экваторе занимает заданное расстояние
const kmToLonDeg = 1 / 111.19492664455873

func ptr[T any](v T) *T {
	return &v
}

func complaintAt(lat, lon float64, status models.ComplaintStatus, priority *int) *models.Complaint {
	return &models.Complaint{
		ID:        uuid.New(),
		Latitude:  ptr(lat),
		Longitude: ptr(lon),
		Priority:  priority,
		Status:    status,
		CreatedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func complaintWithoutLocation(status models.ComplaintStatus) *models.Complaint {
	return &models.Complaint{
		ID:        uuid.New(),
		Status:    status,
		CreatedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}
