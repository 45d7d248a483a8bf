package models

import (
	"time"

	"github.com/google/uuid"
)

// HeatmapPoint - точка тепловой карты
type HeatmapPoint struct {
	ComplaintID  uuid.UUID       `json:"complaint_id"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	Intensity    float64         `json:"intensity"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Status       ComplaintStatus `json:"status"`
}

// Cluster - группа близко расположенных открытых обращений. Не сохраняется.
type Cluster struct {
	CentroidLatitude  float64     `json:"centroid_latitude"`
	CentroidLongitude float64     `json:"centroid_longitude"`
	ComplaintIDs      []uuid.UUID `json:"complaint_ids"`
	Count             int         `json:"count"`
	AvgPriority       float64     `json:"avg_priority"`
	RadiusKm          float64     `json:"radius_km"`
}

// ZoneCoverage - показатели обслуживания одной зоны
type ZoneCoverage struct {
	ZoneID            uuid.UUID `json:"zone_id"`
	ZoneName          string    `json:"zone_name"`
	Total             int       `json:"total"`
	Resolved          int       `json:"resolved"`
	Pending           int       `json:"pending"`
	InProgress        int       `json:"in_progress"`
	AvgPriority       float64   `json:"avg_priority"`
	ResolutionRate    float64   `json:"resolution_rate"`
	PercentageOfTotal float64   `json:"percentage_of_total"`
	AttentionIndex    float64   `json:"attention_index"`
	Critical          bool      `json:"critical"`
}

// CoverageReport - покрытие всех активных зон, худшие первыми
type CoverageReport struct {
	GrandTotal int            `json:"grand_total"`
	Zones      []ZoneCoverage `json:"zones"`
	Alerts     []ZoneCoverage `json:"alerts"`
}

// CrewTravel - оценка пробега бригады
type CrewTravel struct {
	CrewID          uuid.UUID `json:"crew_id"`
	CrewName        string    `json:"crew_name"`
	ComplaintCount  int       `json:"complaint_count"`
	TotalDistanceKm float64   `json:"total_distance_km"`
	AvgDistanceKm   float64   `json:"avg_distance_km"`
}

// CategoryResolution - среднее время решения по категории
type CategoryResolution struct {
	CategoryID         *uuid.UUID `json:"category_id,omitempty"`
	CategoryName       string     `json:"category_name"`
	ResolvedCount      int        `json:"resolved_count"`
	AvgResolutionHours float64    `json:"avg_resolution_hours"`
	MaxResolutionHours float64    `json:"max_resolution_hours"`
}

// WeeklyVolume - поступившие и решенные обращения за неделю
type WeeklyVolume struct {
	WeekStart     time.Time `json:"week_start"`
	CreatedCount  int       `json:"created_count"`
	ResolvedCount int       `json:"resolved_count"`
}

// HeatmapParams - параметры тепловой карты. Нулевые значения заменяются значениями по умолчанию.
type HeatmapParams struct {
	LookbackDays int
	CategoryID   *uuid.UUID
}

// ClusterParams - параметры кластеризации. Нулевые значения заменяются значениями по умолчанию.
type ClusterParams struct {
	RadiusKm     float64
	MinMembers   int
	LookbackDays int
	CategoryID   *uuid.UUID
}
