package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportKind - тип агрегата, который можно отправить потребителю экспорта
type ReportKind string

const (
	ReportSLASummary         ReportKind = "sla_summary"
	ReportZoneCoverage       ReportKind = "zone_coverage"
	ReportCrewTravel         ReportKind = "crew_travel"
	ReportClusters           ReportKind = "clusters"
	ReportCategoryResolution ReportKind = "category_resolution"
	ReportWeeklyTrend        ReportKind = "weekly_trend"
)

// ReportRequest - запрос на построение и доставку отчета
type ReportRequest struct {
	ID           uuid.UUID  `json:"id"`
	TenantID     uuid.UUID  `json:"tenant_id"`
	Kind         ReportKind `json:"kind"`
	LookbackDays int        `json:"lookback_days"`
	RequestedAt  time.Time  `json:"requested_at"`
}

// IsValid сообщает, известен ли тип отчета
func (k ReportKind) IsValid() bool {
	switch k {
	case ReportSLASummary, ReportZoneCoverage, ReportCrewTravel,
		ReportClusters, ReportCategoryResolution, ReportWeeklyTrend:
		return true
	}
	return false
}
