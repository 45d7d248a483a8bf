package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
)

// HeatmapQuery параметры тепловой карты
// @Description параметры тепловой карты
type HeatmapQuery struct {
	Days       int    `form:"days" validate:"gte=0,lte=3650"`
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
}

// ClustersQuery параметры кластеризации
// @Description параметры кластеризации
type ClustersQuery struct {
	RadiusKm   float64 `form:"radius_km" validate:"gte=0,lte=50"`
	MinMembers int     `form:"min_members" validate:"gte=0,lte=1000"`
	Days       int     `form:"days" validate:"gte=0,lte=3650"`
	CategoryID string  `form:"category_id" validate:"omitempty,uuid"`
}

// DaysQuery окно выборки в сутках
type DaysQuery struct {
	Days int `form:"days" validate:"gte=0,lte=3650"`
}

// TrendQuery число недель в разбивке
type TrendQuery struct {
	Weeks int `form:"weeks" validate:"gte=0,lte=104"`
}

// ThresholdsQuery категория и приоритет для поиска порогов SLA
type ThresholdsQuery struct {
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
	Priority   *int   `form:"priority" validate:"omitempty,min=1,max=5"`
}

// SummaryQuery размер списка алертов
type SummaryQuery struct {
	Top int `form:"top" validate:"gte=0,lte=100"`
}

// CreateReportRequest DTO для запроса отчета
// @Description DTO для запроса отчета
type CreateReportRequest struct {
	Kind string `json:"kind" validate:"required,oneof=sla_summary zone_coverage crew_travel clusters category_resolution weekly_trend"`
	Days int    `json:"days" validate:"gte=0,lte=3650"`
}

// ReportAcceptedResponse DTO ответа о постановке отчета в очередь
// @Description DTO ответа о постановке отчета в очередь
type ReportAcceptedResponse struct {
	ID           uuid.UUID `json:"id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	Kind         string    `json:"kind"`
	LookbackDays int       `json:"lookback_days"`
	RequestedAt  time.Time `json:"requested_at"`
	Status       string    `json:"status"`
}

// HeatmapResponse DTO тепловой карты
type HeatmapResponse struct {
	Count  int                   `json:"count"`
	Points []models.HeatmapPoint `json:"points"`
}

// ClustersResponse DTO списка кластеров
type ClustersResponse struct {
	Count    int              `json:"count"`
	Clusters []models.Cluster `json:"clusters"`
}

// CrewTravelResponse DTO пробега бригад
type CrewTravelResponse struct {
	Count int                 `json:"count"`
	Crews []models.CrewTravel `json:"crews"`
}

// CategoryResolutionResponse DTO времени решения по категориям
type CategoryResolutionResponse struct {
	Count      int                         `json:"count"`
	Categories []models.CategoryResolution `json:"categories"`
}

// TrendResponse DTO понедельной динамики
type TrendResponse struct {
	Weeks []models.WeeklyVolume `json:"weeks"`
}

// ActiveSLAResponse DTO снимков SLA активных обращений
type ActiveSLAResponse struct {
	Count      int                   `json:"count"`
	Complaints []models.ComplaintSLA `json:"complaints"`
}
