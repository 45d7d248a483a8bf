package models

import (
	"time"

	"github.com/google/uuid"
)

// SLAConfig - строка конфигурации SLA арендатора.
// CategoryID == nil означает "все категории", Priority == nil - "все приоритеты".
type SLAConfig struct {
	ID                    uuid.UUID  `json:"id"`
	TenantID              uuid.UUID  `json:"tenant_id"`
	CategoryID            *uuid.UUID `json:"category_id,omitempty"`
	Priority              *int       `json:"priority,omitempty"`
	ResponseHours         float64    `json:"response_hours"`
	ResolutionHours       float64    `json:"resolution_hours"`
	WarningThresholdHours float64    `json:"warning_threshold_hours"`
	IsActive              bool       `json:"is_active"`
}

// HasValidThresholds проверяет, что все пороги положительные
func (c *SLAConfig) HasValidThresholds() bool {
	return c.ResponseHours > 0 && c.ResolutionHours > 0 && c.WarningThresholdHours > 0
}

// SLALevel - уровень конфигурации, из которого взяты пороги
type SLALevel string

const (
	SLALevelCategoryPriority SLALevel = "category_priority"
	SLALevelCategory         SLALevel = "category"
	SLALevelTenantDefault    SLALevel = "tenant_default"
	SLALevelFallback         SLALevel = "fallback"
)

// SLAThresholds - итоговый набор порогов для обращения
type SLAThresholds struct {
	ResponseHours         float64    `json:"response_hours"`
	ResolutionHours       float64    `json:"resolution_hours"`
	WarningThresholdHours float64    `json:"warning_threshold_hours"`
	Level                 SLALevel   `json:"level"`
	ConfigID              *uuid.UUID `json:"config_id,omitempty"`
}

// SLAState - классификация соблюдения SLA
type SLAState string

const (
	SLAStateOK       SLAState = "ok"
	SLAStateWarning  SLAState = "warning"
	SLAStateBreached SLAState = "breached"
)

// SLABudget - какой бюджет времени оценивался
type SLABudget string

const (
	SLABudgetResponse   SLABudget = "response"
	SLABudgetResolution SLABudget = "resolution"
)

// SLASnapshot - вычисляемое на лету состояние SLA обращения
type SLASnapshot struct {
	ElapsedHours   float64   `json:"elapsed_hours"`
	PctResponse    float64   `json:"pct_response"`
	PctResolution  float64   `json:"pct_resolution"`
	State          SLAState  `json:"state"`
	Budget         SLABudget `json:"budget"`
	HoursRemaining float64   `json:"hours_remaining"`
}

// ComplaintSLA - снимок SLA вместе с данными обращения и порогами
type ComplaintSLA struct {
	ComplaintID  uuid.UUID       `json:"complaint_id"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Priority     *int            `json:"priority,omitempty"`
	Status       ComplaintStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	Thresholds   SLAThresholds   `json:"thresholds"`
	Snapshot     SLASnapshot     `json:"sla"`
}

// ComplianceSummary - сводка по соблюдению SLA для арендатора
type ComplianceSummary struct {
	TotalActive    int            `json:"total_active"`
	OK             int            `json:"ok"`
	Warning        int            `json:"warning"`
	Breached       int            `json:"breached"`
	ComplianceRate float64        `json:"compliance_rate"`
	TopAlerts      []ComplaintSLA `json:"top_alerts"`
}
