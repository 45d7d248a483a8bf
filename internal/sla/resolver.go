// Package sla вычисляет пороги и состояние соблюдения SLA по обращениям.
package sla

import (
	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
)

// Пороги по умолчанию, когда у арендатора нет подходящей конфигурации
const (
	FallbackResponseHours         = 24.0
	FallbackResolutionHours       = 72.0
	FallbackWarningThresholdHours = 48.0
)

// Fallback возвращает жестко заданные пороги
func Fallback() models.SLAThresholds {
	return models.SLAThresholds{
		ResponseHours:         FallbackResponseHours,
		ResolutionHours:       FallbackResolutionHours,
		WarningThresholdHours: FallbackWarningThresholdHours,
		Level:                 models.SLALevelFallback,
	}
}

// matcher - один шаг каскада: уровень и предикат отбора строки конфигурации
type matcher struct {
	level models.SLALevel
	match func(cfg *models.SLAConfig, categoryID *uuid.UUID, priority *int) bool
}

// precedence - порядок поиска, первый совпавший шаг побеждает
var precedence = []matcher{
	{
		level: models.SLALevelCategoryPriority,
		match: func(cfg *models.SLAConfig, categoryID *uuid.UUID, priority *int) bool {
			return categoryID != nil && priority != nil &&
				sameCategory(cfg.CategoryID, categoryID) && samePriority(cfg.Priority, priority)
		},
	},
	{
		level: models.SLALevelCategory,
		match: func(cfg *models.SLAConfig, categoryID *uuid.UUID, _ *int) bool {
			return categoryID != nil && sameCategory(cfg.CategoryID, categoryID) && cfg.Priority == nil
		},
	},
	{
		level: models.SLALevelTenantDefault,
		match: func(cfg *models.SLAConfig, _ *uuid.UUID, _ *int) bool {
			return cfg.CategoryID == nil && cfg.Priority == nil
		},
	},
}

// Resolver ищет пороги среди строк конфигурации одного арендатора
type Resolver struct {
	configs []*models.SLAConfig
}

// NewResolver оставляет только активные строки с положительными порогами
func NewResolver(configs []*models.SLAConfig) *Resolver {
	usable := make([]*models.SLAConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg == nil || !cfg.IsActive || !cfg.HasValidThresholds() {
			continue
		}
		usable = append(usable, cfg)
	}
	return &Resolver{configs: usable}
}

// Resolve возвращает пороги для категории и приоритета
func (r *Resolver) Resolve(categoryID *uuid.UUID, priority *int) models.SLAThresholds {
	for _, step := range precedence {
		for _, cfg := range r.configs {
			if !step.match(cfg, categoryID, priority) {
				continue
			}
			id := cfg.ID
			return models.SLAThresholds{
				ResponseHours:         cfg.ResponseHours,
				ResolutionHours:       cfg.ResolutionHours,
				WarningThresholdHours: cfg.WarningThresholdHours,
				Level:                 step.level,
				ConfigID:              &id,
			}
		}
	}
	return Fallback()
}

func sameCategory(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

func samePriority(a, b *int) bool {
	return a != nil && b != nil && *a == *b
}
