package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
)

// parseOptionalUUID возвращает nil для пустой строки. Строка уже проверена валидатором.
func parseOptionalUUID(value string) *uuid.UUID {
	if value == "" {
		return nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	return &id
}

// HeatmapQueryToParams преобразует параметры запроса в параметры сервиса
func HeatmapQueryToParams(q HeatmapQuery) models.HeatmapParams {
	return models.HeatmapParams{
		LookbackDays: q.Days,
		CategoryID:   parseOptionalUUID(q.CategoryID),
	}
}

// ClustersQueryToParams преобразует параметры запроса в параметры сервиса
func ClustersQueryToParams(q ClustersQuery) models.ClusterParams {
	return models.ClusterParams{
		RadiusKm:     q.RadiusKm,
		MinMembers:   q.MinMembers,
		LookbackDays: q.Days,
		CategoryID:   parseOptionalUUID(q.CategoryID),
	}
}

// ModelToReportAcceptedResponse преобразует запрос на отчет в DTO ответа
func ModelToReportAcceptedResponse(req *models.ReportRequest) *ReportAcceptedResponse {
	return &ReportAcceptedResponse{
		ID:           req.ID,
		TenantID:     req.TenantID,
		Kind:         string(req.Kind),
		LookbackDays: req.LookbackDays,
		RequestedAt:  req.RequestedAt,
		Status:       "queued",
	}
}
