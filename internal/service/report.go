package service

//go:generate mockgen -source=report.go -destination=mocks/report.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ReportService определяет контракт отчетов, доставляемых потребителю экспорта
type ReportService interface {
	Dispatch(ctx context.Context, tenantID uuid.UUID, kind models.ReportKind, lookbackDays int) (*models.ReportRequest, error)
	BuildReport(ctx context.Context, req models.ReportRequest) (any, error)
}

type reportService struct {
	analytics AnalyticsService
	sla       SLAService
	publisher webhook.ReportPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewReportService(analytics AnalyticsService, sla SLAService, publisher webhook.ReportPublisher, logger *logrus.Logger) ReportService {
	return &reportService{
		analytics: analytics,
		sla:       sla,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Dispatch ставит запрос на отчет в очередь
func (s *reportService) Dispatch(ctx context.Context, tenantID uuid.UUID, kind models.ReportKind, lookbackDays int) (*models.ReportRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "Dispatch",
		"tenant_id": tenantID,
		"kind":      kind,
	})

	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportKind, kind)
	}
	if lookbackDays < 0 || lookbackDays > MaxLookbackDays {
		return nil, fmt.Errorf("%w: days must be between 0 and %d", ErrInvalidParameter, MaxLookbackDays)
	}
	if kind == models.ReportWeeklyTrend && weeksForDays(lookbackDays) > MaxTrendWeeks {
		return nil, fmt.Errorf("%w: weekly trend covers at most %d weeks", ErrInvalidParameter, MaxTrendWeeks)
	}

	req := &models.ReportRequest{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Kind:         kind,
		LookbackDays: lookbackDays,
		RequestedAt:  s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, *req); err != nil {
		log.WithError(err).Error("Failed to publish report request")
		return nil, fmt.Errorf("service: could not dispatch report: %w", err)
	}

	log.WithField("request_id", req.ID).Info("Report request dispatched successfully")
	return req, nil
}

// BuildReport вычисляет агрегат, указанный в запросе
func (s *reportService) BuildReport(ctx context.Context, req models.ReportRequest) (any, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "BuildReport",
		"tenant_id":  req.TenantID,
		"request_id": req.ID,
		"kind":       req.Kind,
	})
	log.Info("Building report")

	var (
		payload any
		err     error
	)
	switch req.Kind {
	case models.ReportSLASummary:
		payload, err = s.sla.ComplianceSummary(ctx, req.TenantID, 0)
	case models.ReportZoneCoverage:
		payload, err = s.analytics.ZoneCoverage(ctx, req.TenantID, req.LookbackDays)
	case models.ReportCrewTravel:
		payload, err = s.analytics.CrewTravel(ctx, req.TenantID, req.LookbackDays)
	case models.ReportClusters:
		payload, err = s.analytics.Clusters(ctx, req.TenantID, models.ClusterParams{LookbackDays: req.LookbackDays})
	case models.ReportCategoryResolution:
		payload, err = s.analytics.CategoryResolutionTimes(ctx, req.TenantID, req.LookbackDays)
	case models.ReportWeeklyTrend:
		payload, err = s.analytics.WeeklyTrend(ctx, req.TenantID, weeksForDays(req.LookbackDays))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportKind, req.Kind)
	}
	if err != nil {
		log.WithError(err).Error("Failed to build report")
		return nil, fmt.Errorf("service: could not build report: %w", err)
	}

	log.Info("Report built successfully")
	return payload, nil
}

// weeksForDays переводит окно в сутках в число недель с округлением вверх; 0 - по умолчанию
func weeksForDays(days int) int {
	if days <= 0 {
		return 0
	}
	return (days + 6) / 7
}
