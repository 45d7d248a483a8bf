package service

//go:generate mockgen -source=sla.go -destination=mocks/sla.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/metrics"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/internal/sla"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxTopAlerts - верхняя граница размера списка алертов в сводке
const MaxTopAlerts = 100

// SLAConfigRepository определяет контракт чтения конфигурации SLA арендатора
type SLAConfigRepository interface {
	ListSLAConfigs(ctx context.Context, tenantID uuid.UUID) ([]*models.SLAConfig, error)
	GetSLAConfigsFromCache(ctx context.Context, tenantID uuid.UUID) ([]*models.SLAConfig, error)
	SetSLAConfigsCache(ctx context.Context, tenantID uuid.UUID, configs []*models.SLAConfig) error
}

// SLAService определяет контракт расчета соблюдения SLA
type SLAService interface {
	ResolveThresholds(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID, priority *int) (*models.SLAThresholds, error)
	ComplaintSLA(ctx context.Context, tenantID, complaintID uuid.UUID) (*models.ComplaintSLA, error)
	ActiveSLA(ctx context.Context, tenantID uuid.UUID) ([]models.ComplaintSLA, error)
	ComplianceSummary(ctx context.Context, tenantID uuid.UUID, topN int) (*models.ComplianceSummary, error)
}

type slaService struct {
	complaints ComplaintRepository
	configs    SLAConfigRepository
	logger     *logrus.Logger
	now        func() time.Time
}

func NewSLAService(complaints ComplaintRepository, configs SLAConfigRepository, logger *logrus.Logger) SLAService {
	return &slaService{
		complaints: complaints,
		configs:    configs,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *slaService) log(method string, tenantID uuid.UUID) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service":   "sla",
		"method":    method,
		"tenant_id": tenantID,
	})
}

// resolver загружает строки конфигурации арендатора, сначала из кэша.
// Ошибки кэша не прерывают запрос.
func (s *slaService) resolver(ctx context.Context, tenantID uuid.UUID) (*sla.Resolver, error) {
	log := s.log("resolver", tenantID)

	configs, err := s.configs.GetSLAConfigsFromCache(ctx, tenantID)
	if err != nil {
		log.WithError(err).Warn("Failed to read SLA configs from cache")
	}
	if configs != nil {
		metrics.SLAConfigCacheTotal.WithLabelValues("hit").Inc()
		return sla.NewResolver(configs), nil
	}
	metrics.SLAConfigCacheTotal.WithLabelValues("miss").Inc()

	configs, err = s.configs.ListSLAConfigs(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for _, cfg := range configs {
		if cfg.IsActive && !cfg.HasValidThresholds() {
			log.WithField("config_id", cfg.ID).Warn("Ignoring SLA config with non-positive thresholds")
		}
	}
	if err := s.configs.SetSLAConfigsCache(ctx, tenantID, configs); err != nil {
		log.WithError(err).Warn("Failed to write SLA configs to cache")
	}
	return sla.NewResolver(configs), nil
}

// evaluate строит снимок SLA обращения
func evaluate(c *models.Complaint, resolver *sla.Resolver, now time.Time) models.ComplaintSLA {
	th := resolver.Resolve(c.CategoryID, c.Priority)
	snapshot := sla.Evaluate(c, th, now)
	metrics.SLAEvaluationsTotal.WithLabelValues(string(snapshot.State)).Inc()
	return models.ComplaintSLA{
		ComplaintID:  c.ID,
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		Priority:     c.Priority,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		Thresholds:   th,
		Snapshot:     snapshot,
	}
}

// ResolveThresholds возвращает пороги для категории и приоритета
func (s *slaService) ResolveThresholds(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID, priority *int) (*models.SLAThresholds, error) {
	log := s.log("ResolveThresholds", tenantID)
	if priority != nil && (*priority < 1 || *priority > 5) {
		return nil, fmt.Errorf("%w: priority must be between 1 and 5", ErrInvalidParameter)
	}

	resolver, err := s.resolver(ctx, tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to load SLA configs")
		return nil, fmt.Errorf("service: could not resolve sla thresholds: %w", err)
	}

	th := resolver.Resolve(categoryID, priority)
	log.WithField("level", th.Level).Debug("SLA thresholds resolved")
	return &th, nil
}

// ComplaintSLA возвращает снимок SLA одного обращения
func (s *slaService) ComplaintSLA(ctx context.Context, tenantID, complaintID uuid.UUID) (*models.ComplaintSLA, error) {
	log := s.log("ComplaintSLA", tenantID).WithField("complaint_id", complaintID)
	log.Info("Evaluating complaint SLA")

	var (
		complaint *models.Complaint
		resolver  *sla.Resolver
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		complaint, err = s.complaints.GetComplaint(gctx, tenantID, complaintID)
		return err
	})
	g.Go(func() error {
		var err error
		resolver, err = s.resolver(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to fetch complaint SLA snapshot")
		return nil, fmt.Errorf("service: could not evaluate complaint sla: %w", err)
	}

	item := evaluate(complaint, resolver, s.now())
	log.WithField("state", item.Snapshot.State).Info("Complaint SLA evaluated successfully")
	return &item, nil
}

// ActiveSLA возвращает снимки SLA всех активных обращений, самые просроченные первыми
func (s *slaService) ActiveSLA(ctx context.Context, tenantID uuid.UUID) ([]models.ComplaintSLA, error) {
	defer metrics.ObserveComputation("active_sla", time.Now())
	log := s.log("ActiveSLA", tenantID)
	log.Info("Evaluating active complaints SLA")

	items, err := s.activeSnapshots(ctx, tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch active SLA snapshot")
		return nil, fmt.Errorf("service: could not evaluate active sla: %w", err)
	}

	sla.SortByUrgency(items)
	log.WithField("count", len(items)).Info("Active complaints SLA evaluated successfully")
	return items, nil
}

// ComplianceSummary собирает сводку по соблюдению SLA
func (s *slaService) ComplianceSummary(ctx context.Context, tenantID uuid.UUID, topN int) (*models.ComplianceSummary, error) {
	defer metrics.ObserveComputation("sla_summary", time.Now())
	log := s.log("ComplianceSummary", tenantID)

	if topN == 0 {
		topN = sla.DefaultTopAlerts
	}
	if topN < 1 || topN > MaxTopAlerts {
		return nil, fmt.Errorf("%w: top must be between 1 and %d", ErrInvalidParameter, MaxTopAlerts)
	}
	log.WithField("top", topN).Info("Building SLA compliance summary")

	items, err := s.activeSnapshots(ctx, tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch active SLA snapshot")
		return nil, fmt.Errorf("service: could not build compliance summary: %w", err)
	}

	summary := sla.Summarize(items, topN)
	log.WithFields(logrus.Fields{
		"total_active":    summary.TotalActive,
		"compliance_rate": summary.ComplianceRate,
	}).Info("SLA compliance summary built successfully")
	return &summary, nil
}

func (s *slaService) activeSnapshots(ctx context.Context, tenantID uuid.UUID) ([]models.ComplaintSLA, error) {
	var (
		complaints []*models.Complaint
		resolver   *sla.Resolver
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		complaints, err = s.complaints.ListComplaints(gctx, tenantID, models.ComplaintFilter{Statuses: models.ActiveStatuses})
		return err
	})
	g.Go(func() error {
		var err error
		resolver, err = s.resolver(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	metrics.ObserveScanned("sla", len(complaints))

	now := s.now()
	items := make([]models.ComplaintSLA, 0, len(complaints))
	for _, c := range complaints {
		items = append(items, evaluate(c, resolver, now))
	}
	return items, nil
}
