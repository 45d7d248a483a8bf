package service

//go:generate mockgen -source=analytics.go -destination=mocks/analytics.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/analytics"
	"github.com/shenikar/complaint_analytics/internal/config"
	"github.com/shenikar/complaint_analytics/internal/metrics"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/pkg/geo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Верхние границы параметров запросов
const (
	MaxLookbackDays    = 3650
	MaxClusterRadiusKm = 50.0
	MaxClusterMembers  = 1000
	MaxTrendWeeks      = 104
)

// ComplaintRepository определяет контракт чтения снимка обращений и справочников арендатора
type ComplaintRepository interface {
	ListComplaints(ctx context.Context, tenantID uuid.UUID, filter models.ComplaintFilter) ([]*models.Complaint, error)
	GetComplaint(ctx context.Context, tenantID, id uuid.UUID) (*models.Complaint, error)
	ListActiveZones(ctx context.Context, tenantID uuid.UUID) ([]*models.Zone, error)
	ListCrews(ctx context.Context, tenantID uuid.UUID) ([]*models.Crew, error)
	GetTenantSettings(ctx context.Context, tenantID uuid.UUID) (*models.TenantSettings, error)
}

// AnalyticsService определяет контракт пространственной и агрегированной аналитики
type AnalyticsService interface {
	Heatmap(ctx context.Context, tenantID uuid.UUID, params models.HeatmapParams) ([]models.HeatmapPoint, error)
	Clusters(ctx context.Context, tenantID uuid.UUID, params models.ClusterParams) ([]models.Cluster, error)
	ZoneCoverage(ctx context.Context, tenantID uuid.UUID, lookbackDays int) (*models.CoverageReport, error)
	CrewTravel(ctx context.Context, tenantID uuid.UUID, lookbackDays int) ([]models.CrewTravel, error)
	CategoryResolutionTimes(ctx context.Context, tenantID uuid.UUID, lookbackDays int) ([]models.CategoryResolution, error)
	WeeklyTrend(ctx context.Context, tenantID uuid.UUID, weeks int) ([]models.WeeklyVolume, error)
}

type analyticsService struct {
	repo     ComplaintRepository
	logger   *logrus.Logger
	defaults config.AnalyticsConfig
	now      func() time.Time
}

func NewAnalyticsService(repo ComplaintRepository, logger *logrus.Logger, defaults config.AnalyticsConfig) AnalyticsService {
	return &analyticsService{
		repo:     repo,
		logger:   logger,
		defaults: defaults,
		now:      time.Now,
	}
}

func (s *analyticsService) log(method string, tenantID uuid.UUID) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service":   "analytics",
		"method":    method,
		"tenant_id": tenantID,
	})
}

// since возвращает начало окна в lookbackDays суток от текущего момента
func (s *analyticsService) since(lookbackDays int) *time.Time {
	t := s.now().UTC().AddDate(0, 0, -lookbackDays)
	return &t
}

// Heatmap строит точки тепловой карты по обращениям окна
func (s *analyticsService) Heatmap(ctx context.Context, tenantID uuid.UUID, params models.HeatmapParams) ([]models.HeatmapPoint, error) {
	defer metrics.ObserveComputation("heatmap", time.Now())
	log := s.log("Heatmap", tenantID)

	days, err := lookbackOrDefault(params.LookbackDays, s.defaults.LookbackDays)
	if err != nil {
		return nil, err
	}
	log.WithField("days", days).Info("Building heatmap")

	complaints, err := s.repo.ListComplaints(ctx, tenantID, models.ComplaintFilter{
		CreatedSince: s.since(days),
		CategoryID:   params.CategoryID,
	})
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from repository")
		return nil, fmt.Errorf("service: could not build heatmap: %w", err)
	}
	metrics.ObserveScanned("heatmap", len(complaints))

	points := analytics.HeatmapPoints(complaints)
	log.WithField("points", len(points)).Info("Heatmap built successfully")
	return points, nil
}

// Clusters группирует открытые обращения окна для маршрутизации бригад
func (s *analyticsService) Clusters(ctx context.Context, tenantID uuid.UUID, params models.ClusterParams) ([]models.Cluster, error) {
	defer metrics.ObserveComputation("clusters", time.Now())
	log := s.log("Clusters", tenantID)

	days, err := lookbackOrDefault(params.LookbackDays, s.defaults.LookbackDays)
	if err != nil {
		return nil, err
	}
	radius := params.RadiusKm
	if radius == 0 {
		radius = s.defaults.ClusterRadiusKm
	}
	if radius <= 0 || radius > MaxClusterRadiusKm {
		return nil, fmt.Errorf("%w: radius_km must be in (0, %v]", ErrInvalidParameter, MaxClusterRadiusKm)
	}
	minMembers := params.MinMembers
	if minMembers == 0 {
		minMembers = s.defaults.ClusterMinMembers
	}
	if minMembers < 1 || minMembers > MaxClusterMembers {
		return nil, fmt.Errorf("%w: min_members must be between 1 and %d", ErrInvalidParameter, MaxClusterMembers)
	}

	log = log.WithFields(logrus.Fields{"days": days, "radius_km": radius, "min_members": minMembers})
	log.Info("Building clusters")

	complaints, err := s.repo.ListComplaints(ctx, tenantID, models.ComplaintFilter{
		CreatedSince: s.since(days),
		Statuses:     models.OpenStatuses,
		CategoryID:   params.CategoryID,
	})
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from repository")
		return nil, fmt.Errorf("service: could not build clusters: %w", err)
	}
	metrics.ObserveScanned("clusters", len(complaints))

	clusters := analytics.BuildClusters(complaints, radius, minMembers)
	log.WithField("clusters", len(clusters)).Info("Clusters built successfully")
	return clusters, nil
}

// ZoneCoverage считает индекс внимания по активным зонам
func (s *analyticsService) ZoneCoverage(ctx context.Context, tenantID uuid.UUID, lookbackDays int) (*models.CoverageReport, error) {
	defer metrics.ObserveComputation("zone_coverage", time.Now())
	log := s.log("ZoneCoverage", tenantID)

	days, err := lookbackOrDefault(lookbackDays, s.defaults.LookbackDays)
	if err != nil {
		return nil, err
	}
	log.WithField("days", days).Info("Analyzing zone coverage")

	var (
		zones      []*models.Zone
		complaints []*models.Complaint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		zones, err = s.repo.ListActiveZones(gctx, tenantID)
		return err
	})
	g.Go(func() error {
		var err error
		complaints, err = s.repo.ListComplaints(gctx, tenantID, models.ComplaintFilter{CreatedSince: s.since(days)})
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to fetch coverage snapshot")
		return nil, fmt.Errorf("service: could not analyze zone coverage: %w", err)
	}
	metrics.ObserveScanned("zone_coverage", len(complaints))

	report := analytics.AnalyzeCoverage(zones, complaints)
	log.WithFields(logrus.Fields{
		"zones":  len(report.Zones),
		"alerts": len(report.Alerts),
	}).Info("Zone coverage analyzed successfully")
	return &report, nil
}

// CrewTravel оценивает пробег бригад по решенным обращениям окна
func (s *analyticsService) CrewTravel(ctx context.Context, tenantID uuid.UUID, lookbackDays int) ([]models.CrewTravel, error) {
	defer metrics.ObserveComputation("crew_travel", time.Now())
	log := s.log("CrewTravel", tenantID)

	days, err := lookbackOrDefault(lookbackDays, s.defaults.LookbackDays)
	if err != nil {
		return nil, err
	}
	log.WithField("days", days).Info("Estimating crew travel")

	var (
		crews      []*models.Crew
		settings   *models.TenantSettings
		complaints []*models.Complaint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		crews, err = s.repo.ListCrews(gctx, tenantID)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.repo.GetTenantSettings(gctx, tenantID)
		return err
	})
	g.Go(func() error {
		var err error
		complaints, err = s.repo.ListComplaints(gctx, tenantID, models.ComplaintFilter{
			ResolvedSince: s.since(days),
			Statuses:      []models.ComplaintStatus{models.StatusResolved},
		})
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to fetch crew travel snapshot")
		return nil, fmt.Errorf("service: could not estimate crew travel: %w", err)
	}
	metrics.ObserveScanned("crew_travel", len(complaints))

	office := s.officeLocation(settings)
	travel := analytics.EstimateCrewTravel(crews, complaints, office)
	log.WithField("crews", len(travel)).Info("Crew travel estimated successfully")
	return travel, nil
}

// officeLocation возвращает координаты офиса арендатора или значение по умолчанию
func (s *analyticsService) officeLocation(settings *models.TenantSettings) geo.Point {
	if settings != nil && settings.OfficeLatitude != nil && settings.OfficeLongitude != nil {
		return geo.Point{Lat: *settings.OfficeLatitude, Lon: *settings.OfficeLongitude}
	}
	return geo.Point{Lat: s.defaults.OfficeLatitude, Lon: s.defaults.OfficeLongitude}
}

// CategoryResolutionTimes считает время решения по категориям
func (s *analyticsService) CategoryResolutionTimes(ctx context.Context, tenantID uuid.UUID, lookbackDays int) ([]models.CategoryResolution, error) {
	defer metrics.ObserveComputation("category_resolution", time.Now())
	log := s.log("CategoryResolutionTimes", tenantID)

	days, err := lookbackOrDefault(lookbackDays, s.defaults.ResolutionLookbackDays)
	if err != nil {
		return nil, err
	}
	log.WithField("days", days).Info("Computing category resolution times")

	complaints, err := s.repo.ListComplaints(ctx, tenantID, models.ComplaintFilter{
		ResolvedSince: s.since(days),
		Statuses:      []models.ComplaintStatus{models.StatusResolved},
	})
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from repository")
		return nil, fmt.Errorf("service: could not compute category resolution times: %w", err)
	}
	metrics.ObserveScanned("category_resolution", len(complaints))

	rows := analytics.CategoryResolutionTimes(complaints)
	log.WithField("categories", len(rows)).Info("Category resolution times computed successfully")
	return rows, nil
}

// WeeklyTrend раскладывает поступившие и решенные обращения по неделям
func (s *analyticsService) WeeklyTrend(ctx context.Context, tenantID uuid.UUID, weeks int) ([]models.WeeklyVolume, error) {
	defer metrics.ObserveComputation("weekly_trend", time.Now())
	log := s.log("WeeklyTrend", tenantID)

	if weeks == 0 {
		weeks = s.defaults.TrendWeeks
	}
	if weeks < 1 || weeks > MaxTrendWeeks {
		return nil, fmt.Errorf("%w: weeks must be between 1 and %d", ErrInvalidParameter, MaxTrendWeeks)
	}
	log.WithField("weeks", weeks).Info("Building weekly trend")

	now := s.now().UTC()
	since := now.AddDate(0, 0, -7*weeks)

	// Решенные в окне обращения могли поступить раньше его начала
	var created, resolved []*models.Complaint
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		created, err = s.repo.ListComplaints(gctx, tenantID, models.ComplaintFilter{CreatedSince: &since})
		return err
	})
	g.Go(func() error {
		var err error
		resolved, err = s.repo.ListComplaints(gctx, tenantID, models.ComplaintFilter{
			ResolvedSince: &since,
			Statuses:      []models.ComplaintStatus{models.StatusResolved},
		})
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to fetch trend snapshot")
		return nil, fmt.Errorf("service: could not build weekly trend: %w", err)
	}

	complaints := mergeComplaints(created, resolved)
	metrics.ObserveScanned("weekly_trend", len(complaints))

	trend := analytics.WeeklyTrend(complaints, weeks, now)
	log.Info("Weekly trend built successfully")
	return trend, nil
}

// mergeComplaints объединяет выборки без дубликатов, сохраняя порядок
func mergeComplaints(sets ...[]*models.Complaint) []*models.Complaint {
	seen := make(map[uuid.UUID]struct{})
	merged := make([]*models.Complaint, 0)
	for _, set := range sets {
		for _, c := range set {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			merged = append(merged, c)
		}
	}
	return merged
}

// lookbackOrDefault подставляет значение по умолчанию вместо нуля и проверяет диапазон
func lookbackOrDefault(days, def int) (int, error) {
	if days == 0 {
		days = def
	}
	if days < 1 || days > MaxLookbackDays {
		return 0, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidParameter, MaxLookbackDays)
	}
	return days, nil
}
