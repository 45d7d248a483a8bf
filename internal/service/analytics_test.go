package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/config"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestAnalyticsService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestAnalyticsService(t *testing.T) (*analyticsService, *mocks.MockComplaintRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockComplaintRepository(ctrl)

	service := NewAnalyticsService(repoMock, testLogger(), config.DefaultAnalyticsConfig())
	impl := service.(*analyticsService)
	impl.now = func() time.Time { return fixedNow }
	return impl, repoMock
}

func located(lat, lon float64, status models.ComplaintStatus) *models.Complaint {
	return &models.Complaint{
		ID:        uuid.New(),
		Latitude:  ptr(lat),
		Longitude: ptr(lon),
		Status:    status,
		CreatedAt: fixedNow.Add(-time.Hour),
	}
}

func TestHeatmap_DefaultWindow(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	category := uuid.New()
	since := fixedNow.AddDate(0, 0, -30)
	complaint := located(19.43, -99.13, models.StatusNew)
	complaint.Priority = ptr(1)

	// Ожидания
	repoMock.EXPECT().
		ListComplaints(ctx, tenantID, models.ComplaintFilter{CreatedSince: &since, CategoryID: &category}).
		Return([]*models.Complaint{complaint, {ID: uuid.New(), Status: models.StatusNew}}, nil).
		Times(1)

	// Действие
	points, err := service.Heatmap(ctx, tenantID, models.HeatmapParams{CategoryID: &category})

	// Проверки
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, complaint.ID, points[0].ComplaintID)
	assert.Equal(t, 1.5, points[0].Intensity)
}

func TestHeatmap_InvalidDays(t *testing.T) {
	service, _ := newTestAnalyticsService(t)

	_, err := service.Heatmap(context.Background(), uuid.New(), models.HeatmapParams{LookbackDays: -1})

	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestHeatmap_RepositoryError(t *testing.T) {
	service, repoMock := newTestAnalyticsService(t)
	dbErr := errors.New("connection refused")

	repoMock.EXPECT().ListComplaints(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	points, err := service.Heatmap(context.Background(), uuid.New(), models.HeatmapParams{})

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, points)
}

func TestClusters_FiltersOpenStatuses(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	since := fixedNow.AddDate(0, 0, -7)
	complaints := []*models.Complaint{
		located(19.4300, -99.1300, models.StatusNew),
		located(19.4300, -99.1300, models.StatusAssigned),
		located(19.4300, -99.1300, models.StatusNew),
	}

	// Ожидания
	repoMock.EXPECT().
		ListComplaints(ctx, tenantID, models.ComplaintFilter{CreatedSince: &since, Statuses: models.OpenStatuses}).
		Return(complaints, nil)

	// Действие
	clusters, err := service.Clusters(ctx, tenantID, models.ClusterParams{LookbackDays: 7})

	// Проверки
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, 3, clusters[0].Count)
	assert.Equal(t, 0.5, clusters[0].RadiusKm)
}

func TestClusters_InvalidParameters(t *testing.T) {
	tests := map[string]models.ClusterParams{
		"negative radius":      {RadiusKm: -1},
		"radius too large":     {RadiusKm: MaxClusterRadiusKm + 1},
		"negative min members": {MinMembers: -2},
		"lookback too large":   {LookbackDays: MaxLookbackDays + 1},
	}

	for name, params := range tests {
		t.Run(name, func(t *testing.T) {
			service, _ := newTestAnalyticsService(t)

			_, err := service.Clusters(context.Background(), uuid.New(), params)

			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestZoneCoverage(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAnalyticsService(t)
	tenantID := uuid.New()
	zone := &models.Zone{ID: uuid.New(), Name: "Centro", IsActive: true}
	empty := &models.Zone{ID: uuid.New(), Name: "Norte", IsActive: true}
	since := fixedNow.AddDate(0, 0, -30)

	complaints := make([]*models.Complaint, 0)
	for i := 0; i < 10; i++ {
		status := models.StatusNew
		if i < 4 {
			status = models.StatusResolved
		}
		complaints = append(complaints, &models.Complaint{ID: uuid.New(), Status: status, ZoneID: &zone.ID})
	}

	// Ожидания
	repoMock.EXPECT().ListActiveZones(gomock.Any(), tenantID).Return([]*models.Zone{zone, empty}, nil)
	repoMock.EXPECT().
		ListComplaints(gomock.Any(), tenantID, models.ComplaintFilter{CreatedSince: &since}).
		Return(complaints, nil)

	// Действие
	report, err := service.ZoneCoverage(context.Background(), tenantID, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 10, report.GrandTotal)
	require.Len(t, report.Zones, 2)
	assert.Equal(t, zone.ID, report.Zones[0].ZoneID)
	assert.Equal(t, 40.0, report.Zones[0].ResolutionRate)
	assert.Equal(t, 100.0, report.Zones[1].AttentionIndex)
}

func TestZoneCoverage_FailsFast(t *testing.T) {
	service, repoMock := newTestAnalyticsService(t)
	dbErr := errors.New("zones table unavailable")

	repoMock.EXPECT().ListActiveZones(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	repoMock.EXPECT().ListComplaints(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*models.Complaint{}, nil).AnyTimes()

	report, err := service.ZoneCoverage(context.Background(), uuid.New(), 30)

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, report)
}

func TestCrewTravel_UsesTenantOffice(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAnalyticsService(t)
	tenantID := uuid.New()
	crew := &models.Crew{ID: uuid.New(), Name: "Brigada 1"}
	resolvedAt := fixedNow.Add(-2 * time.Hour)
	complaint := located(10.0, 20.0, models.StatusResolved)
	complaint.CrewID = &crew.ID
	complaint.ResolvedAt = &resolvedAt

	// Ожидания
	repoMock.EXPECT().ListCrews(gomock.Any(), tenantID).Return([]*models.Crew{crew}, nil)
	repoMock.EXPECT().GetTenantSettings(gomock.Any(), tenantID).Return(&models.TenantSettings{
		TenantID:        tenantID,
		OfficeLatitude:  ptr(10.0),
		OfficeLongitude: ptr(20.0),
	}, nil)
	repoMock.EXPECT().ListComplaints(gomock.Any(), tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter models.ComplaintFilter) ([]*models.Complaint, error) {
			assert.Equal(t, []models.ComplaintStatus{models.StatusResolved}, filter.Statuses)
			assert.NotNil(t, filter.ResolvedSince)
			assert.Nil(t, filter.CreatedSince)
			return []*models.Complaint{complaint}, nil
		})

	// Действие
	travel, err := service.CrewTravel(context.Background(), tenantID, 0)

	// Проверки
	require.NoError(t, err)
	require.Len(t, travel, 1)
	assert.Equal(t, "Brigada 1", travel[0].CrewName)
	assert.Equal(t, 0.0, travel[0].TotalDistanceKm)
}

func TestOfficeLocation_Fallback(t *testing.T) {
	service, _ := newTestAnalyticsService(t)

	office := service.officeLocation(&models.TenantSettings{OfficeLatitude: ptr(1.0)})

	assert.Equal(t, config.DefaultOfficeLatitude, office.Lat)
	assert.Equal(t, config.DefaultOfficeLongitude, office.Lon)
}

func TestCategoryResolutionTimes_DefaultWindow(t *testing.T) {
	service, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	since := fixedNow.AddDate(0, 0, -90)

	repoMock.EXPECT().
		ListComplaints(ctx, tenantID, models.ComplaintFilter{
			ResolvedSince: &since,
			Statuses:      []models.ComplaintStatus{models.StatusResolved},
		}).
		Return([]*models.Complaint{}, nil)

	rows, err := service.CategoryResolutionTimes(ctx, tenantID, 0)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWeeklyTrend_MergesSnapshots(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAnalyticsService(t)
	tenantID := uuid.New()
	since := fixedNow.AddDate(0, 0, -14)

	resolvedAt := fixedNow.Add(-24 * time.Hour)
	both := &models.Complaint{ID: uuid.New(), Status: models.StatusResolved, CreatedAt: fixedNow.Add(-48 * time.Hour), ResolvedAt: &resolvedAt}
	old := &models.Complaint{ID: uuid.New(), Status: models.StatusResolved, CreatedAt: fixedNow.AddDate(0, 0, -40), ResolvedAt: &resolvedAt}
	fresh := &models.Complaint{ID: uuid.New(), Status: models.StatusNew, CreatedAt: fixedNow.AddDate(0, 0, -10)}

	// Ожидания
	repoMock.EXPECT().
		ListComplaints(gomock.Any(), tenantID, models.ComplaintFilter{CreatedSince: &since}).
		Return([]*models.Complaint{fresh, both}, nil)
	repoMock.EXPECT().
		ListComplaints(gomock.Any(), tenantID, models.ComplaintFilter{
			ResolvedSince: &since,
			Statuses:      []models.ComplaintStatus{models.StatusResolved},
		}).
		Return([]*models.Complaint{both, old}, nil)

	// Действие
	trend, err := service.WeeklyTrend(context.Background(), tenantID, 2)

	// Проверки
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, 1, trend[0].CreatedCount)
	assert.Equal(t, 0, trend[0].ResolvedCount)
	assert.Equal(t, 1, trend[1].CreatedCount)
	assert.Equal(t, 2, trend[1].ResolvedCount)
}

func TestWeeklyTrend_InvalidWeeks(t *testing.T) {
	service, _ := newTestAnalyticsService(t)

	_, err := service.WeeklyTrend(context.Background(), uuid.New(), MaxTrendWeeks+1)

	assert.ErrorIs(t, err, ErrInvalidParameter)
}
