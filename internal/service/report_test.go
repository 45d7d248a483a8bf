package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/internal/service/mocks"
	webhook_mocks "github.com/shenikar/complaint_analytics/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestReportService(t *testing.T) (*reportService, *mocks.MockAnalyticsService, *mocks.MockSLAService, *webhook_mocks.MockReportPublisher) {
	ctrl := gomock.NewController(t)
	analyticsMock := mocks.NewMockAnalyticsService(ctrl)
	slaMock := mocks.NewMockSLAService(ctrl)
	publisherMock := webhook_mocks.NewMockReportPublisher(ctrl)

	service := NewReportService(analyticsMock, slaMock, publisherMock, testLogger())
	impl := service.(*reportService)
	impl.now = func() time.Time { return fixedNow }
	return impl, analyticsMock, slaMock, publisherMock
}

func TestDispatch_Success(t *testing.T) {
	// Подготовка
	service, _, _, publisherMock := newTestReportService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	var published models.ReportRequest

	// Ожидания
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ReportRequest) error {
			published = req
			return nil
		}).
		Times(1)

	// Действие
	req, err := service.Dispatch(ctx, tenantID, models.ReportZoneCoverage, 14)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, *req, published)
	assert.NotEqual(t, uuid.Nil, req.ID)
	assert.Equal(t, tenantID, req.TenantID)
	assert.Equal(t, models.ReportZoneCoverage, req.Kind)
	assert.Equal(t, 14, req.LookbackDays)
	assert.Equal(t, fixedNow, req.RequestedAt)
}

func TestDispatch_Validation(t *testing.T) {
	tests := map[string]struct {
		kind models.ReportKind
		days int
		err  error
	}{
		"unknown kind":          {kind: "pdf_export", days: 30, err: ErrUnknownReportKind},
		"negative days":         {kind: models.ReportClusters, days: -1, err: ErrInvalidParameter},
		"days too large":        {kind: models.ReportCrewTravel, days: MaxLookbackDays + 1, err: ErrInvalidParameter},
		"trend window too long": {kind: models.ReportWeeklyTrend, days: (MaxTrendWeeks + 1) * 7, err: ErrInvalidParameter},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			service, _, _, _ := newTestReportService(t)

			req, err := service.Dispatch(context.Background(), uuid.New(), tc.kind, tc.days)

			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, req)
		})
	}
}

func TestDispatch_PublishError(t *testing.T) {
	service, _, _, publisherMock := newTestReportService(t)
	queueErr := errors.New("redis unavailable")

	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(queueErr)

	_, err := service.Dispatch(context.Background(), uuid.New(), models.ReportSLASummary, 0)

	assert.ErrorIs(t, err, queueErr)
}

func TestBuildReport_RoutesByKind(t *testing.T) {
	service, analyticsMock, slaMock, _ := newTestReportService(t)
	ctx := context.Background()
	tenantID := uuid.New()

	summary := &models.ComplianceSummary{TotalActive: 3, ComplianceRate: 100}
	coverage := &models.CoverageReport{GrandTotal: 7}
	travel := []models.CrewTravel{{CrewName: "B1"}}
	clusters := []models.Cluster{{Count: 4}}
	categories := []models.CategoryResolution{{CategoryName: "baches"}}
	trend := []models.WeeklyVolume{{CreatedCount: 2}}

	slaMock.EXPECT().ComplianceSummary(ctx, tenantID, 0).Return(summary, nil)
	analyticsMock.EXPECT().ZoneCoverage(ctx, tenantID, 30).Return(coverage, nil)
	analyticsMock.EXPECT().CrewTravel(ctx, tenantID, 30).Return(travel, nil)
	analyticsMock.EXPECT().Clusters(ctx, tenantID, models.ClusterParams{LookbackDays: 30}).Return(clusters, nil)
	analyticsMock.EXPECT().CategoryResolutionTimes(ctx, tenantID, 30).Return(categories, nil)
	analyticsMock.EXPECT().WeeklyTrend(ctx, tenantID, 5).Return(trend, nil)

	tests := map[models.ReportKind]any{
		models.ReportSLASummary:         summary,
		models.ReportZoneCoverage:       coverage,
		models.ReportCrewTravel:         travel,
		models.ReportClusters:           clusters,
		models.ReportCategoryResolution: categories,
		models.ReportWeeklyTrend:        trend,
	}

	for kind, expected := range tests {
		t.Run(string(kind), func(t *testing.T) {
			payload, err := service.BuildReport(ctx, models.ReportRequest{ID: uuid.New(), TenantID: tenantID, Kind: kind, LookbackDays: 30})

			require.NoError(t, err)
			assert.Equal(t, expected, payload)
		})
	}
}

func TestBuildReport_UnknownKind(t *testing.T) {
	service, _, _, _ := newTestReportService(t)

	_, err := service.BuildReport(context.Background(), models.ReportRequest{Kind: "unknown"})

	assert.ErrorIs(t, err, ErrUnknownReportKind)
}

func TestBuildReport_PropagatesError(t *testing.T) {
	service, analyticsMock, _, _ := newTestReportService(t)
	dbErr := errors.New("db gone")

	analyticsMock.EXPECT().CrewTravel(gomock.Any(), gomock.Any(), 0).Return(nil, dbErr)

	_, err := service.BuildReport(context.Background(), models.ReportRequest{Kind: models.ReportCrewTravel})

	assert.ErrorIs(t, err, dbErr)
}

func TestWeeksForDays(t *testing.T) {
	assert.Equal(t, 0, weeksForDays(0))
	assert.Equal(t, 1, weeksForDays(1))
	assert.Equal(t, 1, weeksForDays(7))
	assert.Equal(t, 2, weeksForDays(8))
}
