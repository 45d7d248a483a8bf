package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/config"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	analyticsService service.AnalyticsService
	slaService       service.SLAService
	reportService    service.ReportService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(analyticsService service.AnalyticsService, slaService service.SLAService, reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		analyticsService: analyticsService,
		slaService:       slaService,
		reportService:    reportService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// tenantID разбирает идентификатор арендатора из пути; при ошибке ответ уже отправлен
func (h *Handler) tenantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return uuid.Nil, false
	}
	return id, true
}

// bindQuery разбирает и валидирует параметры строки запроса
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParameter), errors.Is(err, service.ErrUnknownReportKind):
		log.WithError(err).Warn("Rejected request parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Complaint heatmap
// @Description Weighted points for heatmap rendering. Requires API key.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param days query int false "Lookback window in days" default(30)
// @Param category_id query string false "Category filter"
// @Success 200 {object} HeatmapResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/analytics/heatmap [get]
func (h *Handler) getHeatmap(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getHeatmap").WithField("tenant_id", tenantID)

	var q HeatmapQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	points, err := h.analyticsService.Heatmap(c.Request.Context(), tenantID, HeatmapQueryToParams(q))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, HeatmapResponse{Count: len(points), Points: points})
}

// @Summary Complaint clusters
// @Description Greedy spatial clusters of open complaints for crew routing. Requires API key.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param radius_km query number false "Cluster radius in km" default(0.5)
// @Param min_members query int false "Minimum cluster size" default(3)
// @Param days query int false "Lookback window in days" default(30)
// @Param category_id query string false "Category filter"
// @Success 200 {object} ClustersResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/analytics/clusters [get]
func (h *Handler) getClusters(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getClusters").WithField("tenant_id", tenantID)

	var q ClustersQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	clusters, err := h.analyticsService.Clusters(c.Request.Context(), tenantID, ClustersQueryToParams(q))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ClustersResponse{Count: len(clusters), Clusters: clusters})
}

// @Summary Zone coverage
// @Description Attention index per active zone, worst first, with critical alerts. Requires API key.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param days query int false "Lookback window in days" default(30)
// @Success 200 {object} models.CoverageReport
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/analytics/zones/coverage [get]
func (h *Handler) getZoneCoverage(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getZoneCoverage").WithField("tenant_id", tenantID)

	var q DaysQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	report, err := h.analyticsService.ZoneCoverage(c.Request.Context(), tenantID, q.Days)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Crew travel estimate
// @Description Temporal-order round trip distance per crew. Requires API key.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param days query int false "Lookback window in days" default(30)
// @Success 200 {object} CrewTravelResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/analytics/crews/travel [get]
func (h *Handler) getCrewTravel(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCrewTravel").WithField("tenant_id", tenantID)

	var q DaysQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	travel, err := h.analyticsService.CrewTravel(c.Request.Context(), tenantID, q.Days)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CrewTravelResponse{Count: len(travel), Crews: travel})
}

// @Summary Category resolution times
// @Description Average and max resolution hours per category. Requires API key.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param days query int false "Lookback window in days" default(90)
// @Success 200 {object} CategoryResolutionResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/analytics/categories/resolution-times [get]
func (h *Handler) getCategoryResolutionTimes(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCategoryResolutionTimes").WithField("tenant_id", tenantID)

	var q DaysQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	rows, err := h.analyticsService.CategoryResolutionTimes(c.Request.Context(), tenantID, q.Days)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CategoryResolutionResponse{Count: len(rows), Categories: rows})
}

// @Summary Weekly trend
// @Description Created and resolved complaints per week, oldest first. Requires API key.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param weeks query int false "Number of weeks" default(4)
// @Success 200 {object} TrendResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/analytics/trend [get]
func (h *Handler) getWeeklyTrend(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getWeeklyTrend").WithField("tenant_id", tenantID)

	var q TrendQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	trend, err := h.analyticsService.WeeklyTrend(c.Request.Context(), tenantID, q.Weeks)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TrendResponse{Weeks: trend})
}

// @Summary Resolve SLA thresholds
// @Description Thresholds for a category and priority with the configuration level they came from. Requires API key.
// @Tags SLA
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param category_id query string false "Category ID"
// @Param priority query int false "Priority 1..5"
// @Success 200 {object} models.SLAThresholds
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/sla/thresholds [get]
func (h *Handler) getSLAThresholds(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSLAThresholds").WithField("tenant_id", tenantID)

	var q ThresholdsQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	th, err := h.slaService.ResolveThresholds(c.Request.Context(), tenantID, parseOptionalUUID(q.CategoryID), q.Priority)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, th)
}

// @Summary Active complaints SLA
// @Description SLA snapshots for all active complaints, most overdue first. Requires API key.
// @Tags SLA
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} ActiveSLAResponse
// @Failure 400 {object} map[string]string "Invalid tenant ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/sla/complaints [get]
func (h *Handler) listComplaintSLA(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listComplaintSLA").WithField("tenant_id", tenantID)

	items, err := h.slaService.ActiveSLA(c.Request.Context(), tenantID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ActiveSLAResponse{Count: len(items), Complaints: items})
}

// @Summary Complaint SLA
// @Description SLA snapshot of a single complaint. Requires API key.
// @Tags SLA
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param complaint_id path string true "Complaint ID"
// @Success 200 {object} models.ComplaintSLA
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/sla/complaints/{complaint_id} [get]
func (h *Handler) getComplaintSLA(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	complaintID, err := uuid.Parse(c.Param("complaint_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint ID"})
		return
	}
	log := h.logger.WithField("method", "getComplaintSLA").WithField("complaint_id", complaintID)

	item, err := h.slaService.ComplaintSLA(c.Request.Context(), tenantID, complaintID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary SLA compliance summary
// @Description Counts per SLA state, compliance rate and most overdue complaints. Requires API key.
// @Tags SLA
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param top query int false "Number of alerts" default(5)
// @Success 200 {object} models.ComplianceSummary
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/sla/summary [get]
func (h *Handler) getSLASummary(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSLASummary").WithField("tenant_id", tenantID)

	var q SummaryQuery
	if !h.bindQuery(c, log, &q) {
		return
	}

	summary, err := h.slaService.ComplianceSummary(c.Request.Context(), tenantID, q.Top)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Request a report
// @Description Queue an aggregate for delivery to the export webhook. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param tenant_id path string true "Tenant ID"
// @Param report body CreateReportRequest true "Report request"
// @Success 202 {object} ReportAcceptedResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/reports [post]
func (h *Handler) createReport(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createReport").WithField("tenant_id", tenantID)

	var input CreateReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := h.reportService.Dispatch(c.Request.Context(), tenantID, models.ReportKind(input.Kind), input.Days)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ModelToReportAcceptedResponse(req))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
