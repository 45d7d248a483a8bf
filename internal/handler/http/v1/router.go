package v1

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/complaint_analytics/internal/metrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	tenant := api.Group("/tenants/:tenant_id")
	tenant.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	analytics := tenant.Group("/analytics")
	{
		analytics.GET("/heatmap", h.getHeatmap)
		analytics.GET("/clusters", h.getClusters)
		analytics.GET("/zones/coverage", h.getZoneCoverage)
		analytics.GET("/crews/travel", h.getCrewTravel)
		analytics.GET("/categories/resolution-times", h.getCategoryResolutionTimes)
		analytics.GET("/trend", h.getWeeklyTrend)
	}

	sla := tenant.Group("/sla")
	{
		sla.GET("/thresholds", h.getSLAThresholds)
		sla.GET("/complaints", h.listComplaintSLA)
		sla.GET("/complaints/:complaint_id", h.getComplaintSLA)
		sla.GET("/summary", h.getSLASummary)
	}

	tenant.POST("/reports", h.createReport)
}

// NewRouter собирает gin.Engine со служебными маршрутами и middleware
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(h.logger))
	r.Use(Metrics())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(h.cfg.CORSAllowedOrigins) == 0 || slices.Contains(h.cfg.CORSAllowedOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = h.cfg.CORSAllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")
	h.RegisterRoutes(api)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
