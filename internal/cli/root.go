// Package cli содержит команды analyticsctl: миграции и разовые расчеты аналитики из терминала.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/config"
	"github.com/shenikar/complaint_analytics/internal/repository"
	"github.com/shenikar/complaint_analytics/internal/service"
	"github.com/shenikar/complaint_analytics/pkg/logger"
	"github.com/shenikar/complaint_analytics/pkg/postgres"
	redisclient "github.com/shenikar/complaint_analytics/pkg/redis"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Services - сервисы, которые нужны командам расчета
type Services struct {
	Analytics service.AnalyticsService
	SLA       service.SLAService
}

// Runtime собирает внешние зависимости CLI; в тестах подменяется целиком
type Runtime struct {
	LoadConfig func() (*config.Config, error)
	Services   func(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Services, func(), error)
	Migrate    func(sourceURL, databaseURL string) (bool, error)
}

// DefaultRuntime подключается к PostgreSQL и Redis по конфигурации из окружения
func DefaultRuntime() Runtime {
	return Runtime{
		LoadConfig: config.LoadConfig,
		Services:   connectServices,
		Migrate:    postgres.RunMigrations,
	}
}

func connectServices(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Services, func(), error) {
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		dbpool.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	complaintRepo := repository.NewComplaintRepository(dbpool)
	slaConfigRepo := repository.NewSLAConfigRepository(dbpool, redisClient, cfg.SLAConfigCacheTTL)

	services := &Services{
		Analytics: service.NewAnalyticsService(complaintRepo, log, cfg.Analytics),
		SLA:       service.NewSLAService(complaintRepo, slaConfigRepo, log),
	}
	cleanup := func() {
		_ = redisClient.Close()
		dbpool.Close()
	}
	return services, cleanup, nil
}

type rootOptions struct {
	tenant   string
	logLevel string
	timeout  time.Duration
}

// session - загруженная конфигурация и логгер одного запуска
type session struct {
	rt   Runtime
	opts *rootOptions
	cfg  *config.Config
	log  *logrus.Logger
}

// NewRootCommand создает корневую команду со всеми подкомандами
func NewRootCommand(rt Runtime) *cobra.Command {
	opts := &rootOptions{}
	s := &session{rt: rt, opts: opts}

	cmd := &cobra.Command{
		Use:   "analyticsctl",
		Short: "Complaint analytics and SLA tooling",
		Long:  "analyticsctl runs database migrations and computes complaint analytics\nfor a single tenant, printing the result as JSON.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.tenant, "tenant", "", "tenant ID")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")

	cmd.AddCommand(
		newMigrateCmd(s),
		newHeatmapCmd(s),
		newClustersCmd(s),
		newCoverageCmd(s),
		newCrewTravelCmd(s),
		newResolutionTimesCmd(s),
		newTrendCmd(s),
		newSLASummaryCmd(s),
		newSLAComplaintCmd(s),
	)
	return cmd
}

// Execute запускает CLI с зависимостями по умолчанию
func Execute(ctx context.Context) error {
	return NewRootCommand(DefaultRuntime()).ExecuteContext(ctx)
}

func (s *session) init(cmd *cobra.Command) error {
	cfg, err := s.rt.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	level := cfg.LogLevel
	if s.opts.logLevel != "" {
		level = s.opts.logLevel
	}
	s.cfg = cfg
	s.log = logger.New(level, cfg.LogFormat)
	// stdout занят результатом
	s.log.SetOutput(cmd.ErrOrStderr())
	return nil
}

func (s *session) tenantID() (uuid.UUID, error) {
	if s.opts.tenant == "" {
		return uuid.Nil, fmt.Errorf("--tenant is required")
	}
	id, err := uuid.Parse(s.opts.tenant)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid tenant ID %q: %w", s.opts.tenant, err)
	}
	return id, nil
}

// run подключает сервисы, выполняет расчет и печатает результат
func (s *session) run(cmd *cobra.Command, compute func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error)) error {
	tenantID, err := s.tenantID()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), s.opts.timeout)
	defer cancel()

	svc, cleanup, err := s.rt.Services(ctx, s.cfg, s.log)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := compute(ctx, svc, tenantID)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
