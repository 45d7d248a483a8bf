package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/internal/service"
)

type SLAConfigRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewSLAConfigRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.SLAConfigRepository {
	return &SLAConfigRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func slaConfigCacheKey(tenantID uuid.UUID) string {
	return fmt.Sprintf("sla_configs:%s", tenantID.String())
}

// ListSLAConfigs возвращает все строки конфигурации SLA арендатора, включая неактивные
func (r *SLAConfigRepository) ListSLAConfigs(ctx context.Context, tenantID uuid.UUID) ([]*models.SLAConfig, error) {
	query := `
		SELECT
			id,
			tenant_id,
			category_id,
			priority,
			response_hours,
			resolution_hours,
			warning_threshold_hours,
			is_active
		FROM sla_configs
		WHERE tenant_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sla configs: %w", err)
	}
	defer rows.Close()

	configs := make([]*models.SLAConfig, 0)
	for rows.Next() {
		cfg := &models.SLAConfig{}
		err := rows.Scan(
			&cfg.ID,
			&cfg.TenantID,
			&cfg.CategoryID,
			&cfg.Priority,
			&cfg.ResponseHours,
			&cfg.ResolutionHours,
			&cfg.WarningThresholdHours,
			&cfg.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sla config row: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error sla config iteration: %w", err)
	}
	return configs, nil
}

// GetSLAConfigsFromCache пытается получить строки конфигурации из Redis.
// Промах кэша - (nil, nil).
func (r *SLAConfigRepository) GetSLAConfigsFromCache(ctx context.Context, tenantID uuid.UUID) ([]*models.SLAConfig, error) {
	val, err := r.redisClient.Get(ctx, slaConfigCacheKey(tenantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sla configs from cache: %w", err)
	}

	configs := make([]*models.SLAConfig, 0)
	if err := json.Unmarshal(val, &configs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sla configs from cache: %w", err)
	}
	return configs, nil
}

// SetSLAConfigsCache сохраняет строки конфигурации в Redis
func (r *SLAConfigRepository) SetSLAConfigsCache(ctx context.Context, tenantID uuid.UUID, configs []*models.SLAConfig) error {
	if configs == nil {
		configs = make([]*models.SLAConfig, 0)
	}
	val, err := json.Marshal(configs)
	if err != nil {
		return fmt.Errorf("failed to marshal sla configs for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, slaConfigCacheKey(tenantID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set sla configs in cache: %w", err)
	}
	return nil
}
