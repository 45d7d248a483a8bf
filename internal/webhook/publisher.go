package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/complaint_analytics/internal/models"
)

const (
	reportQueueKey = "analytics_report_requests"
)

// ReportPublisher - интерфейс для постановки запросов на отчет в очередь
type ReportPublisher interface {
	Publish(ctx context.Context, req models.ReportRequest) error
}

// RedisReportPublisher - реализация ReportPublisher, использующая Redis
type RedisReportPublisher struct {
	redisClient *redis.Client
}

// NewRedisReportPublisher создает новый RedisReportPublisher
func NewRedisReportPublisher(client *redis.Client) *RedisReportPublisher {
	return &RedisReportPublisher{
		redisClient: client,
	}
}

// Publish публикует запрос на отчет в очередь Redis
func (p *RedisReportPublisher) Publish(ctx context.Context, req models.ReportRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal report request: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, reportQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish report request to Redis: %w", err)
	}
	return nil
}
