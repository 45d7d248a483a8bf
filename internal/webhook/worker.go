package webhook

//go:generate mockgen -source=worker.go -destination=mocks/worker.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/complaint_analytics/internal/metrics"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Webhook-Signature"
	pollTimeout     = time.Second
)

// ReportBuilder строит агрегат по запросу на отчет
type ReportBuilder interface {
	BuildReport(ctx context.Context, req models.ReportRequest) (any, error)
}

// ReportDelivery - тело, отправляемое во внешний webhook
type ReportDelivery struct {
	Request     models.ReportRequest `json:"request"`
	GeneratedAt time.Time            `json:"generated_at"`
	Payload     any                  `json:"payload"`
}

// WorkerConfig - параметры доставки отчетов
type WorkerConfig struct {
	URL        string
	Secret     string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// ReportWorker - структура для обработки очереди отчетов и их доставки
type ReportWorker struct {
	redisClient *redis.Client
	builder     ReportBuilder
	logger      *logrus.Logger
	cfg         WorkerConfig
	httpClient  *http.Client
	now         func() time.Time
	done        chan struct{}
}

// NewReportWorker создает новый ReportWorker
func NewReportWorker(redisClient *redis.Client, builder ReportBuilder, logger *logrus.Logger, cfg WorkerConfig) *ReportWorker {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return &ReportWorker{
		redisClient: redisClient,
		builder:     builder,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		now:  time.Now,
		done: make(chan struct{}),
	}
}

// Done закрывается, когда воркер остановлен
func (w *ReportWorker) Done() <-chan struct{} {
	return w.done
}

// Start запускает горутину для обработки очереди отчетов
func (w *ReportWorker) Start(ctx context.Context) {
	w.logger.Info("Starting report worker...")
	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping report worker.")
				return
			default:
			}

			// BRPOP с ограниченным ожиданием, чтобы цикл видел отмену контекста
			result, err := w.redisClient.BRPop(ctx, pollTimeout, reportQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop report request from Redis")
				w.sleep(ctx, w.cfg.BaseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			var req models.ReportRequest
			if err := json.Unmarshal([]byte(result[1]), &req); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal report request from Redis")
				continue
			}

			w.process(ctx, req)
		}
	}()
}

func (w *ReportWorker) process(ctx context.Context, req models.ReportRequest) {
	log := w.logger.WithFields(logrus.Fields{
		"request_id": req.ID,
		"tenant_id":  req.TenantID,
		"kind":       req.Kind,
	})
	log.Debug("Processing report request...")

	if w.cfg.URL == "" {
		log.Warn("Report webhook URL is not configured. Skipping report delivery.")
		metrics.ReportsDeliveredTotal.WithLabelValues(string(req.Kind), "skipped").Inc()
		return
	}

	payload, err := w.builder.BuildReport(ctx, req)
	if err != nil {
		log.WithError(err).Error("Failed to build report")
		metrics.ReportsDeliveredTotal.WithLabelValues(string(req.Kind), "build_error").Inc()
		return
	}

	body, err := json.Marshal(ReportDelivery{
		Request:     req,
		GeneratedAt: w.now().UTC(),
		Payload:     payload,
	})
	if err != nil {
		log.WithError(err).Error("Failed to marshal report delivery")
		metrics.ReportsDeliveredTotal.WithLabelValues(string(req.Kind), "build_error").Inc()
		return
	}

	if err := w.deliver(ctx, log, body); err != nil {
		log.WithError(err).Errorf("Failed to deliver report after %d retries.", w.cfg.MaxRetries)
		metrics.ReportsDeliveredTotal.WithLabelValues(string(req.Kind), "failed").Inc()
		return
	}
	log.Info("Report delivered successfully.")
	metrics.ReportsDeliveredTotal.WithLabelValues(string(req.Kind), "delivered").Inc()
}

// deliver отправляет тело с экспоненциальной задержкой между попытками
func (w *ReportWorker) deliver(ctx context.Context, log *logrus.Entry, body []byte) error {
	delay := w.cfg.BaseDelay
	var lastErr error

	for i := 0; i < w.cfg.MaxRetries; i++ {
		if i > 0 {
			log.WithError(lastErr).Warnf("Retrying report delivery in %v. Retries left: %d", delay, w.cfg.MaxRetries-i)
			if !w.sleep(ctx, delay) {
				return ctx.Err()
			}
			delay *= 2 // Экспоненциальная задержка
		}

		lastErr = w.send(ctx, body)
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func (w *ReportWorker) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если секрет задан
	if w.cfg.Secret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(body, w.cfg.Secret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// sleep ждет d или отмены контекста; false - контекст отменен
func (w *ReportWorker) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
