package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/shenikar/complaint_analytics/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var generatedAt = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func newTestWorker(t *testing.T, cfg WorkerConfig) (*ReportWorker, *mocks.MockReportBuilder) {
	ctrl := gomock.NewController(t)
	builder := mocks.NewMockReportBuilder(ctrl)
	client, _ := newTestRedis(t)

	worker := NewReportWorker(client, builder, testLogger(), cfg)
	worker.now = func() time.Time { return generatedAt }
	return worker, builder
}

func sampleRequest() models.ReportRequest {
	return models.ReportRequest{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		Kind:         models.ReportSLASummary,
		LookbackDays: 0,
		RequestedAt:  generatedAt.Add(-time.Minute),
	}
}

func TestProcess_DeliversSignedReport(t *testing.T) {
	// Подготовка
	var (
		body      []byte
		signature string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		signature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker, builder := newTestWorker(t, WorkerConfig{URL: server.URL, Secret: "s3cret", MaxRetries: 3, BaseDelay: time.Millisecond})
	req := sampleRequest()
	summary := &models.ComplianceSummary{TotalActive: 2, OK: 2, ComplianceRate: 100}

	// Ожидания
	builder.EXPECT().BuildReport(gomock.Any(), req).Return(summary, nil).Times(1)

	// Действие
	worker.process(context.Background(), req)

	// Проверки
	require.NotEmpty(t, body)
	assert.Equal(t, generateHMACSHA256(body, "s3cret"), signature)

	var delivered struct {
		Request     models.ReportRequest     `json:"request"`
		GeneratedAt time.Time                `json:"generated_at"`
		Payload     models.ComplianceSummary `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(body, &delivered))
	assert.Equal(t, req, delivered.Request)
	assert.Equal(t, generatedAt, delivered.GeneratedAt)
	assert.Equal(t, 100.0, delivered.Payload.ComplianceRate)
}

func TestProcess_SkipsWithoutURL(t *testing.T) {
	worker, _ := newTestWorker(t, WorkerConfig{MaxRetries: 3})

	// builder не должен вызываться
	worker.process(context.Background(), sampleRequest())
}

func TestProcess_BuildErrorIsNotDelivered(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	worker, builder := newTestWorker(t, WorkerConfig{URL: server.URL, MaxRetries: 3})
	builder.EXPECT().BuildReport(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	worker.process(context.Background(), sampleRequest())

	assert.Equal(t, int32(0), calls.Load())
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, _ := newTestWorker(t, WorkerConfig{URL: server.URL, MaxRetries: 5, BaseDelay: time.Millisecond})

	err := worker.deliver(context.Background(), testLogger().WithField("test", true), []byte(`{}`))

	assert.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, _ := newTestWorker(t, WorkerConfig{URL: server.URL, MaxRetries: 2, BaseDelay: time.Millisecond})

	err := worker.deliver(context.Background(), testLogger().WithField("test", true), []byte(`{}`))

	assert.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStart_ConsumesQueue(t *testing.T) {
	// Подготовка
	received := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	builder := mocks.NewMockReportBuilder(ctrl)
	client, _ := newTestRedis(t)
	worker := NewReportWorker(client, builder, testLogger(), WorkerConfig{URL: server.URL, MaxRetries: 1})
	req := sampleRequest()

	builder.EXPECT().BuildReport(gomock.Any(), req).Return([]models.Cluster{}, nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Действие
	worker.Start(ctx)
	require.NoError(t, NewRedisReportPublisher(client).Publish(ctx, req))

	// Проверки
	select {
	case body := <-received:
		assert.Contains(t, string(body), req.ID.String())
	case <-time.After(5 * time.Second):
		t.Fatal("report was not delivered")
	}

	cancel()
	select {
	case <-worker.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
