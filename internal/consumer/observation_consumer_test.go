package consumer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	mqttcommon "github.com/JaiMadhav/VitalOps/common/mqtt"
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"
	"github.com/JaiMadhav/VitalOps/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockIngester 是 Ingester 的 mock 实现
type MockIngester struct {
	mock.Mock
}

func (m *MockIngester) Ingest(ctx context.Context, obs domain.HealthObservation) (models.MetricsSnapshot, error) {
	args := m.Called(ctx, obs)
	return args.Get(0).(models.MetricsSnapshot), args.Error(1)
}

// fakeSubscriber 记录订阅，测试中手动投递消息
type fakeSubscriber struct {
	mu           sync.Mutex
	handlers     map[string]mqttcommon.MessageHandler
	unsubscribed []string
	subErr       error
}

func (f *fakeSubscriber) Subscribe(topic string, _ byte, h mqttcommon.MessageHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subErr != nil {
		return f.subErr
	}
	if f.handlers == nil {
		f.handlers = map[string]mqttcommon.MessageHandler{}
	}
	f.handlers[topic] = h
	return nil
}

func (f *fakeSubscriber) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subErr == nil
}

func (f *fakeSubscriber) handler(topic string) mqttcommon.MessageHandler {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handlers[topic]
}

func (f *fakeSubscriber) Unsubscribe(topics ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribed = append(f.unsubscribed, topics...)
	return nil
}

const single = `{"timestamp":"2024-01-08T08:00:00Z","heart_rate":70,"temperature":98.4,"weight":178,"sleep_hours":7.5,"stress_level":2,"risk_level":"low"}`

func TestDecodeObservations_Single(t *testing.T) {
	obs, err := DecodeObservations([]byte(single))
	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, 70, obs[0].HeartRate)
	assert.Equal(t, domain.RiskLow, obs[0].RiskLevel)
	assert.Equal(t, time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC), obs[0].Timestamp)
}

func TestDecodeObservations_Array(t *testing.T) {
	payload := fmt.Sprintf(`[%s, {"timestamp":"2024-01-09T08:00:00Z","heart_rate":90,"temperature":99.5,"weight":177,"sleep_hours":4,"stress_level":8,"risk_level":"High"}]`, single)
	obs, err := DecodeObservations([]byte(payload))
	require.NoError(t, err)
	require.Len(t, obs, 2)
	assert.Equal(t, domain.RiskHigh, obs[1].RiskLevel)
}

func TestDecodeObservations_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":        ``,
		"not json":     `hello`,
		"no timestamp": `{"heart_rate":70,"weight":170,"risk_level":"Low"}`,
		"bad risk":     `{"timestamp":"2024-01-08T08:00:00Z","weight":170,"risk_level":"Critical"}`,
		"no risk":      `{"timestamp":"2024-01-08T08:00:00Z","weight":170}`,
		"stress":       `{"timestamp":"2024-01-08T08:00:00Z","weight":170,"stress_level":11,"risk_level":"Low"}`,
		"sleep":        `{"timestamp":"2024-01-08T08:00:00Z","weight":170,"sleep_hours":25,"risk_level":"Low"}`,
		"weight":       `{"timestamp":"2024-01-08T08:00:00Z","weight":0,"risk_level":"Low"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeObservations([]byte(payload))
			assert.Error(t, err)
		})
	}
}

func TestHandleMessage_IngestsEachObservation(t *testing.T) {
	ing := new(MockIngester)
	ing.On("Ingest", mock.Anything, mock.AnythingOfType("domain.HealthObservation")).
		Return(models.MetricsSnapshot{}, nil).Twice()

	c := NewObservationConsumer(&fakeSubscriber{}, ing, "vitalops/observations", 1, zap.NewNop())
	payload := fmt.Sprintf(`[%s, {"timestamp":"2024-01-09T08:00:00Z","heart_rate":90,"temperature":99.5,"weight":177,"sleep_hours":4,"stress_level":8,"risk_level":"High"}]`, single)

	require.NoError(t, c.HandleMessage("vitalops/observations", []byte(payload)))
	ing.AssertExpectations(t)
}

func TestHandleMessage_SkipsOutOfOrder(t *testing.T) {
	ing := new(MockIngester)
	ing.On("Ingest", mock.Anything, mock.Anything).
		Return(models.MetricsSnapshot{}, fmt.Errorf("append: %w", repository.ErrOutOfOrder)).Once()

	c := NewObservationConsumer(&fakeSubscriber{}, ing, "t", 0, zap.NewNop())
	assert.NoError(t, c.HandleMessage("t", []byte(single)))
	ing.AssertExpectations(t)
}

func TestHandleMessage_ReturnsIngestErrors(t *testing.T) {
	ing := new(MockIngester)
	ing.On("Ingest", mock.Anything, mock.Anything).
		Return(models.MetricsSnapshot{}, errors.New("store is read-only")).Once()

	c := NewObservationConsumer(&fakeSubscriber{}, ing, "t", 0, zap.NewNop())
	err := c.HandleMessage("t", []byte(single))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

func TestHandleMessage_DecodeError(t *testing.T) {
	ing := new(MockIngester)
	c := NewObservationConsumer(&fakeSubscriber{}, ing, "t", 0, zap.NewNop())
	assert.Error(t, c.HandleMessage("t", []byte("{")))
	ing.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestStart_SubscribesUntilCancelled(t *testing.T) {
	sub := &fakeSubscriber{}
	ing := new(MockIngester)
	ing.On("Ingest", mock.Anything, mock.Anything).Return(models.MetricsSnapshot{}, nil).Once()

	c := NewObservationConsumer(sub, ing, "vitalops/observations", 1, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	require.Eventually(t, func() bool {
		return sub.handler("vitalops/observations") != nil
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, sub.handler("vitalops/observations")("vitalops/observations", []byte(single)))

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, []string{"vitalops/observations"}, sub.unsubscribed)
	ing.AssertExpectations(t)
}

func TestStart_SubscribeError(t *testing.T) {
	c := NewObservationConsumer(&fakeSubscriber{subErr: errors.New("not connected")}, new(MockIngester), "t", 0, zap.NewNop())
	assert.Error(t, c.Start(context.Background()))
}
