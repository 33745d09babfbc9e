package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqttcommon "github.com/JaiMadhav/VitalOps/common/mqtt"
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"
	"github.com/JaiMadhav/VitalOps/internal/repository"

	"go.uber.org/zap"
)

// Ingester 接收新观测（由 HealthDataService 实现）
type Ingester interface {
	Ingest(ctx context.Context, obs domain.HealthObservation) (models.MetricsSnapshot, error)
}

// Subscriber MQTT 订阅能力（由 common/mqtt.Client 实现）
type Subscriber interface {
	Subscribe(topic string, qos byte, handler mqttcommon.MessageHandler) error
	Unsubscribe(topics ...string) error
	IsConnected() bool
}

// observationMessage MQTT 消息体
// 允许单个对象或对象数组
type observationMessage struct {
	Timestamp   time.Time `json:"timestamp"`
	HeartRate   int       `json:"heart_rate"`
	Temperature float64   `json:"temperature"`
	Weight      float64   `json:"weight"`
	SleepHours  float64   `json:"sleep_hours"`
	StressLevel int       `json:"stress_level"`
	RiskLevel   string    `json:"risk_level"`
}

// ObservationConsumer 订阅观测主题并写入存储
type ObservationConsumer struct {
	sub      Subscriber
	ingester Ingester
	topic    string
	qos      byte
	timeout  time.Duration
	logger   *zap.Logger
}

// NewObservationConsumer 创建观测消费者
func NewObservationConsumer(sub Subscriber, ingester Ingester, topic string, qos byte, logger *zap.Logger) *ObservationConsumer {
	return &ObservationConsumer{
		sub:      sub,
		ingester: ingester,
		topic:    topic,
		qos:      qos,
		timeout:  5 * time.Second,
		logger:   logger,
	}
}

// Start 订阅主题并阻塞至 ctx 取消
func (c *ObservationConsumer) Start(ctx context.Context) error {
	if err := c.sub.Subscribe(c.topic, c.qos, c.HandleMessage); err != nil {
		return fmt.Errorf("failed to subscribe to observation topic: %w", err)
	}
	c.logger.Info("Observation consumer started",
		zap.String("topic", c.topic),
		zap.Bool("connected", c.sub.IsConnected()),
	)

	<-ctx.Done()

	if err := c.sub.Unsubscribe(c.topic); err != nil {
		c.logger.Error("Failed to unsubscribe", zap.String("topic", c.topic), zap.Error(err))
	}
	c.logger.Info("Observation consumer stopped")
	return nil
}

// HandleMessage 处理一条 MQTT 消息
// 乱序或重复时间戳的观测被跳过，不影响同批次其它记录
func (c *ObservationConsumer) HandleMessage(topic string, payload []byte) error {
	c.logger.Debug("Received MQTT message",
		zap.String("topic", topic),
		zap.Int("payload_size", len(payload)),
	)

	observations, err := DecodeObservations(payload)
	if err != nil {
		return fmt.Errorf("failed to decode observations from %s: %w", topic, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var errs []error
	for _, obs := range observations {
		if _, err := c.ingester.Ingest(ctx, obs); err != nil {
			if errors.Is(err, repository.ErrOutOfOrder) {
				c.logger.Warn("Skipping out-of-order observation",
					zap.String("topic", topic),
					zap.Time("observed_at", obs.Timestamp),
				)
				continue
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DecodeObservations 解析单个对象或数组形式的观测消息
func DecodeObservations(payload []byte) ([]domain.HealthObservation, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, errors.New("empty payload")
	}

	var msgs []observationMessage
	if payload[0] == '[' {
		if err := json.Unmarshal(payload, &msgs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
	} else {
		var m observationMessage
		if err := json.Unmarshal(payload, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		msgs = append(msgs, m)
	}

	out := make([]domain.HealthObservation, 0, len(msgs))
	for i, m := range msgs {
		obs, err := m.toDomain()
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		out = append(out, obs)
	}
	return out, nil
}

func (m observationMessage) toDomain() (domain.HealthObservation, error) {
	if m.Timestamp.IsZero() {
		return domain.HealthObservation{}, errors.New("timestamp is required")
	}
	risk, err := domain.ParseRiskLevel(m.RiskLevel)
	if err != nil {
		return domain.HealthObservation{}, err
	}
	if risk == domain.RiskUnknown {
		return domain.HealthObservation{}, errors.New("risk_level is required")
	}
	if m.StressLevel < 0 || m.StressLevel > 10 {
		return domain.HealthObservation{}, fmt.Errorf("stress_level %d out of range 0-10", m.StressLevel)
	}
	if m.SleepHours < 0 || m.SleepHours > 24 {
		return domain.HealthObservation{}, fmt.Errorf("sleep_hours %v out of range 0-24", m.SleepHours)
	}
	if m.Weight <= 0 {
		return domain.HealthObservation{}, errors.New("weight must be positive")
	}
	return domain.HealthObservation{
		Timestamp:   m.Timestamp.UTC(),
		HeartRate:   m.HeartRate,
		Temperature: m.Temperature,
		Weight:      m.Weight,
		SleepHours:  m.SleepHours,
		StressLevel: m.StressLevel,
		RiskLevel:   risk,
	}, nil
}
