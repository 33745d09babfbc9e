package service

import (
	"context"

	commonredis "github.com/JaiMadhav/VitalOps/common/redis"

	"github.com/go-redis/redis/v8"
)

// 事件类型
const (
	EventSnapshotUpdated = "snapshot.updated"
)

// EventPublisher 快照变更通知
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

// StreamPublisher 发布到 Redis Streams
type StreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

func NewStreamPublisher(client *redis.Client, stream string, maxLen int64) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream, maxLen: maxLen}
}

func (p *StreamPublisher) Publish(ctx context.Context, eventType string, data any) error {
	_, err := commonredis.PublishJSONToStream(ctx, p.client, p.stream, p.maxLen, eventType, data)
	return err
}

// NopPublisher 未启用 Redis 时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
