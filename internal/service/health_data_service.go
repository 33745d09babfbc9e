package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/JaiMadhav/VitalOps/internal/aggregator"
	"github.com/JaiMadhav/VitalOps/internal/dashboard"
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"
	"github.com/JaiMadhav/VitalOps/internal/repository"
	"github.com/JaiMadhav/VitalOps/internal/store"

	"go.uber.org/zap"
)

// ErrReadOnlyStore 当前数据源不支持追加观测
var ErrReadOnlyStore = errors.New("observation store is read-only")

// OverviewSource 团队/系统概况数据源
type OverviewSource interface {
	TeamOverview(ctx context.Context) (models.TeamOverview, error)
	SystemOverview(ctx context.Context) (models.SystemOverview, error)
}

// SnapshotEvent 快照变更事件内容
type SnapshotEvent struct {
	SubjectID string                 `json:"subject_id"`
	Count     int                    `json:"count"`
	Latest    models.MetricsSnapshot `json:"latest"`
}

// HealthDataService 健康数据服务
// 持有观测序列来源，按需计算最新快照与趋势，并缓存快照
// 序列变更与快照回写在 mu 下串行，缓存不会被较旧的快照覆盖
type HealthDataService struct {
	mu        sync.Mutex
	repo      repository.ObservationRepository
	kv        store.KV
	events    EventPublisher
	overview  OverviewSource
	subjectID string
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewHealthDataService 创建健康数据服务
func NewHealthDataService(
	repo repository.ObservationRepository,
	kv store.KV,
	events EventPublisher,
	overview OverviewSource,
	subjectID string,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *HealthDataService {
	if events == nil {
		events = NopPublisher{}
	}
	return &HealthDataService{
		repo:      repo,
		kv:        kv,
		events:    events,
		overview:  overview,
		subjectID: subjectID,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// SubjectID 当前 subject
func (s *HealthDataService) SubjectID() string { return s.subjectID }

func (s *HealthDataService) latestKey() string {
	return fmt.Sprintf("vitalops:subject:%s:latest", s.subjectID)
}

// LatestMetrics 最新指标（每次重新计算）
func (s *HealthDataService) LatestMetrics(ctx context.Context) (models.MetricsSnapshot, error) {
	obs, err := s.repo.List(ctx)
	if err != nil {
		return models.MetricsSnapshot{}, fmt.Errorf("failed to list observations: %w", err)
	}
	return aggregator.Latest(obs), nil
}

// HealthTrends 趋势序列
func (s *HealthDataService) HealthTrends(ctx context.Context) (models.TrendSeries, error) {
	obs, err := s.repo.List(ctx)
	if err != nil {
		return models.TrendSeries{}, fmt.Errorf("failed to list observations: %w", err)
	}
	return aggregator.Trends(obs), nil
}

// CachedLatest 优先读取 KV 中的快照，未命中时重新计算并回写
// KV 故障只记录日志，不影响返回
func (s *HealthDataService) CachedLatest(ctx context.Context) (models.MetricsSnapshot, error) {
	key := s.latestKey()

	if raw, err := s.kv.Get(ctx, key); err == nil {
		var snap models.MetricsSnapshot
		if err := json.Unmarshal([]byte(raw), &snap); err == nil {
			return snap, nil
		}
		s.logger.Warn("Discarding undecodable snapshot cache", zap.String("key", key))
	} else if !errors.Is(err, store.ErrMiss) {
		s.logger.Warn("Snapshot cache read failed, recomputing", zap.String("key", key), zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.LatestMetrics(ctx)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	s.writeSnapshot(ctx, snap)
	return snap, nil
}

// Ingest 追加一条观测，刷新快照缓存并发布变更事件
func (s *HealthDataService) Ingest(ctx context.Context, obs domain.HealthObservation) (models.MetricsSnapshot, error) {
	appender, ok := s.repo.(repository.ObservationAppender)
	if !ok {
		return models.MetricsSnapshot{}, ErrReadOnlyStore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq, err := appender.Append(ctx, obs)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}

	snap := aggregator.Latest(seq)
	s.writeSnapshot(ctx, snap)

	evt := SnapshotEvent{SubjectID: s.subjectID, Count: len(seq), Latest: snap}
	if err := s.events.Publish(ctx, EventSnapshotUpdated, evt); err != nil {
		s.logger.Warn("Failed to publish snapshot event", zap.String("subject_id", s.subjectID), zap.Error(err))
	}

	s.logger.Debug("Observation ingested",
		zap.String("subject_id", s.subjectID),
		zap.Time("observed_at", obs.Timestamp),
		zap.Int("count", len(seq)),
	)
	return snap, nil
}

// RefreshSnapshot 按当前序列重算快照并覆盖缓存
// 进程启动装载序列后调用，丢弃上一进程遗留的快照
func (s *HealthDataService) RefreshSnapshot(ctx context.Context) (models.MetricsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.LatestMetrics(ctx)
	if err != nil {
		if delErr := s.kv.Del(ctx, s.latestKey()); delErr != nil {
			s.logger.Warn("Failed to drop snapshot cache", zap.String("key", s.latestKey()), zap.Error(delErr))
		}
		return models.MetricsSnapshot{}, err
	}
	s.writeSnapshot(ctx, snap)
	return snap, nil
}

// Replace 整体替换观测序列并刷新快照缓存
func (s *HealthDataService) Replace(ctx context.Context, seq []domain.HealthObservation) (models.MetricsSnapshot, error) {
	replacer, ok := s.repo.(repository.ObservationReplacer)
	if !ok {
		return models.MetricsSnapshot{}, ErrReadOnlyStore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replacer.Replace(seq)
	snap, err := s.LatestMetrics(ctx)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	s.writeSnapshot(ctx, snap)
	return snap, nil
}

// Dashboard 组装角色仪表盘
func (s *HealthDataService) Dashboard(ctx context.Context, role domain.Role) (dashboard.View, error) {
	if _, err := dashboard.StrategyFor(role); err != nil {
		return dashboard.View{}, err
	}

	obs, err := s.repo.List(ctx)
	if err != nil {
		return dashboard.View{}, fmt.Errorf("failed to list observations: %w", err)
	}
	in := dashboard.Input{
		Latest: aggregator.Latest(obs),
		Trends: aggregator.Trends(obs),
	}

	if s.overview != nil {
		if in.Team, err = s.overview.TeamOverview(ctx); err != nil {
			return dashboard.View{}, fmt.Errorf("failed to load team overview: %w", err)
		}
		if in.System, err = s.overview.SystemOverview(ctx); err != nil {
			return dashboard.View{}, fmt.Errorf("failed to load system overview: %w", err)
		}
	}

	return dashboard.Compose(role, in)
}

func (s *HealthDataService) writeSnapshot(ctx context.Context, snap models.MetricsSnapshot) {
	b, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("Failed to marshal snapshot", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.latestKey(), string(b), s.cacheTTL); err != nil {
		s.logger.Warn("Failed to write snapshot cache", zap.String("key", s.latestKey()), zap.Error(err))
	}
}
