package repository

import (
	"context"
	"errors"

	"github.com/JaiMadhav/VitalOps/internal/domain"
)

// ErrOutOfOrder 新观测的时间戳不晚于当前最后一条
var ErrOutOfOrder = errors.New("observation timestamp is not after the latest observation")

// ObservationRepository 观测序列 Repository 接口（只读）
// List 返回按时间升序排列的完整序列，调用方不得修改返回的切片
type ObservationRepository interface {
	List(ctx context.Context) ([]domain.HealthObservation, error)
}

// ObservationAppender 支持追加观测的 Repository（用于 MQTT 接入）
type ObservationAppender interface {
	ObservationRepository
	Append(ctx context.Context, obs domain.HealthObservation) ([]domain.HealthObservation, error)
}

// ObservationReplacer 支持整体替换序列的 Repository
type ObservationReplacer interface {
	ObservationRepository
	Replace(seq []domain.HealthObservation)
}
