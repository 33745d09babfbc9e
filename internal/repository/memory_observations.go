package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/JaiMadhav/VitalOps/internal/domain"
)

// MemoryObservationRepo 内存观测序列
// - 已发布的切片从不原地修改：每次更新都构建新切片再原子替换
// - 读取无锁；写入由 mu 串行化
type MemoryObservationRepo struct {
	mu  sync.Mutex
	seq atomic.Pointer[[]domain.HealthObservation]
}

// NewMemoryObservationRepo 使用初始序列创建（复制输入，调用方后续修改不影响内部数据）
func NewMemoryObservationRepo(initial []domain.HealthObservation) *MemoryObservationRepo {
	r := &MemoryObservationRepo{}
	seq := slices.Clone(initial)
	if seq == nil {
		seq = []domain.HealthObservation{}
	}
	r.seq.Store(&seq)
	return r
}

var _ ObservationAppender = (*MemoryObservationRepo)(nil)

// List 返回当前序列的快照
func (r *MemoryObservationRepo) List(_ context.Context) ([]domain.HealthObservation, error) {
	return slices.Clone(*r.seq.Load()), nil
}

// Len 当前观测数量
func (r *MemoryObservationRepo) Len() int {
	return len(*r.seq.Load())
}

// Append 追加一条观测并发布新序列
// 时间戳必须严格晚于当前最后一条，否则返回 ErrOutOfOrder
func (r *MemoryObservationRepo) Append(_ context.Context, obs domain.HealthObservation) ([]domain.HealthObservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.seq.Load()
	if n := len(cur); n > 0 && !obs.Timestamp.After(cur[n-1].Timestamp) {
		return nil, fmt.Errorf("%w: %s <= %s", ErrOutOfOrder,
			obs.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
			cur[n-1].Timestamp.Format("2006-01-02T15:04:05Z07:00"))
	}

	next := make([]domain.HealthObservation, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, obs)
	r.seq.Store(&next)

	return slices.Clone(next), nil
}

// Replace 整体替换序列（序列需已按时间升序）
func (r *MemoryObservationRepo) Replace(seq []domain.HealthObservation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(seq)
	if next == nil {
		next = []domain.HealthObservation{}
	}
	r.seq.Store(&next)
}
