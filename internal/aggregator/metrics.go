package aggregator

import (
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"
)

// DefaultSnapshot 无观测数据时返回的快照：数值全部为 0，风险等级 Unknown
// 仅为保证仪表盘总能渲染的占位值
func DefaultSnapshot() models.MetricsSnapshot {
	return models.MetricsSnapshot{RiskLevel: domain.RiskUnknown}
}

// Latest 返回最新一条观测（序列最后一个元素）的字段
// 输入需已按时间升序排列；空序列返回 DefaultSnapshot
func Latest(observations []domain.HealthObservation) models.MetricsSnapshot {
	if len(observations) == 0 {
		return DefaultSnapshot()
	}

	last := observations[len(observations)-1]
	observedAt := last.Timestamp
	return models.MetricsSnapshot{
		ObservedAt:  &observedAt,
		HeartRate:   last.HeartRate,
		Temperature: last.Temperature,
		Weight:      last.Weight,
		SleepHours:  last.SleepHours,
		StressLevel: last.StressLevel,
		RiskLevel:   last.RiskLevel,
	}
}

// Trends 将观测序列按指标投影为趋势序列
// 保持输入顺序，不做重采样/插值/平滑；每个指标的长度等于输入长度
// 空输入返回非 nil 的空序列
func Trends(observations []domain.HealthObservation) models.TrendSeries {
	n := len(observations)
	out := models.TrendSeries{
		HeartRate:   make([]models.TrendPoint, 0, n),
		Temperature: make([]models.TrendPoint, 0, n),
		Weight:      make([]models.TrendPoint, 0, n),
		SleepHours:  make([]models.TrendPoint, 0, n),
	}

	for _, o := range observations {
		out.HeartRate = append(out.HeartRate, models.TrendPoint{Timestamp: o.Timestamp, Value: float64(o.HeartRate)})
		out.Temperature = append(out.Temperature, models.TrendPoint{Timestamp: o.Timestamp, Value: o.Temperature})
		out.Weight = append(out.Weight, models.TrendPoint{Timestamp: o.Timestamp, Value: o.Weight})
		out.SleepHours = append(out.SleepHours, models.TrendPoint{Timestamp: o.Timestamp, Value: o.SleepHours})
	}

	return out
}
