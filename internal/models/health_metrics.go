package models

import (
	"time"

	"github.com/JaiMadhav/VitalOps/internal/domain"
)

// MetricsSnapshot 当前健康指标（最新一条观测的字段）
// 派生数据，不单独存储
type MetricsSnapshot struct {
	ObservedAt  *time.Time       `json:"observed_at,omitempty"` // 无观测数据时为空
	HeartRate   int              `json:"heart_rate"`
	Temperature float64          `json:"temperature"`
	Weight      float64          `json:"weight"`
	SleepHours  float64          `json:"sleep_hours"`
	StressLevel int              `json:"stress_level"`
	RiskLevel   domain.RiskLevel `json:"risk_level"`
}

// TrendPoint 趋势图中的一个点
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TrendSeries 各指标的趋势序列（时间升序，直接供图表使用）
type TrendSeries struct {
	HeartRate   []TrendPoint `json:"heart_rate"`
	Temperature []TrendPoint `json:"temperature"`
	Weight      []TrendPoint `json:"weight"`
	SleepHours  []TrendPoint `json:"sleep_hours"`
}

// Metric 趋势指标
type Metric string

const (
	MetricHeartRate   Metric = "heart_rate"
	MetricTemperature Metric = "temperature"
	MetricWeight      Metric = "weight"
	MetricSleepHours  Metric = "sleep_hours"
)

// TrackedMetrics 参与趋势计算的指标（展示顺序）
var TrackedMetrics = []Metric{MetricHeartRate, MetricTemperature, MetricWeight, MetricSleepHours}

// Series 按指标取出对应序列
func (t TrendSeries) Series(m Metric) []TrendPoint {
	switch m {
	case MetricHeartRate:
		return t.HeartRate
	case MetricTemperature:
		return t.Temperature
	case MetricWeight:
		return t.Weight
	case MetricSleepHours:
		return t.SleepHours
	default:
		return nil
	}
}
