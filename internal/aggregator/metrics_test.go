package aggregator_test

import (
	"testing"
	"time"

	agg "github.com/JaiMadhav/VitalOps/internal/aggregator"
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 = day1.AddDate(0, 0, 1)
)

func twoDays() []domain.HealthObservation {
	return []domain.HealthObservation{
		{Timestamp: day1, HeartRate: 72, Temperature: 98.6, Weight: 180, SleepHours: 7, StressLevel: 3, RiskLevel: domain.RiskLow},
		{Timestamp: day2, HeartRate: 75, Temperature: 99.1, Weight: 179, SleepHours: 6, StressLevel: 5, RiskLevel: domain.RiskMedium},
	}
}

func TestLatest_ReturnsLastElement(t *testing.T) {
	snap := agg.Latest(twoDays())

	require.NotNil(t, snap.ObservedAt)
	assert.True(t, snap.ObservedAt.Equal(day2))
	assert.Equal(t, 75, snap.HeartRate)
	assert.Equal(t, 99.1, snap.Temperature)
	assert.Equal(t, 179.0, snap.Weight)
	assert.Equal(t, 6.0, snap.SleepHours)
	assert.Equal(t, 5, snap.StressLevel)
	assert.Equal(t, domain.RiskMedium, snap.RiskLevel)
}

func TestLatest_DependsOnlyOnFinalElement(t *testing.T) {
	long := append(twoDays(), domain.HealthObservation{
		Timestamp: day2.AddDate(0, 0, 1), HeartRate: 64, Temperature: 97.9, Weight: 178.5, SleepHours: 8, RiskLevel: domain.RiskLow,
	})
	single := long[len(long)-1:]

	assert.Equal(t, agg.Latest(single), agg.Latest(long))
}

func TestLatest_EmptyReturnsDefault(t *testing.T) {
	want := models.MetricsSnapshot{RiskLevel: domain.RiskUnknown}

	assert.Equal(t, want, agg.Latest(nil))
	assert.Equal(t, want, agg.Latest([]domain.HealthObservation{}))
	assert.Equal(t, want, agg.DefaultSnapshot())
}

func TestTrends_ProjectsEveryMetric(t *testing.T) {
	obs := twoDays()
	tr := agg.Trends(obs)

	assert.Equal(t, []models.TrendPoint{{Timestamp: day1, Value: 72}, {Timestamp: day2, Value: 75}}, tr.HeartRate)
	assert.Equal(t, []models.TrendPoint{{Timestamp: day1, Value: 98.6}, {Timestamp: day2, Value: 99.1}}, tr.Temperature)
	assert.Equal(t, []models.TrendPoint{{Timestamp: day1, Value: 180}, {Timestamp: day2, Value: 179}}, tr.Weight)
	assert.Equal(t, []models.TrendPoint{{Timestamp: day1, Value: 7}, {Timestamp: day2, Value: 6}}, tr.SleepHours)

	for _, m := range models.TrackedMetrics {
		assert.Len(t, tr.Series(m), len(obs), "metric %s", m)
	}
}

func TestTrends_EmptyInput(t *testing.T) {
	tr := agg.Trends(nil)
	for _, m := range models.TrackedMetrics {
		s := tr.Series(m)
		assert.NotNil(t, s, "metric %s", m)
		assert.Empty(t, s, "metric %s", m)
	}
}

func TestAggregations_AreIdempotentAndDoNotMutateInput(t *testing.T) {
	obs := twoDays()
	before := append([]domain.HealthObservation(nil), obs...)

	assert.Equal(t, agg.Latest(obs), agg.Latest(obs))
	assert.Equal(t, agg.Trends(obs), agg.Trends(obs))
	assert.Equal(t, before, obs)
}

func TestTrends_PreservesInputOrderWithoutSorting(t *testing.T) {
	// 不校验顺序：调用方负责提供升序数据
	obs := []domain.HealthObservation{
		{Timestamp: day2, HeartRate: 80},
		{Timestamp: day1, HeartRate: 60},
	}
	tr := agg.Trends(obs)
	require.Len(t, tr.HeartRate, 2)
	assert.Equal(t, 80.0, tr.HeartRate[0].Value)
	assert.Equal(t, 60.0, tr.HeartRate[1].Value)
}
