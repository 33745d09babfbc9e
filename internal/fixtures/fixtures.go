// Package fixtures 提供进程启动时装载的静态演示数据
package fixtures

import (
	"context"
	"time"

	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"
)

// DefaultSubjectID 演示用户（soldier）的固定 ID
const DefaultSubjectID = "6f1c2a4e-3b7d-4c9a-9e51-2d8f0b7a1c35"

// Observations 返回以 end 为最后一天、连续 7 天的观测数据（时间升序）
func Observations(end time.Time) []domain.HealthObservation {
	end = time.Date(end.Year(), end.Month(), end.Day(), 8, 0, 0, 0, time.UTC)

	rows := []struct {
		hr     int
		temp   float64
		weight float64
		sleep  float64
		stress int
		risk   domain.RiskLevel
	}{
		{72, 98.6, 180.0, 7.0, 3, domain.RiskLow},
		{75, 99.1, 179.0, 6.0, 4, domain.RiskLow},
		{78, 98.9, 179.4, 5.5, 6, domain.RiskMedium},
		{81, 99.4, 179.1, 4.5, 7, domain.RiskMedium},
		{74, 98.7, 178.8, 6.5, 5, domain.RiskLow},
		{70, 98.4, 178.6, 7.5, 3, domain.RiskLow},
		{68, 98.6, 178.2, 7.0, 3, domain.RiskLow},
	}

	out := make([]domain.HealthObservation, 0, len(rows))
	for i, r := range rows {
		out = append(out, domain.HealthObservation{
			Timestamp:   end.AddDate(0, 0, i-len(rows)+1),
			HeartRate:   r.hr,
			Temperature: r.temp,
			Weight:      r.weight,
			SleepHours:  r.sleep,
			StressLevel: r.stress,
			RiskLevel:   r.risk,
		})
	}
	return out
}

// StaticOverview 团队/系统概况的静态数据源
type StaticOverview struct{}

func (StaticOverview) TeamOverview(context.Context) (models.TeamOverview, error) {
	return models.TeamOverview{
		TotalPersonnel: 24,
		HighRisk:       2,
		ActiveAlerts:   5,
		HealthPercent:  87,
		Alerts: []models.TeamAlert{
			{
				Title:       "High Stress Alert - Soldier ID: 1247",
				Description: "Extreme stress levels detected. Last reported: 9/10. Immediate intervention recommended.",
				Severity:    domain.RiskHigh,
			},
			{
				Title:       "Sleep Deprivation - Soldier ID: 2891",
				Description: "Less than 4 hours sleep for 3 consecutive nights. Monitor closely.",
				Severity:    domain.RiskMedium,
			},
		},
		Members: []models.TeamMember{
			{ID: "1247", Name: "Johnson, M.", Risk: domain.RiskHigh, LastUpdate: "2 min ago"},
			{ID: "2891", Name: "Smith, J.", Risk: domain.RiskMedium, LastUpdate: "15 min ago"},
			{ID: "3456", Name: "Davis, R.", Risk: domain.RiskLow, LastUpdate: "1 hour ago"},
			{ID: "4567", Name: "Wilson, K.", Risk: domain.RiskLow, LastUpdate: "3 hours ago"},
		},
	}, nil
}

func (StaticOverview) SystemOverview(context.Context) (models.SystemOverview, error) {
	return models.SystemOverview{
		TotalUsers:       156,
		NewUsersMonth:    12,
		ActiveSessions:   89,
		UptimePercent:    99.9,
		SecurityEvents24: 3,
	}, nil
}
