package domain

import (
	"fmt"
	"strings"
	"time"
)

// RiskLevel 风险等级
type RiskLevel string

const (
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskUnknown RiskLevel = "Unknown" // 仅用于无观测数据时的默认快照
)

// ParseRiskLevel 大小写不敏感地解析风险等级
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	case "unknown", "":
		return RiskUnknown, nil
	default:
		return RiskUnknown, fmt.Errorf("invalid risk level %q", s)
	}
}

// HealthObservation 单日健康观测记录（对应 health_observations 表）
// 同一 subject 的观测按 Timestamp 升序排列，且时间戳不重复
type HealthObservation struct {
	Timestamp   time.Time `json:"timestamp" db:"observed_at"`
	HeartRate   int       `json:"heart_rate" db:"heart_rate"`     // bpm, 约 40-200
	Temperature float64   `json:"temperature" db:"temperature"`   // °F, 约 95-104
	Weight      float64   `json:"weight" db:"weight"`             // lbs
	SleepHours  float64   `json:"sleep_hours" db:"sleep_hours"`   // 0-24
	StressLevel int       `json:"stress_level" db:"stress_level"` // 0-10
	RiskLevel   RiskLevel `json:"risk_level" db:"risk_level"`
}
