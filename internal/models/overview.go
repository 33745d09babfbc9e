package models

import "github.com/JaiMadhav/VitalOps/internal/domain"

// TeamMember 团队状态表中的一行
type TeamMember struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Risk       domain.RiskLevel `json:"risk"`
	LastUpdate string           `json:"last_update"`
}

// TeamAlert 团队最近报警
type TeamAlert struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Severity    domain.RiskLevel `json:"severity"`
}

// TeamOverview 军官视图使用的团队概况
type TeamOverview struct {
	TotalPersonnel int          `json:"total_personnel"`
	HighRisk       int          `json:"high_risk"`
	ActiveAlerts   int          `json:"active_alerts"`
	HealthPercent  int          `json:"health_percent"`
	Alerts         []TeamAlert  `json:"alerts"`
	Members        []TeamMember `json:"members"`
}

// SystemOverview 管理员视图使用的系统概况
type SystemOverview struct {
	TotalUsers       int     `json:"total_users"`
	NewUsersMonth    int     `json:"new_users_month"`
	ActiveSessions   int     `json:"active_sessions"`
	UptimePercent    float64 `json:"uptime_percent"`
	SecurityEvents24 int     `json:"security_events_24h"`
}
