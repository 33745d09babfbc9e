package dashboard

import (
	"fmt"
	"strconv"

	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"
)

// Strategy 单个角色的仪表盘组装策略
type Strategy interface {
	Role() domain.Role
	Header() (title, subtitle string)
	Build(in Input) View
}

// StrategyFor 按角色选择策略；新增角色必须在此处补充分支
func StrategyFor(role domain.Role) (Strategy, error) {
	switch role {
	case domain.RoleSoldier:
		return soldierStrategy{}, nil
	case domain.RoleOfficer:
		return officerStrategy{}, nil
	case domain.RoleAdmin:
		return adminStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownRole, role)
	}
}

// Compose 组装角色仪表盘（包含头部与导航）
func Compose(role domain.Role, in Input) (View, error) {
	s, err := StrategyFor(role)
	if err != nil {
		return View{}, err
	}
	nav, err := Navigation(role)
	if err != nil {
		return View{}, err
	}

	v := s.Build(in)
	v.Role = role
	v.Path = DashboardPath(role)
	v.Title, v.Subtitle = s.Header()
	v.Navigation = nav
	return v, nil
}

// ---- soldier ----

type soldierStrategy struct{}

func (soldierStrategy) Role() domain.Role { return domain.RoleSoldier }

func (soldierStrategy) Header() (string, string) {
	return "Personal Dashboard", "Monitor your health and wellness"
}

// chartSpecs 趋势图标题与配色
var chartSpecs = []struct {
	metric      models.Metric
	heading     string
	description string
	seriesTitle string
	color       string
}{
	{models.MetricHeartRate, "Heart Rate Trends", "Track your heart rate over time", "Heart Rate (BPM)", "#ef4444"},
	{models.MetricTemperature, "Temperature Trends", "Monitor body temperature patterns", "Temperature (°F)", "#f59e0b"},
	{models.MetricWeight, "Weight Trends", "Track weight changes over time", "Weight (lbs)", "#3b82f6"},
	{models.MetricSleepHours, "Sleep Trends", "Monitor sleep quality patterns", "Sleep Hours", "#8b5cf6"},
}

func (soldierStrategy) Build(in Input) View {
	latest := in.Latest
	stress := clamp(latest.StressLevel*10, 0, 100)

	charts := make([]ChartPanel, 0, len(chartSpecs))
	for _, c := range chartSpecs {
		charts = append(charts, ChartPanel{
			Metric:      c.metric,
			Heading:     c.heading,
			Description: c.description,
			SeriesTitle: c.seriesTitle,
			Color:       c.color,
			Points:      nonNil(in.Trends.Series(c.metric)),
		})
	}

	return View{
		Stats: []StatCard{
			{Title: "Risk Level", Value: string(latest.RiskLevel), Caption: "Based on recent metrics", Tone: RiskTone(latest.RiskLevel)},
			{Title: "Stress Level", Value: fmt.Sprintf("%d/10", latest.StressLevel), Tone: ToneDefault, Progress: &stress},
			{Title: "Sleep Quality", Value: formatFloat(latest.SleepHours) + "h", Caption: "Last night", Tone: ToneDefault},
			{Title: "Heart Rate", Value: fmt.Sprintf("%d BPM", latest.HeartRate), Caption: "Resting rate", Tone: ToneDefault},
		},
		Charts: charts,
		Actions: []ActionCard{
			{Title: "Daily Check-in", Description: "Log your current mood and stress levels", Label: "Start Mood Tracker", Href: "/mood", Primary: true},
			{Title: "Health Metrics", Description: "Upload today's health data", Label: "Log Health Data", Href: "/health"},
		},
		Latest: &latest,
	}
}

// ---- officer ----

type officerStrategy struct{}

func (officerStrategy) Role() domain.Role { return domain.RoleOfficer }

func (officerStrategy) Header() (string, string) {
	return "Command Dashboard", "Oversee team health and alerts"
}

func (officerStrategy) Build(in Input) View {
	team := in.Team

	alerts := make([]AlertPanel, 0, len(team.Alerts))
	for _, a := range team.Alerts {
		alerts = append(alerts, AlertPanel{Title: a.Title, Description: a.Description, Severity: a.Severity, Tone: RiskTone(a.Severity)})
	}

	rows := make([]TeamRow, 0, len(team.Members))
	for _, m := range team.Members {
		rows = append(rows, TeamRow{ID: m.ID, Name: m.Name, Risk: m.Risk, Badge: RiskBadge(m.Risk), LastUpdate: m.LastUpdate})
	}

	return View{
		Stats: []StatCard{
			{Title: "Total Personnel", Value: strconv.Itoa(team.TotalPersonnel), Caption: "Active soldiers", Tone: ToneDefault},
			{Title: "High Risk", Value: strconv.Itoa(team.HighRisk), Caption: "Require attention", Tone: ToneDestructive},
			{Title: "Active Alerts", Value: strconv.Itoa(team.ActiveAlerts), Caption: "Pending review", Tone: ToneWarning},
			{Title: "Team Health", Value: fmt.Sprintf("%d%%", team.HealthPercent), Caption: "Overall wellness", Tone: ToneSuccess},
		},
		Alerts: alerts,
		Team:   rows,
	}
}

// ---- admin ----

type adminStrategy struct{}

func (adminStrategy) Role() domain.Role { return domain.RoleAdmin }

func (adminStrategy) Header() (string, string) {
	return "Administration Dashboard", "Manage system and users"
}

func (adminStrategy) Build(in Input) View {
	sys := in.System

	return View{
		Stats: []StatCard{
			{Title: "Total Users", Value: strconv.Itoa(sys.TotalUsers), Caption: fmt.Sprintf("+%d this month", sys.NewUsersMonth), Tone: ToneDefault},
			{Title: "Active Sessions", Value: strconv.Itoa(sys.ActiveSessions), Caption: "Currently online", Tone: ToneDefault},
			{Title: "System Health", Value: formatFloat(sys.UptimePercent) + "%", Caption: "Uptime", Tone: ToneSuccess},
			{Title: "Security Events", Value: strconv.Itoa(sys.SecurityEvents24), Caption: "Last 24 hours", Tone: ToneDefault},
		},
		Actions: []ActionCard{
			{Title: "User Management", Description: "Add, modify, or remove system users", Label: "Manage Users", Href: "/users", Primary: true},
			{Title: "System Configuration", Description: "Update system settings and thresholds", Label: "Configure System", Href: "/settings"},
			{Title: "Security Audit", Description: "Review access logs and security events", Label: "View Audit Logs", Href: "/security"},
		},
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNil(p []models.TrendPoint) []models.TrendPoint {
	if p == nil {
		return []models.TrendPoint{}
	}
	return p
}
