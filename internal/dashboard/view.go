package dashboard

import (
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"
)

// Tone 卡片数值的展示色调
type Tone string

const (
	ToneDestructive Tone = "destructive"
	ToneWarning     Tone = "warning"
	ToneSuccess     Tone = "success"
	ToneMuted       Tone = "muted"
	ToneDefault     Tone = "default"
)

// StatCard 概览卡片
type StatCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Caption  string `json:"caption"`
	Tone     Tone   `json:"tone"`
	Progress *int   `json:"progress,omitempty"` // 0-100
}

// ChartPanel 趋势图面板
type ChartPanel struct {
	Metric      models.Metric       `json:"metric"`
	Heading     string              `json:"heading"`
	Description string              `json:"description"`
	SeriesTitle string              `json:"series_title"`
	Color       string              `json:"color"`
	Points      []models.TrendPoint `json:"points"`
}

// ActionCard 快捷操作
type ActionCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Label       string `json:"label"`
	Href        string `json:"href,omitempty"`
	Primary     bool   `json:"primary"`
}

// AlertPanel 报警条目
type AlertPanel struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Severity    domain.RiskLevel `json:"severity"`
	Tone        Tone             `json:"tone"`
}

// TeamRow 团队状态表的一行
type TeamRow struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Risk       domain.RiskLevel `json:"risk"`
	Badge      BadgeVariant     `json:"badge"`
	LastUpdate string           `json:"last_update"`
}

// View 一个角色的完整仪表盘数据
type View struct {
	Role       domain.Role             `json:"role"`
	Path       string                  `json:"path"`
	Title      string                  `json:"title"`
	Subtitle   string                  `json:"subtitle"`
	Navigation []NavItem               `json:"navigation"`
	Stats      []StatCard              `json:"stats"`
	Charts     []ChartPanel            `json:"charts,omitempty"`
	Actions    []ActionCard            `json:"actions,omitempty"`
	Alerts     []AlertPanel            `json:"alerts,omitempty"`
	Team       []TeamRow               `json:"team,omitempty"`
	Latest     *models.MetricsSnapshot `json:"latest,omitempty"`
}

// Input 组装仪表盘所需的数据
type Input struct {
	Latest models.MetricsSnapshot
	Trends models.TrendSeries
	Team   models.TeamOverview
	System models.SystemOverview
}
