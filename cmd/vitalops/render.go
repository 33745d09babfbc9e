package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/JaiMadhav/VitalOps/internal/dashboard"
	"github.com/JaiMadhav/VitalOps/internal/models"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// toneColor 语义色调到终端颜色
func toneColor(t dashboard.Tone) func(a ...interface{}) string {
	switch t {
	case dashboard.ToneDestructive:
		return red
	case dashboard.ToneWarning:
		return yellow
	case dashboard.ToneSuccess:
		return green
	case dashboard.ToneMuted:
		return gray
	default:
		return fmt.Sprint
	}
}

func badgeColor(b dashboard.BadgeVariant) func(a ...interface{}) string {
	switch b {
	case dashboard.BadgeDestructive:
		return red
	case dashboard.BadgeSecondary:
		return yellow
	case dashboard.BadgeOutline:
		return gray
	default:
		return green
	}
}

func renderDashboard(w io.Writer, v dashboard.View) {
	fmt.Fprintf(w, "\n%s\n", cyan("=== "+v.Title+" ==="))
	fmt.Fprintf(w, "%s  [%s %s]\n\n", gray(v.Subtitle), v.Role, v.Path)

	for _, s := range v.Stats {
		c := toneColor(s.Tone)
		fmt.Fprintf(w, "  %-16s %s", s.Title+":", c(s.Value))
		if s.Progress != nil {
			fmt.Fprintf(w, " %s", progressBar(*s.Progress, 20))
		}
		if s.Caption != "" {
			fmt.Fprintf(w, "  %s", gray(s.Caption))
		}
		fmt.Fprintln(w)
	}

	if len(v.Charts) > 0 {
		fmt.Fprintf(w, "\n%s\n", yellow("Trends:"))
		for _, ch := range v.Charts {
			fmt.Fprintf(w, "  %-18s %s\n", ch.SeriesTitle, sparkline(ch.Points))
		}
	}

	if len(v.Alerts) > 0 {
		fmt.Fprintf(w, "\n%s\n", yellow("Recent Alerts:"))
		for _, a := range v.Alerts {
			c := toneColor(a.Tone)
			fmt.Fprintf(w, "  %s %s\n", c("●"), bold(a.Title))
			fmt.Fprintf(w, "    %s\n", a.Description)
		}
	}

	if len(v.Team) > 0 {
		fmt.Fprintf(w, "\n%s\n", yellow("Team Status:"))
		for _, m := range v.Team {
			fmt.Fprintf(w, "  %-6s %-16s %-8s %s\n", m.ID, m.Name, badgeColor(m.Badge)(string(m.Risk)), gray(m.LastUpdate))
		}
	}

	if len(v.Actions) > 0 {
		fmt.Fprintf(w, "\n%s\n", yellow("Quick Actions:"))
		for _, a := range v.Actions {
			label := a.Label
			if a.Primary {
				label = bold(label)
			}
			fmt.Fprintf(w, "  • %s: %s (%s)\n", a.Title, a.Description, label)
		}
	}
	fmt.Fprintln(w)
}

func renderLatest(w io.Writer, s models.MetricsSnapshot) {
	fmt.Fprintf(w, "\n%s\n", cyan("=== Latest Metrics ==="))
	if s.ObservedAt != nil {
		fmt.Fprintf(w, "  Observed:    %s\n", s.ObservedAt.Format("2006-01-02 15:04"))
	} else {
		fmt.Fprintf(w, "  %s\n", gray("No observations recorded"))
	}
	fmt.Fprintf(w, "  Heart Rate:  %d BPM\n", s.HeartRate)
	fmt.Fprintf(w, "  Temperature: %.1f°F\n", s.Temperature)
	fmt.Fprintf(w, "  Weight:      %.1f lbs\n", s.Weight)
	fmt.Fprintf(w, "  Sleep:       %.1fh\n", s.SleepHours)
	fmt.Fprintf(w, "  Stress:      %d/10\n", s.StressLevel)
	fmt.Fprintf(w, "  Risk Level:  %s\n\n", toneColor(dashboard.RiskTone(s.RiskLevel))(string(s.RiskLevel)))
}

func renderTrends(w io.Writer, t models.TrendSeries) {
	fmt.Fprintf(w, "\n%s\n", cyan("=== Health Trends ==="))
	if len(t.HeartRate) == 0 {
		fmt.Fprintf(w, "  %s\n\n", gray("No observations recorded"))
		return
	}

	fmt.Fprintf(w, "  %-12s %8s %8s %8s %8s\n", "Date", "HR", "Temp", "Weight", "Sleep")
	for i, p := range t.HeartRate {
		fmt.Fprintf(w, "  %-12s %8.0f %8.1f %8.1f %8.1f\n",
			p.Timestamp.Format("2006-01-02"),
			p.Value,
			valueAt(t.Temperature, i),
			valueAt(t.Weight, i),
			valueAt(t.SleepHours, i),
		)
	}
	fmt.Fprintln(w)
}

func renderNavigation(w io.Writer, items []dashboard.NavItem) {
	for _, it := range items {
		marker := " "
		name := it.Name
		if it.Current {
			marker = green("›")
			name = bold(name)
		}
		fmt.Fprintf(w, "%s %-18s %s\n", marker, name, gray(it.Href))
	}
}

func valueAt(series []models.TrendPoint, i int) float64 {
	if i < len(series) {
		return series[i].Value
	}
	return 0
}

// progressBar 0-100 的文本进度条
func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// sparkline 按序列最小/最大值归一化
func sparkline(points []models.TrendPoint) string {
	if len(points) == 0 {
		return gray("-")
	}
	lo, hi := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}

	var b strings.Builder
	for _, p := range points {
		idx := 0
		if hi > lo {
			idx = int((p.Value - lo) / (hi - lo) * float64(len(sparkTicks)-1))
		}
		b.WriteRune(sparkTicks[idx])
	}
	return b.String()
}
