package report

import (
	"bytes"
	"fmt"

	"github.com/JaiMadhav/VitalOps/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	TrendsSheet = "Trends"
	LatestSheet = "Latest"
)

// TrendHeader 趋势表表头
var TrendHeader = []string{
	"Timestamp",
	"Heart Rate (BPM)",
	"Temperature (°F)",
	"Weight (lbs)",
	"Sleep Hours",
}

// GenerateTrendWorkbook 生成趋势导出 Excel
// Trends 工作表每行一个时间点；Latest 工作表为当前快照
// 各指标序列长度相同（均来自同一观测序列）
func GenerateTrendWorkbook(trends models.TrendSeries, latest models.MetricsSnapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(TrendsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(LatestSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRow(f, TrendsSheet, 1, toAny(TrendHeader)); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(TrendHeader), 1)
	if err := f.SetCellStyle(TrendsSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	_ = f.SetColWidth(TrendsSheet, "A", "A", 22)
	_ = f.SetColWidth(TrendsSheet, "B", "E", 18)

	for i, p := range trends.HeartRate {
		row := []any{
			p.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			p.Value,
			valueAt(trends.Temperature, i),
			valueAt(trends.Weight, i),
			valueAt(trends.SleepHours, i),
		}
		if err := writeRow(f, TrendsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	observedAt := ""
	if latest.ObservedAt != nil {
		observedAt = latest.ObservedAt.UTC().Format("2006-01-02 15:04:05")
	}
	latestRows := [][]any{
		{"Observed At", observedAt},
		{"Heart Rate (BPM)", latest.HeartRate},
		{"Temperature (°F)", latest.Temperature},
		{"Weight (lbs)", latest.Weight},
		{"Sleep Hours", latest.SleepHours},
		{"Stress Level", latest.StressLevel},
		{"Risk Level", string(latest.RiskLevel)},
	}
	for i, row := range latestRows {
		if err := writeRow(f, LatestSheet, i+1, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func valueAt(series []models.TrendPoint, i int) any {
	if i < len(series) {
		return series[i].Value
	}
	return ""
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
