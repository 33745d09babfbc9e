package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent health metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := src.GetLatest(context.Background())
		if err != nil {
			return fmt.Errorf("failed to load latest metrics: %w", err)
		}
		renderLatest(cmd.OutOrStdout(), snap)
		return nil
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show heart rate, temperature, weight and sleep trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		trends, err := src.GetTrends(context.Background())
		if err != nil {
			return fmt.Errorf("failed to load trends: %w", err)
		}
		renderTrends(cmd.OutOrStdout(), trends)
		return nil
	},
}

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the trend series to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := src.DownloadTrendReport(context.Background())
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		if err := os.WriteFile(reportOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", reportOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Report written to %s\n", green("✓"), reportOutput)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "trends.xlsx", "output file")

	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(reportCmd)
}
