package main

import (
	"fmt"
	"os"
	"time"

	"github.com/JaiMadhav/VitalOps/common/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serverURL string
	verbose   bool
	noColor   bool

	log *zap.Logger
	src dataSource
)

var rootCmd = &cobra.Command{
	Use:   "vitalops",
	Short: "Role-based health monitoring dashboards in the terminal",
	Long: `vitalops renders the soldier, officer and admin dashboards from health observations.

By default the bundled seven-day sample is used. With --server the data is fetched
from a running vitalops-server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		l, err := logger.NewCLILogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		log = l

		if src == nil {
			src = newSource(serverURL, time.Now(), log)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", os.Getenv("VITALOPS_SERVER"), "vitalops-server base URL (default: local sample data)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
