package main

import (
	"context"
	"fmt"

	"github.com/JaiMadhav/VitalOps/internal/domain"

	"github.com/spf13/cobra"
)

var roleFlag string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard for a role",
	Long:  `Render the soldier, officer or admin dashboard: stat cards, trends, alerts, team status and quick actions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := domain.ParseRole(roleFlag)
		if err != nil {
			return fmt.Errorf("%w: %q (want soldier, officer or admin)", err, roleFlag)
		}
		view, err := src.GetDashboard(context.Background(), role)
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}
		renderDashboard(cmd.OutOrStdout(), view)
		return nil
	},
}

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "List the navigation menu for a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := domain.ParseRole(roleFlag)
		if err != nil {
			return fmt.Errorf("%w: %q (want soldier, officer or admin)", err, roleFlag)
		}
		items, err := src.GetNavigation(context.Background(), role)
		if err != nil {
			return fmt.Errorf("failed to load navigation: %w", err)
		}
		renderNavigation(cmd.OutOrStdout(), items)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{dashboardCmd, navCmd} {
		c.Flags().StringVarP(&roleFlag, "role", "r", "soldier", "role: soldier, officer or admin")
		rootCmd.AddCommand(c)
	}
}
