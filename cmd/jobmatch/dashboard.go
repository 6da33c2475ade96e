package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-cli/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your at-a-glance statistics and recent matches",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "dashboard")
	if err != nil {
		return err
	}

	ctrl := dashboard.NewController(a.client, a.log)
	if err := ctrl.Load(cmd.Context(), a.store.Identity()); err != nil {
		return fmt.Errorf("loading dashboard: %w", err)
	}

	a.printer.PrintStats(ctrl.Stats())

	recent := ctrl.Recent()
	if len(recent) == 0 {
		if ctrl.Stats().Skills == 0 {
			fmt.Fprintln(os.Stdout, "\nAdd skills or upload a resume to start getting matches.")
		}
		return nil
	}

	fmt.Fprintln(os.Stdout, "\nRecent matches:")
	for i := range recent {
		a.printer.PrintJobLine(i+1, &recent[i])
	}
	return nil
}
