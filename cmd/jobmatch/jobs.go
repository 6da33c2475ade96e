package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-cli/internal/jobs"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse your recommended jobs",
	Long:  "List recommended jobs one page at a time, optionally filtered by match score, location, or search term.",
	RunE:  runJobs,
}

var (
	jobsPage     int
	jobsRefresh  bool
	jobsMinScore int
	jobsLocation string
	jobsSearch   string
)

func init() {
	jobsCmd.Flags().IntVar(&jobsPage, "page", 1, "Page to fetch")
	jobsCmd.Flags().BoolVar(&jobsRefresh, "refresh", false, "Ask the server to recompute matches")
	jobsCmd.Flags().IntVar(&jobsMinScore, "min-score", 0, "Minimum match score, 0-100")
	jobsCmd.Flags().StringVar(&jobsLocation, "location", "", "Filter by location")
	jobsCmd.Flags().StringVar(&jobsSearch, "search", "", "Filter by search term")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	if jobsMinScore < 0 || jobsMinScore > 100 {
		return fmt.Errorf("--min-score must be between 0 and 100")
	}

	a, err := requireAuth(cmd, "jobs")
	if err != nil {
		return err
	}

	ctrl := jobs.NewController(a.client, a.log)
	ctrl.SetFilters(jobs.Filters{
		MinMatchScore: jobsMinScore,
		Location:      jobsLocation,
		SearchTerm:    jobsSearch,
	})

	if err := ctrl.FetchJobs(cmd.Context(), jobsPage, jobsRefresh); err != nil {
		return fmt.Errorf("fetching jobs: %w", err)
	}

	a.printer.PrintJobList(ctrl.Jobs(), ctrl.Pagination())
	return nil
}
