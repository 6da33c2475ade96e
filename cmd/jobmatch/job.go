package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-cli/internal/jobdetail"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Inspect and act on a single job",
}

var jobShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show a job posting with similar jobs",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobShow,
}

var jobApplyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobApply,
}

var jobSaveCmd = &cobra.Command{
	Use:   "save <job-id>",
	Short: "Bookmark a job for later",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobSave,
}

func init() {
	jobCmd.AddCommand(jobShowCmd)
	jobCmd.AddCommand(jobApplyCmd)
	jobCmd.AddCommand(jobSaveCmd)
	rootCmd.AddCommand(jobCmd)
}

func runJobShow(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "job show "+args[0])
	if err != nil {
		return err
	}

	ctrl := jobdetail.NewController(a.client)
	if err := ctrl.Load(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("loading job %s: %w", args[0], err)
	}

	a.printer.PrintJobDetail(ctrl.Job())
	a.printer.PrintRelated(ctrl.Related())
	return nil
}

func runJobApply(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "job apply "+args[0])
	if err != nil {
		return err
	}

	ctrl := jobdetail.NewController(a.client)
	if err := ctrl.Load(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("loading job %s: %w", args[0], err)
	}

	err = ctrl.Apply(cmd.Context())
	var external *jobdetail.ExternalApplicationError
	if errors.As(err, &external) {
		fmt.Fprintf(os.Stdout, "This job accepts applications on the employer's site:\n%s\n", external.URL)
		return nil
	}
	if err != nil {
		return fmt.Errorf("applying to job %s: %w", args[0], err)
	}

	fmt.Fprintln(os.Stdout, "Application submitted")
	return nil
}

func runJobSave(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "job save "+args[0])
	if err != nil {
		return err
	}

	ctrl := jobdetail.NewController(a.client)
	if err := ctrl.Load(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("loading job %s: %w", args[0], err)
	}
	if err := ctrl.Save(cmd.Context()); err != nil {
		return fmt.Errorf("saving job %s: %w", args[0], err)
	}

	fmt.Fprintln(os.Stdout, "Job saved")
	return nil
}
