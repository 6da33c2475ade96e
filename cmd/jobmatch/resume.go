package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-cli/internal/resume"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage your resume and its work and education history",
}

var resumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored resume record",
	RunE:  runResumeShow,
}

var resumeUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a resume (PDF or DOCX)",
	Long:  "Upload a resume file. The server parses it and extracts skills into your profile; files over 5 MB are rejected server-side.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeUpload,
}

var resumeDownloadCmd = &cobra.Command{
	Use:   "download <dest>",
	Short: "Download the stored resume file",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDownload,
}

var resumeDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the stored resume and its extracted skills",
	RunE:  runResumeDelete,
}

var resumeWorkCmd = &cobra.Command{
	Use:   "work",
	Short: "Edit the work-history list",
}

var resumeEduCmd = &cobra.Command{
	Use:   "education",
	Short: "Edit the education list",
}

var (
	workCompany     string
	workPosition    string
	workStartDate   string
	workEndDate     string
	workDescription string

	eduInstitution string
	eduDegree      string
	eduField       string
	eduYear        int
)

var resumeWorkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a work-history entry",
	RunE:  runWorkAdd,
}

var resumeWorkEditCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Replace the work-history entry at the given position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkEdit,
}

var resumeWorkRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the work-history entry at the given position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkRemove,
}

var resumeWorkImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the whole work history from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkImport,
}

var resumeEduAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an education entry",
	RunE:  runEduAdd,
}

var resumeEduEditCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Replace the education entry at the given position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEduEdit,
}

var resumeEduRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the education entry at the given position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEduRemove,
}

var resumeEduImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the whole education list from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runEduImport,
}

func init() {
	for _, c := range []*cobra.Command{resumeWorkAddCmd, resumeWorkEditCmd} {
		c.Flags().StringVar(&workCompany, "company", "", "Company name")
		c.Flags().StringVar(&workPosition, "position", "", "Job title")
		c.Flags().StringVar(&workStartDate, "start", "", "Start date, e.g. 2021-03")
		c.Flags().StringVar(&workEndDate, "end", "", "End date; empty means current position")
		c.Flags().StringVar(&workDescription, "description", "", "Role description")
		c.MarkFlagRequired("company")
		c.MarkFlagRequired("position")
		c.MarkFlagRequired("start")
	}

	for _, c := range []*cobra.Command{resumeEduAddCmd, resumeEduEditCmd} {
		c.Flags().StringVar(&eduInstitution, "institution", "", "School or university")
		c.Flags().StringVar(&eduDegree, "degree", "", "Degree earned")
		c.Flags().StringVar(&eduField, "field", "", "Field of study")
		c.Flags().IntVar(&eduYear, "year", 0, "Graduation year")
		c.MarkFlagRequired("institution")
		c.MarkFlagRequired("degree")
		c.MarkFlagRequired("year")
	}

	resumeWorkCmd.AddCommand(resumeWorkAddCmd, resumeWorkEditCmd, resumeWorkRemoveCmd, resumeWorkImportCmd)
	resumeEduCmd.AddCommand(resumeEduAddCmd, resumeEduEditCmd, resumeEduRemoveCmd, resumeEduImportCmd)

	resumeCmd.AddCommand(resumeShowCmd)
	resumeCmd.AddCommand(resumeUploadCmd)
	resumeCmd.AddCommand(resumeDownloadCmd)
	resumeCmd.AddCommand(resumeDeleteCmd)
	resumeCmd.AddCommand(resumeWorkCmd)
	resumeCmd.AddCommand(resumeEduCmd)
	rootCmd.AddCommand(resumeCmd)
}

// resumeManager wires a manager with the stored record already loaded.
func resumeManager(cmd *cobra.Command, destination string) (*app, *resume.Manager, error) {
	a, err := requireAuth(cmd, destination)
	if err != nil {
		return nil, nil, err
	}
	m := resume.NewManager(a.client)
	if err := m.Load(cmd.Context()); err != nil {
		return nil, nil, fmt.Errorf("loading resume: %w", err)
	}
	return a, m, nil
}

// entryIndex converts a 1-based position argument to a 0-based index.
func entryIndex(arg string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: expected a number starting at 1", arg)
	}
	return n - 1, nil
}

func runResumeShow(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume show")
	if err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}

func runResumeUpload(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "resume upload")
	if err != nil {
		return err
	}

	m := resume.NewManager(a.client)
	if err := m.Upload(cmd.Context(), args[0]); err != nil {
		return err
	}

	// The upload extracts skills server-side; reload so the identity
	// reflects them.
	if err := a.store.LoadIdentity(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Resume uploaded; skills extracted into your profile")
	return nil
}

func runResumeDownload(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "resume download")
	if err != nil {
		return err
	}

	m := resume.NewManager(a.client)
	n, err := m.Download(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("downloading resume: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %d bytes to %s\n", n, args[0])
	return nil
}

func runResumeDelete(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "resume delete")
	if err != nil {
		return err
	}

	m := resume.NewManager(a.client)
	if err := m.Delete(cmd.Context()); err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}

	// Deleting the resume also drops its extracted skills.
	if err := a.store.LoadIdentity(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Resume deleted")
	return nil
}

func workEntryFromFlags() types.WorkEntry {
	return types.WorkEntry{
		Company:     workCompany,
		Position:    workPosition,
		StartDate:   workStartDate,
		EndDate:     workEndDate,
		Description: workDescription,
	}
}

func eduEntryFromFlags() types.EduEntry {
	return types.EduEntry{
		Institution:    eduInstitution,
		Degree:         eduDegree,
		FieldOfStudy:   eduField,
		GraduationYear: eduYear,
	}
}

func runWorkAdd(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume work add")
	if err != nil {
		return err
	}
	if err := m.AddWork(cmd.Context(), workEntryFromFlags()); err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}

func runWorkEdit(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume work edit")
	if err != nil {
		return err
	}
	index, err := entryIndex(args[0])
	if err != nil {
		return err
	}
	if err := m.EditWork(cmd.Context(), index, workEntryFromFlags()); err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}

func runWorkRemove(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume work remove")
	if err != nil {
		return err
	}
	index, err := entryIndex(args[0])
	if err != nil {
		return err
	}
	if err := m.RemoveWork(cmd.Context(), index); err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}

func runWorkImport(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume work import")
	if err != nil {
		return err
	}
	if err := m.ImportWork(cmd.Context(), args[0]); err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}

func runEduAdd(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume education add")
	if err != nil {
		return err
	}
	if err := m.AddEducation(cmd.Context(), eduEntryFromFlags()); err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}

func runEduEdit(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume education edit")
	if err != nil {
		return err
	}
	index, err := entryIndex(args[0])
	if err != nil {
		return err
	}
	if err := m.EditEducation(cmd.Context(), index, eduEntryFromFlags()); err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}

func runEduRemove(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume education remove")
	if err != nil {
		return err
	}
	index, err := entryIndex(args[0])
	if err != nil {
		return err
	}
	if err := m.RemoveEducation(cmd.Context(), index); err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}

func runEduImport(cmd *cobra.Command, args []string) error {
	a, m, err := resumeManager(cmd, "resume education import")
	if err != nil {
		return err
	}
	if err := m.ImportEducation(cmd.Context(), args[0]); err != nil {
		return err
	}
	a.printer.PrintResume(m.Record())
	return nil
}
