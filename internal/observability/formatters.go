// Package observability provides formatted terminal output for the CLI views.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmatch-cli/internal/dashboard"
	"github.com/jonathan/jobmatch-cli/internal/jobs"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxSkillsToShow is the default number of skills to display inline
	maxSkillsToShow = 5
)

// Printer handles formatted output for the terminal views.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintIdentity outputs the signed-in identity.
func (p *Printer) PrintIdentity(id *types.Identity) {
	if id == nil {
		p.printBox("SESSION", "Not signed in.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", id.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", id.Email))
	if id.Location != "" {
		sb.WriteString(fmt.Sprintf("Where:  %s\n", id.Location))
	}
	sb.WriteString(fmt.Sprintf("Skills: %s", joinCapped(id.Skills, maxSkillsToShow)))

	p.printBox("SIGNED IN", sb.String())
}

// PrintStats outputs the dashboard statistics cards.
func (p *Printer) PrintStats(stats dashboard.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills identified:  %d\n", stats.Skills))
	sb.WriteString(fmt.Sprintf("Jobs matched:       %d\n", stats.JobsMatched))
	sb.WriteString(fmt.Sprintf("Top match score:    %d%%", stats.TopMatchScore))
	p.printBox("DASHBOARD", sb.String())
}

// PrintJobLine outputs one compact job row.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobLine(index int, job *types.Job) {
	fmt.Fprintf(p.out, "%3d. %-40s %3d%%  %s, %s\n",
		index, truncate(job.Title, 40), job.MatchPercent(), job.Company, job.Location)
	if len(job.Skills) > 0 {
		fmt.Fprintf(p.out, "     [%s]\n", joinCapped(job.Skills, maxSkillsToShow))
	}
}

// PrintJobList outputs a page of jobs with its pagination bar.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobList(list []types.Job, pg jobs.Pagination) {
	if len(list) == 0 {
		p.printBox("JOB RECOMMENDATIONS", "No jobs found.")
		return
	}

	from := (pg.CurrentPage-1)*jobs.ItemsPerPage + 1
	to := from + len(list) - 1
	fmt.Fprintf(p.out, "Showing %d-%d of %d jobs (page %d of %d)\n\n", from, to, pg.TotalJobs, pg.CurrentPage, pg.TotalPages)

	for i, job := range list {
		p.PrintJobLine(from+i, &job)
	}

	fmt.Fprintf(p.out, "\n%s\n", paginationBar(pg))
}

// paginationBar renders the page-number strategy with the current page marked.
func paginationBar(pg jobs.Pagination) string {
	refs := jobs.PageNumbers(pg.CurrentPage, pg.TotalPages)
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		if !ref.Ellipsis && ref.Page == pg.CurrentPage {
			parts = append(parts, fmt.Sprintf("[%d]", ref.Page))
			continue
		}
		parts = append(parts, ref.String())
	}
	return "Pages: " + strings.Join(parts, " ")
}

// PrintJobDetail outputs the full job posting view.
func (p *Printer) PrintJobDetail(job *types.Job) {
	if job == nil {
		p.printBox("JOB", "Job not found.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", job.Title))
	sb.WriteString(fmt.Sprintf("%s, %s\n", job.Company, job.Location))
	sb.WriteString(fmt.Sprintf("Match: %d%%", job.MatchPercent()))
	if job.Type != "" {
		sb.WriteString(fmt.Sprintf("   Type: %s", job.Type))
	}
	if job.Salary != "" {
		sb.WriteString(fmt.Sprintf("   Salary: %s", job.Salary))
	}
	sb.WriteString("\n")
	if !job.PostedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Posted: %s\n", job.PostedAt.Format("Jan 2, 2006")))
	}
	if len(job.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", joinCapped(job.Skills, 8)))
	}
	if job.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(truncate(job.Description, 400))
	}

	p.printBox("JOB DETAIL", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRelated outputs the similar-jobs section.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRelated(related []types.Job) {
	if len(related) == 0 {
		return
	}
	fmt.Fprintf(p.out, "\nSimilar jobs:\n")
	for i, job := range related {
		p.PrintJobLine(i+1, &job)
	}
}

// PrintSkills outputs the working skill list and its save state.
func (p *Printer) PrintSkills(skills []string, dirty bool) {
	var sb strings.Builder
	if len(skills) == 0 {
		sb.WriteString("No skills added yet. Add skills to get better job matches.")
	} else {
		for i, skill := range skills {
			sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, skill))
		}
		if dirty {
			sb.WriteString("\nUnsaved changes.")
		} else {
			sb.WriteString("\nIn sync with the server.")
		}
	}
	p.printBox("SKILLS", sb.String())
}

// PrintResume outputs the resume record with its sub-lists.
func (p *Printer) PrintResume(record *types.ResumeRecord) {
	if record == nil {
		p.printBox("RESUME", "No resume uploaded. Upload one to get started.")
		return
	}

	var sb strings.Builder
	name := record.FileName
	if name == "" {
		name = "(resume uploaded)"
	}
	sb.WriteString(fmt.Sprintf("File:    %s\n", name))
	if record.UpdatedAt != "" {
		sb.WriteString(fmt.Sprintf("Updated: %s\n", record.UpdatedAt))
	}

	sb.WriteString("\nWork experience:\n")
	if len(record.WorkHistory) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, w := range record.WorkHistory {
		end := w.EndDate
		if end == "" {
			end = "present"
		}
		sb.WriteString(fmt.Sprintf("  %d. %s at %s (%s - %s)\n", i+1, w.Position, w.Company, w.StartDate, end))
	}

	sb.WriteString("\nEducation:\n")
	if len(record.Education) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, e := range record.Education {
		degree := e.Degree
		if e.FieldOfStudy != "" {
			degree += ", " + e.FieldOfStudy
		}
		sb.WriteString(fmt.Sprintf("  %d. %s, %s (%d)\n", i+1, e.Institution, degree, e.GraduationYear))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

func joinCapped(items []string, max int) string {
	if len(items) == 0 {
		return "(none)"
	}
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s, and %d more", strings.Join(items[:max], ", "), len(items)-max)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
