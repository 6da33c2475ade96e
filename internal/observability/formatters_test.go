package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobmatch-cli/internal/dashboard"
	"github.com/jonathan/jobmatch-cli/internal/jobs"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

func TestPrintIdentity_SignedOut(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintIdentity(nil)
	assert.Contains(t, buf.String(), "Not signed in.")
}

func TestPrintIdentity_CapsSkillList(t *testing.T) {
	var buf bytes.Buffer
	id := &types.Identity{
		Name:   "Ada",
		Email:  "ada@example.com",
		Skills: []string{"Go", "SQL", "Docker", "Kubernetes", "Terraform", "Rust", "Python"},
	}
	NewPrinter(&buf).PrintIdentity(id)

	out := buf.String()
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "and 2 more")
	assert.NotContains(t, out, "Python")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStats(dashboard.Stats{Skills: 7, JobsMatched: 23, TopMatchScore: 91})

	out := buf.String()
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "23")
	assert.Contains(t, out, "91%")
}

func TestPrintJobList_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobList(nil, jobs.Pagination{CurrentPage: 1, TotalPages: 1})
	assert.Contains(t, buf.String(), "No jobs found.")
}

func TestPrintJobList_ShowsRangeAndPages(t *testing.T) {
	var buf bytes.Buffer
	list := []types.Job{
		{ID: "j1", Title: "Backend Engineer", Company: "Acme", Location: "Berlin", MatchScore: 0.87},
		{ID: "j2", Title: "Platform Engineer", Company: "Globex", Location: "Remote", MatchScore: 0.74},
	}
	NewPrinter(&buf).PrintJobList(list, jobs.Pagination{CurrentPage: 2, TotalPages: 10, TotalJobs: 95})

	out := buf.String()
	assert.Contains(t, out, "Showing 11-12 of 95 jobs (page 2 of 10)")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "87%")
	assert.Contains(t, out, "Pages: 1 [2] 3 4 ... 10")
}

func TestPaginationBar_MarksCurrentPage(t *testing.T) {
	bar := paginationBar(jobs.Pagination{CurrentPage: 5, TotalPages: 10})
	assert.Equal(t, "Pages: 1 ... 4 [5] 6 ... 10", bar)
}

func TestPrintJobDetail(t *testing.T) {
	var buf bytes.Buffer
	job := &types.Job{
		Title:      "Data Engineer",
		Company:    "Initech",
		Location:   "Amsterdam",
		MatchScore: 0.66,
		Salary:     "90-110k",
		Skills:     []string{"Go", "Airflow"},
	}
	NewPrinter(&buf).PrintJobDetail(job)

	out := buf.String()
	assert.Contains(t, out, "Data Engineer")
	assert.Contains(t, out, "Initech")
	assert.Contains(t, out, "66%")
	assert.Contains(t, out, "90-110k")
}

func TestPrintSkills_DirtyMarker(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills([]string{"Go"}, true)
	assert.Contains(t, buf.String(), "Unsaved changes")

	buf.Reset()
	p.PrintSkills([]string{"Go"}, false)
	assert.Contains(t, buf.String(), "In sync")

	buf.Reset()
	p.PrintSkills(nil, false)
	assert.Contains(t, buf.String(), "No skills added yet")
}

func TestPrintResume_NoRecord(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(nil)
	assert.Contains(t, buf.String(), "No resume uploaded")
}

func TestPrintResume_ListsEntries(t *testing.T) {
	var buf bytes.Buffer
	record := &types.ResumeRecord{
		FileName: "cv.pdf",
		WorkHistory: []types.WorkEntry{
			{Company: "Acme", Position: "Engineer", StartDate: "2019-01"},
		},
		Education: []types.EduEntry{
			{Institution: "MIT", Degree: "BSc", FieldOfStudy: "CS", GraduationYear: 2018},
		},
	}
	NewPrinter(&buf).PrintResume(record)

	out := buf.String()
	assert.Contains(t, out, "cv.pdf")
	assert.Contains(t, out, "Engineer at Acme (2019-01 - present)")
	assert.Contains(t, out, "MIT")
	assert.Contains(t, out, "2018")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "1234567...", truncate("1234567890x", 10))
}
