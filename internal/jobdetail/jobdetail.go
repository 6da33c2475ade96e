// Package jobdetail loads a single job posting together with related
// recommendations matched against that job's skills.
package jobdetail

import (
	"context"
	"fmt"

	"github.com/jonathan/jobmatch-cli/internal/api"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

// RelatedLimit caps the similar-jobs list.
const RelatedLimit = 3

// ExternalApplicationError signals that the job is applied to on an external
// site rather than through the tracking API.
type ExternalApplicationError struct {
	URL string
}

func (e *ExternalApplicationError) Error() string {
	return fmt.Sprintf("job accepts applications externally: %s", e.URL)
}

// Controller loads and acts on a single job.
type Controller struct {
	client *api.Client

	job     *types.Job
	related []types.Job
}

// NewController creates a job-detail controller.
func NewController(client *api.Client) *Controller {
	return &Controller{client: client}
}

// Job returns the job from the last successful Load.
func (c *Controller) Job() *types.Job { return c.job }

// Related returns the similar jobs, excluding the loaded job itself.
func (c *Controller) Related() []types.Job { return c.related }

// Load fetches the job and, when it carries skills, its related jobs. The
// related fetch is best-effort: an empty similar-jobs section is an
// acceptable rendering, so its failure is swallowed.
func (c *Controller) Load(ctx context.Context, jobID string) error {
	job, err := c.client.Job(ctx, jobID)
	if err != nil {
		return err
	}
	c.job = job
	c.related = nil

	if job == nil || len(job.Skills) == 0 {
		return nil
	}

	resp, err := c.client.RelatedJobs(ctx, RelatedLimit, job.Skills)
	if err != nil {
		return nil
	}
	c.related = filterCurrent(resp.Jobs, job.ID)
	return nil
}

// filterCurrent drops the loaded job from its own similar-jobs list and caps
// the result.
func filterCurrent(jobs []types.Job, currentID string) []types.Job {
	filtered := make([]types.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID == currentID {
			continue
		}
		filtered = append(filtered, j)
		if len(filtered) == RelatedLimit {
			break
		}
	}
	return filtered
}

// Apply submits an application. Jobs with an external application URL are not
// tracked through the API; the caller gets the URL to open instead.
func (c *Controller) Apply(ctx context.Context) error {
	if c.job == nil {
		return fmt.Errorf("no job loaded")
	}
	if c.job.URL != "" {
		return &ExternalApplicationError{URL: c.job.URL}
	}
	return c.client.Apply(ctx, c.job.ID)
}

// Save bookmarks the loaded job.
func (c *Controller) Save(ctx context.Context) error {
	if c.job == nil {
		return fmt.Errorf("no job loaded")
	}
	return c.client.SaveJob(ctx, c.job.ID)
}
