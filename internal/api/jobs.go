package api

import (
	"context"
	"fmt"

	"github.com/jonathan/jobmatch-cli/internal/types"
)

// Job fetches a single job posting by ID.
func (c *Client) Job(ctx context.Context, jobID string) (*types.Job, error) {
	var out types.JobResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/jobs/%s", jobID))
	if err != nil {
		return nil, wrapTransport("job", err)
	}
	if err := c.checkResponse(resp, out.Success); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Apply records an application for the job in the tracking system. Jobs that
// carry an external application URL are applied to out of band; callers check
// Job.URL before reaching for this.
func (c *Client) Apply(ctx context.Context, jobID string) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/applications/apply/%s", jobID))
	if err != nil {
		return wrapTransport("apply", err)
	}
	return c.checkResponse(resp, true)
}
