// Package dashboard derives the at-a-glance statistics shown on sign-in.
package dashboard

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/jobmatch-cli/internal/api"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

// RecentLimit caps the recent-matches list.
const RecentLimit = 5

// Stats are the three display statistics derived on load.
type Stats struct {
	Skills        int // skill count, straight from the identity
	JobsMatched   int // match count reported by the API
	TopMatchScore int // top job's match score as a rounded percentage, 0 if no jobs
}

// Controller loads the dashboard view state.
type Controller struct {
	client *api.Client
	log    *logrus.Logger

	stats   Stats
	recent  []types.Job
	loading bool
}

// NewController creates a dashboard controller.
func NewController(client *api.Client, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.New()
	}
	return &Controller{client: client, log: log}
}

// Stats returns the statistics from the last Load.
func (c *Controller) Stats() Stats { return c.stats }

// Recent returns up to RecentLimit of the freshest job matches.
func (c *Controller) Recent() []types.Job { return c.recent }

// Load populates the dashboard for the given identity. Identities without
// skills skip the recommendations fetch entirely: the endpoint is known to
// reject them with a "no skills" error, and an empty state is the intended
// rendering, not a notification. The same applies when the fetch does come
// back with that error anyway.
func (c *Controller) Load(ctx context.Context, identity *types.Identity) error {
	c.stats = Stats{}
	c.recent = nil

	if identity == nil {
		return nil
	}
	c.stats.Skills = len(identity.Skills)

	if !identity.HasSkills() {
		c.log.Debug("identity has no skills; skipping recommendations fetch")
		return nil
	}

	c.loading = true
	defer func() { c.loading = false }()

	resp, err := c.client.RecommendedJobs(ctx, api.JobsQuery{Page: 1, Limit: 10})
	if err != nil {
		if api.IsNoSkills(err) {
			return nil
		}
		return err
	}

	c.stats.JobsMatched = resp.Count
	if len(resp.Jobs) > 0 {
		c.stats.TopMatchScore = resp.Jobs[0].MatchPercent()
	}

	c.recent = resp.Jobs
	if len(c.recent) > RecentLimit {
		c.recent = c.recent[:RecentLimit]
	}
	return nil
}
