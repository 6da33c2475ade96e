// Package jobs implements the paginated, filterable job recommendation list.
package jobs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/jobmatch-cli/internal/api"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

// ItemsPerPage is the fixed page size requested from the API.
const ItemsPerPage = 10

// Pagination is the page state derived from each list response. It is not
// independently validated against the requested page; the server's answer
// wins.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalJobs   int
}

// Filters holds the client-local filter criteria. MinMatchScore uses the
// 0-100 UI scale; translation to the API's 0-1 scale happens at request time.
type Filters struct {
	MinMatchScore int
	Location      string
	SearchTerm    string
}

// DefaultFilters returns the zero criteria applied on reset.
func DefaultFilters() Filters {
	return Filters{}
}

// Active reports whether any filter deviates from the defaults.
func (f Filters) Active() bool {
	return f.MinMatchScore > 0 || f.Location != "" || f.SearchTerm != ""
}

// Controller fetches pages of recommended jobs and holds the list view state.
type Controller struct {
	client *api.Client
	log    *logrus.Logger

	// seq tags each outgoing fetch; completions that are no longer the
	// latest issued are discarded instead of clobbering newer state.
	seq atomic.Uint64

	mu         sync.Mutex
	jobs       []types.Job
	pagination Pagination
	filters    Filters
	loading    bool
}

// NewController creates a controller over the given API client.
func NewController(client *api.Client, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.New()
	}
	return &Controller{
		client:     client,
		log:        log,
		pagination: Pagination{CurrentPage: 1, TotalPages: 1},
	}
}

// Jobs returns the jobs from the last successful fetch.
func (c *Controller) Jobs() []types.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.jobs
}

// Pagination returns the page state from the last successful fetch.
func (c *Controller) Pagination() Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// Filters returns the current filter criteria.
func (c *Controller) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetFilters replaces the filter criteria without refetching.
func (c *Controller) SetFilters(f Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f
}

// Loading reports whether a fetch is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// FetchJobs requests one page of recommendations using the current filters.
// On success the job list and pagination state are replaced wholesale. On
// failure prior state is left unchanged apart from the cleared loading flag.
func (c *Controller) FetchJobs(ctx context.Context, page int, refresh bool) error {
	c.mu.Lock()
	c.loading = true
	q := api.JobsQuery{
		Page:          page,
		Limit:         ItemsPerPage,
		Refresh:       refresh,
		MinMatchScore: c.filters.MinMatchScore,
		Location:      c.filters.Location,
		SearchTerm:    c.filters.SearchTerm,
	}
	c.mu.Unlock()

	seq := c.seq.Add(1)

	resp, err := c.client.RecommendedJobs(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if seq != c.seq.Load() {
		// A newer request was issued while this one was in flight; its
		// response, whenever it lands, is the one that counts.
		c.log.WithField("seq", seq).Debug("discarding stale jobs response")
		return nil
	}

	if err != nil {
		return err
	}

	c.jobs = resp.Jobs
	c.pagination = Pagination{
		CurrentPage: orOne(resp.Page),
		TotalPages:  orOne(resp.Pages),
		TotalJobs:   resp.Total,
	}
	return nil
}

// ApplyFilters re-runs the fetch at page 1 with the current criteria.
// Changing filters always resets pagination.
func (c *Controller) ApplyFilters(ctx context.Context) error {
	return c.FetchJobs(ctx, 1, false)
}

// ResetFilters restores the default criteria and refetches page 1.
func (c *Controller) ResetFilters(ctx context.Context) error {
	c.SetFilters(DefaultFilters())
	return c.FetchJobs(ctx, 1, false)
}

// GoToPage navigates to the given page. Out-of-range pages are a no-op.
func (c *Controller) GoToPage(ctx context.Context, page int) error {
	c.mu.Lock()
	total := c.pagination.TotalPages
	c.mu.Unlock()
	if page < 1 || page > total {
		return nil
	}
	return c.FetchJobs(ctx, page, false)
}

func orOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
