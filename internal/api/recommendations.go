package api

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/jobmatch-cli/internal/types"
)

// JobsQuery holds the query parameters for a paged recommendations request.
// Zero-valued filters are omitted from the request rather than sent empty.
type JobsQuery struct {
	Page          int
	Limit         int
	Refresh       bool
	MinMatchScore int // 0-100 UI scale; transmitted as 0-1
	Location      string
	SearchTerm    string
}

// Params translates the query into wire parameters. MinMatchScore is
// converted from the 0-100 UI scale to the API's 0-1 scale and omitted
// entirely when zero.
func (q JobsQuery) Params() map[string]string {
	params := map[string]string{
		"page":  strconv.Itoa(q.Page),
		"limit": strconv.Itoa(q.Limit),
	}
	if q.Refresh {
		params["refresh"] = "true"
	}
	if q.MinMatchScore > 0 {
		params["minMatchScore"] = strconv.FormatFloat(float64(q.MinMatchScore)/100, 'g', -1, 64)
	}
	if q.Location != "" {
		params["location"] = q.Location
	}
	if q.SearchTerm != "" {
		params["searchTerm"] = q.SearchTerm
	}
	return params
}

// RecommendedJobs fetches a page of recommended jobs.
func (c *Client) RecommendedJobs(ctx context.Context, q JobsQuery) (*types.JobsResponse, error) {
	var out types.JobsResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(q.Params()).
		SetResult(&out).
		Get("/recommendations/jobs")
	if err != nil {
		return nil, wrapTransport("recommended jobs", err)
	}
	if err := c.checkResponse(resp, out.Success); err != nil {
		return nil, err
	}
	return &out, nil
}

// RelatedJobs fetches up to limit recommendations matched against an explicit
// skill list instead of the identity's own skills.
func (c *Client) RelatedJobs(ctx context.Context, limit int, skills []string) (*types.JobsResponse, error) {
	var out types.JobsResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("skills", strings.Join(skills, ",")).
		SetResult(&out).
		Get("/recommendations/jobs")
	if err != nil {
		return nil, wrapTransport("related jobs", err)
	}
	if err := c.checkResponse(resp, out.Success); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadResume posts the resume file as multipart form data under the
// "resume" field. The server extracts skills as a side effect, so callers
// should reload the identity afterwards.
func (c *Client) UploadResume(ctx context.Context, fileName string, content io.Reader) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetFileReader("resume", fileName, content).
		SetResult(&out).
		Post("/recommendations/upload-resume")
	if err != nil {
		return wrapTransport("upload resume", err)
	}
	return c.checkResponse(resp, out.Success)
}

// ReplaceSkills overwrites the identity's skill list in one call.
func (c *Client) ReplaceSkills(ctx context.Context, skills []string) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(map[string][]string{"skills": skills}).
		SetResult(&out).
		Put("/recommendations/skills")
	if err != nil {
		return wrapTransport("replace skills", err)
	}
	return c.checkResponse(resp, out.Success)
}

// ExtractSkills asks the server to extract a skill list from free text.
func (c *Client) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	var out types.SkillsResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text}).
		SetResult(&out).
		Post("/recommendations/extract-skills")
	if err != nil {
		return nil, wrapTransport("extract skills", err)
	}
	if err := c.checkResponse(resp, out.Success); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

// SaveJob bookmarks a job for the current identity.
func (c *Client) SaveJob(ctx context.Context, jobID string) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Post(fmt.Sprintf("/recommendations/save-job/%s", jobID))
	if err != nil {
		return wrapTransport("save job", err)
	}
	return c.checkResponse(resp, out.Success)
}
