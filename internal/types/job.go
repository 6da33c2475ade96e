package types

import "time"

// Job is a recommended job posting as returned by the API.
// MatchScore is a server-computed relevance value in [0,1]; the client only
// renders it, scaled to a percentage.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Skills      []string  `json:"skills,omitempty"`
	MatchScore  float64   `json:"matchScore"`
	Description string    `json:"description,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	Type        string    `json:"type,omitempty"`
	PostedAt    time.Time `json:"postedAt"`
	URL         string    `json:"url,omitempty"`
}

// MatchPercent returns the match score scaled to a rounded 0-100 percentage.
func (j *Job) MatchPercent() int {
	if j == nil {
		return 0
	}
	return int(j.MatchScore*100 + 0.5)
}

// JobsResponse is the envelope returned by GET /recommendations/jobs.
type JobsResponse struct {
	Success bool   `json:"success"`
	Jobs    []Job  `json:"jobs"`
	Count   int    `json:"count"`
	Page    int    `json:"page"`
	Pages   int    `json:"pages"`
	Total   int    `json:"total"`
	Error   string `json:"error,omitempty"`
}

// JobResponse is the envelope returned by GET /jobs/:id.
type JobResponse struct {
	Success bool   `json:"success"`
	Data    *Job   `json:"data"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse is the minimal acknowledgement envelope used by mutating calls.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SkillsResponse is the envelope returned by POST /recommendations/extract-skills.
type SkillsResponse struct {
	Success bool     `json:"success"`
	Skills  []string `json:"skills"`
	Error   string   `json:"error,omitempty"`
}
