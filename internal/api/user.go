package api

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/jobmatch-cli/internal/types"
)

// UpdateProfile replaces the identity's personal information.
func (c *Client) UpdateProfile(ctx context.Context, req *types.UpdateProfileRequest) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/user/profile")
	if err != nil {
		return wrapTransport("update profile", err)
	}
	return c.checkResponse(resp, out.Success)
}

// UpdatePassword changes the account password.
func (c *Client) UpdatePassword(ctx context.Context, req *types.UpdatePasswordRequest) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/user/password")
	if err != nil {
		return wrapTransport("update password", err)
	}
	return c.checkResponse(resp, out.Success)
}

// UpdatePreferences replaces the job-search preferences.
func (c *Client) UpdatePreferences(ctx context.Context, prefs *types.Preferences) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(prefs).
		SetResult(&out).
		Put("/user/preferences")
	if err != nil {
		return wrapTransport("update preferences", err)
	}
	return c.checkResponse(resp, out.Success)
}

// DeleteAccount permanently removes the account.
func (c *Client) DeleteAccount(ctx context.Context) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Delete("/user/account")
	if err != nil {
		return wrapTransport("delete account", err)
	}
	return c.checkResponse(resp, out.Success)
}

// Resume fetches the stored resume record. A missing resume is returned as a
// nil record, not an error.
func (c *Client) Resume(ctx context.Context) (*types.ResumeRecord, error) {
	var out types.ResumeResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/user/resume")
	if err != nil {
		return nil, wrapTransport("resume", err)
	}
	if err := c.checkResponse(resp, out.Success); err != nil {
		return nil, err
	}
	return out.Resume, nil
}

// DeleteResume removes the stored resume and its extracted skills.
func (c *Client) DeleteResume(ctx context.Context) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Delete("/user/resume")
	if err != nil {
		return wrapTransport("delete resume", err)
	}
	return c.checkResponse(resp, out.Success)
}

// DownloadResume streams the stored resume file into w and returns the number
// of bytes written.
func (c *Client) DownloadResume(ctx context.Context, w io.Writer) (int64, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/user/resume/download")
	if err != nil {
		return 0, wrapTransport("download resume", err)
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if resp.StatusCode() >= 400 {
		return 0, &RequestError{StatusCode: resp.StatusCode()}
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("download resume: copying body: %w", err)
	}
	return n, nil
}

// ReplaceWorkHistory overwrites the work-history sub-list in one call.
func (c *Client) ReplaceWorkHistory(ctx context.Context, entries []types.WorkEntry) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(map[string][]types.WorkEntry{"workHistory": entries}).
		SetResult(&out).
		Put("/user/resume/work-history")
	if err != nil {
		return wrapTransport("replace work history", err)
	}
	return c.checkResponse(resp, out.Success)
}

// ReplaceEducation overwrites the education sub-list in one call.
func (c *Client) ReplaceEducation(ctx context.Context, entries []types.EduEntry) error {
	var out types.SuccessResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(map[string][]types.EduEntry{"education": entries}).
		SetResult(&out).
		Put("/user/resume/education")
	if err != nil {
		return wrapTransport("replace education", err)
	}
	return c.checkResponse(resp, out.Success)
}
