// Package api provides the HTTP client adapter for the jobmatch API.
// Every call is a single best-effort attempt: no retry, no circuit breaking.
// Failures propagate to the caller as a *RequestError carrying the optional
// server-supplied message.
package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// DefaultTimeout is the transport-level request timeout.
const DefaultTimeout = 30 * time.Second

// noSkillsMessage is the known error the recommendations endpoint returns for
// identities with an empty skill list. Callers treat it as an expected-empty
// state, not a failure.
const noSkillsMessage = "No skills found. Please upload your resume or add skills first"

// TokenProvider returns the current bearer credential, or "" when the session
// is unauthenticated.
type TokenProvider func() string

// Options configures the client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logrus.Logger
}

// Client is the resource-oriented adapter over the remote API.
type Client struct {
	rc    *resty.Client
	log   *logrus.Logger
	token TokenProvider
}

// New creates a client for the given API base URL.
func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}

	c := &Client{
		rc:  resty.New().SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).SetTimeout(opts.Timeout),
		log: opts.Logger,
	}

	c.rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		if c.token != nil {
			if tok := c.token(); tok != "" {
				req.SetHeader("Authorization", "Bearer "+tok)
			}
		}
		return nil
	})

	return c
}

// SetTokenProvider installs the credential source consulted on every request.
// The session store owns the credential; the client only attaches it.
func (c *Client) SetTokenProvider(tp TokenProvider) {
	c.token = tp
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}

// RequestError represents a non-success API response. Message is the
// server-supplied error text when the body carried one, empty otherwise.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// IsNoSkills reports whether err is the recommendation endpoint's
// expected-empty "no skills" response.
func IsNoSkills(err error) bool {
	reqErr, ok := err.(*RequestError)
	return ok && reqErr.Message == noSkillsMessage
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	reqErr, ok := err.(*RequestError)
	return ok && reqErr.StatusCode == 401
}

// serverMessage extracts the error text from an arbitrary response body.
// The API is not consistent about the field name, so both are tried.
func serverMessage(body []byte) string {
	for _, field := range []string{"error", "message"} {
		if v := gjson.GetBytes(body, field); v.Exists() && v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}

// checkResponse turns a non-2xx response, or a parsed envelope with
// success=false, into a *RequestError.
func (c *Client) checkResponse(resp *resty.Response, success bool) error {
	if resp.IsError() || !success {
		err := &RequestError{
			StatusCode: resp.StatusCode(),
			Message:    serverMessage(resp.Body()),
		}
		c.log.WithFields(logrus.Fields{
			"status": resp.StatusCode(),
			"path":   resp.Request.URL,
		}).Debug("api request failed")
		return err
	}
	return nil
}

// wrapTransport normalizes transport-level failures (DNS, refused connection,
// timeout) so callers see a single error shape.
func wrapTransport(op string, err error) error {
	return fmt.Errorf("%s: request failed: %w", op, err)
}
