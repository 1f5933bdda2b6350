package backend

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultUserAgent = "spigell/recruit-console"
	// Keep error bodies short in debug logs.
	maxLoggedBody = 300
)

// Client talks to the recruiting backend. One Client is safe for concurrent use.
type Client struct {
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New returns a client for the backend rooted at apiURL. The token is optional;
// when set it is sent as a bearer token on every request.
// The HTTP client has no timeout: a stalled call blocks until ctx is done.
func New(logger *zap.Logger, apiURL, token string) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		token:      token,
		APIURL:     apiURL,
		HTTPClient: &http.Client{},
		logger:     logger,
		UserAgent:  defaultUserAgent,
	}
}

// WithTimeout sets a per-request timeout. Zero keeps requests unbounded.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.HTTPClient.Timeout = d
	}
	return c
}

func (c *Client) Status(ctx context.Context) (*SessionInfo, error) {
	return c.status(ctx)
}

func (c *Client) CurrentJD(ctx context.Context) (*JobDescription, error) {
	return c.currentJD(ctx)
}

func (c *Client) Candidate(ctx context.Context, id int) (*CandidateDetail, error) {
	return c.candidate(ctx, id)
}
