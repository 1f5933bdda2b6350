package backend

import (
	"context"
	"fmt"
)

const (
	apiStatusPath    = "/status"
	apiCurrentJDPath = "/current_jd"
)

type statusResponse struct {
	SessionInfo *SessionInfo `json:"session_info"`
}

type currentJDResponse struct {
	envelope
	JobDescription *JobDescription `json:"job_description"`
}

func (c *Client) status(ctx context.Context) (*SessionInfo, error) {
	var resp statusResponse
	if err := c.getJSON(ctx, apiStatusPath, &resp); err != nil {
		return nil, fmt.Errorf("getting session status: %w", err)
	}

	if resp.SessionInfo == nil {
		return &SessionInfo{}, nil
	}

	return resp.SessionInfo, nil
}

func (c *Client) currentJD(ctx context.Context) (*JobDescription, error) {
	var resp currentJDResponse
	if err := c.getJSON(ctx, apiCurrentJDPath, &resp); err != nil {
		return nil, fmt.Errorf("getting current job description: %w", err)
	}

	if !resp.Success {
		return nil, appError(resp.Error, "no job description available")
	}

	if resp.JobDescription == nil {
		return nil, appError("", "no job description available")
	}

	return resp.JobDescription, nil
}
