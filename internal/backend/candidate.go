package backend

import (
	"context"
	"fmt"
)

const apiCandidatePath = "/get_candidate"

type candidateResponse struct {
	envelope
	Candidate *CandidateDetail `json:"candidate"`
}

func (c *Client) candidate(ctx context.Context, id int) (*CandidateDetail, error) {
	var resp candidateResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d", apiCandidatePath, id), &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, appError(resp.Error, "failed to load candidate")
	}

	if resp.Candidate == nil {
		return &CandidateDetail{}, nil
	}

	return resp.Candidate, nil
}
