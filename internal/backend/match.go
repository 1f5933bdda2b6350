package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	apiMatchPath             = "/match"
	apiRequestInterviewsPath = "/request_interviews"
)

type matchResponse struct {
	envelope
	Matches []map[string]interface{} `json:"matches"`
}

// Match runs the backend matcher for the given job description. Records keep
// the backend's order.
func (c *Client) Match(ctx context.Context, jdID int) (*MatchResult, error) {
	if jdID <= 0 {
		return nil, errors.New("job description id is required")
	}

	fields := url.Values{}
	fields.Set("jd_id", strconv.Itoa(jdID))

	var resp matchResponse
	if err := c.postFormData(ctx, apiMatchPath, fields, nil, &resp); err != nil {
		return nil, fmt.Errorf("matching candidates: %w", err)
	}

	if !resp.Success {
		return nil, appError(resp.Error, "matching failed")
	}

	matches, err := decodeMatches(resp.Matches)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("matches decoded", zap.Int("jd_id", jdID), zap.Int("count", len(matches)))

	return &MatchResult{Matches: matches, Message: resp.Message}, nil
}

// decodeMatches resolves the matcher's loosely typed records: numbers may
// arrive as strings and unknown keys are ignored.
func decodeMatches(items []map[string]interface{}) ([]MatchRecord, error) {
	matches := make([]MatchRecord, 0, len(items))

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &matches,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding match records: %w", err)
	}

	return matches, nil
}

// RequestInterviews asks the backend to invite the given candidates and
// returns its confirmation message.
func (c *Client) RequestInterviews(ctx context.Context, jdID int, candidateIDs []int) (string, error) {
	if jdID <= 0 || len(candidateIDs) == 0 {
		return "", errors.New("missing job description id or candidate ids")
	}

	fields := url.Values{}
	fields.Set("jd_id", strconv.Itoa(jdID))
	for _, id := range candidateIDs {
		fields.Add("candidate_ids[]", strconv.Itoa(id))
	}

	var resp envelope
	if err := c.postFormData(ctx, apiRequestInterviewsPath, fields, nil, &resp); err != nil {
		return "", fmt.Errorf("requesting interviews: %w", err)
	}

	if !resp.Success {
		return "", appError(resp.Error, "interview request failed")
	}

	return resp.Message, nil
}
