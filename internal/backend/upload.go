package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

const (
	apiUploadJDPath = "/upload_jd"
	apiUploadCVPath = "/upload_cv"

	fieldJDFile = "jd_file"
	fieldJDText = "jd_text"
	fieldCVFile = "cv_file"
	fieldCVText = "cv_text"
)

type uploadCVResponse struct {
	envelope
	CandidateID int `json:"candidate_id"`
}

type uploadJDResponse struct {
	envelope
	JDID   int             `json:"jd_id"`
	JDData *JobDescription `json:"jd_data"`
}

// UploadJD relays a job description file to the backend. The extracted text
// is sent as jd_text when present; the file itself is always attached.
func (c *Client) UploadJD(ctx context.Context, upload JDUpload) (*UploadedJD, error) {
	if len(upload.Content) == 0 && upload.Text == "" {
		return nil, errors.New("job description upload is empty")
	}

	fields := url.Values{}
	if upload.Text != "" {
		fields.Set(fieldJDText, upload.Text)
	}

	filename := upload.Filename
	if filename == "" {
		filename = "job_description.txt"
	}

	files := []formFile{{field: fieldJDFile, filename: filename, content: upload.Content}}

	var resp uploadJDResponse
	if err := c.postFormData(ctx, apiUploadJDPath, fields, files, &resp); err != nil {
		return nil, fmt.Errorf("uploading job description: %w", err)
	}

	if !resp.Success {
		return nil, appError(resp.Error, "Error processing job description")
	}

	return &UploadedJD{
		ID:      resp.JDID,
		Data:    resp.JDData,
		Message: resp.Message,
	}, nil
}

// UploadCV relays a candidate CV and returns the id the backend assigned.
func (c *Client) UploadCV(ctx context.Context, upload CVUpload) (*UploadedCV, error) {
	if len(upload.Content) == 0 && upload.Text == "" {
		return nil, errors.New("cv upload is empty")
	}

	fields := url.Values{}
	if upload.Text != "" {
		fields.Set(fieldCVText, upload.Text)
	}

	filename := upload.Filename
	if filename == "" {
		filename = "cv.txt"
	}

	files := []formFile{{field: fieldCVFile, filename: filename, content: upload.Content}}

	var resp uploadCVResponse
	if err := c.postFormData(ctx, apiUploadCVPath, fields, files, &resp); err != nil {
		return nil, fmt.Errorf("uploading cv: %w", err)
	}

	if !resp.Success {
		return nil, appError(resp.Error, "Error processing CV")
	}

	return &UploadedCV{
		CandidateID: resp.CandidateID,
		Message:     resp.Message,
	}, nil
}
