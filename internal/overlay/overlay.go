// Package overlay fetches one candidate's details and renders them into the
// shared overlay region.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/logger"
	"github.com/spigell/recruit-console/internal/view"
)

const loadingCaption = "Loading candidate details..."

type Fetcher interface {
	Candidate(ctx context.Context, id int) (*backend.CandidateDetail, error)
}

// Overlay does not de-duplicate: concurrent Show calls each fetch, and the
// region holds whichever result was written last.
type Overlay struct {
	fetcher  Fetcher
	renderer *view.Renderer
	region   view.Region
	logger   *zap.Logger
}

// New returns an overlay writing into region. A nil region discards output.
func New(fetcher Fetcher, renderer *view.Renderer, region view.Region, log *zap.Logger) *Overlay {
	return &Overlay{
		fetcher:  fetcher,
		renderer: renderer,
		region:   region,
		logger:   logger.WithFields(log, logger.Component("overlay")),
	}
}

// Show writes the loading indicator, fetches the candidate and replaces the
// indicator with the details or an inline error. It returns the final HTML
// this call wrote, which may differ from the region if another Show finished
// later.
func (o *Overlay) Show(ctx context.Context, candidateID int) template.HTML {
	log := o.logger.With(logger.CandidateIDField(candidateID), zap.String("fetch_id", uuid.NewString()))

	loading, err := o.renderer.Loading(loadingCaption)
	if err != nil {
		log.Error("rendering loading indicator", zap.Error(err))
	} else {
		view.Write(o.region, loading)
	}

	log.Debug("fetching candidate details")

	detail, err := o.fetcher.Candidate(ctx, candidateID)
	if err != nil {
		log.Warn("fetching candidate details", zap.Error(err))
		return o.fail(log, err)
	}

	html, err := o.renderer.Candidate(detail)
	if err != nil {
		log.Error("rendering candidate details", zap.Error(err))
		return o.fail(log, err)
	}

	view.Write(o.region, html)
	return html
}

func (o *Overlay) fail(log *zap.Logger, cause error) template.HTML {
	html, err := o.renderer.Alert(view.AlertDanger, ErrorMessage(cause))
	if err != nil {
		log.Error("rendering error alert", zap.Error(err))
		html = template.HTML(template.HTMLEscapeString(ErrorMessage(cause)))
	}

	view.Write(o.region, html)
	return html
}

// ErrorMessage is the inline text shown when details cannot be loaded.
// Backend error strings are kept verbatim.
func ErrorMessage(err error) string {
	reason := err.Error()

	var appErr *backend.AppError
	if errors.As(err, &appErr) {
		reason = appErr.Message
	}

	return fmt.Sprintf("Error loading candidate details: %s", reason)
}
