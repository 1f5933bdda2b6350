// Package session tracks which job description and candidates the backend
// session holds, and whether a match run can start.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/logger"
	"github.com/spigell/recruit-console/internal/view"
)

// State is the console's view of the backend session. It is a value: callers
// own it and pass it to the Tracker explicitly.
type State struct {
	JDID         *int
	CandidateIDs []int
}

// CanMatch reports whether both a job description and candidates are present.
func (s State) CanMatch() bool {
	return s.JDID != nil && len(s.CandidateIDs) > 0
}

// WithJD returns a copy of s pointing at the given job description.
// Non-positive ids clear it.
func (s State) WithJD(id int) State {
	next := State{CandidateIDs: append([]int(nil), s.CandidateIDs...)}
	if id > 0 {
		next.JDID = &id
	}
	return next
}

// WithCandidate returns a copy of s with id appended to the uploaded
// candidates. Non-positive and already known ids are ignored.
func (s State) WithCandidate(id int) State {
	next := State{JDID: s.JDID, CandidateIDs: append([]int(nil), s.CandidateIDs...)}
	if id <= 0 {
		return next
	}
	for _, known := range next.CandidateIDs {
		if known == id {
			return next
		}
	}
	next.CandidateIDs = append(next.CandidateIDs, id)
	return next
}

// JD returns the job description id and whether it is set.
func (s State) JD() (int, bool) {
	if s.JDID == nil {
		return 0, false
	}
	return *s.JDID, true
}

// StatusSource is the part of the backend the tracker reads.
type StatusSource interface {
	Status(ctx context.Context) (*backend.SessionInfo, error)
	CurrentJD(ctx context.Context) (*backend.JobDescription, error)
}

type Tracker struct {
	source       StatusSource
	logger       *zap.Logger
	matchEnabled view.Toggle
}

// NewTracker returns a tracker reading from source. matchEnabled may be nil.
func NewTracker(source StatusSource, log *zap.Logger, matchEnabled view.Toggle) *Tracker {
	return &Tracker{
		source:       source,
		logger:       logger.WithFields(log, logger.Component("session")),
		matchEnabled: matchEnabled,
	}
}

// Refresh polls the backend and returns the rebuilt state. When the status
// poll fails the prior state is returned unchanged. The only side effect is
// the match toggle.
func (t *Tracker) Refresh(ctx context.Context, prior State) State {
	info, err := t.source.Status(ctx)
	if err != nil {
		t.logger.Warn("checking status", zap.Error(err))
		return prior
	}

	if info == nil {
		info = &backend.SessionInfo{}
	}

	var next State

	if info.HasJD {
		jd, err := t.source.CurrentJD(ctx)
		switch {
		case err != nil:
			t.logger.Warn("getting current job description", zap.Error(err))
		case !jd.HasID():
			t.logger.Warn("current job description has no id")
		default:
			next = next.WithJD(jd.ID)
		}
	}

	if info.UploadedCandidatesCount > 0 {
		next.CandidateIDs = append([]int(nil), info.UploadedCandidateIDs...)
	}

	t.logger.Debug("session refreshed",
		logger.JDIDField(next.JDID),
		zap.Ints("candidate_ids", next.CandidateIDs),
		zap.Bool("can_match", next.CanMatch()),
	)

	t.matchEnabled.Set(next.CanMatch())

	return next
}
