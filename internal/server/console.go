package server

import (
	"sync"

	"github.com/spigell/recruit-console/internal/session"
	"github.com/spigell/recruit-console/internal/view"
)

// Console is the server-held state of the page: the session value and one
// buffer per region. Handlers run concurrently, so every field is guarded.
type Console struct {
	mu           sync.Mutex
	state        session.State
	matchEnabled bool

	jd      view.Buffer
	jdModal view.Buffer
	notice  view.Buffer
	matches view.Buffer
	overlay view.Buffer
}

func (c *Console) State() session.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Console) SetState(s session.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
	c.matchEnabled = s.CanMatch()
}

func (c *Console) setMatchEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.matchEnabled = enabled
}

// Regions exposes the buffers to writers.
func (c *Console) Regions() view.Regions {
	return view.Regions{
		JobDescription:      &c.jd,
		JobDescriptionModal: &c.jdModal,
		Notice:              &c.notice,
		Matches:             &c.matches,
		Overlay:             &c.overlay,
		MatchEnabled:        c.setMatchEnabled,
	}
}

func (c *Console) page(version string, maxUploadSize int64) view.Page {
	c.mu.Lock()
	state, enabled := c.state, c.matchEnabled
	c.mu.Unlock()

	jdID, _ := state.JD()

	return view.Page{
		Version:          version,
		JDID:             jdID,
		CandidateCount:   len(state.CandidateIDs),
		MatchEnabled:     enabled,
		JobDescription:   c.jd.HTML(),
		JDModal:          c.jdModal.HTML(),
		Notice:           c.notice.HTML(),
		Matches:          c.matches.HTML(),
		Overlay:          c.overlay.HTML(),
		MaxUploadSizeMiB: maxUploadSize >> 20,
	}
}
