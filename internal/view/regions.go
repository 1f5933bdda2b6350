package view

import (
	"html/template"
	"sync"
)

// Region receives rendered markup.
type Region interface {
	Set(template.HTML)
}

// Toggle receives an enabled/disabled state, e.g. for the match button.
type Toggle func(enabled bool)

// Set applies the state. A nil Toggle ignores it.
func (t Toggle) Set(enabled bool) {
	if t != nil {
		t(enabled)
	}
}

// Regions is the set of named outputs a caller hands to writers. Any of them
// may be left nil; writing to a missing region does nothing.
type Regions struct {
	JobDescription      Region
	JobDescriptionModal Region
	Notice              Region
	Matches             Region
	Overlay             Region
	MatchEnabled        Toggle
}

// Write sets html on r unless r is nil.
func Write(r Region, html template.HTML) {
	if r == nil {
		return
	}
	r.Set(html)
}

// Buffer is a Region safe for concurrent writers. The last Set wins.
type Buffer struct {
	mu   sync.RWMutex
	html template.HTML
}

func (b *Buffer) Set(html template.HTML) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.html = html
}

func (b *Buffer) HTML() template.HTML {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.html
}
