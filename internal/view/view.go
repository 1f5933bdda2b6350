// Package view renders job descriptions, match results and candidate details
// into HTML fragments for the console page.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/jobdesc"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	AlertSuccess = "success"
	AlertInfo    = "info"
	AlertWarning = "warning"
	AlertDanger  = "danger"
)

// Renderer executes the embedded templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("view").Funcs(template.FuncMap{
		"listOf": listOf,
	}).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

type listData struct {
	Items []string
	Icon  string
}

func listOf(items []string, icon string) listData {
	return listData{Items: items, Icon: icon}
}

type alertData struct {
	Kind    string
	Icon    string
	Message string
}

// Alert renders a dismissable notice. Kind is one of the Alert* constants.
func (r *Renderer) Alert(kind, message string) (template.HTML, error) {
	icon := "fa-info-circle"
	switch kind {
	case AlertSuccess:
		icon = "fa-check-circle"
	case AlertWarning:
		icon = "fa-exclamation-triangle"
	case AlertDanger:
		icon = "fa-exclamation-circle"
	}

	return r.render("alert", alertData{Kind: kind, Icon: icon, Message: message})
}

// Loading renders a spinner with a caption.
func (r *Renderer) Loading(caption string) (template.HTML, error) {
	return r.render("loading", caption)
}

func (r *Renderer) JobDescription(v *jobdesc.View) (template.HTML, error) {
	if v == nil {
		v = jobdesc.Present(nil)
	}
	return r.render("jobdesc", v)
}

func (r *Renderer) Candidate(detail *backend.CandidateDetail) (template.HTML, error) {
	if detail == nil {
		detail = &backend.CandidateDetail{}
	}
	return r.render("candidate", detail)
}

// Page renders the whole console document.
func (r *Renderer) Page(p Page) (template.HTML, error) {
	return r.render("page", p)
}

func (r *Renderer) render(name string, data interface{}) (template.HTML, error) {
	var b bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}

	// Output of html/template is already escaped.
	return template.HTML(b.String()), nil
}

// Page is the data of the console document. Fragments come from the
// console's region buffers.
type Page struct {
	Version          string
	JDID             int
	CandidateCount   int
	MatchEnabled     bool
	JobDescription   template.HTML
	JDModal          template.HTML
	Notice           template.HTML
	Matches          template.HTML
	Overlay          template.HTML
	MaxUploadSizeMiB int64
}

// HasJD reports whether the page shows a loaded job description.
func (p Page) HasJD() bool {
	return p.JDID > 0
}
