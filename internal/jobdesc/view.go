package jobdesc

import "github.com/spigell/recruit-console/internal/backend"

const (
	DefaultTitle       = "Job Position"
	DefaultCompany     = "Company"
	DefaultSummary     = "No description provided"
	DefaultRequirement = "Not specified"
)

// View is a job description with every placeholder resolved. Empty lists are
// left empty; renderers print their own "None specified" marker for them.
type View struct {
	ID               int
	Title            string
	Company          string
	Summary          string
	Responsibilities []string
	Qualifications   []string
	Experience       string
	Education        string
}

func Present(jd *backend.JobDescription) *View {
	if jd == nil {
		jd = &backend.JobDescription{}
	}

	sections := Segment(jd)

	summary := DefaultSummary
	if jd.Description != "" {
		summary = Summary(jd)
	}

	return &View{
		ID:               jd.ID,
		Title:            orDefault(jd.Title, DefaultTitle),
		Company:          orDefault(jd.Company, DefaultCompany),
		Summary:          summary,
		Responsibilities: sections.Responsibilities,
		Qualifications:   sections.Qualifications,
		Experience:       orDefault(jd.RequiredExperience, DefaultRequirement),
		Education:        orDefault(jd.RequiredEducation, DefaultRequirement),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
