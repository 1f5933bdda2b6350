package view

import (
	"html/template"
	"math"

	"github.com/spigell/recruit-console/internal/backend"
)

const (
	maxMatchedChips = 5
	maxGapChips     = 3

	noMatchesMessage = "No matches found for this job description and set of candidates."
)

// Severity is the four-tier classification of a match percentage.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityFair
	SeverityGood
	SeverityExcellent
)

// Band classifies percent. Lower bounds are inclusive.
func Band(percent int) Severity {
	switch {
	case percent >= 85:
		return SeverityExcellent
	case percent >= 70:
		return SeverityGood
	case percent >= 50:
		return SeverityFair
	default:
		return SeverityLow
	}
}

// Color is the bootstrap contextual color of the band.
func (s Severity) Color() string {
	switch s {
	case SeverityExcellent:
		return "success"
	case SeverityGood:
		return "primary"
	case SeverityFair:
		return "warning"
	default:
		return "danger"
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityExcellent:
		return "excellent"
	case SeverityGood:
		return "good"
	case SeverityFair:
		return "fair"
	default:
		return "low"
	}
}

// Percent is the record's score as an integer in [0, 100]. ScorePercent wins
// whenever it is set, including zero.
func Percent(rec backend.MatchRecord) int {
	var p int
	switch {
	case rec.ScorePercent != nil:
		p = *rec.ScorePercent
	case rec.Score != nil:
		p = int(math.Round(*rec.Score * 100))
	}

	return min(max(p, 0), 100)
}

type matchCard struct {
	CandidateID int
	Name        string
	Email       string
	Phone       string
	Percent     int
	Color       string
	Severity    string
	Matched     []string
	Gaps        []string
	Summary     string
}

type matchesData struct {
	Count int
	Cards []matchCard
}

// Matches renders a match run in the given order. No records renders a single
// warning.
func (r *Renderer) Matches(records []backend.MatchRecord) (template.HTML, error) {
	if len(records) == 0 {
		return r.render("no-matches", noMatchesMessage)
	}

	data := matchesData{Count: len(records), Cards: make([]matchCard, 0, len(records))}
	for _, rec := range records {
		percent := Percent(rec)
		band := Band(percent)

		data.Cards = append(data.Cards, matchCard{
			CandidateID: rec.CandidateID,
			Name:        orDefault(rec.CandidateInfo.Name, "Candidate"),
			Email:       rec.CandidateInfo.Email,
			Phone:       rec.CandidateInfo.Phone,
			Percent:     percent,
			Color:       band.Color(),
			Severity:    band.String(),
			Matched:     head(rec.SkillsMatch, maxMatchedChips),
			Gaps:        head(rec.SkillsGap, maxGapChips),
			Summary:     orDefault(rec.Summary, "No summary available."),
		})
	}

	return r.render("matches", data)
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
