// Package jobdesc splits free-text job descriptions into display sections.
//
// The splitting is marker based and literal: a marker word that appears inside
// prose splits the text there too. Consumers depend on that exact output.
package jobdesc

import (
	"regexp"
	"strings"

	"github.com/spigell/recruit-console/internal/backend"
)

const (
	markerResponsibilities = "Responsibilities:"
	markerQualifications   = "Qualifications:"
	markerRequirements     = "Requirements:"
)

// jsSpace is the ECMAScript \s class. RE2's \s covers ASCII only.
const jsSpace = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var (
	sectionStop    = regexp.MustCompile(`Qualifications:|Requirements:`)
	paragraphBreak = regexp.MustCompile(`\n` + jsSpace + `*\n`)
	itemDelimiter  = regexp.MustCompile(`\n-|\n•|\n\d+\.`)
)

// Sections holds the derived display lists of a job description.
type Sections struct {
	Responsibilities []string
	Qualifications   []string
}

// Segment derives responsibilities and qualifications from the description
// text, falling back to the structured skill lists when a section is empty.
func Segment(jd *backend.JobDescription) Sections {
	var s Sections
	if jd == nil {
		return s
	}

	desc := jd.Description

	if strings.Contains(desc, markerResponsibilities) {
		section := afterMarker(desc, markerResponsibilities)
		section = sectionStop.Split(section, 2)[0]
		s.Responsibilities = items(firstParagraph(section))
	}

	switch {
	case strings.Contains(desc, markerQualifications):
		s.Qualifications = items(firstParagraph(afterMarker(desc, markerQualifications)))
	case strings.Contains(desc, markerRequirements):
		s.Qualifications = items(firstParagraph(afterMarker(desc, markerRequirements)))
	}

	if len(s.Responsibilities) == 0 && jd.RequiredSkills != nil {
		s.Responsibilities = jd.RequiredSkills
	}

	if len(s.Qualifications) == 0 && jd.PreferredSkills != nil {
		s.Qualifications = jd.PreferredSkills
	}

	return s
}

// Summary is the description text before the responsibilities marker.
func Summary(jd *backend.JobDescription) string {
	if jd == nil {
		return ""
	}

	before, _, _ := strings.Cut(jd.Description, markerResponsibilities)
	return trimJS(before)
}

// afterMarker returns the text between the first and the second occurrence of
// marker, or up to the end when the marker occurs once.
func afterMarker(s, marker string) string {
	_, after, found := strings.Cut(s, marker)
	if !found {
		return ""
	}

	section, _, _ := strings.Cut(after, marker)
	return section
}

func firstParagraph(s string) string {
	return paragraphBreak.Split(s, 2)[0]
}

func items(paragraph string) []string {
	var result []string
	for _, item := range itemDelimiter.Split(paragraph, -1) {
		item = trimJS(item)
		if item == "" {
			continue
		}
		result = append(result, item)
	}

	return result
}

func trimJS(s string) string {
	return strings.TrimFunc(s, isJSSpace)
}

func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}

	return r >= '\u2000' && r <= '\u200a'
}
