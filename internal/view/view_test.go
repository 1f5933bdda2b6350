package view

import (
	"html/template"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/jobdesc"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New()
	require.NoError(t, err)

	return r
}

func parse(t *testing.T, html template.HTML) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	require.NoError(t, err)

	return doc
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int { return &v }

func TestPercent(t *testing.T) {
	tests := []struct {
		name   string
		rec    backend.MatchRecord
		expect int
	}{
		{name: "fraction score", rec: backend.MatchRecord{Score: floatPtr(0.93)}, expect: 93},
		{name: "rounds half up", rec: backend.MatchRecord{Score: floatPtr(0.125)}, expect: 13},
		{name: "percent wins", rec: backend.MatchRecord{Score: floatPtr(0.1), ScorePercent: intPtr(50)}, expect: 50},
		{name: "zero percent is present", rec: backend.MatchRecord{Score: floatPtr(0.9), ScorePercent: intPtr(0)}, expect: 0},
		{name: "clamped high", rec: backend.MatchRecord{ScorePercent: intPtr(140)}, expect: 100},
		{name: "clamped low", rec: backend.MatchRecord{Score: floatPtr(-0.2)}, expect: 0},
		{name: "no score", rec: backend.MatchRecord{}, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Percent(tt.rec))
		})
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		percent int
		expect  Severity
		color   string
	}{
		{percent: 100, expect: SeverityExcellent, color: "success"},
		{percent: 85, expect: SeverityExcellent, color: "success"},
		{percent: 84, expect: SeverityGood, color: "primary"},
		{percent: 70, expect: SeverityGood, color: "primary"},
		{percent: 69, expect: SeverityFair, color: "warning"},
		{percent: 50, expect: SeverityFair, color: "warning"},
		{percent: 49, expect: SeverityLow, color: "danger"},
		{percent: 0, expect: SeverityLow, color: "danger"},
	}

	for _, tt := range tests {
		band := Band(tt.percent)
		assert.Equal(t, tt.expect, band, "percent %d", tt.percent)
		assert.Equal(t, tt.color, band.Color(), "percent %d", tt.percent)
	}
}

func TestMatchesEmpty(t *testing.T) {
	r := newRenderer(t)

	for name, records := range map[string][]backend.MatchRecord{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			html, err := r.Matches(records)
			require.NoError(t, err)

			doc := parse(t, html)
			assert.Equal(t, 1, doc.Find(".alert-warning").Length())
			assert.Contains(t, doc.Find(".alert-warning").Text(), noMatchesMessage)
			assert.Zero(t, doc.Find(".match-card").Length())
		})
	}
}

func TestMatches(t *testing.T) {
	r := newRenderer(t)

	records := []backend.MatchRecord{
		{
			CandidateID:   11,
			Score:         floatPtr(0.93),
			CandidateInfo: backend.CandidateInfo{Name: "Ada", Email: "ada@example.com", Phone: "555"},
			SkillsMatch:   []string{"Go", "SQL", "gRPC", "Docker", "Kafka", "Redis", "AWS", "Linux"},
			SkillsGap:     []string{"Rust"},
			Summary:       "Strong backend profile.",
		},
		{
			CandidateID:  12,
			ScorePercent: intPtr(50),
			SkillsGap:    []string{"A", "B", "C", "D"},
		},
	}

	html, err := r.Matches(records)
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Contains(t, doc.Find("h5.mb-4").Text(), "Found 2 matching candidate(s)")

	cards := doc.Find(".match-card")
	require.Equal(t, 2, cards.Length())

	first := cards.Eq(0)
	assert.Equal(t, "Ada", strings.TrimSpace(first.Find("h5").Text()))
	assert.Equal(t, "93%", strings.TrimSpace(first.Find(".score-label").Text()))
	assert.True(t, first.Find(".progress-bar").HasClass("bg-success"))
	assert.Equal(t, "excellent", first.AttrOr("data-severity", ""))
	assert.Equal(t, 5, first.Find(".skill-match").Length())
	assert.Equal(t, 1, first.Find(".skill-gap").Length())
	assert.Contains(t, first.Find(".text-muted").Text(), "ada@example.com | 555")
	assert.Equal(t, "11", first.Find(".view-details-btn").AttrOr("data-candidate-id", ""))

	second := cards.Eq(1)
	assert.Equal(t, "Candidate", strings.TrimSpace(second.Find("h5").Text()))
	assert.True(t, second.Find(".progress-bar").HasClass("bg-warning"))
	assert.Equal(t, "fair", second.AttrOr("data-severity", ""))
	assert.Zero(t, second.Find(".skill-match").Length())
	assert.Equal(t, 3, second.Find(".skill-gap").Length())
	assert.Equal(t, "No summary available.", strings.TrimSpace(second.Find(".candidate-summary").Text()))
	assert.NotContains(t, second.Find(".text-muted").Text(), "|")
}

func TestMatchesEscapesBackendText(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Matches([]backend.MatchRecord{{
		CandidateInfo: backend.CandidateInfo{Name: "<script>alert(1)</script>"},
	}})
	require.NoError(t, err)

	assert.NotContains(t, string(html), "<script>")
	assert.Equal(t, "<script>alert(1)</script>", strings.TrimSpace(parse(t, html).Find(".match-card h5").Text()))
}

func TestJobDescription(t *testing.T) {
	r := newRenderer(t)

	v := jobdesc.Present(&backend.JobDescription{
		Title:       "Go Engineer",
		Description: "About us.\nResponsibilities:\n- Build APIs\n- Review code",
	})

	html, err := r.JobDescription(v)
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Equal(t, "Go Engineer", doc.Find(".card-title").Text())
	assert.Equal(t, jobdesc.DefaultCompany, doc.Find(".card-subtitle").Text())
	assert.Equal(t, "About us.", doc.Find(".job-description-text").Text())

	responsibilities := doc.Find(".responsibilities li")
	require.Equal(t, 2, responsibilities.Length())
	assert.Equal(t, "Build APIs", responsibilities.First().Text())
	assert.True(t, responsibilities.First().Find("i").HasClass("text-success"))

	assert.Equal(t, "None specified", doc.Find(".qualifications p.text-muted").Text())
	assert.Equal(t, jobdesc.DefaultRequirement, doc.Find(".experience p").Text())
	assert.Equal(t, jobdesc.DefaultRequirement, doc.Find(".education p").Text())
}

func TestJobDescriptionQualificationsIcon(t *testing.T) {
	r := newRenderer(t)

	html, err := r.JobDescription(jobdesc.Present(&backend.JobDescription{
		PreferredSkills: []string{"Kubernetes"},
	}))
	require.NoError(t, err)

	doc := parse(t, html)
	item := doc.Find(".qualifications li")
	require.Equal(t, 1, item.Length())
	assert.True(t, item.Find("i").HasClass("text-primary"))
	assert.Equal(t, "None specified", doc.Find(".responsibilities p.text-muted").Text())
	assert.Equal(t, jobdesc.DefaultSummary, doc.Find(".job-description-text").Text())
}

func TestCandidate(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Candidate(&backend.CandidateDetail{
		Name:       "Ada",
		Skills:     []string{"Go", "SQL"},
		Experience: []string{"Acme, 2019-2024"},
		Summary:    "Backend engineer.",
	})
	require.NoError(t, err)

	doc := parse(t, html)
	contact := doc.Find(".contact").Text()
	assert.Contains(t, contact, "Name: Ada")
	assert.Contains(t, contact, "Email: Not specified")
	assert.Contains(t, contact, "Phone: Not specified")
	assert.Equal(t, 2, doc.Find(".skill-tags .badge").Length())
	assert.Equal(t, 1, doc.Find(".experience li").Length())
	assert.Equal(t, "No education details provided", doc.Find(".education p").Text())
	assert.Equal(t, "Backend engineer.", doc.Find(".summary p").Text())
}

func TestCandidateEmpty(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Candidate(nil)
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Equal(t, "No skills specified", strings.TrimSpace(doc.Find(".skill-tags").Text()))
	assert.Equal(t, "No experience details provided", doc.Find(".experience p").Text())
	assert.Zero(t, doc.Find(".summary").Length())
}

func TestAlert(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Alert(AlertDanger, "Error loading candidate details: bad status: 404 Not Found")
	require.NoError(t, err)

	doc := parse(t, html)
	alert := doc.Find(".alert-danger")
	require.Equal(t, 1, alert.Length())
	assert.Contains(t, alert.Text(), "404")
	assert.True(t, alert.Find("i").HasClass("fa-exclamation-circle"))
}

func TestPage(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Page(Page{
		Version:        "test",
		JDID:           3,
		CandidateCount: 2,
		MatchEnabled:   true,
		JobDescription: "<div class=\"jd\">JD</div>",
		Matches:        "<div class=\"matches\">M</div>",
	})
	require.NoError(t, err)

	doc := parse(t, html)
	_, disabled := doc.Find("#matchButton").Attr("disabled")
	assert.False(t, disabled)
	assert.Equal(t, "3", doc.Find("#matchForm input[name=jd_id]").AttrOr("value", ""))
	assert.Equal(t, 1, doc.Find("#jd-display .jd").Length())
	assert.Equal(t, 1, doc.Find("#matches-container .matches").Length())
	assert.Equal(t, 1, doc.Find("#viewJobDescriptionBtn").Length())

	html, err = r.Page(Page{})
	require.NoError(t, err)

	doc = parse(t, html)
	_, disabled = doc.Find("#matchButton").Attr("disabled")
	assert.True(t, disabled)
	assert.Zero(t, doc.Find("#viewJobDescriptionBtn").Length())
}

func TestRegions(t *testing.T) {
	var toggled []bool
	buf := &Buffer{}
	regions := Regions{
		Matches:      buf,
		MatchEnabled: func(enabled bool) { toggled = append(toggled, enabled) },
	}

	Write(regions.Matches, "matches")
	Write(regions.Overlay, "ignored")
	regions.MatchEnabled.Set(true)
	Regions{}.MatchEnabled.Set(true)

	assert.Equal(t, template.HTML("matches"), buf.HTML())
	assert.Equal(t, []bool{true}, toggled)
}

func TestBufferConcurrentWriters(t *testing.T) {
	buf := &Buffer{}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf.Set("x")
			_ = buf.HTML()
		}()
	}
	wg.Wait()

	assert.Equal(t, template.HTML("x"), buf.HTML())
}
