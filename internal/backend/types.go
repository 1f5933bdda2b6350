package backend

// JobDescription is the backend's parsed job description.
// An ID of zero or below means the backend did not assign one.
type JobDescription struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Description        string   `json:"description"`
	RequiredSkills     []string `json:"required_skills,omitempty"`
	PreferredSkills    []string `json:"preferred_skills,omitempty"`
	RequiredExperience string   `json:"required_experience"`
	RequiredEducation  string   `json:"required_education"`
}

// HasID reports whether the record carries a usable identifier.
func (jd *JobDescription) HasID() bool {
	return jd != nil && jd.ID > 0
}

type CandidateInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MatchRecord is one candidate's result of a match run. Exactly one of Score
// (a fraction) and ScorePercent is expected to be set.
type MatchRecord struct {
	CandidateID   int           `json:"candidate_id"`
	Score         *float64      `json:"score,omitempty"`
	ScorePercent  *int          `json:"score_percent,omitempty"`
	CandidateInfo CandidateInfo `json:"candidate_info"`
	SkillsMatch   []string      `json:"skills_match"`
	SkillsGap     []string      `json:"skills_gap"`
	Summary       string        `json:"summary"`
}

type MatchResult struct {
	Matches []MatchRecord
	Message string
}

type CandidateDetail struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Summary    string   `json:"summary,omitempty"`
}

type SessionInfo struct {
	HasJD                   bool  `json:"has_jd"`
	UploadedCandidatesCount int   `json:"uploaded_candidates_count"`
	UploadedCandidateIDs    []int `json:"uploaded_candidate_ids"`
}

// JDUpload is a job description file relayed to the backend. Text is the
// extracted plain text and may be empty.
type JDUpload struct {
	Filename string
	Content  []byte
	Text     string
}

type UploadedJD struct {
	ID      int
	Data    *JobDescription
	Message string
}

// CVUpload is a candidate CV relayed to the backend. The backend scores the
// extracted text, so Text should be set whenever extraction succeeded.
type CVUpload struct {
	Filename string
	Content  []byte
	Text     string
}

type UploadedCV struct {
	CandidateID int
	Message     string
}
