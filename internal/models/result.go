package models

// MatchResult is the structured outcome of a match analysis. MatchScore is
// always within [0,100]; MissingKeywords and Suggestions are never nil.
type MatchResult struct {
	MatchScore       int               `json:"matchScore"`
	MissingKeywords  []string          `json:"missingKeywords"`
	ProfileSummary   string            `json:"profileSummary"`
	Suggestions      []string          `json:"suggestions"`
	StructuredResume *StructuredResume `json:"structuredResume,omitempty"`
}

// StructuredResume is the canonical normalized shape of resume fields
// extracted or rewritten by the model. Extraction quality varies, so every
// field may be empty.
type StructuredResume struct {
	FullName          string            `json:"fullName"`
	ProfessionalTitle string            `json:"professionalTitle"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Location          string            `json:"location"`
	Linkedin          string            `json:"linkedin"`
	Summary           string            `json:"summary"`
	Skills            string            `json:"skills"`
	Languages         string            `json:"languages"`
	Certifications    string            `json:"certifications"`
	Experience        []ExperienceEntry `json:"experience"`
	Education         []EducationEntry  `json:"education"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

// InterviewFeedback rates a single interview answer. Rating is either
// "<n>/10" or "N/A".
type InterviewFeedback struct {
	Rating       string `json:"rating"`
	Feedback     string `json:"feedback"`
	BetterAnswer string `json:"betterAnswer"`
}
