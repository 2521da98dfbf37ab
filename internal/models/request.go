package models

type AnalyzeResponse struct {
	Success    bool         `json:"success"`
	Fallback   bool         `json:"fallback"`
	Data       *MatchResult `json:"data"`
	ResumeText string       `json:"resumeText"`
	HistoryID  string       `json:"historyId,omitempty"`
}

type CoverLetterResponse struct {
	Success     bool   `json:"success"`
	Fallback    bool   `json:"fallback"`
	CoverLetter string `json:"coverLetter"`
}

type QuestionsResponse struct {
	Success   bool     `json:"success"`
	Fallback  bool     `json:"fallback"`
	Questions []string `json:"questions"`
}

type FeedbackRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FeedbackResponse struct {
	Success  bool               `json:"success"`
	Fallback bool               `json:"fallback"`
	Feedback *InterviewFeedback `json:"feedback"`
}

type OptimizeResponse struct {
	Success       bool              `json:"success"`
	OptimizedData *StructuredResume `json:"optimizedData"`
}
