package services

import (
	"context"
	"errors"
	"log"

	"resumatch/resume-analyzer/internal/models"
)

// TaskKind identifies one of the five AI-mediated operations. The set is
// closed; per-kind behavior lives in taskSpecs.
type TaskKind string

const (
	TaskMatch              TaskKind = "match"
	TaskCoverLetter        TaskKind = "cover_letter"
	TaskInterviewQuestions TaskKind = "interview_questions"
	TaskInterviewFeedback  TaskKind = "interview_feedback"
	TaskOptimize           TaskKind = "optimize"
)

type responseFormat int

const (
	formatJSON responseFormat = iota
	formatText
)

type taskSpec struct {
	label  string
	format responseFormat
}

var taskSpecs = map[TaskKind]taskSpec{
	TaskMatch:              {label: "Match analysis", format: formatJSON},
	TaskCoverLetter:        {label: "Cover letter", format: formatText},
	TaskInterviewQuestions: {label: "Interview questions", format: formatJSON},
	TaskInterviewFeedback:  {label: "Interview feedback", format: formatJSON},
	TaskOptimize:           {label: "Resume optimization", format: formatJSON},
}

// AnalyzerService runs the full pipeline for each task kind: prompt → model
// → normalization, substituting the task's fixed fallback on any failure.
// The boolean result reports whether the fallback was used; callers always
// get a well-shaped value, never an error. OptimizeResume is the exception
// in shape only: its fallback is nil, which callers must treat as a hard
// failure.
type AnalyzerService interface {
	MatchAnalysis(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, bool)
	CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, bool)
	InterviewQuestions(ctx context.Context, resumeText, jobDescription string) ([]string, bool)
	InterviewFeedback(ctx context.Context, question, answer string) (*models.InterviewFeedback, bool)
	OptimizeResume(ctx context.Context, resumeText, jobDescription string) (*models.StructuredResume, bool)
}

type analyzerService struct {
	gemini  TextGenerator
	prompts *PromptBuilder
}

func NewAnalyzerService(gemini TextGenerator) AnalyzerService {
	return &analyzerService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

// Fallback values are fixed per task kind. Constructors return fresh copies
// so no result object is ever shared between invocations.

func fallbackMatchResult() *models.MatchResult {
	return &models.MatchResult{
		MatchScore:      0,
		MissingKeywords: []string{"Error connecting to AI service"},
		ProfileSummary:  "Could not analyze resume due to AI service error.",
		Suggestions:     []string{"Check API Key", "Try again later"},
	}
}

const fallbackCoverLetter = "Could not generate cover letter."

func fallbackQuestions() []string {
	return []string{"Could not generate questions."}
}

func fallbackFeedback() *models.InterviewFeedback {
	return &models.InterviewFeedback{
		Rating:       "N/A",
		Feedback:     "Could not generate feedback.",
		BetterAnswer: "",
	}
}

// MatchAnalysis implements AnalyzerService.
func (a *analyzerService) MatchAnalysis(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, bool) {
	prompt := a.prompts.BuildMatchPrompt(resumeText, jobDescription)

	raw, err := a.complete(ctx, TaskMatch, prompt)
	if err != nil {
		return fallbackMatchResult(), true
	}

	result, err := decodeMatchResult(raw)
	if err != nil {
		a.logFailure(TaskMatch, err)
		return fallbackMatchResult(), true
	}

	return result, false
}

// CoverLetter implements AnalyzerService.
func (a *analyzerService) CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, bool) {
	prompt := a.prompts.BuildCoverLetterPrompt(resumeText, jobDescription)

	raw, err := a.complete(ctx, TaskCoverLetter, prompt)
	if err != nil {
		return fallbackCoverLetter, true
	}

	letter := normalizeText(raw)
	if letter == "" {
		a.logFailure(TaskCoverLetter, &MalformedResponseError{Raw: raw, Reason: "empty completion"})
		return fallbackCoverLetter, true
	}

	return letter, false
}

// InterviewQuestions implements AnalyzerService.
func (a *analyzerService) InterviewQuestions(ctx context.Context, resumeText, jobDescription string) ([]string, bool) {
	prompt := a.prompts.BuildInterviewQuestionsPrompt(resumeText, jobDescription)

	raw, err := a.complete(ctx, TaskInterviewQuestions, prompt)
	if err != nil {
		return fallbackQuestions(), true
	}

	questions, err := decodeQuestions(raw)
	if err != nil {
		a.logFailure(TaskInterviewQuestions, err)
		return fallbackQuestions(), true
	}

	return questions, false
}

// InterviewFeedback implements AnalyzerService.
func (a *analyzerService) InterviewFeedback(ctx context.Context, question, answer string) (*models.InterviewFeedback, bool) {
	prompt := a.prompts.BuildInterviewFeedbackPrompt(question, answer)

	raw, err := a.complete(ctx, TaskInterviewFeedback, prompt)
	if err != nil {
		return fallbackFeedback(), true
	}

	feedback, err := decodeFeedback(raw)
	if err != nil {
		a.logFailure(TaskInterviewFeedback, err)
		return fallbackFeedback(), true
	}

	return feedback, false
}

// OptimizeResume implements AnalyzerService. Nil on fallback: there is no
// degraded resume worth showing, the caller must ask the user to retry.
func (a *analyzerService) OptimizeResume(ctx context.Context, resumeText, jobDescription string) (*models.StructuredResume, bool) {
	prompt := a.prompts.BuildOptimizePrompt(resumeText, jobDescription)

	raw, err := a.complete(ctx, TaskOptimize, prompt)
	if err != nil {
		return nil, true
	}

	resume, err := decodeStructuredResume(raw)
	if err != nil {
		a.logFailure(TaskOptimize, err)
		return nil, true
	}

	return resume, false
}

// complete runs the gateway step shared by every task kind.
func (a *analyzerService) complete(ctx context.Context, kind TaskKind, prompt string) (string, error) {
	spec := taskSpecs[kind]

	raw, err := a.gemini.Generate(ctx, prompt)
	if err != nil {
		a.logFailure(kind, err)
		return "", err
	}

	log.Printf("✅ %s response received: %d characters", spec.label, len(raw))

	if spec.format == formatText {
		return normalizeText(raw), nil
	}

	return raw, nil
}

// logFailure records the underlying error for operator diagnosis. The raw
// completion of a malformed response is logged here and nowhere else.
func (a *analyzerService) logFailure(kind TaskKind, err error) {
	spec := taskSpecs[kind]

	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		log.Printf("❌ %s failed: %v\nRaw response: %s", spec.label, err, malformed.Raw)
		return
	}

	log.Printf("❌ %s failed: %v", spec.label, err)
}
