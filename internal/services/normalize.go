package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"resumatch/resume-analyzer/internal/models"
)

// MalformedResponseError reports a completion that could not be parsed or
// validated into the task's result shape. Raw carries the full completion for
// diagnostic logging; it is never surfaced to the end user.
type MalformedResponseError struct {
	Raw    string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %s", e.Reason)
}

var ratingPattern = regexp.MustCompile(`^(\d+/10|N/A)$`)

// stripCodeFence removes a leading/trailing triple-backtick fence (with or
// without a language tag) and surrounding whitespace. Without a fence the
// text passes through with only the trim applied.
func stripCodeFence(raw string) string {
	clean := strings.TrimSpace(raw)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// normalizeText is the free-text path: the completion is returned unchanged
// apart from a whitespace trim.
func normalizeText(raw string) string {
	return strings.TrimSpace(raw)
}

func decodeMatchResult(raw string) (*models.MatchResult, error) {
	clean := stripCodeFence(raw)

	// matchScore decodes through a pointer so absence is distinguishable
	// from a genuine zero, and through float64 because models emit both
	// 85 and 85.0.
	var payload struct {
		MatchScore       *float64                 `json:"matchScore"`
		MissingKeywords  []string                 `json:"missingKeywords"`
		ProfileSummary   string                   `json:"profileSummary"`
		Suggestions      []string                 `json:"suggestions"`
		StructuredResume *models.StructuredResume `json:"structuredResume"`
	}

	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: err.Error()}
	}

	if payload.MatchScore == nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: "matchScore is missing"}
	}

	score := int(*payload.MatchScore)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	result := &models.MatchResult{
		MatchScore:       score,
		MissingKeywords:  payload.MissingKeywords,
		ProfileSummary:   payload.ProfileSummary,
		Suggestions:      payload.Suggestions,
		StructuredResume: payload.StructuredResume,
	}
	if result.MissingKeywords == nil {
		result.MissingKeywords = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}

	return result, nil
}

func decodeQuestions(raw string) ([]string, error) {
	clean := stripCodeFence(raw)

	var questions []string
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: err.Error()}
	}

	if len(questions) == 0 {
		return nil, &MalformedResponseError{Raw: raw, Reason: "question list is empty"}
	}

	return questions, nil
}

func decodeFeedback(raw string) (*models.InterviewFeedback, error) {
	clean := stripCodeFence(raw)

	var feedback models.InterviewFeedback
	if err := json.Unmarshal([]byte(clean), &feedback); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: err.Error()}
	}

	if !ratingPattern.MatchString(feedback.Rating) {
		return nil, &MalformedResponseError{Raw: raw, Reason: fmt.Sprintf("rating %q does not match <n>/10 or N/A", feedback.Rating)}
	}
	if feedback.Feedback == "" {
		return nil, &MalformedResponseError{Raw: raw, Reason: "feedback is missing"}
	}

	return &feedback, nil
}

func decodeStructuredResume(raw string) (*models.StructuredResume, error) {
	clean := stripCodeFence(raw)

	var resume models.StructuredResume
	if err := json.Unmarshal([]byte(clean), &resume); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: err.Error()}
	}

	return &resume, nil
}
