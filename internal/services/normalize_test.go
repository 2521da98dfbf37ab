package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/resume-analyzer/internal/models"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "fence with language tag",
			input:    "```json\n{\"a\": 1}\n```",
			expected: "{\"a\": 1}",
		},
		{
			name:     "fence without language tag",
			input:    "```\n{\"a\": 1}\n```",
			expected: "{\"a\": 1}",
		},
		{
			name:     "no fence passes through",
			input:    "  {\"a\": 1}  ",
			expected: "{\"a\": 1}",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "bare fence markers",
			input:    "```json\n```",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripCodeFence(tt.input))
		})
	}
}

func TestDecodeMatchResult_SurroundingWhitespace(t *testing.T) {
	raw := "  {\"matchScore\": 42, \"missingKeywords\": [], \"profileSummary\": \"ok\", \"suggestions\": []}  "

	result, err := decodeMatchResult(raw)
	require.NoError(t, err)

	assert.Equal(t, 42, result.MatchScore)
	assert.Equal(t, []string{}, result.MissingKeywords)
	assert.Equal(t, "ok", result.ProfileSummary)
	assert.Equal(t, []string{}, result.Suggestions)
}

func TestDecodeMatchResult_FencedRoundTrip(t *testing.T) {
	raw := "```json\n{\"matchScore\": 78, \"missingKeywords\": [\"Kubernetes\", \"Terraform\"], \"profileSummary\": \"Solid backend profile\", \"suggestions\": [\"Add cloud experience\"]}\n```"

	result, err := decodeMatchResult(raw)
	require.NoError(t, err)

	expected := &models.MatchResult{
		MatchScore:      78,
		MissingKeywords: []string{"Kubernetes", "Terraform"},
		ProfileSummary:  "Solid backend profile",
		Suggestions:     []string{"Add cloud experience"},
	}
	assert.Equal(t, expected, result)
}

func TestDecodeMatchResult_DefaultsOptionalSequences(t *testing.T) {
	raw := "{\"matchScore\": 55, \"profileSummary\": \"fine\"}"

	result, err := decodeMatchResult(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{}, result.MissingKeywords)
	assert.Equal(t, []string{}, result.Suggestions)
	assert.Nil(t, result.StructuredResume)
}

func TestDecodeMatchResult_MissingScoreIsMalformed(t *testing.T) {
	raw := "{\"missingKeywords\": [], \"profileSummary\": \"ok\"}"

	_, err := decodeMatchResult(raw)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, raw, malformed.Raw)
}

func TestDecodeMatchResult_WrongScoreTypeIsMalformed(t *testing.T) {
	raw := "{\"matchScore\": \"high\", \"profileSummary\": \"ok\"}"

	_, err := decodeMatchResult(raw)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestDecodeMatchResult_ClampsScoreIntoRange(t *testing.T) {
	result, err := decodeMatchResult("{\"matchScore\": 150}")
	require.NoError(t, err)
	assert.Equal(t, 100, result.MatchScore)

	result, err = decodeMatchResult("{\"matchScore\": -5}")
	require.NoError(t, err)
	assert.Equal(t, 0, result.MatchScore)
}

func TestDecodeMatchResult_AcceptsFloatScore(t *testing.T) {
	result, err := decodeMatchResult("{\"matchScore\": 85.0}")
	require.NoError(t, err)
	assert.Equal(t, 85, result.MatchScore)
}

func TestDecodeQuestions_Fenced(t *testing.T) {
	raw := "```json\n[\"Q1\",\"Q2\"]\n```"

	questions, err := decodeQuestions(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Q1", "Q2"}, questions)
}

func TestDecodeQuestions_EmptyListIsMalformed(t *testing.T) {
	_, err := decodeQuestions("[]")

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestDecodeFeedback(t *testing.T) {
	raw := "{\"rating\": \"7/10\", \"feedback\": \"Good structure, missing metrics.\", \"betterAnswer\": \"In my last role...\"}"

	feedback, err := decodeFeedback(raw)
	require.NoError(t, err)

	assert.Equal(t, "7/10", feedback.Rating)
	assert.Equal(t, "Good structure, missing metrics.", feedback.Feedback)
	assert.Equal(t, "In my last role...", feedback.BetterAnswer)
}

func TestDecodeFeedback_RatingNA(t *testing.T) {
	raw := "{\"rating\": \"N/A\", \"feedback\": \"Answer was empty.\", \"betterAnswer\": \"\"}"

	feedback, err := decodeFeedback(raw)
	require.NoError(t, err)

	assert.Equal(t, "N/A", feedback.Rating)
}

func TestDecodeFeedback_BadRatingIsMalformed(t *testing.T) {
	raw := "{\"rating\": \"seven out of ten\", \"feedback\": \"ok\", \"betterAnswer\": \"\"}"

	_, err := decodeFeedback(raw)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestDecodeStructuredResume(t *testing.T) {
	raw := "```json\n{\"fullName\": \"Jane Doe\", \"skills\": \"Go, SQL\", \"experience\": [{\"title\": \"Engineer\", \"company\": \"Acme\", \"startDate\": \"2020\", \"endDate\": \"2023\", \"description\": \"Built APIs\"}]}\n```"

	resume, err := decodeStructuredResume(raw)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resume.FullName)
	assert.Equal(t, "Go, SQL", resume.Skills)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Acme", resume.Experience[0].Company)
}

// Normalization must survive any input string: empty, truncated JSON, plain
// prose, bare fences. Every case yields a malformed-response error, never a
// panic.
func TestDecodersNeverPanic(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"```json\n{\"matchScore\":",
		"I'm sorry, I cannot help with that.",
		"```",
		"null",
		"[1, 2, 3",
	}

	for _, input := range inputs {
		_, matchErr := decodeMatchResult(input)
		assert.Error(t, matchErr, "match input %q", input)

		_, questionsErr := decodeQuestions(input)
		assert.Error(t, questionsErr, "questions input %q", input)

		_, feedbackErr := decodeFeedback(input)
		assert.Error(t, feedbackErr, "feedback input %q", input)
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Dear Hiring Manager,", normalizeText("  \nDear Hiring Manager,\n\n"))
	assert.Equal(t, "", normalizeText("   \n\t "))
}
