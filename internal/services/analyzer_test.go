package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/resume-analyzer/internal/models"
)

// stubGenerator is a deterministic TextGenerator: same prompt, same
// completion, every time.
type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const matchJSON = `{"matchScore": 81, "missingKeywords": ["Docker"], "profileSummary": "Strong fit", "suggestions": ["Mention CI/CD"], "structuredResume": {"fullName": "Jane Doe", "skills": "Go, SQL"}}`

func TestMatchAnalysis_Success(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + matchJSON + "\n```"}
	analyzer := NewAnalyzerService(gen)

	result, fallback := analyzer.MatchAnalysis(context.Background(), "resume", "job description")

	assert.False(t, fallback)
	assert.Equal(t, 81, result.MatchScore)
	assert.Equal(t, []string{"Docker"}, result.MissingKeywords)
	assert.Equal(t, "Strong fit", result.ProfileSummary)
	require.NotNil(t, result.StructuredResume)
	assert.Equal(t, "Jane Doe", result.StructuredResume.FullName)
	assert.Equal(t, 1, gen.calls)
}

func TestMatchAnalysis_ScoreAlwaysInRange(t *testing.T) {
	for _, response := range []string{
		`{"matchScore": 0}`,
		`{"matchScore": 100}`,
		`{"matchScore": 250}`,
		`{"matchScore": -10}`,
	} {
		analyzer := NewAnalyzerService(&stubGenerator{response: response})

		result, _ := analyzer.MatchAnalysis(context.Background(), "resume", "jd")

		assert.GreaterOrEqual(t, result.MatchScore, 0, "response %s", response)
		assert.LessOrEqual(t, result.MatchScore, 100, "response %s", response)
		assert.NotNil(t, result.MissingKeywords, "response %s", response)
	}
}

// Every entry point must return exactly its documented fallback when the
// gateway fails, byte-for-byte for string fields.
func TestFallbacksOnGatewayFailure(t *testing.T) {
	gen := &stubGenerator{err: ErrModelUnavailable}
	analyzer := NewAnalyzerService(gen)
	ctx := context.Background()

	match, fallback := analyzer.MatchAnalysis(ctx, "resume", "jd")
	assert.True(t, fallback)
	assert.Equal(t, &models.MatchResult{
		MatchScore:      0,
		MissingKeywords: []string{"Error connecting to AI service"},
		ProfileSummary:  "Could not analyze resume due to AI service error.",
		Suggestions:     []string{"Check API Key", "Try again later"},
	}, match)

	letter, fallback := analyzer.CoverLetter(ctx, "resume", "jd")
	assert.True(t, fallback)
	assert.Equal(t, "Could not generate cover letter.", letter)

	questions, fallback := analyzer.InterviewQuestions(ctx, "resume", "jd")
	assert.True(t, fallback)
	assert.Equal(t, []string{"Could not generate questions."}, questions)

	feedback, fallback := analyzer.InterviewFeedback(ctx, "question", "answer")
	assert.True(t, fallback)
	assert.Equal(t, &models.InterviewFeedback{
		Rating:       "N/A",
		Feedback:     "Could not generate feedback.",
		BetterAnswer: "",
	}, feedback)

	optimized, fallback := analyzer.OptimizeResume(ctx, "resume", "jd")
	assert.True(t, fallback)
	assert.Nil(t, optimized)
}

// Garbage completions are absorbed exactly like gateway failures.
func TestFallbacksOnMalformedResponse(t *testing.T) {
	gen := &stubGenerator{response: "I'm sorry, I can't produce JSON today."}
	analyzer := NewAnalyzerService(gen)
	ctx := context.Background()

	match, fallback := analyzer.MatchAnalysis(ctx, "resume", "jd")
	assert.True(t, fallback)
	assert.Equal(t, 0, match.MatchScore)
	assert.Equal(t, []string{"Error connecting to AI service"}, match.MissingKeywords)

	questions, fallback := analyzer.InterviewQuestions(ctx, "resume", "jd")
	assert.True(t, fallback)
	assert.Equal(t, []string{"Could not generate questions."}, questions)

	optimized, fallback := analyzer.OptimizeResume(ctx, "resume", "jd")
	assert.True(t, fallback)
	assert.Nil(t, optimized)
}

func TestCoverLetter_TrimsWhitespaceOnly(t *testing.T) {
	gen := &stubGenerator{response: "\n\nDear Hiring Manager,\n\nI am excited to apply.\n\n"}
	analyzer := NewAnalyzerService(gen)

	letter, fallback := analyzer.CoverLetter(context.Background(), "resume", "jd")

	assert.False(t, fallback)
	assert.Equal(t, "Dear Hiring Manager,\n\nI am excited to apply.", letter)
}

func TestCoverLetter_EmptyCompletionFallsBack(t *testing.T) {
	gen := &stubGenerator{response: "   \n  "}
	analyzer := NewAnalyzerService(gen)

	letter, fallback := analyzer.CoverLetter(context.Background(), "resume", "jd")

	assert.True(t, fallback)
	assert.Equal(t, "Could not generate cover letter.", letter)
}

func TestInterviewQuestions_Success(t *testing.T) {
	gen := &stubGenerator{response: "```json\n[\"Q1\",\"Q2\",\"Q3\",\"Q4\",\"Q5\"]\n```"}
	analyzer := NewAnalyzerService(gen)

	questions, fallback := analyzer.InterviewQuestions(context.Background(), "resume", "jd")

	assert.False(t, fallback)
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4", "Q5"}, questions)
}

// Input validation lives in the handlers, but the core must stay well-shaped
// even when invoked directly with an empty answer.
func TestInterviewFeedback_EmptyAnswerStillWellShaped(t *testing.T) {
	gen := &stubGenerator{response: `{"rating": "N/A", "feedback": "No answer was given.", "betterAnswer": "Describe a concrete situation."}`}
	analyzer := NewAnalyzerService(gen)

	feedback, fallback := analyzer.InterviewFeedback(context.Background(), "Tell me about a conflict", "")

	assert.False(t, fallback)
	require.NotNil(t, feedback)
	assert.Equal(t, "N/A", feedback.Rating)
}

func TestOptimizeResume_Success(t *testing.T) {
	gen := &stubGenerator{response: `{"fullName": "Jane Doe", "professionalTitle": "Backend Engineer", "skills": "Go, Postgres, Docker"}`}
	analyzer := NewAnalyzerService(gen)

	optimized, fallback := analyzer.OptimizeResume(context.Background(), "resume", "jd")

	assert.False(t, fallback)
	require.NotNil(t, optimized)
	assert.Equal(t, "Backend Engineer", optimized.ProfessionalTitle)
}

// Identical inputs against a deterministic model yield identical results.
func TestIdempotence(t *testing.T) {
	gen := &stubGenerator{response: matchJSON}
	analyzer := NewAnalyzerService(gen)
	ctx := context.Background()

	first, firstFallback := analyzer.MatchAnalysis(ctx, "resume", "jd")
	second, secondFallback := analyzer.MatchAnalysis(ctx, "resume", "jd")

	assert.Equal(t, first, second)
	assert.Equal(t, firstFallback, secondFallback)
	assert.Equal(t, 2, gen.calls)
}
