package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumatch/resume-analyzer/internal/models"
)

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) MatchAnalysis(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, bool) {
	args := m.Called(ctx, resumeText, jobDescription)

	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).(*models.MatchResult), args.Bool(1)
}

func (m *MockAnalyzer) CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, bool) {
	args := m.Called(ctx, resumeText, jobDescription)

	return args.String(0), args.Bool(1)
}

func (m *MockAnalyzer) InterviewQuestions(ctx context.Context, resumeText, jobDescription string) ([]string, bool) {
	args := m.Called(ctx, resumeText, jobDescription)

	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).([]string), args.Bool(1)
}

func (m *MockAnalyzer) InterviewFeedback(ctx context.Context, question, answer string) (*models.InterviewFeedback, bool) {
	args := m.Called(ctx, question, answer)

	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).(*models.InterviewFeedback), args.Bool(1)
}

func (m *MockAnalyzer) OptimizeResume(ctx context.Context, resumeText, jobDescription string) (*models.StructuredResume, bool) {
	args := m.Called(ctx, resumeText, jobDescription)

	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).(*models.StructuredResume), args.Bool(1)
}
