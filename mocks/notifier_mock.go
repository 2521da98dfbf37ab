package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumatch/resume-analyzer/internal/models"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockNotifier) Stop() {
	m.Called()
}

func (m *MockNotifier) EnqueueAnalysisEmail(to string, result *models.MatchResult) {
	m.Called(to, result)
}
