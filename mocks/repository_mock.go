package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"resumatch/resume-analyzer/internal/models"
)

type MockAnalysisRepository struct {
	mock.Mock
}

func (m *MockAnalysisRepository) Create(analysis *models.Analysis) error {
	args := m.Called(analysis)
	return args.Error(0)
}

func (m *MockAnalysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	args := m.Called(id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Analysis), args.Error(1)
}

func (m *MockAnalysisRepository) FindRecent(limit int) ([]models.Analysis, error) {
	args := m.Called(limit)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Analysis), args.Error(1)
}

type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) Create(resume *models.Resume) error {
	args := m.Called(resume)
	return args.Error(0)
}

func (m *MockResumeRepository) FindByID(id uuid.UUID) (*models.Resume, error) {
	args := m.Called(id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeRepository) FindByUserEmail(userEmail string) ([]models.Resume, error) {
	args := m.Called(userEmail)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Resume), args.Error(1)
}
