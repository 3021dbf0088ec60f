package services

import (
	"context"

	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockIssueSearcher struct {
		mock.Mock
	}

	MockAIProvider struct {
		mock.Mock
	}
)

func (m *MockIssueSearcher) SearchIssues(ctx context.Context, jql string, maxResults int) ([]models.IssueSummary, error) {
	args := m.Called(ctx, jql, maxResults)
	if issues := args.Get(0); issues != nil {
		return issues.([]models.IssueSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAIProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxTokens)
	return args.String(0), args.Error(1)
}

func (m *MockAIProvider) GetModelName() string {
	return "mock-model"
}

func (m *MockAIProvider) GetProviderName() string {
	return "mock"
}
