package issues

import (
	"context"

	"github.com/stretchr/testify/mock"

	"linearbot/models"
)

// MockIssuesService is a mock implementation of the IssuesService interface
type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) CreateIssue(ctx context.Context, input models.CreateIssueInput) (*models.Issue, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}
