package issues

import (
	"context"

	"github.com/stretchr/testify/mock"

	"linearbot/models"
)

// MockIssuesUseCase is a mock implementation of the IssuesUseCaseInterface
type MockIssuesUseCase struct {
	mock.Mock
}

func (m *MockIssuesUseCase) CreateIssueFromRequest(ctx context.Context, req models.CreateIssueRequest) (*models.Issue, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}
