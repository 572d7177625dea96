package linear

import (
	"context"

	"github.com/stretchr/testify/mock"

	"linearbot/models"
)

// MockLinearClient implements the clients.LinearClient interface for testing
type MockLinearClient struct {
	mock.Mock
}

func (m *MockLinearClient) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	args := m.Called(ctx, query, variables, out)
	return args.Error(0)
}

func (m *MockLinearClient) ListTeams(ctx context.Context) ([]models.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockLinearClient) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockLinearClient) CreateIssue(
	ctx context.Context,
	input models.CreateIssueInput,
	teamID string,
) (*models.IssueCreateResult, error) {
	args := m.Called(ctx, input, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IssueCreateResult), args.Error(1)
}
