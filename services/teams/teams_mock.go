package teams

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTeamsService is a mock implementation of the TeamsService interface
type MockTeamsService struct {
	mock.Mock
}

func (m *MockTeamsService) ResolveTeamID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
