package users

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

// MockUsersService is a mock implementation of the UsersService interface
type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) FindUserIDByName(ctx context.Context, name string) (mo.Option[string], error) {
	args := m.Called(ctx, name)
	return args.Get(0).(mo.Option[string]), args.Error(1)
}
