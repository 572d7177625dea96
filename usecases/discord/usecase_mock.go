package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"linearbot/models"
)

// MockDiscordUseCase is a mock implementation of the DiscordUseCaseInterface
type MockDiscordUseCase struct {
	mock.Mock
}

func (m *MockDiscordUseCase) ProcessDiscordMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
