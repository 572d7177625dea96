package usecases

import (
	"context"

	"linearbot/models"
)

// DiscordUseCaseInterface defines the interface for Discord use case operations
type DiscordUseCaseInterface interface {
	ProcessDiscordMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error
}

// IssuesUseCaseInterface defines the interface for issue creation requested over HTTP
type IssuesUseCaseInterface interface {
	CreateIssueFromRequest(ctx context.Context, req models.CreateIssueRequest) (*models.Issue, error)
}
