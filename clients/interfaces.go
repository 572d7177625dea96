package clients

import (
	"context"

	"linearbot/models"
)

// LinearClient talks to the Linear GraphQL API
type LinearClient interface {
	Execute(ctx context.Context, query string, variables map[string]any, out any) error
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateIssue(ctx context.Context, input models.CreateIssueInput, teamID string) (*models.IssueCreateResult, error)
}

// DiscordClient sends replies and manages thread membership for the bot user
type DiscordClient interface {
	SendMessage(ctx context.Context, channelID, content string) error
	JoinThread(ctx context.Context, threadID string) error
	GetChannel(ctx context.Context, channelID string) (*DiscordChannel, error)
}

// DiscordChannel is the subset of channel information the bot cares about
type DiscordChannel struct {
	ID       string
	GuildID  string
	IsThread bool
	// Joined is true when the bot user is a member of the thread
	Joined   bool
	Archived bool
	Locked   bool
}
