package services

import (
	"context"

	"github.com/samber/mo"

	"linearbot/models"
)

// TeamsService resolves the Linear team new issues are filed under
type TeamsService interface {
	ResolveTeamID(ctx context.Context) (string, error)
}

// UsersService resolves Linear users from free-text names
type UsersService interface {
	FindUserIDByName(ctx context.Context, name string) (mo.Option[string], error)
}

// IssuesService creates issues in Linear
type IssuesService interface {
	CreateIssue(ctx context.Context, input models.CreateIssueInput) (*models.Issue, error)
}
