package issues

import (
	"context"
	"fmt"
	"log"

	"linearbot/clients"
	"linearbot/core"
	"linearbot/models"
	"linearbot/services"
)

type IssuesService struct {
	linearClient clients.LinearClient
	teamsService services.TeamsService
}

func NewIssuesService(linearClient clients.LinearClient, teamsService services.TeamsService) *IssuesService {
	return &IssuesService{
		linearClient: linearClient,
		teamsService: teamsService,
	}
}

// CreateIssue files an issue in Linear, resolving the team when the input does not name one
func (s *IssuesService) CreateIssue(ctx context.Context, input models.CreateIssueInput) (*models.Issue, error) {
	log.Printf("📋 Starting to create Linear issue %q (assigned: %t)", input.Title, input.AssigneeID.IsPresent())

	teamID, ok := input.TeamID.Get()
	if !ok || teamID == "" {
		resolved, err := s.teamsService.ResolveTeamID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve Linear team: %w", err)
		}
		teamID = resolved
	}

	result, err := s.linearClient.CreateIssue(ctx, input, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Linear issue: %w", err)
	}
	if !result.Success || result.Issue == nil {
		return nil, core.ErrIssueCreationFailed
	}

	log.Printf("📋 Completed successfully - created Linear issue %s (%s)", result.Issue.Identifier, result.Issue.URL)
	return result.Issue, nil
}
