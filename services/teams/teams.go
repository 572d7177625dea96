package teams

import (
	"context"
	"fmt"
	"log"
	"strings"

	"linearbot/clients"
	"linearbot/core"
)

type TeamsService struct {
	linearClient clients.LinearClient
	teamKey      string
	cache        *TeamIDCache
}

// NewTeamsService creates a team resolver. teamKey may be empty, in which case the first
// team Linear returns is used.
func NewTeamsService(linearClient clients.LinearClient, teamKey string, cache *TeamIDCache) *TeamsService {
	return &TeamsService{
		linearClient: linearClient,
		teamKey:      strings.TrimSpace(teamKey),
		cache:        cache,
	}
}

// ResolveTeamID returns the cached team id, or fetches all teams and picks one.
// A configured key that matches no team falls back to the first team in Linear's order,
// which is not guaranteed to be stable.
func (s *TeamsService) ResolveTeamID(ctx context.Context) (string, error) {
	if cached, ok := s.cache.Get().Get(); ok {
		return cached, nil
	}

	log.Printf("📋 Starting to resolve Linear team (configured key: %q)", s.teamKey)
	teams, err := s.linearClient.ListTeams(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list Linear teams: %w", err)
	}
	if len(teams) == 0 {
		return "", core.ErrNoTeamsAvailable
	}

	if s.teamKey != "" {
		for _, team := range teams {
			if team.Key != "" && strings.EqualFold(team.Key, s.teamKey) {
				s.cache.Set(team.ID)
				log.Printf("📋 Completed successfully - resolved Linear team %s (%s) by key", team.Key, team.ID)
				return team.ID, nil
			}
		}
		log.Printf("⚠️ Linear team key %q did not match any team - falling back to first team", s.teamKey)
	}

	teamID := teams[0].ID
	s.cache.Set(teamID)
	log.Printf("📋 Completed successfully - resolved Linear team %s (%s)", teams[0].Key, teamID)
	return teamID, nil
}
