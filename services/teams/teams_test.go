package teams

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linearbot/clients/linear"
	"linearbot/core"
	"linearbot/models"
)

func testTeams() []models.Team {
	return []models.Team{
		{ID: "team-eng", Name: "Engineering", Key: "ENG"},
		{ID: "team-on", Name: "OnSurvey", Key: "ON"},
	}
}

func TestTeamsService_ResolveTeamID(t *testing.T) {
	tests := []struct {
		name       string
		teamKey    string
		expectedID string
	}{
		{"No key uses first team", "", "team-eng"},
		{"Key match", "ON", "team-on"},
		{"Key match is case-insensitive", "on", "team-on"},
		{"Unknown key falls back to first team", "OPS", "team-eng"},
		{"Whitespace-only key is ignored", "   ", "team-eng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			linearClient := new(linear.MockLinearClient)
			linearClient.On("ListTeams", mock.Anything).Return(testTeams(), nil).Once()

			service := NewTeamsService(linearClient, tt.teamKey, NewTeamIDCache())
			teamID, err := service.ResolveTeamID(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, teamID)
			linearClient.AssertExpectations(t)
		})
	}
}

func TestTeamsService_ResolveTeamID_CachesResult(t *testing.T) {
	linearClient := new(linear.MockLinearClient)
	linearClient.On("ListTeams", mock.Anything).Return(testTeams(), nil).Once()

	cache := NewTeamIDCache()
	service := NewTeamsService(linearClient, "ON", cache)

	first, err := service.ResolveTeamID(context.Background())
	require.NoError(t, err)
	second, err := service.ResolveTeamID(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	linearClient.AssertNumberOfCalls(t, "ListTeams", 1)
	assert.Equal(t, "team-on", cache.Get().MustGet())
}

func TestTeamsService_ResolveTeamID_ResetForcesRefetch(t *testing.T) {
	linearClient := new(linear.MockLinearClient)
	linearClient.On("ListTeams", mock.Anything).Return(testTeams(), nil).Twice()

	cache := NewTeamIDCache()
	service := NewTeamsService(linearClient, "", cache)

	_, err := service.ResolveTeamID(context.Background())
	require.NoError(t, err)
	cache.Reset()
	assert.False(t, cache.Get().IsPresent())
	_, err = service.ResolveTeamID(context.Background())
	require.NoError(t, err)

	linearClient.AssertExpectations(t)
}

func TestTeamsService_ResolveTeamID_NoTeams(t *testing.T) {
	linearClient := new(linear.MockLinearClient)
	linearClient.On("ListTeams", mock.Anything).Return([]models.Team{}, nil)

	cache := NewTeamIDCache()
	service := NewTeamsService(linearClient, "ENG", cache)
	_, err := service.ResolveTeamID(context.Background())

	assert.ErrorIs(t, err, core.ErrNoTeamsAvailable)
	assert.False(t, cache.Get().IsPresent())
}

func TestTeamsService_ResolveTeamID_ClientError(t *testing.T) {
	apiErr := &core.RemoteAPIError{Messages: []string{"Authentication required"}}
	linearClient := new(linear.MockLinearClient)
	linearClient.On("ListTeams", mock.Anything).Return(nil, apiErr)

	cache := NewTeamIDCache()
	service := NewTeamsService(linearClient, "", cache)
	_, err := service.ResolveTeamID(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apiErr))
	assert.Contains(t, err.Error(), "Authentication required")
	assert.False(t, cache.Get().IsPresent())
}

func TestTeamsService_ResolveTeamID_ConcurrentFirstCalls(t *testing.T) {
	// Concurrent misses are allowed to fetch more than once, but must agree on the result
	linearClient := new(linear.MockLinearClient)
	linearClient.On("ListTeams", mock.Anything).Return(testTeams(), nil)

	service := NewTeamsService(linearClient, "ON", NewTeamIDCache())

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			teamID, err := service.ResolveTeamID(context.Background())
			assert.NoError(t, err)
			results[i] = teamID
		}()
	}
	wg.Wait()

	for _, teamID := range results {
		assert.Equal(t, "team-on", teamID)
	}
	calls := len(linearClient.Calls)
	assert.GreaterOrEqual(t, calls, 1)
	assert.LessOrEqual(t, calls, len(results))
}
