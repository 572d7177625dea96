package linear

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linearbot/core"
	"linearbot/models"
)

const testAPIKey = "lin_api_test"

func newTestServer(t *testing.T, status int, body string, inspect func(r *http.Request, payload map[string]any)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, testAPIKey, r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(raw, &payload))
		if inspect != nil {
			inspect(r, payload)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLinearClient_ListTeams_Success(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"data":{"teams":{"nodes":[{"id":"team-1","name":"Engineering","key":"ENG"},{"id":"team-2","name":"Ops","key":"ON"}]}}}`,
		func(r *http.Request, payload map[string]any) {
			assert.Contains(t, payload["query"], "teams")
			assert.Equal(t, map[string]any{}, payload["variables"])
		})

	client := NewLinearClient(server.Client(), testAPIKey, server.URL)
	teams, err := client.ListTeams(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Team{
		{ID: "team-1", Name: "Engineering", Key: "ENG"},
		{ID: "team-2", Name: "Ops", Key: "ON"},
	}, teams)
}

func TestLinearClient_ListUsers_Success(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"data":{"users":{"nodes":[{"id":"user-1","name":"Bob","email":"bob@example.com"}]}}}`,
		func(r *http.Request, payload map[string]any) {
			assert.Contains(t, payload["query"], "users")
		})

	client := NewLinearClient(server.Client(), testAPIKey, server.URL)
	users, err := client.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: "user-1", Name: "Bob", Email: "bob@example.com"}}, users)
}

func TestLinearClient_GraphQLErrorsAreJoined(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"data":null,"errors":[{"message":"Entity not found"},{"message":"Forbidden"}]}`, nil)

	client := NewLinearClient(server.Client(), testAPIKey, server.URL)
	_, err := client.ListUsers(context.Background())

	require.Error(t, err)
	var apiErr *core.RemoteAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, []string{"Entity not found", "Forbidden"}, apiErr.Messages)
	assert.Equal(t, "Entity not found; Forbidden", err.Error())
}

func TestLinearClient_GraphQLErrorsOnHTTPError(t *testing.T) {
	server := newTestServer(t, http.StatusBadRequest,
		`{"errors":[{"message":"Argument Validation Error"}]}`, nil)

	client := NewLinearClient(server.Client(), testAPIKey, server.URL)
	_, err := client.ListTeams(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Argument Validation Error", err.Error())
}

func TestLinearClient_HTTPErrorWithoutGraphQLErrors(t *testing.T) {
	server := newTestServer(t, http.StatusUnauthorized, `{"message":"invalid api key"}`, nil)

	client := NewLinearClient(server.Client(), testAPIKey, server.URL)
	_, err := client.ListTeams(context.Background())

	require.Error(t, err)
	var apiErr *core.RemoteAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, `HTTP 401: {"message":"invalid api key"}`, err.Error())
}

func TestLinearClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewLinearClient(&http.Client{}, testAPIKey, url)
	_, err := client.ListUsers(context.Background())

	require.Error(t, err)
	assert.True(t, core.IsRemoteAPIError(err))
	assert.Contains(t, err.Error(), "linear request failed")
}

func TestLinearClient_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Invalid JSON", `not json`},
		{"Null data", `{"data":null}`},
		{"Missing data", `{}`},
		{"Missing teams field", `{"data":{}}`},
		{"Wrong field type", `{"data":{"teams":{"nodes":"nope"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.StatusOK, tt.body, nil)
			client := NewLinearClient(server.Client(), testAPIKey, server.URL)

			_, err := client.ListTeams(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrMalformedResponse)
		})
	}
}

func TestLinearClient_CreateIssue_WithAssignee(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"data":{"issueCreate":{"success":true,"issue":{"id":"issue-1","identifier":"ENG-42","title":"Deploy fix","url":"https://linear.app/acme/issue/ENG-42","assignee":{"id":"user-1","name":"Bob"}}}}}`,
		func(r *http.Request, payload map[string]any) {
			assert.Contains(t, payload["query"], "issueCreate")
			variables := payload["variables"].(map[string]any)
			input := variables["input"].(map[string]any)
			assert.Equal(t, map[string]any{
				"title":       "Deploy fix",
				"description": "desc",
				"teamId":      "team-1",
				"assigneeId":  "user-1",
			}, input)
		})

	client := NewLinearClient(server.Client(), testAPIKey, server.URL)
	result, err := client.CreateIssue(context.Background(), models.CreateIssueInput{
		Title:       "Deploy fix",
		Description: "desc",
		AssigneeID:  mo.Some("user-1"),
	}, "team-1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Issue)
	assert.Equal(t, "ENG-42", result.Issue.Identifier)
	assert.Equal(t, "https://linear.app/acme/issue/ENG-42", result.Issue.URL)
	assert.Equal(t, &models.IssueAssignee{ID: "user-1", Name: "Bob"}, result.Issue.Assignee)
}

func TestLinearClient_CreateIssue_OmitsMissingAssignee(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"data":{"issueCreate":{"success":true,"issue":{"id":"issue-2","identifier":"ENG-43","title":"Unassigned","url":"https://linear.app/acme/issue/ENG-43","assignee":null}}}}`,
		func(r *http.Request, payload map[string]any) {
			input := payload["variables"].(map[string]any)["input"].(map[string]any)
			_, hasAssignee := input["assigneeId"]
			assert.False(t, hasAssignee)
			assert.Equal(t, "", input["description"])
		})

	client := NewLinearClient(server.Client(), testAPIKey, server.URL)
	result, err := client.CreateIssue(context.Background(), models.CreateIssueInput{
		Title:      "Unassigned",
		AssigneeID: mo.None[string](),
	}, "team-1")

	require.NoError(t, err)
	assert.Nil(t, result.Issue.Assignee)
}

func TestLinearClient_CreateIssue_SuccessFalseIsReturned(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"data":{"issueCreate":{"success":false,"issue":null}}}`, nil)

	client := NewLinearClient(server.Client(), testAPIKey, server.URL)
	result, err := client.CreateIssue(context.Background(), models.CreateIssueInput{Title: "x"}, "team-1")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.Issue)
}

func TestNewLinearClient_DefaultURL(t *testing.T) {
	client := NewLinearClient(http.DefaultClient, testAPIKey, "").(*LinearClient)
	assert.Equal(t, DefaultAPIURL, client.apiURL)
}
