package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"linearbot/clients"
	"linearbot/core"
	"linearbot/models"
)

const DefaultAPIURL = "https://api.linear.app/graphql"

const (
	allTeamsQuery = `
    query AllTeams { teams { nodes { id name key } } }
  `
	allUsersQuery = `
    query AllUsers {
      users { nodes { id name email } }
    }
  `
	issueCreateMutation = `
    mutation IssueCreate($input: IssueCreateInput!) {
      issueCreate(input: $input) {
        success
        issue { id identifier title url assignee { id name } }
      }
    }
  `
)

// LinearClient implements the clients.LinearClient interface over plain HTTP.
// Every call goes to a single endpoint with the API key as the Authorization header.
type LinearClient struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
}

// NewLinearClient creates a new Linear GraphQL client. An empty apiURL uses DefaultAPIURL.
func NewLinearClient(httpClient *http.Client, apiKey, apiURL string) clients.LinearClient {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &LinearClient{
		httpClient: httpClient,
		apiKey:     apiKey,
		apiURL:     apiURL,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Execute runs a GraphQL operation and decodes its data object into out.
// GraphQL errors, non-2xx responses and transport failures all surface as *core.RemoteAPIError.
func (c *LinearClient) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	if variables == nil {
		variables = map[string]any{}
	}
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create GraphQL request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &core.RemoteAPIError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &core.RemoteAPIError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var gqlResp graphQLResponse
	decodeErr := json.Unmarshal(respBody, &gqlResp)
	if decodeErr == nil && len(gqlResp.Errors) > 0 {
		messages := make([]string, len(gqlResp.Errors))
		for i, e := range gqlResp.Errors {
			messages[i] = e.Message
		}
		return &core.RemoteAPIError{Messages: messages}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &core.RemoteAPIError{StatusCode: resp.StatusCode, Payload: string(respBody)}
	}

	if decodeErr != nil {
		return fmt.Errorf("%w: %v", core.ErrMalformedResponse, decodeErr)
	}
	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		return fmt.Errorf("%w: response has no data", core.ErrMalformedResponse)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}
	return nil
}

type teamsData struct {
	Teams *struct {
		Nodes []models.Team `json:"nodes"`
	} `json:"teams"`
}

// ListTeams returns all teams of the workspace in the order Linear returns them
func (c *LinearClient) ListTeams(ctx context.Context) ([]models.Team, error) {
	var data teamsData
	if err := c.Execute(ctx, allTeamsQuery, nil, &data); err != nil {
		return nil, err
	}
	if data.Teams == nil {
		return nil, fmt.Errorf("%w: teams field missing", core.ErrMalformedResponse)
	}
	return data.Teams.Nodes, nil
}

type usersData struct {
	Users *struct {
		Nodes []models.User `json:"nodes"`
	} `json:"users"`
}

// ListUsers returns every user of the workspace without server-side filtering
func (c *LinearClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var data usersData
	if err := c.Execute(ctx, allUsersQuery, nil, &data); err != nil {
		return nil, err
	}
	if data.Users == nil {
		return nil, fmt.Errorf("%w: users field missing", core.ErrMalformedResponse)
	}
	return data.Users.Nodes, nil
}

type issueCreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TeamID      string `json:"teamId"`
	AssigneeID  string `json:"assigneeId,omitempty"`
}

type issueCreateData struct {
	IssueCreate *models.IssueCreateResult `json:"issueCreate"`
}

// CreateIssue runs the issueCreate mutation. The assigneeId field is omitted when no assignee is set.
func (c *LinearClient) CreateIssue(
	ctx context.Context,
	input models.CreateIssueInput,
	teamID string,
) (*models.IssueCreateResult, error) {
	variables := map[string]any{
		"input": issueCreateInput{
			Title:       input.Title,
			Description: input.Description,
			TeamID:      teamID,
			AssigneeID:  input.AssigneeID.OrEmpty(),
		},
	}

	var data issueCreateData
	if err := c.Execute(ctx, issueCreateMutation, variables, &data); err != nil {
		return nil, err
	}
	if data.IssueCreate == nil {
		return nil, fmt.Errorf("%w: issueCreate field missing", core.ErrMalformedResponse)
	}
	return data.IssueCreate, nil
}
