package models

// CreateIssueRequest is the body of POST /api/create-issue
type CreateIssueRequest struct {
	Title        string `json:"title"`
	AssigneeName string `json:"assigneeName"`
	Description  string `json:"description,omitempty"`
	DiscordUser  string `json:"discordUser,omitempty"`
	DiscordURL   string `json:"discordUrl,omitempty"`
}

type CreateIssueResponse struct {
	Success bool   `json:"success"`
	Issue   *Issue `json:"issue"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Success *bool  `json:"success,omitempty"`
}
