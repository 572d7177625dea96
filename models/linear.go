package models

import "github.com/samber/mo"

// Team is a Linear workspace team that issues are filed under
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// User is a Linear workspace member that can be assigned to an issue
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type IssueAssignee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Issue is an issue created in Linear. It is not stored locally.
type Issue struct {
	ID         string         `json:"id"`
	Identifier string         `json:"identifier"`
	Title      string         `json:"title"`
	URL        string         `json:"url"`
	Assignee   *IssueAssignee `json:"assignee"`
}

// IssueCreateResult is the payload of the issueCreate mutation
type IssueCreateResult struct {
	Success bool   `json:"success"`
	Issue   *Issue `json:"issue"`
}

// CreateIssueInput describes an issue to be created.
// A missing AssigneeID creates an unassigned issue; a missing TeamID is resolved on demand.
type CreateIssueInput struct {
	Title       string
	Description string
	AssigneeID  mo.Option[string]
	TeamID      mo.Option[string]
}
