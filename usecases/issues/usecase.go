package issues

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/samber/mo"

	"linearbot/models"
	"linearbot/services"
)

// ErrMissingRequiredFields is returned when title or assigneeName is blank
var ErrMissingRequiredFields = errors.New("title과 assigneeName은 필수입니다.")

const defaultRequester = "사용자"

// IssuesUseCase creates issues requested through the HTTP API
type IssuesUseCase struct {
	usersService  services.UsersService
	issuesService services.IssuesService
}

func NewIssuesUseCase(usersService services.UsersService, issuesService services.IssuesService) *IssuesUseCase {
	return &IssuesUseCase{
		usersService:  usersService,
		issuesService: issuesService,
	}
}

// CreateIssueFromRequest resolves the assignee and creates the issue. An unknown
// assignee creates an unassigned issue.
func (u *IssuesUseCase) CreateIssueFromRequest(ctx context.Context, req models.CreateIssueRequest) (*models.Issue, error) {
	title := strings.TrimSpace(req.Title)
	assigneeName := strings.TrimSpace(req.AssigneeName)
	if title == "" || assigneeName == "" {
		return nil, ErrMissingRequiredFields
	}

	log.Printf("📋 Starting to create issue from API request: title=%q assignee=%q", title, assigneeName)

	assigneeID, err := u.usersService.FindUserIDByName(ctx, assigneeName)
	if err != nil {
		return nil, err
	}
	if !assigneeID.IsPresent() {
		log.Printf("⚠️ Assignee %q not found - creating unassigned issue", assigneeName)
	}

	issue, err := u.issuesService.CreateIssue(ctx, models.CreateIssueInput{
		Title:       title,
		Description: requestDescription(req),
		AssigneeID:  assigneeID,
		TeamID:      mo.None[string](),
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📋 Completed successfully - created issue %s from API request", issue.Identifier)
	return issue, nil
}

func requestDescription(req models.CreateIssueRequest) string {
	description := req.Description
	if description == "" {
		requester := req.DiscordUser
		if requester == "" {
			requester = defaultRequester
		}
		description = fmt.Sprintf("Discord에서 %s 님이 생성", requester)
	}
	if req.DiscordURL != "" {
		description = fmt.Sprintf("%s\nDiscord URL: %s", description, req.DiscordURL)
	}
	return description
}
