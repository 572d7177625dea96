package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"linearbot/appctx"
	"linearbot/clients"
	"linearbot/models"
	"linearbot/services"
	"linearbot/utils"
)

// DiscordUseCase turns "!이슈생성" chat commands into Linear issues
type DiscordUseCase struct {
	discordClient clients.DiscordClient
	usersService  services.UsersService
	issuesService services.IssuesService
}

// NewDiscordUseCase creates a new instance of DiscordUseCase
func NewDiscordUseCase(
	discordClient clients.DiscordClient,
	usersService services.UsersService,
	issuesService services.IssuesService,
) *DiscordUseCase {
	return &DiscordUseCase{
		discordClient: discordClient,
		usersService:  usersService,
		issuesService: issuesService,
	}
}

// ProcessDiscordMessageEvent handles a single chat message. Messages that are not a
// well-formed command are ignored. Once a command is recognized every failure is reported
// back into the channel and returned to the caller for logging; nothing is retried.
func (d *DiscordUseCase) ProcessDiscordMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	if event.AuthorIsBot {
		return nil
	}

	maybeCommand := utils.ParseCreateIssueCommand(event.Content)
	if !maybeCommand.IsPresent() {
		return nil
	}
	command := maybeCommand.MustGet()
	eventID := appctx.GetEventID(ctx)

	log.Printf("📋 [%s] Starting to process issue command from %s in channel %s: title=%q assignee=%q",
		eventID, event.AuthorUsername, event.ChannelID, command.Title, command.AssigneeName)

	// Best effort: replying into a thread the bot has not joined can fail on visibility,
	// but a failed join must not stop issue creation
	if err := d.joinThreadIfNeeded(ctx, event); err != nil {
		log.Printf("⚠️ [%s] Failed to join thread %s, continuing: %v", eventID, event.Thread.ID, err)
	}

	issue, err := d.createIssueForCommand(ctx, event, command)
	if err != nil {
		log.Printf("❌ [%s] Failed to create issue from Discord command: %v", eventID, err)
		if replyErr := d.discordClient.SendMessage(ctx, event.ChannelID, issueCreationErrorMessage(err)); replyErr != nil {
			log.Printf("❌ [%s] Failed to send error reply: %v", eventID, replyErr)
		}
		return err
	}

	log.Printf("📋 [%s] Completed successfully - created issue %s for Discord message %s",
		eventID, issue.Identifier, event.MessageID)
	return nil
}

func (d *DiscordUseCase) createIssueForCommand(
	ctx context.Context,
	event models.DiscordMessageEvent,
	command models.Command,
) (*models.Issue, error) {
	if err := d.discordClient.SendMessage(ctx, event.ChannelID, messageCreatingIssue); err != nil {
		return nil, fmt.Errorf("failed to send acknowledgment: %w", err)
	}

	assigneeID, err := d.usersService.FindUserIDByName(ctx, command.AssigneeName)
	if err != nil {
		return nil, err
	}
	if !assigneeID.IsPresent() {
		warning := unassignedWarningMessage(command.AssigneeName)
		if err := d.discordClient.SendMessage(ctx, event.ChannelID, warning); err != nil {
			return nil, fmt.Errorf("failed to send unassigned warning: %w", err)
		}
	}

	issue, err := d.issuesService.CreateIssue(ctx, models.CreateIssueInput{
		Title:       command.Title,
		Description: issueDescription(event),
		AssigneeID:  assigneeID,
		TeamID:      mo.None[string](),
	})
	if err != nil {
		return nil, err
	}

	if err := d.discordClient.SendMessage(ctx, event.ChannelID, issueCreatedMessage(issue)); err != nil {
		return nil, fmt.Errorf("failed to send issue created reply: %w", err)
	}
	return issue, nil
}

func (d *DiscordUseCase) joinThreadIfNeeded(ctx context.Context, event models.DiscordMessageEvent) error {
	if event.Thread == nil || event.Thread.Joined || !event.Thread.Joinable {
		return nil
	}
	return d.discordClient.JoinThread(ctx, event.Thread.ID)
}
