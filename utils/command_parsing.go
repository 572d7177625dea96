package utils

import (
	"strings"

	"github.com/samber/mo"

	"linearbot/models"
)

const (
	// CreateIssueCommandPrefix is the literal token that starts an issue creation command
	CreateIssueCommandPrefix = "!이슈생성"
	// createIssueCommandSeparator separates the title from the assignee name. The last one wins.
	createIssueCommandSeparator = "-"
)

// ParseCreateIssueCommand extracts a title and assignee name from "!이슈생성 <title>-<assignee>".
// It returns None for anything that is not a well-formed command.
func ParseCreateIssueCommand(messageText string) mo.Option[models.Command] {
	trimmed := strings.TrimSpace(messageText)
	if !strings.HasPrefix(trimmed, CreateIssueCommandPrefix) {
		return mo.None[models.Command]()
	}

	// No escaping or bracket syntax, the remainder is used verbatim
	raw := strings.TrimSpace(strings.TrimPrefix(trimmed, CreateIssueCommandPrefix))

	lastSep := strings.LastIndex(raw, createIssueCommandSeparator)
	if lastSep == -1 {
		return mo.None[models.Command]()
	}

	title := strings.TrimSpace(raw[:lastSep])
	name := strings.TrimSpace(raw[lastSep+len(createIssueCommandSeparator):])
	if title == "" || name == "" {
		return mo.None[models.Command]()
	}

	return mo.Some(models.Command{
		Title:        title,
		AssigneeName: name,
	})
}
