package discord

import (
	"fmt"

	"linearbot/models"
)

const messageCreatingIssue = "이슈 생성 중입니다..."

func unassignedWarningMessage(assigneeName string) string {
	return fmt.Sprintf("담당자 '%s'을(를) 찾지 못해, 미배정으로 이슈를 생성합니다.", assigneeName)
}

func issueCreatedMessage(issue *models.Issue) string {
	return fmt.Sprintf("이슈가 생성되었습니다: %s %s", issue.Identifier, issue.URL)
}

func issueCreationErrorMessage(err error) string {
	return fmt.Sprintf("이슈 생성 중 오류가 발생했습니다: %v", err)
}

func issueDescription(event models.DiscordMessageEvent) string {
	return fmt.Sprintf("디스코드에서 @%s 님이 생성\n디스코드 URL: %s", event.AuthorUsername, event.ContextURL())
}
