package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linearbot/models"
)

func TestParseCreateIssueCommand(t *testing.T) {
	tests := []struct {
		name             string
		messageText      string
		expectedIsCmd    bool
		expectedTitle    string
		expectedAssignee string
	}{
		{
			name:             "Simple command",
			messageText:      "!이슈생성 Deploy fix-Bob",
			expectedIsCmd:    true,
			expectedTitle:    "Deploy fix",
			expectedAssignee: "Bob",
		},
		{
			name:             "Title containing the separator splits on the last one",
			messageText:      "!이슈생성 Fix login-bug - Alice",
			expectedIsCmd:    true,
			expectedTitle:    "Fix login-bug",
			expectedAssignee: "Alice",
		},
		{
			name:             "Surrounding whitespace",
			messageText:      "   !이슈생성   로그인 오류 수정  -  홍길동  ",
			expectedIsCmd:    true,
			expectedTitle:    "로그인 오류 수정",
			expectedAssignee: "홍길동",
		},
		{
			name:             "No space after prefix",
			messageText:      "!이슈생성Title-Name",
			expectedIsCmd:    true,
			expectedTitle:    "Title",
			expectedAssignee: "Name",
		},
		{
			name:             "Brackets are kept verbatim",
			messageText:      "!이슈생성 [API] timeout-Carol",
			expectedIsCmd:    true,
			expectedTitle:    "[API] timeout",
			expectedAssignee: "Carol",
		},
		{
			name:          "Missing prefix",
			messageText:   "Deploy fix-Bob",
			expectedIsCmd: false,
		},
		{
			name:          "Prefix in the middle of text",
			messageText:   "please run !이슈생성 Deploy fix-Bob",
			expectedIsCmd: false,
		},
		{
			name:          "No separator",
			messageText:   "!이슈생성 Deploy fix Bob",
			expectedIsCmd: false,
		},
		{
			name:          "Empty title",
			messageText:   "!이슈생성 -Alice",
			expectedIsCmd: false,
		},
		{
			name:          "Empty assignee",
			messageText:   "!이슈생성 Deploy fix-   ",
			expectedIsCmd: false,
		},
		{
			name:          "Trailing separator after a hyphenated title",
			messageText:   "!이슈생성 Fix login-bug-",
			expectedIsCmd: false,
		},
		{
			name:          "Prefix only",
			messageText:   "!이슈생성",
			expectedIsCmd: false,
		},
		{
			name:          "Empty message",
			messageText:   "",
			expectedIsCmd: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseCreateIssueCommand(tt.messageText)
			assert.Equal(t, tt.expectedIsCmd, result.IsPresent())
			if tt.expectedIsCmd {
				assert.Equal(t, models.Command{
					Title:        tt.expectedTitle,
					AssigneeName: tt.expectedAssignee,
				}, result.MustGet())
			}
		})
	}
}

func TestParseCreateIssueCommand_RoundTrip(t *testing.T) {
	titles := []string{"Deploy", "Fix login-bug", "a-b-c", "버그 수정"}
	names := []string{"Bob", "Alice Kim", "김철수"}

	for _, title := range titles {
		for _, name := range names {
			result := ParseCreateIssueCommand(CreateIssueCommandPrefix + " " + title + "-" + name)
			if assert.True(t, result.IsPresent(), "title=%q name=%q", title, name) {
				assert.Equal(t, title, result.MustGet().Title)
				assert.Equal(t, name, result.MustGet().AssigneeName)
			}
		}
	}
}

func TestAssertInvariant(t *testing.T) {
	assert.NotPanics(t, func() { AssertInvariant(true, "ok") })
	assert.PanicsWithValue(t, "invariant violated - broken", func() { AssertInvariant(false, "broken") })
}
