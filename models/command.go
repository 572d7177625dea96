package models

// Command is a parsed "!이슈생성 <title>-<assignee>" chat command
type Command struct {
	Title        string
	AssigneeName string
}
