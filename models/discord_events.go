package models

import "fmt"

const discordWebBaseURL = "https://discord.com/channels"

type DiscordMessageEvent struct {
	GuildID        string
	ChannelID      string
	MessageID      string
	AuthorID       string
	AuthorUsername string
	AuthorIsBot    bool
	Content        string
	// Thread is set when the message was posted inside a thread
	Thread *DiscordThread
}

type DiscordThread struct {
	ID       string
	Joined   bool
	Joinable bool
}

// MessageURL returns the jump link of the message
func (e DiscordMessageEvent) MessageURL() string {
	guild := e.GuildID
	if guild == "" {
		guild = "@me"
	}
	return fmt.Sprintf("%s/%s/%s/%s", discordWebBaseURL, guild, e.ChannelID, e.MessageID)
}

// ContextURL links to the thread for thread messages and to the message otherwise
func (e DiscordMessageEvent) ContextURL() string {
	if e.Thread == nil {
		return e.MessageURL()
	}
	guild := e.GuildID
	if guild == "" {
		guild = "@me"
	}
	return fmt.Sprintf("%s/%s/%s", discordWebBaseURL, guild, e.Thread.ID)
}
