package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"linearbot/clients"
)

// DiscordClient implements the clients.DiscordClient interface on top of a discordgo session
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient wraps an existing discordgo session. The session is owned by the caller.
func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

// SendMessage posts a plain text message into a channel or thread
func (c *DiscordClient) SendMessage(ctx context.Context, channelID, content string) error {
	_, err := c.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send Discord message to channel %s: %w", channelID, err)
	}
	return nil
}

// JoinThread adds the bot user to a thread
func (c *DiscordClient) JoinThread(ctx context.Context, threadID string) error {
	if err := c.session.ThreadJoin(threadID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to join Discord thread %s: %w", threadID, err)
	}
	return nil
}

// GetChannel looks up a channel, preferring the gateway state cache over a REST call
func (c *DiscordClient) GetChannel(ctx context.Context, channelID string) (*clients.DiscordChannel, error) {
	var channel *discordgo.Channel
	if c.session.State != nil {
		if cached, err := c.session.State.Channel(channelID); err == nil {
			channel = cached
		}
	}
	if channel == nil {
		fetched, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to get Discord channel %s: %w", channelID, err)
		}
		channel = fetched
	}

	return mapChannel(channel), nil
}

func mapChannel(channel *discordgo.Channel) *clients.DiscordChannel {
	result := &clients.DiscordChannel{
		ID:       channel.ID,
		GuildID:  channel.GuildID,
		IsThread: isThreadChannel(channel.Type),
		Joined:   channel.Member != nil,
	}
	if channel.ThreadMetadata != nil {
		result.Archived = channel.ThreadMetadata.Archived
		result.Locked = channel.ThreadMetadata.Locked
	}
	return result
}

// isThreadChannel checks if the given channel type is a thread
func isThreadChannel(channelType discordgo.ChannelType) bool {
	return channelType == discordgo.ChannelTypeGuildPublicThread ||
		channelType == discordgo.ChannelTypeGuildPrivateThread ||
		channelType == discordgo.ChannelTypeGuildNewsThread
}
