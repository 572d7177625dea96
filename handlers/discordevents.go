package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/gammazero/workerpool"

	"linearbot/appctx"
	"linearbot/clients"
	"linearbot/core"
	"linearbot/middleware"
	"linearbot/models"
	"linearbot/usecases"
	"linearbot/utils"
)

type DiscordEventsHandler struct {
	discordSDKClient *discordgo.Session
	discordClient    clients.DiscordClient
	discordUseCase   usecases.DiscordUseCaseInterface
	alertMiddleware  *middleware.ErrorAlertMiddleware
	pool             *workerpool.WorkerPool
	ready            atomic.Bool
	stopped          atomic.Bool
}

func NewDiscordEventsHandler(
	session *discordgo.Session,
	discordClient clients.DiscordClient,
	discordUseCase usecases.DiscordUseCaseInterface,
	alertMiddleware *middleware.ErrorAlertMiddleware,
	workers int,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		discordSDKClient: session,
		discordClient:    discordClient,
		discordUseCase:   discordUseCase,
		alertMiddleware:  alertMiddleware,
		pool:             workerpool.New(workers),
	}

	// Register event handlers
	session.AddHandler(handler.handleReadyEvent)
	session.AddHandler(handler.handleResumedEvent)
	session.AddHandler(handler.handleDisconnectEvent)
	session.AddHandler(handler.handleMessageCreatedEvent)

	// Events are handed to the worker pool, so the gateway loop only needs to enqueue them
	session.SyncEvents = true

	// Message content is a privileged intent and must be enabled for the bot in the developer portal
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot closes the gateway connection and waits for in-flight commands to finish
func (h *DiscordEventsHandler) StopBot() {
	h.stopped.Store(true)
	h.ready.Store(false)
	if err := h.discordSDKClient.Close(); err != nil {
		log.Printf("⚠️ Failed to close Discord session: %v", err)
	}
	h.pool.StopWait()
	log.Printf("🤖 Discord bot stopped")
}

// IsReady reports whether the gateway session is currently connected
func (h *DiscordEventsHandler) IsReady() bool {
	return h.ready.Load()
}

func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	h.ready.Store(true)
	if r.User != nil {
		log.Printf("✅ Discord bot logged in as %s (%d guilds)", r.User.Username, len(r.Guilds))
		return
	}
	log.Printf("✅ Discord bot is ready")
}

func (h *DiscordEventsHandler) handleResumedEvent(s *discordgo.Session, r *discordgo.Resumed) {
	h.ready.Store(true)
	log.Printf("✅ Discord session resumed")
}

func (h *DiscordEventsHandler) handleDisconnectEvent(s *discordgo.Session, d *discordgo.Disconnect) {
	h.ready.Store(false)
	log.Printf("⚠️ Discord session disconnected - waiting for automatic reconnect")
}

// handleMessageCreatedEvent handles incoming Discord messages
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil {
		return
	}
	if m.Author.Bot {
		return
	}
	// Cheap prefix check so ordinary chatter never costs a channel lookup
	if !strings.HasPrefix(strings.TrimSpace(m.Content), utils.CreateIssueCommandPrefix) {
		return
	}
	if h.stopped.Load() {
		log.Printf("⚠️ Discord bot is shutting down - dropping message %s", m.ID)
		return
	}

	eventID := core.NewID("evt")
	log.Printf("📨 [%s] Discord message received from %s in guild %s, channel %s",
		eventID, m.Author.Username, m.GuildID, m.ChannelID)

	h.pool.Submit(h.alertMiddleware.WrapEventHandler("MessageCreate", func() error {
		ctx := appctx.SetEventID(context.Background(), eventID)

		messageEvent := h.mapToDiscordMessageEvent(ctx, m)
		if err := h.discordUseCase.ProcessDiscordMessageEvent(ctx, messageEvent); err != nil {
			return fmt.Errorf("failed to process Discord message %s: %w", m.ID, err)
		}
		return nil
	}))
}

// mapToDiscordMessageEvent maps a Discord SDK message event to our domain model.
// A failed channel lookup is treated as a plain channel message.
func (h *DiscordEventsHandler) mapToDiscordMessageEvent(
	ctx context.Context,
	m *discordgo.MessageCreate,
) models.DiscordMessageEvent {
	event := models.DiscordMessageEvent{
		GuildID:        m.GuildID,
		ChannelID:      m.ChannelID,
		MessageID:      m.ID,
		AuthorID:       m.Author.ID,
		AuthorUsername: m.Author.Username,
		AuthorIsBot:    m.Author.Bot,
		Content:        m.Content,
	}

	channel, err := h.discordClient.GetChannel(ctx, m.ChannelID)
	if err != nil {
		log.Printf("⚠️ [%s] Failed to get channel info, treating as regular channel: %v",
			appctx.GetEventID(ctx), err)
		return event
	}

	if channel.IsThread {
		event.Thread = &models.DiscordThread{
			ID:       channel.ID,
			Joined:   channel.Joined,
			Joinable: !channel.Archived && !channel.Locked,
		}
	}
	return event
}
