package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	discordclient "linearbot/clients/discord"
	linearclient "linearbot/clients/linear"
	"linearbot/config"
	"linearbot/handlers"
	"linearbot/middleware"
	"linearbot/services/issues"
	"linearbot/services/teams"
	"linearbot/services/users"
	discordusecase "linearbot/usecases/discord"
	issuesusecase "linearbot/usecases/issues"
)

const (
	botReadyTimeout   = 30 * time.Second
	heartbeatInterval = 5 * time.Minute
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	startTime := time.Now()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log.Printf("🌍 Environment: %s", cfg.Environment)

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.AlertConfig.SlackWebhookURL,
		Environment: cfg.Environment,
		AppName:     "linearbot",
		LogsURL:     cfg.AlertConfig.ServerLogsURL,
	})

	session, err := discordgo.New("Bot " + cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}

	// Clients
	httpClient := &http.Client{Timeout: 30 * time.Second}
	linearClient := linearclient.NewLinearClient(httpClient, cfg.LinearConfig.APIKey, cfg.LinearConfig.APIURL)
	discordClient := discordclient.NewDiscordClient(session)

	// Services
	teamsService := teams.NewTeamsService(linearClient, cfg.LinearConfig.TeamKey, teams.NewTeamIDCache())
	usersService := users.NewUsersService(linearClient)
	issuesService := issues.NewIssuesService(linearClient, teamsService)

	// Use cases
	discordUseCase := discordusecase.NewDiscordUseCase(discordClient, usersService, issuesService)
	issuesUseCase := issuesusecase.NewIssuesUseCase(usersService, issuesService)

	discordHandler := handlers.NewDiscordEventsHandler(
		session,
		discordClient,
		discordUseCase,
		alertMiddleware,
		cfg.MessageWorkers,
	)

	log.Printf("🔐 Connecting to Discord gateway...")
	if err := discordHandler.StartBot(); err != nil {
		return err
	}
	defer discordHandler.StopBot()

	waitForBotReady(discordHandler, botReadyTimeout)

	httpHandler := handlers.NewHTTPHandler(discordHandler, issuesUseCase, startTime)

	router := mux.NewRouter()
	httpHandler.SetupEndpoints(router)

	// Periodic heartbeat so the hosting platform sees log activity
	heartbeatTicker := time.NewTicker(heartbeatInterval)
	go func() {
		for range heartbeatTicker.C {
			_ = alertMiddleware.WrapBackgroundTask("Heartbeat", func() error {
				log.Printf("🔄 Keep-Alive heartbeat: %s, bot ready: %t",
					time.Now().UTC().Format(time.RFC3339), discordHandler.IsReady())
				return nil
			})()
		}
	}()
	defer heartbeatTicker.Stop()

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(middleware.RequestIDMiddleware(c.Handler(router))),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

// waitForBotReady blocks until the gateway reports ready or the timeout passes.
// The HTTP server starts either way so the platform health check can report the state.
func waitForBotReady(bot handlers.ReadinessChecker, timeout time.Duration) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	deadline := time.After(timeout)
	start := time.Now()

	for !bot.IsReady() {
		select {
		case <-ticker.C:
			log.Printf("⏳ Waiting for Discord bot to become ready... (%ds)", int(time.Since(start).Seconds()))
		case <-deadline:
			log.Printf("⚠️ Discord bot was not ready after %s, starting HTTP server anyway", timeout)
			return
		}
	}
	log.Printf("✅ Discord bot is ready")
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		log.Printf("🔗 Health check: http://localhost%s/health", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a server failure
	select {
	case <-stop:
		log.Printf("🛑 Shutdown signal received, cleaning up...")
	case err := <-serverErr:
		log.Printf("❌ Server error: %v", err)
		return err
	}

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
