package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	BotToken string
}

type LinearConfig struct {
	APIKey string
	// TeamKey selects a team by key (e.g. "ON", "ENG"); empty means the first team
	TeamKey string
	APIURL  string
}

type AlertConfig struct {
	SlackWebhookURL string
	ServerLogsURL   string
}

// IsConfigured returns true if error alerts should be posted to Slack
func (c AlertConfig) IsConfigured() bool {
	return c.SlackWebhookURL != ""
}

type AppConfig struct {
	Port               string // Optional with default "3000"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	MessageWorkers     int

	DiscordConfig DiscordConfig
	LinearConfig  LinearConfig
	AlertConfig   AlertConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Could not load .env file, continuing with system env vars")
	}

	botToken, err := getEnvRequired("DISCORD_BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	apiKey, err := getEnvRequired("LINEAR_API_KEY")
	if err != nil {
		return nil, err
	}

	messageWorkers, err := getEnvInt("MESSAGE_WORKERS", 4)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Port:               getEnvWithDefault("PORT", "3000"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		MessageWorkers:     messageWorkers,

		DiscordConfig: DiscordConfig{
			BotToken: botToken,
		},

		LinearConfig: LinearConfig{
			APIKey:  apiKey,
			TeamKey: os.Getenv("LINEAR_TEAM_KEY"),
			APIURL:  getEnvWithDefault("LINEAR_API_URL", "https://api.linear.app/graphql"),
		},

		AlertConfig: AlertConfig{
			SlackWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
			ServerLogsURL:   os.Getenv("SERVER_LOGS_URL"),
		},
	}

	if config.AlertConfig.IsConfigured() {
		log.Printf("✅ Slack error alerts configured")
	} else {
		log.Printf("⚠️ Slack error alerts not configured - errors will only be logged")
	}

	if config.LinearConfig.TeamKey != "" {
		log.Printf("✅ Linear team key configured: %s", config.LinearConfig.TeamKey)
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return parsed, nil
}
