package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"trainpilot/backend/internal/api"
	"trainpilot/backend/internal/auth"
	"trainpilot/backend/internal/config"
	"trainpilot/backend/internal/planner"
	"trainpilot/backend/internal/service"
)

// App holds the assembled server so tests can inspect the wiring without
// binding a port.
type App struct {
	Config *config.Config
	Server *http.Server
}

// NewApp wires the whole dependency graph from configuration: identity
// verifier, planning backend, services, handlers, router.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		return nil, errors.New("identity provider configuration (SUPABASE_URL, SUPABASE_SERVICE_KEY) is required")
	}

	verifier := auth.NewSupabaseVerifier(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	planningBackend := planner.FromConfig(cfg)

	chatService := service.NewChatService(planningBackend)
	planService := service.NewPlanService()
	chatHandler := api.NewChatHandler(chatService, planService)
	router := api.NewRouter(chatHandler, verifier)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{Config: cfg, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	application, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to assemble application", "error", err)
		return 1
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
