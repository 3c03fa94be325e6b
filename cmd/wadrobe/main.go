package main

import (
	"log"
	"log/slog"

	"github.com/Adithya700/Wadrobe/internal/config"
	"github.com/Adithya700/Wadrobe/internal/db"
	"github.com/Adithya700/Wadrobe/internal/imagestore/local"
	"github.com/Adithya700/Wadrobe/internal/logging"
	"github.com/Adithya700/Wadrobe/internal/service"
	"github.com/Adithya700/Wadrobe/internal/store"
	"github.com/Adithya700/Wadrobe/internal/stylist"
	claudestylist "github.com/Adithya700/Wadrobe/internal/stylist/claude"
	geministylist "github.com/Adithya700/Wadrobe/internal/stylist/gemini"
	"github.com/Adithya700/Wadrobe/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	itemStore := store.NewItemStore(database)

	images, err := local.NewLocalImageStore(cfg.UploadPath)
	if err != nil {
		logger.Error("failed to initialize image store", "error", err)
		return
	}

	stylistAPI := newStylist(cfg, logger)
	if stylistAPI == nil {
		return
	}

	wardrobeService := service.NewWardrobeService(itemStore, images, stylistAPI, cfg.StylistTimeout, logger)
	server := web.NewServer(wardrobeService, images, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newStylist(cfg *config.Config, logger *slog.Logger) stylist.Stylist {
	switch cfg.StylistBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when STYLIST_BACKEND=claude")
			return nil
		}
		logger.Info("using Claude stylist backend", "model", cfg.ClaudeModel)
		return claudestylist.NewClaudeStylist(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		if cfg.GeminiAPIKey == "" {
			logger.Error("GEMINI_API_KEY is required when STYLIST_BACKEND=gemini")
			return nil
		}
		logger.Info("using Gemini stylist backend", "model", cfg.GeminiModel)
		return geministylist.NewGeminiStylist(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
