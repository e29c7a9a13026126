package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/tgtypes/internal/di"
	chatService "github.com/reshetovitsme/tgtypes/internal/modules/chat/service"
	"github.com/reshetovitsme/tgtypes/internal/shared/config"
	httpServer "github.com/reshetovitsme/tgtypes/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.AppEnv == config.AppEnvLocal || cfg.AppEnv == config.AppEnvDevelopment {
		level = slog.LevelDebug
	}

	// Human readable logs on stdout, errors as JSON on stderr
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	logger := slog.New(slogmulti.Fanout(textHandler, jsonHandler))
	slog.SetDefault(logger)

	injector, err := di.Setup(cfg)
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	chats := do.MustInvoke[*chatService.Service](injector)
	server := do.MustInvoke[*httpServer.Server](injector)

	chats.Start(ctx)

	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			cancel()
		}
	}()

	if cfg.BotEnabled() {
		b, err := do.Invoke[*bot.Bot](injector)
		if err != nil {
			slog.Error("Failed to start Telegram bot", "error", err)
		} else {
			go b.Start(ctx)
			slog.Info("Telegram bot started")
		}
	} else {
		slog.Info("No bot token configured, accepting messages over HTTP only")
	}

	slog.Info("Application started", "port", cfg.HTTPPort, "env", cfg.AppEnv)
	slog.Info("Press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("Shutting down...")
}
