package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	chatRepo "github.com/reshetovitsme/tgtypes/internal/modules/chat/repository"
	chatService "github.com/reshetovitsme/tgtypes/internal/modules/chat/service"
	feedService "github.com/reshetovitsme/tgtypes/internal/modules/feed/service"
	messageRepo "github.com/reshetovitsme/tgtypes/internal/modules/message/repository"
	messageService "github.com/reshetovitsme/tgtypes/internal/modules/message/service"
	"github.com/reshetovitsme/tgtypes/internal/shared/config"
	"github.com/reshetovitsme/tgtypes/internal/shared/errors"
	httpServer "github.com/reshetovitsme/tgtypes/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/tgtypes/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container. A nil cfg loads
// the configuration from the working directory and environment.
func Setup(cfg *config.Config) (do.Injector, error) {
	injector := do.New()

	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		if cfg != nil {
			return cfg, nil
		}
		loaded, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return loaded, nil
	})

	do.Provide(injector, func(i do.Injector) (chatRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := chatRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize chat repository").Wrap(err)
		}
		return repo, nil
	})

	do.Provide(injector, func(i do.Injector) (messageRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := messageRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize message repository").Wrap(err)
		}
		return repo, nil
	})

	do.Provide(injector, func(i do.Injector) (*chatService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		chats := do.MustInvoke[chatRepo.Repository](i)
		messages := do.MustInvoke[messageRepo.Repository](i)
		return chatService.New(cfg, chats, messages), nil
	})

	do.Provide(injector, func(i do.Injector) (*messageService.Service, error) {
		repo := do.MustInvoke[messageRepo.Repository](i)
		chats := do.MustInvoke[*chatService.Service](i)
		return messageService.New(repo, chats), nil
	})

	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		chats := do.MustInvoke[chatRepo.Repository](i)
		messages := do.MustInvoke[messageRepo.Repository](i)
		return feedService.New(cfg, chats, messages), nil
	})

	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		chats := do.MustInvoke[*chatService.Service](i)
		messages := do.MustInvoke[*messageService.Service](i)
		return telegramHandler.New(cfg, chats, messages), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		feeds := do.MustInvoke[*feedService.Service](i)
		messages := do.MustInvoke[*messageService.Service](i)
		chats := do.MustInvoke[*chatService.Service](i)
		server := httpServer.New(cfg, feeds, messages, chats)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// The bot is optional: without a token only the HTTP API ingests messages.
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.BotEnabled() {
			return nil, errors.ErrMissingBotToken
		}
		handler := do.MustInvoke[*telegramHandler.Handler](i)

		b, err := bot.New(cfg.TelegramBotToken,
			bot.WithDefaultHandler(handler.HandleUpdate),
			bot.WithServerURL(cfg.TelegramAPIURL),
		)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := handler.RegisterCommands(ctx, b); err != nil {
			slog.Warn("Failed to publish bot commands", "error", err)
		}

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Error stopping HTTP server", "error", err)
		}
	}

	if chats, err := do.Invoke[*chatService.Service](injector); err == nil && chats != nil {
		chats.Stop()
	}

	return nil
}
