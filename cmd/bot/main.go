package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/dnd-character-sheet/internal/api"
	"github.com/KirkDiggler/dnd-character-sheet/internal/clients/charactersync"
	"github.com/KirkDiggler/dnd-character-sheet/internal/config"
	"github.com/KirkDiggler/dnd-character-sheet/internal/dice"
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord"
	"github.com/KirkDiggler/dnd-character-sheet/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services/sheet"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	redisPingTimeout = 5 * time.Second
	shutdownTimeout  = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("Exiting", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}
	zcfg.Level = level
	return zcfg.Build()
}

// store is the gateway the sheet service syncs through plus whatever must be
// closed on shutdown
type store struct {
	gateway sheet.Gateway
	owners  api.OwnerLister
	close   func() error
}

// selectStore prefers Redis when REDIS_URL is set and answers a ping, and
// falls back to the HTTP character endpoint otherwise
func selectStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*store, error) {
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Warn("Invalid REDIS_URL, falling back to HTTP sync", zap.Error(err))
		} else {
			client := redis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
			pingErr := client.Ping(pingCtx).Err()
			cancel()

			if pingErr == nil {
				logger.Info("Using Redis character store", zap.String("addr", opts.Addr))
				repo := characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client})
				return &store{gateway: repo, owners: repo, close: client.Close}, nil
			}

			logger.Warn("Redis unreachable, falling back to HTTP sync", zap.Error(pingErr))
			_ = client.Close()
		}
	}

	client, err := charactersync.New(&charactersync.Config{
		BaseURL:    cfg.Sync.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Sync.Timeout},
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character sync client: %w", err)
	}
	logger.Info("Using HTTP character sync", zap.String("base_url", cfg.Sync.BaseURL))
	return &store{gateway: client, close: func() error { return nil }}, nil
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := selectStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warn("Failed to close character store", zap.Error(err))
		}
	}()

	provider := services.NewProvider(&services.ProviderConfig{
		Gateway: st.gateway,
		Roller:  dice.NewRandomRoller(),
		Logger:  logger,
	})

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Discord.Enabled() {
		g.Go(func() error {
			return runBot(gctx, cfg.Discord, provider, logger)
		})
	}

	if cfg.HTTP.Enabled() {
		g.Go(func() error {
			return runAPI(gctx, cfg.HTTP, provider, st.owners, logger)
		})
	}

	return g.Wait()
}

func runBot(ctx context.Context, cfg config.DiscordConfig, provider *services.Provider, logger *zap.Logger) error {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := discord.NewBot(&discord.BotConfig{
		ServiceProvider: provider,
		Logger:          logger,
	})
	session.AddHandler(bot.InteractionHandler(ctx))

	if err := session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("Failed to close Discord connection", zap.Error(err))
		}
	}()

	if err := bot.RegisterCommands(session, cfg.AppID, cfg.GuildID); err != nil {
		return err
	}
	if cfg.GuildID == "" {
		logger.Info("Registered global commands (may take up to 1 hour to propagate)")
	}

	logger.Info("Bot is now running")
	<-ctx.Done()
	logger.Info("Shutting down bot")
	return nil
}

func runAPI(ctx context.Context, cfg config.HTTPConfig, provider *services.Provider, owners api.OwnerLister, logger *zap.Logger) error {
	handler := api.NewHandler(&api.HandlerConfig{
		Service: provider.SheetService,
		Owners:  owners,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP API failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("Shutting down HTTP API")
	return srv.Shutdown(shutdownCtx)
}
