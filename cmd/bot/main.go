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

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/reminder-bot/internal/chat/discord"
	slackchat "github.com/diegoclair/reminder-bot/internal/chat/slack"
	"github.com/diegoclair/reminder-bot/internal/config"
	"github.com/diegoclair/reminder-bot/internal/database"
	"github.com/diegoclair/reminder-bot/internal/domain/service"
	"github.com/diegoclair/reminder-bot/internal/handlers"
	"github.com/diegoclair/reminder-bot/internal/logger"
	"github.com/diegoclair/reminder-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if envErr != nil {
		log.Warn(".env file not found")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("migrations completed successfully")

	dm := database.NewInstance(db)
	opts := service.Options{
		SweepInterval:   cfg.SweepInterval,
		DMRatePerSecond: cfg.DMRatePerSecond,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	var svc *service.Instance
	switch cfg.Platform {
	case config.PlatformSlack:
		chat := slackchat.New(slack.New(cfg.SlackBotToken))
		svc = service.NewInstance(dm, chat, log, opts)

		handler := handlers.New(svc.Reminder, chat, cfg.SlackSigningSecret, log)
		mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)

	case config.PlatformDiscord:
		session, err := discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			return fmt.Errorf("failed to create discord session: %w", err)
		}
		session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

		svc = service.NewInstance(dm, discord.New(session), log, opts)

		handler := handlers.NewDiscordHandler(session, svc.Reminder, log)
		session.AddHandler(handler.OnInteraction)
		session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
			if _, err := s.ApplicationCommandBulkOverwrite(r.User.ID, "", handlers.DiscordCommands); err != nil {
				log.Error("failed to register commands", zap.Error(err))
				return
			}
			log.Info("discord session ready", zap.String("user", r.User.Username))
		})

		if err := session.Open(); err != nil {
			return fmt.Errorf("failed to open discord session: %w", err)
		}
		defer session.Close()
	}

	if err := svc.PrimeCache(ctx); err != nil {
		return err
	}
	svc.Sweep.Start()
	defer svc.Sweep.Stop()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("platform", cfg.Platform))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown failed", zap.Error(err))
	}
	return nil
}
