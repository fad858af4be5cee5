package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/statbot/internal/config"
	"github.com/KirkDiggler/statbot/internal/handlers/discord"
	stateRepo "github.com/KirkDiggler/statbot/internal/repositories/state"
	"github.com/KirkDiggler/statbot/internal/services/identity"
	"github.com/KirkDiggler/statbot/internal/services/messaging"
	"github.com/KirkDiggler/statbot/internal/services/persistence"
	"github.com/KirkDiggler/statbot/internal/services/stats"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "optional .env file to read before the environment")
	pflag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the state repository
	repo, err := newStateRepository(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to create state repository: %v", err)
	}

	// Initialize services
	identitySvc, err := identity.New(&identity.Config{
		GameIDLength: cfg.Stats.GameIDLength,
	})
	if err != nil {
		log.Fatalf("Failed to create identity service: %v", err)
	}

	statsSvc, err := stats.New(&stats.Config{
		IdentityService: identitySvc,
	})
	if err != nil {
		log.Fatalf("Failed to create stats service: %v", err)
	}

	persistenceSvc, err := persistence.New(&persistence.Config{
		StateRepo:       repo,
		StatsService:    statsSvc,
		IdentityService: identitySvc,
	})
	if err != nil {
		log.Fatalf("Failed to create persistence service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Restore the last save before accepting messages
	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Timeout)
	loaded, err := persistenceSvc.Load(loadCtx)
	cancel()
	if err != nil {
		log.Printf("Failed to load saved state: %v", err)
	} else if loaded.Empty() {
		log.Println("No saved state found, starting fresh")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:              cfg.Discord.Token,
		PrivilegedUserID:   cfg.Discord.PrivilegedUserID,
		WebhookUserID:      cfg.Discord.WebhookUserID,
		StatsChannelID:     cfg.Discord.StatsChannelID,
		HistoryWindow:      cfg.Stats.HistoryWindow,
		StorageTimeout:     cfg.Storage.Timeout,
		StatsService:       statsSvc,
		IdentityService:    identitySvc,
		PersistenceService: persistenceSvc,
		MessagingService:   messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Timeout)
	defer cancel()
	if _, err := persistenceSvc.Save(saveCtx); err != nil {
		log.Printf("Error saving state: %v", err)
	}

	log.Println("Bot has been shut down")
}

// newStateRepository builds the configured storage backend
func newStateRepository(cfg *config.StorageConfig) (stateRepo.Repository, error) {
	if cfg.Backend != config.BackendRedis {
		repo, err := stateRepo.NewFile(&stateRepo.FileConfig{
			Dir: cfg.Dir,
		})
		if err != nil {
			return nil, err
		}
		return repo, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo, err := stateRepo.NewRedis(&stateRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}
