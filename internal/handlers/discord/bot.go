package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/statbot/internal/services/identity"
	"github.com/KirkDiggler/statbot/internal/services/messaging"
	"github.com/KirkDiggler/statbot/internal/services/persistence"
	"github.com/KirkDiggler/statbot/internal/services/stats"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	dispatcher *Dispatcher
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// PrivilegedUserID may run admin commands
	PrivilegedUserID string

	// WebhookUserID is the author of game reports
	WebhookUserID string

	// StatsChannelID is where game reports arrive
	StatsChannelID string

	// HistoryWindow is how many recent messages are scanned for stale reports
	HistoryWindow int

	// StorageTimeout bounds each save, load or delete
	StorageTimeout time.Duration

	// Services
	StatsService       stats.Service
	IdentityService    identity.Service
	PersistenceService persistence.Service
	MessagingService   messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	// Handle messages one at a time in arrival order
	session.SyncEvents = true

	dispatcher, err := NewDispatcher(&DispatcherConfig{
		Messenger:          NewSessionMessenger(session),
		StatsService:       cfg.StatsService,
		IdentityService:    cfg.IdentityService,
		PersistenceService: cfg.PersistenceService,
		MessagingService:   cfg.MessagingService,
		PrivilegedUserID:   cfg.PrivilegedUserID,
		WebhookUserID:      cfg.WebhookUserID,
		StatsChannelID:     cfg.StatsChannelID,
		HistoryWindow:      cfg.HistoryWindow,
		StorageTimeout:     cfg.StorageTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	bot := &Bot{
		session:    session,
		dispatcher: dispatcher,
	}

	// Register the message handler
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// handleMessageCreate passes every message not written by the bot to the dispatcher
func (b *Bot) handleMessageCreate(s *discordgo.Session, mc *discordgo.MessageCreate) {
	if mc.Message == nil || mc.Author == nil {
		return
	}
	if s.State != nil && s.State.User != nil && mc.Author.ID == s.State.User.ID {
		return
	}

	b.dispatcher.Dispatch(context.Background(), mc.Message)
}
