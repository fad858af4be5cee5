package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/statbot/internal/services/identity"
	"github.com/KirkDiggler/statbot/internal/services/messaging"
	"github.com/KirkDiggler/statbot/internal/services/persistence"
	"github.com/KirkDiggler/statbot/internal/services/stats"
	"github.com/KirkDiggler/statbot/internal/snapshot"
	"github.com/bwmarrin/discordgo"
)

// DispatcherConfig holds the configuration for the command dispatcher
type DispatcherConfig struct {
	// Messenger sends replies and deletes messages
	Messenger Messenger

	// Services
	StatsService       stats.Service
	IdentityService    identity.Service
	PersistenceService persistence.Service
	MessagingService   messaging.Service

	// PrivilegedUserID may run admin commands
	PrivilegedUserID string

	// WebhookUserID is the author of report messages
	WebhookUserID string

	// StatsChannelID is where reports are posted
	StatsChannelID string

	// HistoryWindow is how many recent messages are scanned for stale reports
	HistoryWindow int

	// StorageTimeout bounds each save, load or delete
	StorageTimeout time.Duration
}

// Dispatcher routes chat messages to the stat store and identity linker
type Dispatcher struct {
	messenger          Messenger
	statsService       stats.Service
	identityService    identity.Service
	persistenceService persistence.Service
	messagingService   messaging.Service

	privilegedUserID string
	webhookUserID    string
	statsChannelID   string
	historyWindow    int
	storageTimeout   time.Duration

	rules []Rule
}

// NewDispatcher creates a dispatcher with the full rule set
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	if cfg.StatsService == nil {
		return nil, errors.New("stats service cannot be nil")
	}
	if cfg.IdentityService == nil {
		return nil, errors.New("identity service cannot be nil")
	}
	if cfg.PersistenceService == nil {
		return nil, errors.New("persistence service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.PrivilegedUserID == "" || cfg.WebhookUserID == "" || cfg.StatsChannelID == "" {
		return nil, errors.New("privileged user, webhook user and stats channel IDs are required")
	}

	storageTimeout := cfg.StorageTimeout
	if storageTimeout <= 0 {
		storageTimeout = 5 * time.Second
	}

	d := &Dispatcher{
		messenger:          cfg.Messenger,
		statsService:       cfg.StatsService,
		identityService:    cfg.IdentityService,
		persistenceService: cfg.PersistenceService,
		messagingService:   cfg.MessagingService,
		privilegedUserID:   cfg.PrivilegedUserID,
		webhookUserID:      cfg.WebhookUserID,
		statsChannelID:     cfg.StatsChannelID,
		historyWindow:      cfg.HistoryWindow,
		storageTimeout:     storageTimeout,
	}

	d.rules = []Rule{
		{Name: "webhook", Match: d.isReport, Handle: d.handleReport},
		{Name: "id", Privileged: true, Match: prefix(messaging.CommandIDLookup), Handle: d.handleIDLookup},
		{Name: "unlink", Match: exact(messaging.CommandUnlink), Handle: d.handleUnlink},
		{Name: "link", Match: prefix(messaging.CommandLink), Handle: d.handleLink},
		{Name: "stats", Match: prefix(messaging.CommandStats), Handle: d.handleStats},
		{Name: "resetid", Privileged: true, Match: prefix(messaging.CommandResetID), Handle: d.handleResetID},
		{Name: "resetstats", Privileged: true, Match: prefix(messaging.CommandResetStats), Handle: d.handleResetStats},
		{Name: "globalstats", Match: exact(messaging.CommandGlobalStats), Handle: d.handleGlobalStats},
		{Name: "save", Privileged: true, Match: exact(messaging.CommandSave), Handle: d.handleSave},
		{Name: "load", Privileged: true, Match: exact(messaging.CommandLoad), Handle: d.handleLoad},
		{Name: "delete", Privileged: true, Match: exact(messaging.CommandDeleteSave), Handle: d.handleDeleteSave},
	}

	return d, nil
}

// Dispatch runs every rule that matches m. Handler errors are logged.
func (d *Dispatcher) Dispatch(ctx context.Context, m *discordgo.Message) {
	if m == nil {
		return
	}

	for _, rule := range d.rules {
		if rule.Privileged && authorID(m) != d.privilegedUserID {
			continue
		}
		if !rule.Match(m) {
			continue
		}
		if err := rule.Handle(ctx, m); err != nil {
			log.Printf("Error handling %s for message %s: %v", rule.Name, m.ID, err)
		}
	}
}

func (d *Dispatcher) isReport(m *discordgo.Message) bool {
	return m.ChannelID == d.statsChannelID && authorID(m) == d.webhookUserID
}

// handleReport applies a webhook report and clears older reports for the same player
func (d *Dispatcher) handleReport(ctx context.Context, m *discordgo.Message) error {
	snap, err := snapshot.Parse(m.Content)
	if err != nil {
		log.Printf("Ignoring malformed report %s: %v", m.ID, err)
		return nil
	}

	output, err := d.statsService.ApplySnapshot(ctx, &stats.ApplySnapshotInput{
		Snapshot: snap,
	})
	if err != nil {
		return fmt.Errorf("failed to apply snapshot: %w", err)
	}

	if output.FirstSeen {
		log.Printf("New player %s", snap.GameID)
	}

	d.cleanupReports(m, snap.GameID)
	return nil
}

// cleanupReports deletes the report and any older message for the same game ID
func (d *Dispatcher) cleanupReports(m *discordgo.Message, gameID string) {
	if err := d.messenger.Delete(m.ChannelID, m.ID); err != nil {
		log.Printf("Error deleting report %s: %v", m.ID, err)
	}

	if d.historyWindow <= 0 {
		return
	}

	recent, err := d.messenger.Recent(m.ChannelID, d.historyWindow)
	if err != nil {
		log.Printf("Error fetching messages in %s: %v", m.ChannelID, err)
		return
	}

	for _, old := range recent {
		if old == nil || old.ID == m.ID {
			continue
		}
		if snapshot.GameID(old.Content) != gameID {
			continue
		}
		if err := d.messenger.Delete(old.ChannelID, old.ID); err != nil {
			log.Printf("Error deleting message %s: %v", old.ID, err)
		}
	}
}

func (d *Dispatcher) handleIDLookup(ctx context.Context, m *discordgo.Message) error {
	resolved, err := d.identityService.Resolve(ctx, &identity.ResolveInput{
		UserID: targetUserID(m),
	})
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandIDLookup, err)
	}

	return d.reply(m, fmt.Sprintf("User's Game ID is: %s", resolved.GameID))
}

func (d *Dispatcher) handleUnlink(ctx context.Context, m *discordgo.Message) error {
	_, err := d.identityService.Unlink(ctx, &identity.UnlinkInput{
		UserID: authorID(m),
	})
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandUnlink, err)
	}

	return d.reply(m, messaging.MessageUnlinked)
}

// handleLink links the author and then deletes the command so the game ID
// does not stay visible in the channel
func (d *Dispatcher) handleLink(ctx context.Context, m *discordgo.Message) error {
	defer d.deleteCommand(m)

	parts := strings.Split(m.Content, " ")
	if len(parts) != 2 {
		return d.reply(m, messaging.MessageLinkUsage)
	}

	_, err := d.identityService.Link(ctx, &identity.LinkInput{
		UserID: authorID(m),
		GameID: parts[1],
	})
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandLink, err)
	}

	return d.reply(m, messaging.MessageLinked)
}

func (d *Dispatcher) handleStats(ctx context.Context, m *discordgo.Message) error {
	resolved, err := d.identityService.Resolve(ctx, &identity.ResolveInput{
		UserID: targetUserID(m),
	})
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandStats, err)
	}

	output, err := d.statsService.GetPlayerStats(ctx, &stats.GetPlayerStatsInput{
		GameID: resolved.GameID,
	})
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandStats, err)
	}

	msg, err := d.messagingService.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{
		Kind:     messaging.StatsKindPlayer,
		GameID:   resolved.GameID,
		Counters: output.Stats.Counters,
	})
	if err != nil {
		return err
	}

	return d.reply(m, msg.Message)
}

func (d *Dispatcher) handleResetID(ctx context.Context, m *discordgo.Message) error {
	defer d.deleteCommand(m)

	parts := strings.Fields(m.Content)
	if len(parts) < 2 {
		return d.reply(m, "Invalid command format. Use !resetid GAME_ID")
	}

	_, err := d.statsService.ResetPlayer(ctx, &stats.ResetPlayerInput{
		GameID: parts[1],
	})
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandResetID, err)
	}

	return d.reply(m, messaging.MessageStatsReset)
}

func (d *Dispatcher) handleResetStats(ctx context.Context, m *discordgo.Message) error {
	_, err := d.statsService.ResetByLinkedIdentity(ctx, &stats.ResetByLinkedIdentityInput{
		UserID: targetUserID(m),
	})
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandResetStats, err)
	}

	return d.reply(m, messaging.MessageStatsReset)
}

func (d *Dispatcher) handleGlobalStats(ctx context.Context, m *discordgo.Message) error {
	output, err := d.statsService.GetGlobalTotals(ctx)
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandGlobalStats, err)
	}

	msg, err := d.messagingService.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{
		Kind:     messaging.StatsKindGlobal,
		Counters: output.Totals.Counters,
	})
	if err != nil {
		return err
	}

	return d.reply(m, msg.Message)
}

func (d *Dispatcher) handleSave(ctx context.Context, m *discordgo.Message) error {
	ctx, cancel := context.WithTimeout(ctx, d.storageTimeout)
	defer cancel()

	if _, err := d.persistenceService.Save(ctx); err != nil {
		return d.replyError(ctx, m, messaging.CommandSave, err)
	}

	return d.reply(m, messaging.MessageSaved)
}

func (d *Dispatcher) handleLoad(ctx context.Context, m *discordgo.Message) error {
	ctx, cancel := context.WithTimeout(ctx, d.storageTimeout)
	defer cancel()

	output, err := d.persistenceService.Load(ctx)
	if err != nil {
		return d.replyError(ctx, m, messaging.CommandLoad, err)
	}
	failed := strings.Join(output.Failed, ", ")
	switch {
	case output.Empty() && failed != "":
		return d.replyError(ctx, m, messaging.CommandLoad, fmt.Errorf("could not read %s", failed))
	case output.Empty():
		return d.replyError(ctx, m, messaging.CommandLoad, persistence.ErrNothingSaved)
	case failed != "":
		return d.reply(m, fmt.Sprintf("%s, could not read: %s", messaging.MessageLoaded, failed))
	}

	return d.reply(m, messaging.MessageLoaded)
}

func (d *Dispatcher) handleDeleteSave(ctx context.Context, m *discordgo.Message) error {
	ctx, cancel := context.WithTimeout(ctx, d.storageTimeout)
	defer cancel()

	if err := d.persistenceService.Delete(ctx); err != nil {
		return d.replyError(ctx, m, messaging.CommandDeleteSave, err)
	}

	return d.reply(m, messaging.MessageDeleted)
}

func (d *Dispatcher) reply(m *discordgo.Message, content string) error {
	if err := d.messenger.Reply(m, content); err != nil {
		return fmt.Errorf("failed to reply: %w", err)
	}
	return nil
}

// replyError answers with the denial text for err. Lookup and validation
// failures are expected and not logged.
func (d *Dispatcher) replyError(ctx context.Context, m *discordgo.Message, cmd messaging.Command, err error) error {
	if !isDenial(err) {
		log.Printf("Error running %s: %v", cmd, err)
	}

	msg, msgErr := d.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Command: cmd,
		Err:     err,
	})
	if msgErr != nil {
		return msgErr
	}

	return d.reply(m, msg.Message)
}

func (d *Dispatcher) deleteCommand(m *discordgo.Message) {
	if err := d.messenger.Delete(m.ChannelID, m.ID); err != nil {
		log.Printf("Error deleting command %s: %v", m.ID, err)
	}
}

func isDenial(err error) bool {
	var identityErr identity.IdentityError
	var statsErr stats.StatsError
	return errors.As(err, &identityErr) ||
		errors.As(err, &statsErr) ||
		errors.Is(err, persistence.ErrNothingSaved)
}
