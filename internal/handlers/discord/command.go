package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/statbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Rule is one independent message handler. Every rule whose Match returns true
// handles the message, so a single message may trigger several rules.
type Rule struct {
	// Name is used in logs
	Name string

	// Privileged rules only match messages from the privileged user
	Privileged bool

	// Match reports whether the rule applies to a message
	Match func(m *discordgo.Message) bool

	// Handle processes a matching message
	Handle func(ctx context.Context, m *discordgo.Message) error
}

// exact matches messages whose content is exactly cmd
func exact(cmd messaging.Command) func(m *discordgo.Message) bool {
	return func(m *discordgo.Message) bool {
		return m.Content == string(cmd)
	}
}

// prefix matches messages whose content starts with cmd
func prefix(cmd messaging.Command) func(m *discordgo.Message) bool {
	return func(m *discordgo.Message) bool {
		return strings.HasPrefix(m.Content, string(cmd))
	}
}

// authorID returns the author of a message, or "" for system messages
func authorID(m *discordgo.Message) string {
	if m.Author == nil {
		return ""
	}
	return m.Author.ID
}

// targetUserID returns the first mentioned user, falling back to the author
func targetUserID(m *discordgo.Message) string {
	if len(m.Mentions) > 0 && m.Mentions[0] != nil {
		return m.Mentions[0].ID
	}
	return authorID(m)
}
