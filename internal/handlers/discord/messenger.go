package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Messenger is the subset of Discord channel operations the dispatcher needs
//
//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/statbot/internal/handlers/discord Messenger
type Messenger interface {
	// Reply sends content as a reply to m
	Reply(m *discordgo.Message, content string) error

	// Delete removes a message
	Delete(channelID, messageID string) error

	// Recent returns up to limit of the newest messages in a channel
	Recent(channelID string, limit int) ([]*discordgo.Message, error)
}

// sessionMessenger implements Messenger on a discordgo session
type sessionMessenger struct {
	session *discordgo.Session
}

// NewSessionMessenger creates a Messenger backed by a Discord session
func NewSessionMessenger(session *discordgo.Session) Messenger {
	return &sessionMessenger{session: session}
}

// Reply sends content as a reply to m
func (sm *sessionMessenger) Reply(m *discordgo.Message, content string) error {
	_, err := sm.session.ChannelMessageSendReply(m.ChannelID, content, m.Reference())
	return err
}

// Delete removes a message
func (sm *sessionMessenger) Delete(channelID, messageID string) error {
	return sm.session.ChannelMessageDelete(channelID, messageID)
}

// Recent returns up to limit of the newest messages in a channel
func (sm *sessionMessenger) Recent(channelID string, limit int) ([]*discordgo.Message, error) {
	return sm.session.ChannelMessages(channelID, limit, "", "", "")
}
