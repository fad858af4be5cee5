package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/statbot/internal/common/uuid UUID

// UUID generates player IDs in the format the game client assigns them
type UUID interface {
	// NewGameID returns a random 32 character hex ID
	NewGameID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewGameID returns a random UUID without dashes
func (d *DefaultUUID) NewGameID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
