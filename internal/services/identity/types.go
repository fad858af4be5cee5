package identity

import "github.com/KirkDiggler/statbot/internal/models"

// DefaultGameIDLength is the length of IDs assigned by the game client
const DefaultGameIDLength = 32

// Config holds configuration for the identity service
type Config struct {
	// GameIDLength is the exact length a game ID must have to be linked
	GameIDLength int
}

// LinkInput contains parameters for linking a user
type LinkInput struct {
	UserID string
	GameID string
}

// LinkOutput contains the created link
type LinkOutput struct {
	Link *models.IdentityLink
}

// UnlinkInput contains parameters for unlinking a user
type UnlinkInput struct {
	UserID string
}

// UnlinkOutput contains the removed link
type UnlinkOutput struct {
	Link *models.IdentityLink
}

// ResolveInput contains parameters for resolving a user
type ResolveInput struct {
	UserID string
}

// ResolveOutput contains the resolved game ID
type ResolveOutput struct {
	GameID string
}

// ExportOutput contains a copy of every link keyed by Discord user ID
type ExportOutput struct {
	Links map[string]string
}

// RestoreInput contains the links to restore, keyed by Discord user ID
type RestoreInput struct {
	Links map[string]string
}
