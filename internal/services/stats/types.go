package stats

import (
	"github.com/KirkDiggler/statbot/internal/models"
	"github.com/KirkDiggler/statbot/internal/services/identity"
)

// Config holds configuration for the stats service
type Config struct {
	// IdentityService resolves Discord users for ResetByLinkedIdentity
	IdentityService identity.Service
}

// ApplySnapshotInput contains parameters for applying a snapshot
type ApplySnapshotInput struct {
	Snapshot *models.Snapshot
}

// ApplySnapshotOutput contains the result of applying a snapshot
type ApplySnapshotOutput struct {
	// FirstSeen is true when the snapshot created the player record
	FirstSeen bool

	// Delta is what was added to the global totals
	Delta models.Counters

	// Stats is the player's record after the snapshot
	Stats models.PlayerStats
}

// ResetPlayerInput contains parameters for resetting a player
type ResetPlayerInput struct {
	GameID string
}

// ResetPlayerOutput contains the result of a reset
type ResetPlayerOutput struct {
	// GameID is the player that was reset
	GameID string

	// Removed is the record that was cleared
	Removed models.PlayerStats
}

// ResetByLinkedIdentityInput contains parameters for resetting a linked player
type ResetByLinkedIdentityInput struct {
	UserID string
}

// GetPlayerStatsInput contains parameters for reading a player's stats
type GetPlayerStatsInput struct {
	GameID string
}

// GetPlayerStatsOutput contains a player's stats
type GetPlayerStatsOutput struct {
	Stats models.PlayerStats
}

// GetGlobalTotalsOutput contains the global totals
type GetGlobalTotalsOutput struct {
	Totals models.GlobalTotals
}

// ExportOutput contains a copy of the store
type ExportOutput struct {
	Totals  models.GlobalTotals
	Players map[string]models.PlayerStats
}

// RestoreInput contains the state to restore. Nil fields are left untouched.
type RestoreInput struct {
	Totals  *models.GlobalTotals
	Players map[string]models.PlayerStats
}
