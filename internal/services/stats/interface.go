package stats

import "context"

// Service maintains per-player stats and the global totals
type Service interface {
	// ApplySnapshot records a reported snapshot and updates the global totals
	ApplySnapshot(ctx context.Context, input *ApplySnapshotInput) (*ApplySnapshotOutput, error)

	// ResetPlayer removes a player's stats and their contribution to the totals
	ResetPlayer(ctx context.Context, input *ResetPlayerInput) (*ResetPlayerOutput, error)

	// ResetByLinkedIdentity resets the player linked to a Discord user
	ResetByLinkedIdentity(ctx context.Context, input *ResetByLinkedIdentityInput) (*ResetPlayerOutput, error)

	// GetPlayerStats returns the stats for a game ID
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// GetGlobalTotals returns the global totals
	GetGlobalTotals(ctx context.Context) (*GetGlobalTotalsOutput, error)

	// Export returns a copy of the whole store
	Export(ctx context.Context) (*ExportOutput, error)

	// Restore replaces the parts of the store that are provided
	Restore(ctx context.Context, input *RestoreInput) error
}
