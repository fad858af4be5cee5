package state

import "github.com/KirkDiggler/statbot/internal/models"

// SaveTotalsInput contains parameters for saving the global totals
type SaveTotalsInput struct {
	Totals *models.GlobalTotals
}

// SavePlayersInput contains parameters for saving player stats
type SavePlayersInput struct {
	// Players is keyed by game ID
	Players map[string]models.PlayerStats
}

// GetPlayersOutput contains the saved player stats
type GetPlayersOutput struct {
	// Players is keyed by game ID
	Players map[string]models.PlayerStats
}

// SaveLinksInput contains parameters for saving identity links
type SaveLinksInput struct {
	// Links maps Discord user ID to game ID
	Links map[string]string
}

// GetLinksOutput contains the saved identity links
type GetLinksOutput struct {
	// Links maps Discord user ID to game ID
	Links map[string]string
}
