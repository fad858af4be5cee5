package models

// PlayerStats is the last known absolute reading for one game player.
// Records are keyed by the game-assigned player ID, which is not stored here.
type PlayerStats struct {
	Counters
}

// GlobalTotals aggregates counters across every player.
//
// Totals grow by a player's absolute values on the first snapshot and by deltas
// afterwards, so they are not recomputed from the current PlayerStats.
type GlobalTotals struct {
	Counters

	// TotalPlayers is the number of players currently tracked
	TotalPlayers int64 `json:"TotalPlayers"`
}
