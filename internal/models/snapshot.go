package models

// Snapshot is one absolute counter reading reported for a player
type Snapshot struct {
	// GameID is the game-assigned player identifier
	GameID string

	Counters
}
