package models

// IdentityLink associates a Discord user with a game player ID
type IdentityLink struct {
	// UserID is the Discord user ID
	UserID string

	// GameID is the game-assigned player identifier
	GameID string
}
