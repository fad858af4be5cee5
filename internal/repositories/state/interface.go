package state

import (
	"context"

	"github.com/KirkDiggler/statbot/internal/models"
)

// Repository persists the stat store and the identity links as three
// independent documents
//
//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/statbot/internal/repositories/state Repository
type Repository interface {
	// SaveTotals persists the global totals
	SaveTotals(ctx context.Context, input *SaveTotalsInput) error

	// GetTotals retrieves the global totals
	GetTotals(ctx context.Context) (*models.GlobalTotals, error)

	// SavePlayers persists every player's stats
	SavePlayers(ctx context.Context, input *SavePlayersInput) error

	// GetPlayers retrieves every player's stats
	GetPlayers(ctx context.Context) (*GetPlayersOutput, error)

	// SaveLinks persists the Discord user to game ID links
	SaveLinks(ctx context.Context, input *SaveLinksInput) error

	// GetLinks retrieves the Discord user to game ID links
	GetLinks(ctx context.Context) (*GetLinksOutput, error)

	// DeleteAll removes every persisted document
	DeleteAll(ctx context.Context) error
}
