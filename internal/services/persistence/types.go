package persistence

import (
	stateRepo "github.com/KirkDiggler/statbot/internal/repositories/state"
	"github.com/KirkDiggler/statbot/internal/services/identity"
	"github.com/KirkDiggler/statbot/internal/services/stats"
)

// Config holds configuration for the persistence service
type Config struct {
	// Repository dependencies
	StateRepo stateRepo.Repository

	// Service dependencies
	StatsService    stats.Service
	IdentityService identity.Service
}

// SaveOutput contains the result of a save
type SaveOutput struct {
	// Players is the number of player records written
	Players int

	// Links is the number of identity links written
	Links int
}

// LoadOutput contains the result of a load
type LoadOutput struct {
	// Loaded lists the documents restored into memory
	Loaded []string

	// Failed lists documents that exist but could not be read
	Failed []string
}

// Empty reports whether nothing was restored
func (o *LoadOutput) Empty() bool {
	return len(o.Loaded) == 0
}
