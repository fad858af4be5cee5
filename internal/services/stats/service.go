package stats

import (
	"context"
	"maps"
	"sync"

	"github.com/KirkDiggler/statbot/internal/models"
	"github.com/KirkDiggler/statbot/internal/services/identity"
)

// service implements the Service interface
type service struct {
	identityService identity.Service

	// mu guards players and totals together; totals are shared by every player
	mu      sync.Mutex
	players map[string]models.PlayerStats
	totals  models.GlobalTotals
}

// New creates a new stats service with an empty store
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilInput
	}
	if cfg.IdentityService == nil {
		return nil, ErrNilIdentityService
	}

	return &service{
		identityService: cfg.IdentityService,
		players:         make(map[string]models.PlayerStats),
	}, nil
}

// ApplySnapshot records a reported snapshot.
//
// The first snapshot for a game ID adds its absolute values to the totals.
// Later snapshots add the difference from the stored values, which is negative
// when the game client reset its counters.
func (s *service) ApplySnapshot(ctx context.Context, input *ApplySnapshotInput) (*ApplySnapshotOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, ErrNilSnapshot
	}
	snap := input.Snapshot
	if snap.GameID == "" {
		return nil, ErrInvalidGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, known := s.players[snap.GameID]

	var delta models.Counters
	if known {
		delta = snap.Counters.Sub(previous.Counters)
	} else {
		delta = snap.Counters
		s.totals.TotalPlayers++
	}

	stats := models.PlayerStats{Counters: snap.Counters}
	s.players[snap.GameID] = stats
	s.totals.Counters = s.totals.Counters.Add(delta)

	return &ApplySnapshotOutput{
		FirstSeen: !known,
		Delta:     delta,
		Stats:     stats,
	}, nil
}

// ResetPlayer removes a player's stats and subtracts them from the totals
func (s *service) ResetPlayer(ctx context.Context, input *ResetPlayerInput) (*ResetPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GameID == "" {
		return nil, ErrInvalidGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resetLocked(input.GameID)
}

// ResetByLinkedIdentity resets the player linked to a Discord user
func (s *service) ResetByLinkedIdentity(ctx context.Context, input *ResetByLinkedIdentityInput) (*ResetPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	resolved, err := s.identityService.Resolve(ctx, &identity.ResolveInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return s.ResetPlayer(ctx, &ResetPlayerInput{GameID: resolved.GameID})
}

func (s *service) resetLocked(gameID string) (*ResetPlayerOutput, error) {
	stats, ok := s.players[gameID]
	if !ok {
		return nil, ErrStatsNotFound
	}

	s.totals.Counters = s.totals.Counters.Sub(stats.Counters)
	s.totals.TotalPlayers--
	delete(s.players, gameID)

	return &ResetPlayerOutput{
		GameID:  gameID,
		Removed: stats,
	}, nil
}

// GetPlayerStats returns the stats for a game ID
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.players[input.GameID]
	if !ok {
		return nil, ErrStatsNotFound
	}

	return &GetPlayerStatsOutput{Stats: stats}, nil
}

// GetGlobalTotals returns the global totals
func (s *service) GetGlobalTotals(ctx context.Context) (*GetGlobalTotalsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetGlobalTotalsOutput{Totals: s.totals}, nil
}

// Export returns a copy of the whole store
func (s *service) Export(ctx context.Context) (*ExportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &ExportOutput{
		Totals:  s.totals,
		Players: maps.Clone(s.players),
	}, nil
}

// Restore replaces the totals and/or the player records
func (s *service) Restore(ctx context.Context, input *RestoreInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Totals != nil {
		s.totals = *input.Totals
	}
	if input.Players != nil {
		s.players = maps.Clone(input.Players)
	}

	return nil
}
