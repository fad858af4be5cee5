package persistence

import (
	"context"
	"errors"
	"fmt"
	"log"

	stateRepo "github.com/KirkDiggler/statbot/internal/repositories/state"
	"github.com/KirkDiggler/statbot/internal/services/identity"
	"github.com/KirkDiggler/statbot/internal/services/stats"
)

// service implements the Service interface
type service struct {
	stateRepo       stateRepo.Repository
	statsService    stats.Service
	identityService identity.Service
}

// New creates a new persistence service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StateRepo == nil {
		return nil, ErrNilStateRepo
	}
	if cfg.StatsService == nil {
		return nil, ErrNilStatsService
	}
	if cfg.IdentityService == nil {
		return nil, ErrNilIdentityService
	}

	return &service{
		stateRepo:       cfg.StateRepo,
		statsService:    cfg.StatsService,
		identityService: cfg.IdentityService,
	}, nil
}

// Save writes the totals, the player stats and the links
func (s *service) Save(ctx context.Context) (*SaveOutput, error) {
	statsState, err := s.statsService.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export stats: %w", err)
	}

	links, err := s.identityService.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export links: %w", err)
	}

	if err := s.stateRepo.SaveTotals(ctx, &stateRepo.SaveTotalsInput{
		Totals: &statsState.Totals,
	}); err != nil {
		return nil, fmt.Errorf("failed to save totals: %w", err)
	}

	if err := s.stateRepo.SavePlayers(ctx, &stateRepo.SavePlayersInput{
		Players: statsState.Players,
	}); err != nil {
		return nil, fmt.Errorf("failed to save players: %w", err)
	}

	if err := s.stateRepo.SaveLinks(ctx, &stateRepo.SaveLinksInput{
		Links: links.Links,
	}); err != nil {
		return nil, fmt.Errorf("failed to save links: %w", err)
	}

	log.Printf("Saved state: %d players, %d links", len(statsState.Players), len(links.Links))

	return &SaveOutput{
		Players: len(statsState.Players),
		Links:   len(links.Links),
	}, nil
}

// Load restores each document independently. A missing or unreadable document
// leaves the matching in-memory state as it was.
func (s *service) Load(ctx context.Context) (*LoadOutput, error) {
	output := &LoadOutput{}

	record := func(document string, err error) bool {
		switch {
		case err == nil:
			output.Loaded = append(output.Loaded, document)
			return true
		case errors.Is(err, stateRepo.ErrNotFound):
			log.Printf("No saved %s found, skipping", document)
		default:
			log.Printf("Error loading %s: %v", document, err)
			output.Failed = append(output.Failed, document)
		}
		return false
	}

	restore := &stats.RestoreInput{}

	totals, err := s.stateRepo.GetTotals(ctx)
	if record(stateRepo.DocumentTotals, err) {
		restore.Totals = totals
	}

	players, err := s.stateRepo.GetPlayers(ctx)
	if record(stateRepo.DocumentPlayers, err) {
		restore.Players = players.Players
	}

	if restore.Totals != nil || restore.Players != nil {
		if err := s.statsService.Restore(ctx, restore); err != nil {
			return nil, fmt.Errorf("failed to restore stats: %w", err)
		}
	}

	links, err := s.stateRepo.GetLinks(ctx)
	if record(stateRepo.DocumentLinks, err) {
		if err := s.identityService.Restore(ctx, &identity.RestoreInput{
			Links: links.Links,
		}); err != nil {
			return nil, fmt.Errorf("failed to restore links: %w", err)
		}
	}

	return output, nil
}

// Delete removes every saved document
func (s *service) Delete(ctx context.Context) error {
	err := s.stateRepo.DeleteAll(ctx)
	if errors.Is(err, stateRepo.ErrNotFound) {
		return ErrNothingSaved
	}
	if err != nil {
		return fmt.Errorf("failed to delete saved state: %w", err)
	}
	return nil
}
