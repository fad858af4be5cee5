package identity

import (
	"context"
	"maps"
	"sync"

	"github.com/KirkDiggler/statbot/internal/models"
)

// service implements the Service interface
type service struct {
	gameIDLength int

	mu    sync.Mutex
	links map[string]string
}

// New creates a new identity service
func New(cfg *Config) (*service, error) {
	length := DefaultGameIDLength
	if cfg != nil && cfg.GameIDLength != 0 {
		length = cfg.GameIDLength
	}
	if length < 0 {
		return nil, ErrInvalidLength
	}

	return &service{
		gameIDLength: length,
		links:        make(map[string]string),
	}, nil
}

// Link associates a Discord user with a game ID
func (s *service) Link(ctx context.Context, input *LinkInput) (*LinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if len(input.GameID) != s.gameIDLength {
		return nil, ErrInvalidGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[input.UserID]; ok {
		return nil, ErrAlreadyLinked
	}
	s.links[input.UserID] = input.GameID

	return &LinkOutput{
		Link: &models.IdentityLink{UserID: input.UserID, GameID: input.GameID},
	}, nil
}

// Unlink removes a Discord user's link
func (s *service) Unlink(ctx context.Context, input *UnlinkInput) (*UnlinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gameID, ok := s.links[input.UserID]
	if !ok {
		return nil, ErrNotLinked
	}
	delete(s.links, input.UserID)

	return &UnlinkOutput{
		Link: &models.IdentityLink{UserID: input.UserID, GameID: gameID},
	}, nil
}

// Resolve returns the game ID linked to a Discord user
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gameID, ok := s.links[input.UserID]
	if !ok {
		return nil, ErrNotLinked
	}

	return &ResolveOutput{GameID: gameID}, nil
}

// Export returns a copy of every link
func (s *service) Export(ctx context.Context) (*ExportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &ExportOutput{Links: maps.Clone(s.links)}, nil
}

// Restore replaces every link. Links loaded from storage are not length checked
// so IDs saved under a different GAME_ID_LENGTH survive a restart.
func (s *service) Restore(ctx context.Context, input *RestoreInput) error {
	if input == nil {
		return ErrNilInput
	}

	links := maps.Clone(input.Links)
	if links == nil {
		links = make(map[string]string)
	}

	s.mu.Lock()
	s.links = links
	s.mu.Unlock()

	return nil
}
