package persistence

import "context"

// Service saves and restores the stat store and identity links
//
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/statbot/internal/services/persistence Service
type Service interface {
	// Save writes every document, stopping at the first failure
	Save(ctx context.Context) (*SaveOutput, error)

	// Load restores every document that can be read
	Load(ctx context.Context) (*LoadOutput, error)

	// Delete removes every saved document
	Delete(ctx context.Context) error
}
