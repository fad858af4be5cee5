package identity

import "context"

// Service links Discord users to game player IDs
//
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/statbot/internal/services/identity Service
type Service interface {
	// Link associates a Discord user with a game ID
	Link(ctx context.Context, input *LinkInput) (*LinkOutput, error)

	// Unlink removes a Discord user's link
	Unlink(ctx context.Context, input *UnlinkInput) (*UnlinkOutput, error)

	// Resolve returns the game ID linked to a Discord user
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Export returns a copy of every link
	Export(ctx context.Context) (*ExportOutput, error)

	// Restore replaces every link
	Restore(ctx context.Context, input *RestoreInput) error
}
