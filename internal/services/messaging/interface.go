package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetStatsMessage renders a stats reply
	GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error)

	// GetErrorMessage returns the denial text for a failed command
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
