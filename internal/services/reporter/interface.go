package reporter

import "context"

// Service sends snapshots to the stats channel webhook, one at a time
type Service interface {
	// Report posts a snapshot unless a send is in flight or cooling down
	Report(ctx context.Context, input *ReportInput) (*ReportOutput, error)

	// State returns the current sender state
	State() State
}

// Poster delivers report text to the stats channel
//
//go:generate mockgen -package=mocks -destination=mocks/mock_poster.go github.com/KirkDiggler/statbot/internal/services/reporter Poster
type Poster interface {
	Post(ctx context.Context, content string) error
}
