package reporter

import (
	"time"

	"github.com/KirkDiggler/statbot/internal/common/clock"
	"github.com/KirkDiggler/statbot/internal/models"
)

// DefaultCooldown is the minimum time between two sends
const DefaultCooldown = 10 * time.Second

// State represents what the sender is doing
type State string

const (
	// StateIdle indicates a report can be sent
	StateIdle State = "idle"

	// StateSending indicates a report is in flight
	StateSending State = "sending"

	// StateCoolingDown indicates the last send finished less than a cooldown ago
	StateCoolingDown State = "cooling_down"
)

// Config holds configuration for the reporter service
type Config struct {
	// Poster delivers the formatted report
	Poster Poster

	// Clock drives the cooldown; defaults to the system clock
	Clock clock.Clock

	// Cooldown is the minimum time between sends; defaults to DefaultCooldown
	Cooldown time.Duration
}

// ReportInput contains parameters for sending a report
type ReportInput struct {
	Snapshot *models.Snapshot
}

// ReportOutput contains the result of sending a report
type ReportOutput struct {
	// SentAt is when the send completed
	SentAt time.Time

	// Content is the text that was posted
	Content string
}
