package reporter

// ReporterError is a custom error type for reporter errors
type ReporterError string

// Error implements the error interface
func (e ReporterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrBusy             ReporterError = "a report is already being sent"
	ErrCoolingDown      ReporterError = "reporter is cooling down"
	ErrNilConfig        ReporterError = "config cannot be nil"
	ErrNilPoster        ReporterError = "poster cannot be nil"
	ErrNilSnapshot      ReporterError = "snapshot cannot be nil"
	ErrInvalidWebhook   ReporterError = "invalid webhook URL"
	ErrNegativeCooldown ReporterError = "cooldown cannot be negative"
)
