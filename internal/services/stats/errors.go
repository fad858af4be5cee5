package stats

// StatsError is a custom error type for stat store errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrStatsNotFound      StatsError = "no stats found for game ID"
	ErrInvalidGameID      StatsError = "game ID cannot be empty"
	ErrNilSnapshot        StatsError = "snapshot cannot be nil"
	ErrNilInput           StatsError = "input cannot be nil"
	ErrNilIdentityService StatsError = "identity service cannot be nil"
)
