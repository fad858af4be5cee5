package persistence

// PersistenceError is a custom error type for persistence errors
type PersistenceError string

// Error implements the error interface
func (e PersistenceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNothingSaved       PersistenceError = "no saved data found"
	ErrNilConfig          PersistenceError = "config cannot be nil"
	ErrNilStateRepo       PersistenceError = "state repository cannot be nil"
	ErrNilStatsService    PersistenceError = "stats service cannot be nil"
	ErrNilIdentityService PersistenceError = "identity service cannot be nil"
)
