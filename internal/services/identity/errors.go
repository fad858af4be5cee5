package identity

// IdentityError is a custom error type for identity link errors
type IdentityError string

// Error implements the error interface
func (e IdentityError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidGameID IdentityError = "invalid game ID"
	ErrAlreadyLinked IdentityError = "user already has a linked game ID"
	ErrNotLinked     IdentityError = "user does not have a linked game ID"
	ErrInvalidUserID IdentityError = "user ID cannot be empty"
	ErrInvalidLength IdentityError = "game ID length must be positive"
	ErrNilInput      IdentityError = "input cannot be nil"
)
