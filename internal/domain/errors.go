package domain

import (
	"errors" // Sentinel error values
	"fmt"    // Error wrapping
)

// Error kinds returned by the service layer. Handlers pick status codes and
// response messages with errors.Is against these.
var (
	ErrValidation = errors.New("missing required field") // A required input was empty
	ErrConflict   = errors.New("uniqueness conflict")    // A unique column already holds the value
	ErrNotFound   = errors.New("record not found")       // Lookup miss
	ErrAuth       = errors.New("unauthorized")           // Bad credentials or invalid token
)

// Conflict kinds for register; both match ErrConflict
var (
	ErrEmailTaken    = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrUsernameTaken = fmt.Errorf("%w: username taken", ErrConflict)
)
