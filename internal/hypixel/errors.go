package hypixel

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound is returned when the API answers successfully but knows
// no player by the requested name or UUID.
var ErrPlayerNotFound = errors.New("player not found")

// APIError is a non-success answer from the Hypixel API: either a non-200
// status or a success=false envelope. The Cause string comes straight from
// the API and is safe to show to users.
type APIError struct {
	Status int
	Cause  string
}

func (e *APIError) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("hypixel API error (status %d): %s", e.Status, e.Cause)
	}
	return fmt.Sprintf("hypixel API error (status %d)", e.Status)
}

// IsNotFound reports whether err means the player does not exist, as
// opposed to a transient or credential failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPlayerNotFound)
}
