package detail

import (
	"errors"
	"fmt"
)

// User-facing messages. Nothing else from a failed load is shown to the user.
const (
	MessageMissingInput = "No manga ID provided. Please go back and select a manga."
	MessageLoadFailed   = "Failed to load manga details. Please try again later."
)

var (
	// ErrMissingInput indicates no manga identifier was supplied
	ErrMissingInput = errors.New("no manga id provided")
	// ErrMissingData indicates a 2xx primary response without the data envelope
	ErrMissingData = errors.New("manga response has no data")
)

// AbortError reports that the primary record could not be loaded
type AbortError struct {
	ID  string
	Err error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("failed to load manga %s: %v", e.ID, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

// UserMessage maps a load error to the single message shown to the user
func UserMessage(err error) string {
	if errors.Is(err, ErrMissingInput) {
		return MessageMissingInput
	}
	return MessageLoadFailed
}
