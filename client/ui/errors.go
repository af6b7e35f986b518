package ui

import "errors"

// ActionableError carries a message that can be shown to the player as is.
type ActionableError struct {
	Message string
}

func (e *ActionableError) Error() string {
	return e.Message
}

// MessageFor returns the player-facing message found anywhere in err's chain, or fallback.
func MessageFor(err error, fallback string) string {
	var actionable *ActionableError
	if errors.As(err, &actionable) {
		return actionable.Message
	}
	return fallback
}
