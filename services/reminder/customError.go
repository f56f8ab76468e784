package reminder

import (
	"errors"
	"fmt"
)

// ValidationError reports a bad or missing form field. It blocks the save and
// is surfaced to the user with the offending field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrNotAuthorized signals a non-admin caller attempting to manage reminders.
var ErrNotAuthorized = errors.New("only administrators can manage reminders")
