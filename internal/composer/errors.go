package composer

import (
	"errors"
)

// ValidationError is returned when a draft or an input is rejected before
// any backend call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrEmptyDraft      = &ValidationError{Field: "content", Message: "Write something or attach media before posting"}
	ErrNoAccounts      = &ValidationError{Field: "accounts", Message: "Select at least one account"}
	ErrPartialSchedule = &ValidationError{Field: "schedule", Message: "Set both a date and a time to schedule, or clear both"}
	ErrInvalidSchedule = &ValidationError{Field: "schedule", Message: "Invalid schedule date or time"}
	ErrUploadsPending  = &ValidationError{Field: "media", Message: "Wait for uploads to finish before posting"}
	ErrInvalidURL      = &ValidationError{Field: "url", Message: "Enter a valid http or https URL"}
)

var ErrDispatchInFlight = errors.New("a post is already being sent")

// RemoteError carries the human readable message of a failed backend call.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// userMessage picks the most specific message a backend error carries.
func userMessage(err error, fallback string) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}
