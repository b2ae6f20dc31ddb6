package services

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing messages.
const (
	DefaultAPIErrorMessage    = "Unable to reach the reservation service."
	NoRoomSelectedMessage     = "Please select a room before confirming your reservation."
	BookingFailedMessage      = "Unable to complete your booking at this time."
	ContactFailedMessage      = "Unable to send the message right now."
	SubmissionInFlightMessage = "Your request is already being sent. Please wait."
)

var (
	// ErrServiceUnreachable wraps transport failures: the request never
	// produced an HTTP response.
	ErrServiceUnreachable = errors.New("reservation service unreachable")
	// ErrNoRoomSelected is returned when the wizard is confirmed without a
	// room the catalog knows about. No request is sent.
	ErrNoRoomSelected = errors.New("no room selected")
	// ErrSubmissionInFlight rejects a submit while the previous one is
	// still waiting for the service.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// APIError is a non-2xx answer from the reservation service. Message is
// the response body text, or DefaultAPIErrorMessage when it was empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("reservation service returned %d: %s", e.StatusCode, e.Message)
}

// ValidationError lists the labels of required fields that are missing or
// malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Please check the following fields: " + strings.Join(e.Fields, ", ") + "."
}

// UserMessage turns err into text safe to show a visitor. fallback is used
// for errors outside the site's taxonomy.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}

	switch {
	case errors.Is(err, ErrNoRoomSelected):
		return NoRoomSelectedMessage
	case errors.Is(err, ErrSubmissionInFlight):
		return SubmissionInFlightMessage
	case errors.Is(err, ErrServiceUnreachable):
		return DefaultAPIErrorMessage
	}
	return fallback
}
