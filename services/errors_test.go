package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "api error", err: &APIError{StatusCode: 400, Message: "Bad dates"}, want: "Bad dates"},
		{name: "wrapped api error", err: fmt.Errorf("create booking: %w", &APIError{StatusCode: 409, Message: "Taken"}), want: "Taken"},
		{name: "validation", err: &ValidationError{Fields: []string{"Full name", "Email address"}}, want: "Please check the following fields: Full name, Email address."},
		{name: "no room", err: ErrNoRoomSelected, want: NoRoomSelectedMessage},
		{name: "in flight", err: ErrSubmissionInFlight, want: SubmissionInFlightMessage},
		{name: "unreachable", err: fmt.Errorf("%w: dial tcp", ErrServiceUnreachable), want: DefaultAPIErrorMessage},
		{name: "other", err: errors.New("boom"), want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, "fallback"))
		})
	}
}
