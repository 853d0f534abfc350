package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "server message wins",
			err:      &APIError{StatusCode: 409, Message: "Slot taken"},
			expected: "Slot taken",
		},
		{
			name:     "wrapped api error still found",
			err:      fmt.Errorf("booking: %w", &APIError{StatusCode: 400, Message: "Date and time are required"}),
			expected: "Date and time are required",
		},
		{
			name:     "empty server message falls back",
			err:      &APIError{StatusCode: 500},
			expected: "Something went wrong",
		},
		{
			name:     "transport error gets generic message",
			err:      errors.New("connection refused"),
			expected: GenericErrorMessage,
		},
		{
			name:     "wrapped transport error gets generic message",
			err:      fmt.Errorf("fetch doctors: %w", errors.New("dial tcp: connection refused")),
			expected: GenericErrorMessage,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, UserMessage(c.err, "Something went wrong"))
		})
	}
}

func TestAPIErrorError(t *testing.T) {
	assert.Equal(t, "Slot taken", (&APIError{StatusCode: 409, Message: "Slot taken"}).Error())
	assert.Equal(t, "Conflict", (&APIError{StatusCode: 409}).Error())
}
