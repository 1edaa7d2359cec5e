package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := NewError("command", "complete", ErrRateLimited, true)

	assert.Equal(t, "command complete: rate limited", err.Error())
	assert.ErrorIs(t, err, ErrRateLimited)

	noProvider := &Error{Op: "complete", Err: ErrTimeout}
	assert.Equal(t, "complete: request timed out", noProvider.Error())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "retryable provider error", err: NewError("x", "complete", errors.New("boom"), true), want: true},
		{name: "non-retryable provider error", err: NewError("x", "complete", ErrRateLimited, false), want: false},
		{name: "rate limited sentinel", err: fmt.Errorf("wrapped: %w", ErrRateLimited), want: true},
		{name: "unavailable sentinel", err: ErrUnavailable, want: true},
		{name: "timeout sentinel", err: ErrTimeout, want: true},
		{name: "empty response", err: ErrEmptyResponse, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestIsRetryableMessage(t *testing.T) {
	assert.True(t, isRetryableMessage("Error: Rate limit exceeded"))
	assert.True(t, isRetryableMessage("HTTP 503 service unavailable"))
	assert.True(t, isRetryableMessage("quota exhausted"))
	assert.False(t, isRetryableMessage("invalid api key"))
}
