package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleterFunc(t *testing.T) {
	var got string
	c := CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
		got = prompt
		return "TONE: Formal", nil
	})

	resp, err := c.Complete(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, "TONE: Formal", resp)
	assert.Equal(t, "analyze this", got)
}

func TestMockCompleter(t *testing.T) {
	ctx := context.Background()

	t.Run("sequential responses cycle", func(t *testing.T) {
		m := NewMockCompleter("").WithResponses("a", "b")

		for _, want := range []string{"a", "b", "a"} {
			resp, err := m.Complete(ctx, "p")
			require.NoError(t, err)
			assert.Equal(t, want, resp)
		}
		assert.Equal(t, 3, m.CallCount())
	})

	t.Run("error", func(t *testing.T) {
		m := NewMockCompleter("x").WithError(ErrUnavailable)

		_, err := m.Complete(ctx, "p")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("custom func", func(t *testing.T) {
		m := NewMockCompleter("x").WithCompleteFunc(func(ctx context.Context, prompt string) (string, error) {
			return prompt + "!", nil
		})

		resp, err := m.Complete(ctx, "p")
		require.NoError(t, err)
		assert.Equal(t, "p!", resp)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewMockCompleter("x").Complete(cctx, "p")
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
