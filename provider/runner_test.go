package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprifti/textkit/segment"
)

const toneResponse = "TONE: Friendly\nFORMALITY LEVEL: 2\nSENTIMENT: Positive\nTONE ANALYSIS: Casual greeting."

func TestRunner_Segment(t *testing.T) {
	mock := NewMockCompleter(toneResponse)
	r := NewRunner(mock, nil, DefaultConfig())

	rec, err := r.Segment(context.Background(), segment.KindTone, "analyze: Ej shoku!")
	require.NoError(t, err)

	assert.Equal(t, "Friendly", rec.Get(segment.FieldTone))
	assert.Equal(t, 2, rec.Tone().Formality())
	assert.Equal(t, []string{"analyze: Ej shoku!"}, mock.Calls)
}

func TestRunner_Analyze(t *testing.T) {
	combined := "ORIGINAL TEXT: a\nGRAMMATICAL ERRORS: No grammatical errors found\nCORRECTED TEXT: a\n" +
		toneResponse + "\nORIGINAL TONE: Friendly\nTARGET TONE: formal\nREWRITTEN TEXT: A."
	r := NewRunner(NewMockCompleter(combined), nil, DefaultConfig())

	report, err := r.Analyze(context.Background(), "prompt")
	require.NoError(t, err)

	require.NotNil(t, report.Grammar.Errors)
	assert.True(t, report.Grammar.Errors.NoneFound)
	assert.Equal(t, "Positive", report.Tone.Get(segment.FieldSentiment))
	assert.Equal(t, segment.RewriteTargeted, report.Rewrite.Rewrite().Mode())
}

func TestRunner_FailureIsNotSegmented(t *testing.T) {
	mock := NewMockCompleter("").WithError(ErrRateLimited)
	r := NewRunner(mock, nil, Config{Name: "mock"})

	rec, err := r.Segment(context.Background(), segment.KindTone, "prompt")

	require.Error(t, err)
	assert.Empty(t, rec.Fields)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.True(t, IsRetryable(err))

	var provErr *Error
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "mock", provErr.Provider)
	assert.Equal(t, "complete", provErr.Op)
}

func TestRunner_KeepsProviderError(t *testing.T) {
	orig := NewError("upstream", "complete", errors.New("boom"), true)
	r := NewRunner(NewMockCompleter("").WithError(orig), nil, Config{Name: "mock"})

	_, err := r.Complete(context.Background(), "prompt")

	var provErr *Error
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "upstream", provErr.Provider)
}

func TestRunner_EmptyResponse(t *testing.T) {
	r := NewRunner(NewMockCompleter("  \n"), nil, DefaultConfig())

	_, err := r.Segment(context.Background(), segment.KindGrammar, "prompt")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestRunner_EmptyPrompt(t *testing.T) {
	mock := NewMockCompleter(toneResponse)
	r := NewRunner(mock, nil, DefaultConfig())

	_, err := r.Complete(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.Equal(t, 0, mock.CallCount())
}

func TestRunner_Timeout(t *testing.T) {
	slow := CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return toneResponse, nil
		}
	})
	r := NewRunner(slow, nil, Config{Name: "slow", Timeout: 20 * time.Millisecond})

	_, err := r.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, IsRetryable(err))
}

func TestSegment_Convenience(t *testing.T) {
	rec, err := Segment(context.Background(), NewMockCompleter("plain answer"), nil, segment.KindRewrite, "prompt")
	require.NoError(t, err)

	assert.True(t, rec.Fallback)
	assert.Equal(t, "plain answer", rec.Get(segment.FieldRewrittenText))
}
