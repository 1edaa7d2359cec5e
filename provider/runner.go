package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sprifti/textkit/segment"
)

// Runner sends prompts to a Completer and segments the responses.
// Failed or empty completions are returned as errors and never segmented.
type Runner struct {
	completer Completer
	segmenter *segment.Segmenter
	name      string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewRunner creates a Runner. A nil segmenter uses segment.Default().
func NewRunner(c Completer, s *segment.Segmenter, cfg Config) *Runner {
	if s == nil {
		s = segment.Default()
	}
	name := cfg.Name
	if name == "" {
		name = "completer"
	}
	return &Runner{
		completer: c,
		segmenter: s,
		name:      name,
		timeout:   cfg.Timeout,
		logger:    slog.Default(),
	}
}

// WithLogger returns a copy of the runner that logs to l.
func (r Runner) WithLogger(l *slog.Logger) *Runner {
	if l != nil {
		r.logger = l
	}
	return &r
}

// Complete sends prompt and returns the raw response.
// Returns a *Error on failure, timeout, or an empty response.
func (r *Runner) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", NewError(r.name, "complete", ErrEmptyPrompt, false)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := r.completer.Complete(ctx, prompt)
	if err != nil {
		r.logger.Warn("completion failed",
			slog.String("provider", r.name),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err))
		return "", wrapError(r.name, err)
	}

	if strings.TrimSpace(resp) == "" {
		return "", NewError(r.name, "complete", ErrEmptyResponse, false)
	}

	r.logger.Debug("completion received",
		slog.String("provider", r.name),
		slog.Int("length", len(resp)),
		slog.Duration("elapsed", time.Since(start)))
	return resp, nil
}

// Segment completes prompt and segments the response as kind.
func (r *Runner) Segment(ctx context.Context, kind segment.Kind, prompt string) (segment.Record, error) {
	resp, err := r.Complete(ctx, prompt)
	if err != nil {
		return segment.Record{}, err
	}
	return r.segmenter.Segment(kind, resp), nil
}

// Analyze completes prompt and splits the combined response into a report.
func (r *Runner) Analyze(ctx context.Context, prompt string) (segment.Report, error) {
	resp, err := r.Complete(ctx, prompt)
	if err != nil {
		return segment.Report{}, err
	}
	return r.segmenter.Analyze(resp), nil
}

// Segment is a convenience wrapper around a Runner with default config.
func Segment(ctx context.Context, c Completer, s *segment.Segmenter, kind segment.Kind, prompt string) (segment.Record, error) {
	cfg := DefaultConfig()
	cfg.Name = "completer"
	return NewRunner(c, s, cfg).Segment(ctx, kind, prompt)
}

// wrapError converts a completer failure into a *Error, keeping an
// existing one as is.
func wrapError(name string, err error) error {
	var provErr *Error
	if errors.As(err, &provErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(name, "complete", fmt.Errorf("%w: %w", ErrTimeout, err), true)
	}
	return NewError(name, "complete", err, IsRetryable(err))
}
