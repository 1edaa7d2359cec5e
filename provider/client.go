// Package provider defines the boundary between the segmenter and the
// generative model that writes the responses it parses.
//
// The model is a black box: a rendered prompt goes in, a complete response
// string or a failure comes out. Failures are reported to the caller and
// never reach the segmenter.
//
// # Usage
//
// Wrap any model client as a Completer and segment its answer:
//
//	c := provider.CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
//	    return myModel.Generate(ctx, prompt)
//	})
//	rec, err := provider.Segment(ctx, c, segment.Default(), segment.KindTone, prompt)
//	if err != nil {
//	    // upstream failure, nothing was segmented
//	}
//
// # Available Completers
//
//   - CompleterFunc: adapts a plain function
//   - Command: pipes the prompt to an external model CLI and reads stdout
//   - MockCompleter: test double with fixed or sequential responses
package provider

import "context"

// Completer produces a complete model response for a rendered prompt.
// Implementations must be safe for concurrent use.
type Completer interface {
	// Complete sends prompt to the model and returns its full response.
	// The context controls cancellation and timeouts.
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete implements Completer.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
