// Package textkit turns free-form grammar, tone and rewrite responses from a
// generative model into structured records.
//
// The module is split into small packages:
//
//   - segment: marker extraction, response segmentation, grammar error
//     parsing and interpretation of tone and rewrite fields
//   - provider: the model client boundary, a subprocess completer and a
//     runner that segments only successful completions
//   - cmd/textseg: a developer CLI over both
//
// # Quick Start
//
// Segmenting a tone response:
//
//	import "github.com/sprifti/textkit/segment"
//	rec := segment.Segment(segment.KindTone, response)
//	level := rec.Tone().Formality()
//
// Splitting a combined response:
//
//	report := segment.Analyze(response)
//	for _, e := range report.Grammar.Errors.Items {
//	    fmt.Println(e.ErrorText, "->", e.Correction)
//	}
//
// Calling a model CLI:
//
//	import "github.com/sprifti/textkit/provider"
//	cfg := provider.FromEnv()
//	cmd, err := provider.NewCommand(cfg)
//	runner := provider.NewRunner(cmd, nil, cfg)
//	rec, err = runner.Segment(ctx, segment.KindGrammar, prompt)
package textkit
