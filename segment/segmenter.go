package segment

import (
	"log/slog"
	"strings"
)

// Segmenter decomposes responses using one marker table per kind.
// It is immutable after New and safe for concurrent use.
type Segmenter struct {
	tables         map[Kind]Table
	noErrorsPhrase string
	logger         *slog.Logger
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithLogger sets the logger used for fallback diagnostics.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Segmenter) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Segmenter from cfg. Tables missing from cfg use the defaults,
// as does an empty NoErrorsPhrase.
// Returns an error wrapping ErrInvalidConfig if cfg fails validation.
func New(cfg Config, opts ...Option) (*Segmenter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Segmenter{
		tables:         DefaultTables(),
		noErrorsPhrase: cfg.NoErrorsPhrase,
		logger:         slog.Default(),
	}
	if s.noErrorsPhrase == "" {
		s.noErrorsPhrase = DefaultNoErrorsPhrase
	}
	for name, table := range cfg.Tables {
		s.tables[Kind(name)] = table.clone()
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

var defaultSegmenter = &Segmenter{
	tables:         DefaultTables(),
	noErrorsPhrase: DefaultNoErrorsPhrase,
}

// Default returns the segmenter built from the default tables.
func Default() *Segmenter {
	return defaultSegmenter
}

// Table returns a copy of the marker table for kind.
func (s *Segmenter) Table(kind Kind) Table {
	return s.tables[kind].clone()
}

// Segment extracts every field of kind's table from text.
//
// If none of the table's start markers occur in text, every field is set to
// text unmodified and the record is marked Fallback. Grammar records also
// carry the parsed error list.
func (s *Segmenter) Segment(kind Kind, text string) Record {
	table := s.tables[kind]
	rec := Record{
		Kind:   kind,
		Raw:    text,
		Fields: make(map[string]string, len(table)),
	}

	if !containsAny(text, table.Starts()) {
		rec.Fallback = true
		for _, sec := range table {
			rec.Fields[sec.Field] = text
		}
		s.log().Debug("no section markers found, using full response",
			slog.String("kind", kind.String()),
			slog.Int("length", len(text)))
	} else {
		for _, sec := range table {
			rec.Fields[sec.Field] = Extract(text, sec.Start, sec.Ends...)
		}
	}

	if kind == KindGrammar {
		list := parseErrors(rec.Fields[FieldErrorsText], s.noErrorsPhrase)
		if list.Unparsed() {
			s.log().Debug("grammar errors section not parseable",
				slog.String("preview", preview(rec.Fields[FieldErrorsText], 80)))
		}
		rec.Errors = &list
	}

	return rec
}

// ParseErrors parses an errors section with this segmenter's no-errors phrase.
func (s *Segmenter) ParseErrors(text string) ErrorList {
	return parseErrors(text, s.noErrorsPhrase)
}

// Combined is a response holding grammar, tone and rewrite output one after
// another, split into one segment per kind.
type Combined struct {
	Raw          string `json:"raw" yaml:"raw"`
	Grammar      string `json:"grammar" yaml:"grammar"`
	Tone         string `json:"tone" yaml:"tone"`
	Alternatives string `json:"alternatives" yaml:"alternatives"`
}

// Segment returns the segment for kind, or Raw when that segment is empty.
func (c Combined) Segment(kind Kind) string {
	var seg string
	switch kind {
	case KindGrammar:
		seg = c.Grammar
	case KindTone:
		seg = c.Tone
	case KindRewrite:
		seg = c.Alternatives
	}
	if seg == "" {
		return c.Raw
	}
	return seg
}

// Split divides a combined response at the earliest indicator of each kind.
//
// The grammar segment is everything before the first tone or alternatives
// indicator. The tone segment runs from the first tone indicator to the
// first alternatives indicator after it. The alternatives segment runs from
// the first alternatives indicator to the end. A kind without indicators
// gets an empty segment.
func (s *Segmenter) Split(text string) Combined {
	c := Combined{Raw: text}

	toneAt := earliest(text, toneIndicators)
	altAt := earliest(text, alternativesIndicators)

	if containsAny(text, grammarIndicators) {
		end := len(text)
		for _, pos := range []int{toneAt, altAt} {
			if pos >= 0 && pos < end {
				end = pos
			}
		}
		c.Grammar = strings.TrimSpace(text[:end])
	}

	if toneAt >= 0 {
		switch {
		case altAt < 0:
			c.Tone = strings.TrimSpace(text[toneAt:])
		case altAt > toneAt:
			c.Tone = strings.TrimSpace(text[toneAt:altAt])
		}
	}

	if altAt >= 0 {
		c.Alternatives = strings.TrimSpace(text[altAt:])
	}

	return c
}

// Analyze splits a combined response and segments each part.
func (s *Segmenter) Analyze(text string) Report {
	c := s.Split(text)
	return Report{
		Grammar: s.Segment(KindGrammar, c.Segment(KindGrammar)),
		Tone:    s.Segment(KindTone, c.Segment(KindTone)),
		Rewrite: s.Segment(KindRewrite, c.Segment(KindRewrite)),
	}
}

func (s *Segmenter) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

// preview shortens s for log output.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Segment segments text with the default tables.
func Segment(kind Kind, text string) Record {
	return defaultSegmenter.Segment(kind, text)
}

// Split splits a combined response with the default indicators.
func Split(text string) Combined {
	return defaultSegmenter.Split(text)
}

// Analyze splits and segments a combined response with the default tables.
func Analyze(text string) Report {
	return defaultSegmenter.Analyze(text)
}
