package segment

// Record is the structured form of one response.
type Record struct {
	// Kind is the template the response was segmented against.
	Kind Kind `json:"kind" yaml:"kind" jsonschema:"enum=grammar,enum=tone,enum=rewrite"`

	// Raw is the unmodified response text.
	Raw string `json:"raw" yaml:"raw"`

	// Fields maps every field of the kind's table to its extracted text.
	// A missing section maps to the empty string, never to an absent key.
	Fields map[string]string `json:"fields" yaml:"fields"`

	// Fallback is true when none of the kind's markers occurred and every
	// field was set to Raw.
	Fallback bool `json:"fallback" yaml:"fallback"`

	// Errors holds the parsed grammar errors. Nil for other kinds.
	Errors *ErrorList `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Get returns the text of field, or empty string for an unknown field.
func (r Record) Get(field string) string {
	return r.Fields[field]
}

// GrammarResult is a typed view over a grammar Record.
type GrammarResult struct {
	OriginalText  string
	ErrorsText    string
	CorrectedText string
	Errors        ErrorList
}

// Grammar returns the grammar view of r.
func (r Record) Grammar() GrammarResult {
	g := GrammarResult{
		OriginalText:  r.Get(FieldOriginalText),
		ErrorsText:    r.Get(FieldErrorsText),
		CorrectedText: r.Get(FieldCorrectedText),
	}
	if r.Errors != nil {
		g.Errors = *r.Errors
	}
	return g
}

// ToneResult is a typed view over a tone Record.
type ToneResult struct {
	Tone           string
	FormalityLevel string
	Sentiment      string
	Analysis       string
}

// Tone returns the tone view of r.
func (r Record) Tone() ToneResult {
	return ToneResult{
		Tone:           r.Get(FieldTone),
		FormalityLevel: r.Get(FieldFormalityLevel),
		Sentiment:      r.Get(FieldSentiment),
		Analysis:       r.Get(FieldToneAnalysis),
	}
}

// Formality returns the formality rating on a 1-5 scale.
func (t ToneResult) Formality() int {
	return Formality(t.FormalityLevel)
}

// Polarity returns the sentiment polarity.
func (t ToneResult) Polarity() Sentiment {
	return ParseSentiment(t.Sentiment)
}

// RewriteResult is a typed view over a rewrite Record.
type RewriteResult struct {
	OriginalTone   string
	TargetTone     string
	RewrittenText  string
	FormalTone     string
	FriendlyTone   string
	PersuasiveTone string

	fallback bool
}

// Rewrite returns the rewrite view of r.
func (r Record) Rewrite() RewriteResult {
	return RewriteResult{
		OriginalTone:   r.Get(FieldOriginalTone),
		TargetTone:     r.Get(FieldTargetTone),
		RewrittenText:  r.Get(FieldRewrittenText),
		FormalTone:     r.Get(FieldFormalTone),
		FriendlyTone:   r.Get(FieldFriendlyTone),
		PersuasiveTone: r.Get(FieldPersuasiveTone),
		fallback:       r.Fallback,
	}
}

// Report holds the three records of a combined response.
type Report struct {
	Grammar Record `json:"grammar" yaml:"grammar"`
	Tone    Record `json:"tone" yaml:"tone"`
	Rewrite Record `json:"rewrite" yaml:"rewrite"`
}
