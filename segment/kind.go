package segment

import (
	"fmt"
	"strings"
)

// Kind identifies which section template a response was asked to follow.
type Kind string

// Response kinds.
const (
	KindGrammar Kind = "grammar"
	KindTone    Kind = "tone"
	KindRewrite Kind = "rewrite"
)

// Kinds returns all response kinds in pipeline order.
func Kinds() []Kind {
	return []Kind{KindGrammar, KindTone, KindRewrite}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindGrammar, KindTone, KindRewrite:
		return true
	}
	return false
}

// ParseKind converts a case-insensitive name into a Kind.
// Returns an error wrapping ErrUnknownKind for anything else.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Field names produced by the default tables.
const (
	FieldOriginalText  = "original_text"
	FieldErrorsText    = "errors_text"
	FieldCorrectedText = "corrected_text"

	FieldTone           = "tone"
	FieldFormalityLevel = "formality_level"
	FieldSentiment      = "sentiment"
	FieldToneAnalysis   = "tone_analysis"

	FieldOriginalTone   = "original_tone"
	FieldTargetTone     = "target_tone"
	FieldRewrittenText  = "rewritten_text"
	FieldFormalTone     = "formal_tone"
	FieldFriendlyTone   = "friendly_tone"
	FieldPersuasiveTone = "persuasive_tone"
)

// Section bounds one field of a response. The field's text starts after
// Start and stops at whichever of Ends occurs first; Ends lists every marker
// that may legally follow, since the model may skip sections.
type Section struct {
	Field string   `json:"field" yaml:"field" toml:"field"`
	Start string   `json:"start" yaml:"start" toml:"start"`
	Ends  []string `json:"ends,omitempty" yaml:"ends,omitempty" toml:"ends"`
}

// Table is the ordered list of sections for one response kind.
type Table []Section

// Fields returns the field names in table order.
func (t Table) Fields() []string {
	fields := make([]string, len(t))
	for i, s := range t {
		fields[i] = s.Field
	}
	return fields
}

// Starts returns the start markers in table order.
func (t Table) Starts() []string {
	starts := make([]string, len(t))
	for i, s := range t {
		starts[i] = s.Start
	}
	return starts
}

// Lookup returns the section for field.
func (t Table) Lookup(field string) (Section, bool) {
	for _, s := range t {
		if s.Field == field {
			return s, true
		}
	}
	return Section{}, false
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	for i, s := range t {
		out[i] = Section{
			Field: s.Field,
			Start: s.Start,
			Ends:  append([]string(nil), s.Ends...),
		}
	}
	return out
}

// Section markers used by the default templates.
const (
	MarkerOriginalText      = "ORIGINAL TEXT:"
	MarkerGrammaticalErrors = "GRAMMATICAL ERRORS:"
	MarkerCorrectedText     = "CORRECTED TEXT:"

	MarkerTone           = "TONE:"
	MarkerFormalityLevel = "FORMALITY LEVEL:"
	MarkerSentiment      = "SENTIMENT:"
	MarkerToneAnalysis   = "TONE ANALYSIS:"

	MarkerOriginalTone      = "ORIGINAL TONE:"
	MarkerTargetTone        = "TARGET TONE:"
	MarkerRewrittenText     = "REWRITTEN TEXT:"
	MarkerFormalVersion     = "FORMAL TONE VERSION:"
	MarkerFriendlyVersion   = "FRIENDLY TONE VERSION:"
	MarkerPersuasiveVersion = "PERSUASIVE TONE VERSION:"
)

// DefaultTables returns a fresh copy of the built-in marker tables.
func DefaultTables() map[Kind]Table {
	return map[Kind]Table{
		KindGrammar: {
			{Field: FieldOriginalText, Start: MarkerOriginalText,
				Ends: []string{MarkerGrammaticalErrors, MarkerCorrectedText}},
			{Field: FieldErrorsText, Start: MarkerGrammaticalErrors,
				Ends: []string{MarkerCorrectedText, MarkerTone, MarkerOriginalTone}},
			{Field: FieldCorrectedText, Start: MarkerCorrectedText,
				Ends: []string{MarkerTone, MarkerFormalityLevel, MarkerSentiment, MarkerOriginalTone}},
		},
		KindTone: {
			{Field: FieldTone, Start: MarkerTone,
				Ends: []string{MarkerFormalityLevel, MarkerSentiment, MarkerToneAnalysis}},
			{Field: FieldFormalityLevel, Start: MarkerFormalityLevel,
				Ends: []string{MarkerSentiment, MarkerToneAnalysis, MarkerOriginalTone}},
			{Field: FieldSentiment, Start: MarkerSentiment,
				Ends: []string{MarkerToneAnalysis, MarkerOriginalTone}},
			{Field: FieldToneAnalysis, Start: MarkerToneAnalysis,
				Ends: []string{MarkerOriginalTone}},
		},
		KindRewrite: {
			{Field: FieldOriginalTone, Start: MarkerOriginalTone,
				Ends: []string{MarkerTargetTone, MarkerFormalVersion, MarkerFriendlyVersion}},
			{Field: FieldTargetTone, Start: MarkerTargetTone,
				Ends: []string{MarkerRewrittenText}},
			{Field: FieldRewrittenText, Start: MarkerRewrittenText},
			{Field: FieldFormalTone, Start: MarkerFormalVersion,
				Ends: []string{MarkerFriendlyVersion, MarkerPersuasiveVersion}},
			{Field: FieldFriendlyTone, Start: MarkerFriendlyVersion,
				Ends: []string{MarkerPersuasiveVersion}},
			{Field: FieldPersuasiveTone, Start: MarkerPersuasiveVersion},
		},
	}
}

// Indicators used to split a combined response into per-kind segments.
var (
	grammarIndicators = []string{MarkerOriginalText, MarkerGrammaticalErrors, MarkerCorrectedText}

	toneIndicators = []string{MarkerTone, MarkerFormalityLevel, MarkerSentiment, MarkerToneAnalysis}

	alternativesIndicators = []string{
		MarkerOriginalTone, MarkerFormalVersion, MarkerFriendlyVersion,
		MarkerTargetTone, MarkerRewrittenText,
	}
)
