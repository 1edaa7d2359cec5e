package segment

import (
	"regexp"
	"strconv"
	"strings"
)

var numberRegex = regexp.MustCompile(`\d+`)

// Formality rating bounds and the rating assumed when none can be read.
const (
	MinFormality     = 1
	MaxFormality     = 5
	DefaultFormality = 3
)

// Formality reads a 1-5 formality rating from a FORMALITY LEVEL section.
// The first integer in the text is clamped to the scale; text without a
// number rates DefaultFormality.
func Formality(level string) int {
	n, ok := firstNumber(level)
	if !ok {
		return DefaultFormality
	}
	return max(MinFormality, min(MaxFormality, n))
}

// FormalityLabel returns the rating as written by the model for display.
// "4/5" yields "4"; otherwise the first integer, or the default rating.
func FormalityLabel(level string) string {
	if before, _, found := strings.Cut(level, "/"); found {
		return strings.TrimSpace(before)
	}
	if n, ok := firstNumber(level); ok {
		return strconv.Itoa(n)
	}
	return strconv.Itoa(DefaultFormality)
}

func firstNumber(s string) (int, bool) {
	m := numberRegex.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Only overflow can fail here.
		return MaxFormality, true
	}
	return n, true
}

// Sentiment is the polarity of a SENTIMENT section.
type Sentiment string

// Sentiment polarities.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment classifies free text by the polarity word it contains.
// "positive" is checked before "negative"; anything else is neutral.
func ParseSentiment(s string) Sentiment {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "positive"):
		return SentimentPositive
	case strings.Contains(lower, "negative"):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// RewriteMode says which rewrite template a response followed.
type RewriteMode int

const (
	// RewriteUnstructured means neither template could be recognised.
	RewriteUnstructured RewriteMode = iota

	// RewriteTargeted means a single rewrite into a requested tone.
	RewriteTargeted

	// RewriteVariations means formal, friendly and persuasive variants.
	RewriteVariations
)

// String implements fmt.Stringer.
func (m RewriteMode) String() string {
	switch m {
	case RewriteTargeted:
		return "targeted"
	case RewriteVariations:
		return "variations"
	default:
		return "unstructured"
	}
}

// Mode reports which template the rewrite followed. A fallback record is
// always unstructured even though its fields are non-empty.
func (r RewriteResult) Mode() RewriteMode {
	switch {
	case r.fallback:
		return RewriteUnstructured
	case r.TargetTone != "" && r.RewrittenText != "":
		return RewriteTargeted
	case r.FormalTone != "" || r.FriendlyTone != "" || r.PersuasiveTone != "":
		return RewriteVariations
	default:
		return RewriteUnstructured
	}
}

// ToneOption is one alternative phrasing of the text.
type ToneOption struct {
	Tone string `json:"tone" yaml:"tone"`
	Text string `json:"text" yaml:"text"`
}

// Options returns the non-empty tone variants in formal, friendly,
// persuasive order.
func (r RewriteResult) Options() []ToneOption {
	if r.fallback {
		return nil
	}

	var opts []ToneOption
	for _, o := range []ToneOption{
		{Tone: "Formal", Text: r.FormalTone},
		{Tone: "Friendly", Text: r.FriendlyTone},
		{Tone: "Persuasive", Text: r.PersuasiveTone},
	} {
		if o.Text != "" {
			opts = append(opts, o)
		}
	}
	return opts
}
