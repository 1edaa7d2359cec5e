package segment

import (
	"regexp"
	"strings"
)

// DefaultNoErrorsPhrase is the sentinel the grammar template asks the model
// to write when it finds nothing to correct.
const DefaultNoErrorsPhrase = "No grammatical errors found"

// Labels of the lines inside one grammar error entry.
const (
	LabelError       = "Error:"
	LabelCorrection  = "Correction:"
	LabelExplanation = "Explanation:"
)

// numberedItemRegex matches "1. " at the start of a line.
var numberedItemRegex = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]`)

// GrammarError is one error reported by the model.
type GrammarError struct {
	ErrorText   string `json:"error_text" yaml:"error_text"`
	Correction  string `json:"correction" yaml:"correction"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// ErrorList is the parsed content of a GRAMMATICAL ERRORS section.
type ErrorList struct {
	// Items are the errors in the order they appear.
	Items []GrammarError `json:"items" yaml:"items"`

	// NoneFound is true when the model explicitly reported no errors.
	NoneFound bool `json:"none_found" yaml:"none_found"`

	source string
}

// Unparsed reports whether the section had content but no entry could be
// recognised in it. Callers should show the raw section text instead.
func (l ErrorList) Unparsed() bool {
	return !l.NoneFound && len(l.Items) == 0 && strings.TrimSpace(l.source) != ""
}

// Len returns the number of errors.
func (l ErrorList) Len() int {
	return len(l.Items)
}

// ParseErrors parses an errors section using DefaultNoErrorsPhrase.
func ParseErrors(text string) ErrorList {
	return parseErrors(text, DefaultNoErrorsPhrase)
}

// parseErrors checks for the no-errors sentinel, then tries numbered entries
// and falls back to line scanning when those yield nothing.
func parseErrors(text, noErrorsPhrase string) ErrorList {
	if noErrorsPhrase != "" && strings.Contains(text, noErrorsPhrase) {
		return ErrorList{Items: []GrammarError{}, NoneFound: true, source: text}
	}

	items := parseNumbered(text)
	if len(items) == 0 {
		items = parseLines(text)
	}
	return ErrorList{Items: items, source: text}
}

// parseNumbered splits text into "N. " entries and reads the labelled lines
// of each. Entries without an Error: line are dropped.
func parseNumbered(text string) []GrammarError {
	items := []GrammarError{}

	for _, fragment := range splitNumbered(text) {
		var (
			entry    GrammarError
			hasError bool
		)
		for _, line := range strings.Split(fragment, "\n") {
			label, value, ok := labelledLine(line)
			if !ok {
				continue
			}
			switch label {
			case LabelError:
				entry.ErrorText = value
				hasError = true
			case LabelCorrection:
				entry.Correction = value
			case LabelExplanation:
				entry.Explanation = value
			}
		}
		if hasError {
			items = append(items, entry)
		}
	}

	return items
}

// splitNumbered returns the non-blank fragments between "N. " prefixes.
// Text without any numbered prefix yields no fragments.
func splitNumbered(text string) []string {
	locs := numberedItemRegex.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	fragments := make([]string, 0, len(locs)+1)
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			fragments = append(fragments, s)
		}
	}

	add(text[:locs[0][0]])
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		add(text[loc[1]:end])
	}

	return fragments
}

// parseLines walks the lines in order. An Error: line starts a new entry;
// Correction: and Explanation: lines attach to the entry being built.
func parseLines(text string) []GrammarError {
	items := []GrammarError{}

	var pending *GrammarError
	flush := func() {
		if pending != nil {
			items = append(items, *pending)
			pending = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		label, value, ok := labelledLine(line)
		if !ok {
			continue
		}
		switch label {
		case LabelError:
			flush()
			pending = &GrammarError{ErrorText: value}
		case LabelCorrection:
			if pending != nil {
				pending.Correction = value
			}
		case LabelExplanation:
			if pending != nil {
				pending.Explanation = value
			}
		}
	}
	flush()

	return items
}

// labelledLine finds the first of Error:, Correction:, Explanation: (checked
// in that order) in line and returns the trimmed text after it.
func labelledLine(line string) (label, value string, ok bool) {
	line = strings.TrimSpace(line)
	for _, label := range []string{LabelError, LabelCorrection, LabelExplanation} {
		if _, after, found := strings.Cut(line, label); found {
			return label, strings.TrimSpace(after), true
		}
	}
	return "", "", false
}
