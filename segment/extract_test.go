package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start string
		ends  []string
		want  string
	}{
		{
			name:  "bounded by end marker",
			text:  "A:x B:y",
			start: "A:",
			ends:  []string{"B:"},
			want:  "x",
		},
		{
			name:  "no end markers runs to end",
			text:  "A:x B:y",
			start: "A:",
			want:  "x B:y",
		},
		{
			name:  "end markers absent runs to end",
			text:  "A:x B:y",
			start: "A:",
			ends:  []string{"C:"},
			want:  "x B:y",
		},
		{
			name:  "earliest end wins regardless of list order",
			text:  "A: one B: two Z: three",
			start: "A:",
			ends:  []string{"Z:", "B:"},
			want:  "one",
		},
		{
			name:  "end marker before start is ignored",
			text:  "B: zero A: one B: two",
			start: "A:",
			ends:  []string{"B:"},
			want:  "one",
		},
		{
			name:  "first occurrence of start",
			text:  "A: one A: two",
			start: "A:",
			ends:  []string{"B:"},
			want:  "one A: two",
		},
		{
			name:  "trims surrounding whitespace",
			text:  "TONE:\n\n   Formal  \n\nSENTIMENT: Positive",
			start: "TONE:",
			ends:  []string{"SENTIMENT:"},
			want:  "Formal",
		},
		{
			name:  "start absent",
			text:  "nothing here",
			start: "A:",
			ends:  []string{"B:"},
			want:  "",
		},
		{
			name:  "empty start",
			text:  "A:x",
			start: "",
			want:  "",
		},
		{
			name:  "empty text",
			text:  "",
			start: "A:",
			want:  "",
		},
		{
			name:  "empty end marker skipped",
			text:  "A:x B:y",
			start: "A:",
			ends:  []string{"", "B:"},
			want:  "x",
		},
		{
			name:  "only empty end markers",
			text:  "A:x B:y",
			start: "A:",
			ends:  []string{""},
			want:  "x B:y",
		},
		{
			name:  "section is empty",
			text:  "A:B:y",
			start: "A:",
			ends:  []string{"B:"},
			want:  "",
		},
		{
			name:  "start at end of text",
			text:  "hello A:",
			start: "A:",
			ends:  []string{"B:"},
			want:  "",
		},
		{
			name:  "multibyte content",
			text:  "CORRECTED TEXT: Unë jam shumë i gëzuar. TONE: miqësor",
			start: "CORRECTED TEXT:",
			ends:  []string{"TONE:"},
			want:  "Unë jam shumë i gëzuar.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text, tt.start, tt.ends...))
		})
	}
}

func TestExtract_Total(t *testing.T) {
	inputs := []string{"", " ", "A:", "B:", "A:B:", "B:A:", "\x00", "ë", "A:\n\n"}
	for _, text := range inputs {
		for _, start := range inputs {
			for _, end := range inputs {
				assert.NotPanics(t, func() {
					Extract(text, start, end, "")
				}, "text=%q start=%q end=%q", text, start, end)
			}
		}
	}
}

func TestLocate(t *testing.T) {
	lo, hi, ok := Locate("A: x B: y", "A:", "B:")
	assert.True(t, ok)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)

	_, _, ok = Locate("A: x", "C:")
	assert.False(t, ok)

	_, _, ok = Locate("A: x", "")
	assert.False(t, ok)
}

func TestEarliest(t *testing.T) {
	assert.Equal(t, -1, earliest("abc", nil))
	assert.Equal(t, -1, earliest("abc", []string{"", "z"}))
	assert.Equal(t, 1, earliest("abc", []string{"c", "b"}))
}
