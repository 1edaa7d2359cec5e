package segment

import "strings"

// Extract returns the text between the first occurrence of start and the
// nearest following occurrence of any of ends, with surrounding whitespace
// trimmed. When no end marker follows start the section runs to the end of
// text. Returns empty string if start is empty or absent.
//
// Ends are unordered: whichever occurs first after start wins. Empty end
// markers are ignored.
//
// Example:
//
//	Extract("A: x B: y", "A:", "B:") // "x"
func Extract(text, start string, ends ...string) string {
	lo, hi, ok := Locate(text, start, ends...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text[lo:hi])
}

// Locate reports the untrimmed byte range [lo, hi) that Extract would return.
// ok is false when start is empty or does not occur in text.
func Locate(text, start string, ends ...string) (lo, hi int, ok bool) {
	if start == "" {
		return 0, 0, false
	}

	idx := strings.Index(text, start)
	if idx < 0 {
		return 0, 0, false
	}

	lo = idx + len(start)
	hi = len(text)
	rest := text[lo:]
	for _, end := range ends {
		if end == "" {
			continue
		}
		if j := strings.Index(rest, end); j >= 0 && lo+j < hi {
			hi = lo + j
		}
	}

	return lo, hi, true
}

// earliest returns the smallest index at which any of markers occurs in text,
// or -1 when none does.
func earliest(text string, markers []string) int {
	pos := -1
	for _, m := range markers {
		if m == "" {
			continue
		}
		if i := strings.Index(text, m); i >= 0 && (pos < 0 || i < pos) {
			pos = i
		}
	}
	return pos
}

// containsAny reports whether any non-empty marker occurs in text.
func containsAny(text string, markers []string) bool {
	return earliest(text, markers) >= 0
}
