// Package segment turns free-form model responses into structured records.
//
// A model asked to answer in a fixed section template ("TONE:", "SENTIMENT:",
// ...) follows it loosely: sections go missing, arrive out of order, or the
// template is ignored entirely. This package locates section markers and
// degrades gracefully when they are absent.
//
// Core types:
//   - Kind: the response kind (grammar, tone, rewrite) with its marker table
//   - Section: a field name, its start marker and the markers that may follow it
//   - Record: every field of a kind, always populated (empty or full text)
//   - ErrorList: grammar errors parsed from the "GRAMMATICAL ERRORS:" section
//
// Example usage:
//
//	rec := segment.Segment(segment.KindTone, response)
//	fmt.Println(rec.Get(segment.FieldSentiment))
//
//	// A combined grammar + tone + rewrite response
//	report := segment.Analyze(response)
//	for _, e := range report.Grammar.Errors.Items {
//	    fmt.Printf("%s -> %s\n", e.ErrorText, e.Correction)
//	}
//
// Extraction never fails. A missing marker yields an empty field; a response
// with none of a kind's markers yields that kind's fields set to the whole
// response so callers always have something to display.
//
// A Segmenter is immutable after construction and safe for concurrent use.
package segment
