// Package align recovers the character span of each token within the
// normalized document text. The tokenizer ran on preprocessed text,
// which may differ from the normalized text offsets are stored
// against, so tokens are re-located by literal content search instead
// of cumulative lengths.
package align

import "github.com/cognicore/keyphrase/pkg/keyphrase/document"

// Align locates each surface form, in order, at or after a cursor that
// advances past every match. Offsets are rune positions in text.
//
// When a surface form does not occur contiguously in the remaining
// text (preprocessing saw something the normalized text does not
// reflect), the span degrades to a per-character position list rather
// than failing; downstream stages treat degraded tokens cautiously.
func Align(text string, surfaces []string) []document.Span {
	runes := []rune(text)
	spans := make([]document.Span, 0, len(surfaces))
	cursor := 0

	for _, surface := range surfaces {
		needle := []rune(surface)
		if len(needle) == 0 {
			spans = append(spans, document.Span{Start: cursor, End: cursor, Degraded: true})
			continue
		}

		start := indexRunes(runes, needle, cursor)
		if start >= 0 {
			spans = append(spans, document.Span{Start: start, End: start + len(needle)})
			cursor = start + len(needle)
			continue
		}

		spans = append(spans, alignChars(runes, needle, &cursor))
	}

	return spans
}

// alignChars is the degraded path: locate each character of the token
// individually from the cursor onward. Characters that cannot be found
// at all are dropped from the list; an empty list marks a token the
// normalized text no longer contains.
func alignChars(runes, needle []rune, cursor *int) document.Span {
	span := document.Span{Degraded: true}
	for _, c := range needle {
		pos := indexRunes(runes, []rune{c}, *cursor)
		if pos < 0 {
			continue
		}
		span.Chars = append(span.Chars, pos)
		*cursor = pos + 1
	}
	if len(span.Chars) > 0 {
		span.Start = span.Chars[0]
		span.End = span.Chars[len(span.Chars)-1] + 1
	}
	return span
}

// indexRunes returns the rune index of the first occurrence of needle
// in haystack at or after from, or -1.
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, c := range needle {
			if haystack[i+j] != c {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
