// Package textnorm canonicalizes raw text before tokenization:
// Unicode NFKC normalization, markup stripping, a per-script
// character-class filter and repeated-character collapsing.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Script selects the character range the filter retains.
type Script int

const (
	// ScriptChinese keeps the CJK unified ideograph range.
	ScriptChinese Script = iota
	// ScriptKorean keeps Hangul syllables and compatibility jamo.
	ScriptKorean
)

// maxRepeat is the longest run of one character that survives
// normalization; longer runs are collapsed down to this length.
const maxRepeat = 3

// Non-ASCII punctuation retained by the character filter. The whole
// printable ASCII range survives separately: URLs, emails, hashtags
// and mentions must reach the preprocessor intact.
const keptPunct = "。、，《》“”·∼"

// markupRE detects html/script content worth handing to the stripper.
var markupRE = regexp.MustCompile(`<("[^"]*"|'[^']*'|[^'">])*>`)

// Normalizer canonicalizes raw text for one target script.
type Normalizer struct {
	script   Script
	stripper HTMLStripper
}

// New creates a normalizer for the given script. A nil stripper
// defaults to the x/net/html based one.
func New(script Script, stripper HTMLStripper) *Normalizer {
	if stripper == nil {
		stripper = NetStripper{}
	}
	return &Normalizer{script: script, stripper: stripper}
}

// Normalize applies, in order: NFKC normalization, markup stripping,
// the character-class filter and repeat collapsing. It never fails;
// unrecognized input is filtered away and the result may be empty.
func (n *Normalizer) Normalize(text string) string {
	text = norm.NFKC.String(text)

	if markupRE.MatchString(text) {
		text = n.stripper.Strip(text)
	}

	text = n.filter(text)
	text = CollapseRepeats(text, maxRepeat)

	return strings.TrimSpace(text)
}

// filter replaces every rune outside the kept classes with a space.
// Runs of replaced runes produce runs of spaces; the tokenizer treats
// whitespace as a separator either way.
func (n *Normalizer) filter(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := false
	for _, r := range text {
		if n.keep(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return b.String()
}

func (n *Normalizer) keep(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case strings.ContainsRune(keptPunct, r):
		return true
	case IsEmoji(r):
		return true
	}

	switch n.script {
	case ScriptChinese:
		return r >= 0x4E00 && r <= 0x9FFF
	case ScriptKorean:
		// Hangul syllables plus compatibility jamo
		return (r >= 0xAC00 && r <= 0xD7A3) || (r >= 0x3131 && r <= 0x318E)
	}
	return false
}

// CollapseRepeats shortens any run of one identical rune longer than
// limit down to exactly limit repetitions.
func CollapseRepeats(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	var prev rune = -1
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= limit {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsEmoji reports whether r falls in one of the common emoji blocks.
func IsEmoji(r rune) bool {
	switch {
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols and pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport
		return true
	case r >= 0x1F900 && r <= 0x1FAFF: // supplemental pictographs
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		return true
	}
	return false
}
