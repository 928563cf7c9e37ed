// Package document holds the data model shared by all pipeline stages:
// documents, tokens, character spans and candidate groups.
package document

import (
	"errors"
	"strings"
)

// Span locates a token inside the normalized text of its document.
// A well-aligned span is the half-open character range [Start, End).
// When a token's surface form could not be found contiguously, the span
// is degraded: Chars lists the position of each character individually
// and Start/End cover the outermost characters.
type Span struct {
	Start    int
	End      int
	Chars    []int
	Degraded bool
}

// Len returns the number of characters the span claims.
func (s Span) Len() int {
	if s.Degraded {
		return len(s.Chars)
	}
	return s.End - s.Start
}

// Token is one unit of tokenizer output after alignment. Tags carries
// named features (part of speech under the "pos" key, plus whatever
// later stages attach). Tokens are never mutated after candidate
// generation completes.
type Token struct {
	DocID  string
	Offset int // sequence position within the document
	Span   Span
	Text   string
	Tags   map[string]string
}

// Tag key used for the part-of-speech feature.
const TagPOS = "pos"

// POS returns the token's part-of-speech tag, or "" when absent.
func (t Token) POS() string {
	return t.Tags[TagPOS]
}

// Candidate is a filtered unigram or a generated n-gram considered for
// ranking. Offsets lists the Offset of each member token so consumers
// can recover positions for non-joined scripts.
type Candidate struct {
	Text    string
	Offsets []int
}

// CandidateGroup is the ordered candidate list for one n-gram order.
type CandidateGroup []Candidate

// Doc is a single input record as it moves through the pipeline.
// Tokenizable is false when preprocessing collapses the text to empty;
// that is a normal terminal state, not an error.
type Doc struct {
	ID             string
	RawText        string
	NormalizedText string
	Tokenizable    bool
	Tokens         []Token
	Candidates     []CandidateGroup // indexed by n-gram order minus one
	Features       map[string]string
}

// Validate checks the span invariants: tokens ordered by start,
// non-overlapping, each span inside the normalized text.
func (d *Doc) Validate() error {
	textLen := len([]rune(d.NormalizedText))
	prevEnd := 0
	for _, tok := range d.Tokens {
		if tok.Span.Degraded {
			continue
		}
		if tok.Span.Start >= tok.Span.End {
			return errors.New("token span is empty or inverted")
		}
		if tok.Span.End > textLen {
			return errors.New("token span exceeds document text")
		}
		if tok.Span.Start < prevEnd {
			return errors.New("token spans overlap")
		}
		prevEnd = tok.Span.End
	}
	return nil
}

// BagOfTerms pools every candidate of every n-gram order into a
// term frequency count. Ranking consumes this.
func (d *Doc) BagOfTerms() map[string]int {
	bag := make(map[string]int)
	for _, group := range d.Candidates {
		for _, c := range group {
			if strings.TrimSpace(c.Text) == "" {
				continue
			}
			bag[c.Text]++
		}
	}
	return bag
}
