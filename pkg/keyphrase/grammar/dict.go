package grammar

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cognicore/keyphrase/pkg/keyphrase/segment"
)

// PhraseDict is a custom dictionary of multi-character terms that must
// survive tokenization as single tokens (brand names, product names).
// The weight is carried through from the dictionary loader; zero means
// unweighted.
type PhraseDict map[string]float64

// nominalTag is assigned to every dictionary-merged token.
const nominalTag = "n"

type phraseMatch struct {
	first, last int // inclusive token index range
}

// ApplyPhrases re-groups tokens whose span falls inside a dictionary
// phrase occurrence into one token tagged as a generic nominal.
//
// Detection runs over the space-joined token stream: each phrase is
// compiled into a pattern whose characters may be separated by
// whitespace, so a phrase split across tokens still matches. Each
// token's offset in the joined string is tracked by cumulative length.
// Overlapping or touching matches resolve earliest-match-first.
func (d PhraseDict) ApplyPhrases(morphs []segment.Morph) []segment.Morph {
	if len(d) == 0 || len(morphs) == 0 {
		return morphs
	}

	texts := make([]string, len(morphs))
	for i, m := range morphs {
		texts[i] = m.Text
	}
	joined := strings.Join(texts, " ")

	// Byte offset of each token in the joined string.
	starts := make([]int, len(texts))
	ends := make([]int, len(texts))
	pos := 0
	for i, t := range texts {
		starts[i] = pos
		ends[i] = pos + len(t)
		pos = ends[i] + 1 // single joining space
	}

	var matches []phraseMatch
	for _, phrase := range d.sortedPhrases() {
		re, err := compilePhrase(phrase)
		if err != nil {
			continue
		}
		for _, span := range re.FindAllStringIndex(joined, -1) {
			m, ok := tokenRange(span[0], span[1], starts, ends)
			if ok {
				matches = append(matches, m)
			}
		}
	}
	if len(matches) == 0 {
		return morphs
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].first != matches[j].first {
			return matches[i].first < matches[j].first
		}
		return matches[i].last < matches[j].last
	})

	out := make([]segment.Morph, 0, len(morphs))
	next := 0
	for _, m := range matches {
		if m.first < next {
			continue // overlaps an earlier match
		}
		out = append(out, morphs[next:m.first]...)

		var merged strings.Builder
		for i := m.first; i <= m.last; i++ {
			merged.WriteString(morphs[i].Text)
		}
		out = append(out, segment.Morph{Text: merged.String(), Tag: nominalTag})
		next = m.last + 1
	}
	out = append(out, morphs[next:]...)

	return out
}

// compilePhrase builds a pattern matching the phrase's characters with
// optional whitespace between them. Every character is escaped first
// so dictionary entries containing metacharacters stay literal.
func compilePhrase(phrase string) (*regexp.Regexp, error) {
	runes := []rune(phrase)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = regexp.QuoteMeta(string(r))
	}
	return regexp.Compile(strings.Join(parts, `\s*`))
}

// tokenRange maps a byte span in the joined string back to the
// inclusive range of token indices it covers.
func tokenRange(byteStart, byteEnd int, starts, ends []int) (phraseMatch, bool) {
	first, last := -1, -1
	for i := range starts {
		if ends[i] > byteStart && starts[i] < byteEnd {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return phraseMatch{}, false
	}
	return phraseMatch{first: first, last: last}, true
}

// sortedPhrases returns dictionary phrases in deterministic order,
// longest first so longer phrases win the earliest-match scan.
func (d PhraseDict) sortedPhrases() []string {
	phrases := make([]string, 0, len(d))
	for p := range d {
		if strings.TrimSpace(p) == "" {
			continue
		}
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	return phrases
}
