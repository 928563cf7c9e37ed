// Package candidate filters aligned tokens by allowed tags and builds
// the unigram..N-gram candidate lists ranking consumes.
package candidate

import (
	"strings"
	"unicode"

	"github.com/cognicore/keyphrase/pkg/keyphrase/document"
)

// Generator builds per-document candidate groups.
type Generator struct {
	allowed  map[string]struct{}
	stops    map[string]struct{}
	maxN     int
	joined   bool // concatenate n-gram texts (scripts without separators)
	wordOnly bool // unigrams must contain at least one word character
}

// Options configures a Generator.
type Options struct {
	AllowedTags []string
	Stopwords   []string
	MaxNgram    int
	Joined      bool
	WordOnly    bool
}

// New creates a generator. MaxNgram below 1 is treated as 1.
func New(opts Options) *Generator {
	g := &Generator{
		allowed:  make(map[string]struct{}, len(opts.AllowedTags)),
		stops:    make(map[string]struct{}, len(opts.Stopwords)),
		maxN:     opts.MaxNgram,
		joined:   opts.Joined,
		wordOnly: opts.WordOnly,
	}
	if g.maxN < 1 {
		g.maxN = 1
	}
	for _, t := range opts.AllowedTags {
		g.allowed[t] = struct{}{}
	}
	for _, s := range opts.Stopwords {
		g.stops[s] = struct{}{}
	}
	return g
}

// Generate returns candidate groups for orders 1..MaxNgram. The group
// for order n always has max(0, len(unigrams)-n+1) entries; too-short
// unigram lists yield empty groups, never errors.
func (g *Generator) Generate(tokens []document.Token) []document.CandidateGroup {
	unigrams := g.filter(tokens)

	groups := make([]document.CandidateGroup, g.maxN)
	groups[0] = unigrams
	for n := 2; n <= g.maxN; n++ {
		groups[n-1] = g.ngrams(unigrams, n)
	}
	return groups
}

// filter keeps tokens whose tag is allowed and whose trimmed text is
// non-empty, preserving order.
func (g *Generator) filter(tokens []document.Token) document.CandidateGroup {
	unigrams := make(document.CandidateGroup, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := g.allowed[tok.POS()]; !ok {
			continue
		}
		text := strings.TrimSpace(tok.Text)
		if text == "" {
			continue
		}
		if _, ok := g.stops[text]; ok {
			continue
		}
		if g.wordOnly && !hasWordRune(text) {
			continue
		}
		unigrams = append(unigrams, document.Candidate{
			Text:    text,
			Offsets: []int{tok.Offset},
		})
	}
	return unigrams
}

// ngrams slides an n-length window over the unigram list. For joined
// scripts the term is the window's concatenated text; otherwise the
// texts are space-joined and member offsets kept for position
// recovery.
func (g *Generator) ngrams(unigrams document.CandidateGroup, n int) document.CandidateGroup {
	if len(unigrams) < n {
		return document.CandidateGroup{}
	}

	grams := make(document.CandidateGroup, 0, len(unigrams)-n+1)
	for i := 0; i+n <= len(unigrams); i++ {
		window := unigrams[i : i+n]

		texts := make([]string, n)
		offsets := make([]int, 0, n)
		for j, c := range window {
			texts[j] = c.Text
			offsets = append(offsets, c.Offsets...)
		}

		sep := " "
		if g.joined {
			sep = ""
		}
		grams = append(grams, document.Candidate{
			Text:    strings.Join(texts, sep),
			Offsets: offsets,
		})
	}
	return grams
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
