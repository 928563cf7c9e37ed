// Package grammar applies ordered adjacent-token fusion rules to the
// raw tokenizer output, merging linguistically bound pairs into single
// tokens before candidate generation.
package grammar

import "github.com/cognicore/keyphrase/pkg/keyphrase/segment"

// Rule merges one adjacent pair of morphs when its predicate matches.
type Rule struct {
	Name  string
	Match func(a, b segment.Morph) bool
	Merge func(a, b segment.Morph) segment.Morph
}

// Apply runs one rule as a single left-to-right pass. A matching pair
// is consumed whole (the scan advances by two); otherwise the current
// morph passes through unchanged. The final morph is appended when the
// last step advanced by one, so it is never silently dropped.
func Apply(rule Rule, morphs []segment.Morph) []segment.Morph {
	if len(morphs) < 2 {
		return morphs
	}

	out := make([]segment.Morph, 0, len(morphs))
	i := 0
	for i < len(morphs)-1 {
		a, b := morphs[i], morphs[i+1]
		if rule.Match(a, b) {
			out = append(out, rule.Merge(a, b))
			i += 2
			continue
		}
		out = append(out, a)
		i++
	}
	if i == len(morphs)-1 {
		out = append(out, morphs[i])
	}
	return out
}

// Chain composes rules left to right: each rule consumes the previous
// rule's output.
func Chain(rules []Rule, morphs []segment.Morph) []segment.Morph {
	for _, rule := range rules {
		morphs = Apply(rule, morphs)
	}
	return morphs
}
