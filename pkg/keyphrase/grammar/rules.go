package grammar

import "github.com/cognicore/keyphrase/pkg/keyphrase/segment"

// NegationRule fuses a single-character negation particle with a
// following verb or adjective, e.g. 不 + 喜欢 → 不喜欢. The merged
// morph carries the verb/adjective's tag.
func NegationRule(negators map[string]struct{}, followTags map[string]struct{}) Rule {
	return Rule{
		Name: "negation",
		Match: func(a, b segment.Morph) bool {
			if _, ok := negators[a.Text]; !ok {
				return false
			}
			_, ok := followTags[b.Tag]
			return ok
		},
		Merge: func(a, b segment.Morph) segment.Morph {
			return segment.Morph{Text: a.Text + b.Text, Tag: b.Tag}
		},
	}
}

// NominalizerRule fuses a verb with an immediately following
// nominalizing particle, e.g. 喜欢 + 的 → 喜欢的. The merged morph
// carries the particle's tag.
func NominalizerRule(verbTags map[string]struct{}, particle string) Rule {
	return Rule{
		Name: "nominalizer",
		Match: func(a, b segment.Morph) bool {
			if b.Text != particle {
				return false
			}
			_, ok := verbTags[a.Tag]
			return ok
		},
		Merge: func(a, b segment.Morph) segment.Morph {
			return segment.Morph{Text: a.Text + b.Text, Tag: b.Tag}
		},
	}
}

// TagSet builds a membership set from tag literals.
func TagSet(tags ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}
