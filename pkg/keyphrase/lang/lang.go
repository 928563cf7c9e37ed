// Package lang bundles the per-language pipeline capabilities: the
// character filter script, the candidate tag set, the grammar fusion
// rules and the n-gram joining mode. Profiles are selected explicitly
// at construction time; there is no runtime dispatch.
package lang

import (
	"github.com/cognicore/keyphrase/pkg/keyphrase/grammar"
	"github.com/cognicore/keyphrase/pkg/keyphrase/textnorm"
)

// Profile describes one language/tokenizer variant.
type Profile struct {
	Name        string
	Script      textnorm.Script
	AllowedTags []string
	// JoinedNgrams concatenates n-gram member texts without a
	// separator, for scripts written without inter-word spaces.
	JoinedNgrams bool
	// WordOnly requires candidates to contain a word character.
	WordOnly bool

	rules func() []grammar.Rule
}

// Rules returns the profile's fusion rules in application order.
func (p Profile) Rules() []grammar.Rule {
	if p.rules == nil {
		return nil
	}
	return p.rules()
}

// Chinese returns the profile for LAC-style Chinese tokenizer output.
func Chinese() Profile {
	return Profile{
		Name:   "zh",
		Script: textnorm.ScriptChinese,
		AllowedTags: []string{
			"LOC", "ORG", "PER", "TIME",
			"a", "an", "m", "n", "nr", "ns", "nt", "nz", "q", "s", "t", "v", "vn",
		},
		JoinedNgrams: true,
		rules: func() []grammar.Rule {
			negators := map[string]struct{}{
				"没": {}, "否": {}, "不": {}, "未": {}, "难": {},
			}
			return []grammar.Rule{
				grammar.NegationRule(negators, grammar.TagSet("v", "vd", "vn", "a", "an", "ad")),
				grammar.NominalizerRule(grammar.TagSet("v", "vd", "vn"), "的"),
			}
		},
	}
}

// Korean returns the profile for L/R-part Korean tokenizer output:
// only L parts (content morphemes) become candidates, n-grams stay as
// token tuples, and candidates must contain a word character.
func Korean() Profile {
	return Profile{
		Name:        "ko",
		Script:      textnorm.ScriptKorean,
		AllowedTags: []string{"L"},
		WordOnly:    true,
	}
}

// ByName resolves a profile from its configuration name. Unknown names
// return ok=false.
func ByName(name string) (Profile, bool) {
	switch name {
	case "zh", "chinese":
		return Chinese(), true
	case "ko", "korean":
		return Korean(), true
	}
	return Profile{}, false
}
