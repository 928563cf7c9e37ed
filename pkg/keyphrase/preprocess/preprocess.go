// Package preprocess strips structural noise from normalized text
// before tokenization. Stages run in a fixed order: a hashtag inside
// a URL is consumed by the URL stage, and image placeholders go
// before the hashtag stage so their "#0n" part is never mistaken for
// a hashtag.
package preprocess

import (
	"regexp"
	"strings"

	"github.com/cognicore/keyphrase/pkg/keyphrase/textnorm"
)

// Named substitution stages, applied in declaration order.
var (
	urlRE     = regexp.MustCompile(`https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b[-a-zA-Z0-9()@:%_+.~#?&/=]*`)
	emailRE   = regexp.MustCompile(`[0-9a-zA-Z._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	mentionRE = regexp.MustCompile(`@[\w-]+`)
	hashtagRE = regexp.MustCompile(`#([\w-]+)`)
	imageRE   = regexp.MustCompile(`\[image#0\d\]`)
)

// Preprocessor applies the ordered substitution stages. With spacing
// enabled, hashtag bodies are re-inserted surrounded by whitespace so
// the tokenizer still sees them; otherwise hashtags are removed.
type Preprocessor struct {
	spacing bool
}

// New creates a preprocessor. spacing controls the hashtag stage.
func New(spacing bool) *Preprocessor {
	return &Preprocessor{spacing: spacing}
}

// Preprocess runs all stages in order and trims the result. An output
// of "" means the document is not tokenizable.
func (p *Preprocessor) Preprocess(text string) string {
	text = urlRE.ReplaceAllString(text, " ")
	text = emailRE.ReplaceAllString(text, " ")
	text = stripEmoji(text)
	text = imageRE.ReplaceAllString(text, " ")
	if p.spacing {
		// Re-insert each body in place; the capture keeps every
		// occurrence intact, longer hashtags included.
		text = hashtagRE.ReplaceAllString(text, " ${1} ")
	} else {
		text = hashtagRE.ReplaceAllString(text, " ")
	}
	text = mentionRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripEmoji removes emoji code points rune by rune. Go regexps have
// no emoji class, so this stage filters directly.
func stripEmoji(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if textnorm.IsEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
