package segment

import (
	"context"
	"strings"
)

// Whitespace returns a trivial engine that splits on whitespace and
// tags every token as a generic nominal. It exists for the CLI and
// examples; real deployments plug in a morphological engine.
func Whitespace() Engine {
	return Func(func(_ context.Context, text string) ([]Morph, error) {
		fields := strings.Fields(text)
		morphs := make([]Morph, 0, len(fields))
		for _, f := range fields {
			morphs = append(morphs, Morph{Text: f, Tag: "n"})
		}
		return morphs, nil
	})
}
