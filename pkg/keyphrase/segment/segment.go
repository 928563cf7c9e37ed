// Package segment defines the boundary to external tokenizer engines
// and the thin adapter the pipeline calls through. The core never
// depends on a specific engine's types; every engine is wrapped into
// the uniform (surface text, tag) sequence.
package segment

import (
	"context"
	"fmt"
	"strings"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
)

// Morph is one unit of raw tokenizer output: a surface form plus a
// part-of-speech or category tag.
type Morph struct {
	Text string
	Tag  string
}

// Engine segments a string into tagged surface tokens. Implementations
// must be deterministic for identical input and may return an empty
// sequence for empty or unsegmentable input.
type Engine interface {
	Segment(ctx context.Context, text string) ([]Morph, error)
}

// Func adapts a plain function into an Engine.
type Func func(ctx context.Context, text string) ([]Morph, error)

// Segment implements Engine.
func (f Func) Segment(ctx context.Context, text string) ([]Morph, error) {
	return f(ctx, text)
}

// Adapter wraps an Engine with the pipeline's invocation contract:
// empty input never reaches the engine, and an engine error surfaces
// as a document-scoped ErrEngineFailure.
type Adapter struct {
	engine Engine
}

// NewAdapter creates an adapter around the given engine.
func NewAdapter(engine Engine) *Adapter {
	return &Adapter{engine: engine}
}

// Tokenize invokes the engine on preprocessed text. The second return
// value reports tokenizability: false means the text was empty and the
// engine was never called.
func (a *Adapter) Tokenize(ctx context.Context, text string) ([]Morph, bool, error) {
	if strings.TrimSpace(text) == "" {
		return nil, false, nil
	}
	morphs, err := a.engine.Segment(ctx, text)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", internalerr.ErrEngineFailure, err)
	}
	return morphs, true, nil
}
