package keyphrase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/keyphrase/pkg/keyphrase/grammar"
	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/lang"
	"github.com/cognicore/keyphrase/pkg/keyphrase/segment"
)

// fieldEngine is a deterministic test engine: whitespace split with a
// per-surface tag table, defaulting to "n".
func fieldEngine(tags map[string]string) segment.Engine {
	return segment.Func(func(_ context.Context, text string) ([]segment.Morph, error) {
		var morphs []segment.Morph
		for _, f := range strings.Fields(text) {
			tag := tags[f]
			if tag == "" {
				tag = "n"
			}
			morphs = append(morphs, segment.Morph{Text: f, Tag: tag})
		}
		return morphs, nil
	})
}

func TestProcessDocumentURLNeverReachesTokens(t *testing.T) {
	e := New(Options{
		Profile:  lang.Chinese(),
		Engine:   fieldEngine(nil),
		MaxNgram: 1,
	})

	doc, err := e.ProcessDocument(context.Background(), "d1", "don't see http://x.co now")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, tok := range doc.Tokens {
		if strings.Contains(tok.Text, "x.co") {
			t.Errorf("URL substring leaked into token %q", tok.Text)
		}
	}
}

func TestProcessDocumentFusionAndAlignment(t *testing.T) {
	e := New(Options{
		Profile:  lang.Chinese(),
		Engine:   fieldEngine(map[string]string{"喜欢": "v"}),
		MaxNgram: 2,
	})

	doc, err := e.ProcessDocument(context.Background(), "d1", "不 喜欢 产品")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(doc.Tokens) != 2 {
		t.Fatalf("Expected fused stream of 2 tokens, got %v", doc.Tokens)
	}
	if doc.Tokens[0].Text != "不喜欢" || doc.Tokens[0].POS() != "v" {
		t.Errorf("Negation fusion wrong: %+v", doc.Tokens[0])
	}

	// 不喜欢 is split across "不 喜欢" in the normalized text, so its
	// alignment degrades to per-character positions.
	if !doc.Tokens[0].Span.Degraded {
		t.Errorf("Fused token should have degraded alignment: %+v", doc.Tokens[0].Span)
	}
	if doc.Tokens[1].Span.Degraded {
		t.Errorf("Plain token should align contiguously: %+v", doc.Tokens[1].Span)
	}

	if err := doc.Validate(); err != nil {
		t.Errorf("Span invariants violated: %v", err)
	}
}

func TestProcessDocumentEmptyAfterPreprocess(t *testing.T) {
	called := false
	engine := segment.Func(func(_ context.Context, text string) ([]segment.Morph, error) {
		called = true
		return nil, nil
	})

	e := New(Options{Profile: lang.Chinese(), Engine: engine, MaxNgram: 3})

	doc, err := e.ProcessDocument(context.Background(), "d1", "http://x.co 😀")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if called {
		t.Error("Engine must not be invoked for empty preprocessed text")
	}
	if doc.Tokenizable {
		t.Error("Document should not be tokenizable")
	}
	if len(doc.Tokens) != 0 {
		t.Errorf("Expected no tokens, got %v", doc.Tokens)
	}
	if len(doc.Candidates) != 3 {
		t.Fatalf("Expected a candidate group per order, got %d", len(doc.Candidates))
	}
	for n, group := range doc.Candidates {
		if len(group) != 0 {
			t.Errorf("Order %d should be empty, got %v", n+1, group)
		}
	}
}

func TestProcessEngineFailureIsDocumentScoped(t *testing.T) {
	boom := errors.New("segfault in native tokenizer")
	engine := segment.Func(func(_ context.Context, text string) ([]segment.Morph, error) {
		if strings.Contains(text, "bad") {
			return nil, boom
		}
		return []segment.Morph{{Text: text, Tag: "n"}}, nil
	})

	e := New(Options{Profile: lang.Chinese(), Engine: engine, MaxNgram: 1, Workers: 2})

	inputs := []Input{
		{ID: "ok1", Text: "good"},
		{ID: "broken", Text: "bad"},
		{ID: "ok2", Text: "good"},
	}

	results := e.Process(context.Background(), inputs)
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("Sibling documents must not be affected by one engine failure")
	}
	if !errors.Is(results[1].Err, internalerr.ErrEngineFailure) {
		t.Errorf("Expected ErrEngineFailure, got %v", results[1].Err)
	}
}

func TestExtractEndToEnd(t *testing.T) {
	e := New(Options{
		Profile:  lang.Chinese(),
		Engine:   fieldEngine(nil),
		Dict:     grammar.PhraseDict{"深度学习": 1.0},
		MaxNgram: 2,
		TopK:     3,
		Workers:  4,
	})

	inputs := []Input{
		{ID: "1", Text: "深度 学习 模型 训练"},
		{ID: "2", Text: "深度 学习 框架"},
		{ID: "3", Text: "模型 部署 服务"},
		{ID: "4", Text: "😀"}, // pure noise: non-tokenizable
	}

	scores, results := e.Extract(context.Background(), inputs)

	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}
	if results[3].Doc.Tokenizable {
		t.Error("Noise document should be non-tokenizable")
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 ranked terms, got %d", len(scores))
	}
	for _, ts := range scores {
		if ts.Score < 0 {
			t.Errorf("Score for %q should be non-negative", ts.Term)
		}
	}

	// The dictionary phrase survives as one term in the vocabulary.
	terms := make(map[string]bool)
	for _, ts := range scores {
		terms[ts.Term] = true
	}
	if !terms["深度学习"] {
		t.Errorf("Dictionary phrase should appear in ranking, got %v", scores)
	}
}

func TestExtractDeterministic(t *testing.T) {
	newExtractor := func() *Extractor {
		return New(Options{
			Profile:  lang.Chinese(),
			Engine:   fieldEngine(nil),
			MaxNgram: 2,
			TopK:     5,
			Workers:  3,
		})
	}

	inputs := []Input{
		{ID: "1", Text: "模型 训练 数据"},
		{ID: "2", Text: "数据 清洗 流程"},
	}

	first, _ := newExtractor().Extract(context.Background(), inputs)
	second, _ := newExtractor().Extract(context.Background(), inputs)

	if len(first) != len(second) {
		t.Fatalf("Ranking size differs across runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Ranking differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
