// Package keyphrase extracts ranked keyphrases from short documents.
// Each document flows through normalization, preprocessing, an
// external tokenizer engine, span alignment, grammar fusion and
// candidate generation; a corpus-wide TF-IDF pass then ranks the
// pooled candidates.
package keyphrase

import (
	"context"
	"sync"

	"github.com/cognicore/keyphrase/pkg/keyphrase/align"
	"github.com/cognicore/keyphrase/pkg/keyphrase/candidate"
	"github.com/cognicore/keyphrase/pkg/keyphrase/document"
	"github.com/cognicore/keyphrase/pkg/keyphrase/grammar"
	"github.com/cognicore/keyphrase/pkg/keyphrase/lang"
	"github.com/cognicore/keyphrase/pkg/keyphrase/preprocess"
	"github.com/cognicore/keyphrase/pkg/keyphrase/rank"
	"github.com/cognicore/keyphrase/pkg/keyphrase/segment"
	"github.com/cognicore/keyphrase/pkg/keyphrase/textnorm"
)

// Options configures an Extractor.
type Options struct {
	Profile lang.Profile
	Engine  segment.Engine
	// Dict holds custom dictionary phrases to preserve as single
	// tokens during grammar postprocessing.
	Dict grammar.PhraseDict
	// Stopwords are dropped during candidate filtering.
	Stopwords []string
	MaxNgram  int
	TopK      int
	// Workers bounds the per-document parallel map; 0 means
	// sequential processing.
	Workers int
	// HashtagSpacing re-inserts hashtag bodies instead of deleting
	// them during preprocessing.
	HashtagSpacing bool
	// Stripper overrides the default HTML-stripping collaborator.
	Stripper textnorm.HTMLStripper
}

// Extractor composes the pipeline stages for one language profile.
type Extractor struct {
	norm    *textnorm.Normalizer
	pre     *preprocess.Preprocessor
	adapter *segment.Adapter
	rules   []grammar.Rule
	dict    grammar.PhraseDict
	gen     *candidate.Generator
	ranker  *rank.Ranker
	workers int
}

// New creates an extractor from the given options.
func New(opts Options) *Extractor {
	maxN := opts.MaxNgram
	if maxN < 1 {
		maxN = 1
	}
	return &Extractor{
		norm:    textnorm.New(opts.Profile.Script, opts.Stripper),
		pre:     preprocess.New(opts.HashtagSpacing),
		adapter: segment.NewAdapter(opts.Engine),
		rules:   opts.Profile.Rules(),
		dict:    opts.Dict,
		gen: candidate.New(candidate.Options{
			AllowedTags: opts.Profile.AllowedTags,
			Stopwords:   opts.Stopwords,
			MaxNgram:    maxN,
			Joined:      opts.Profile.JoinedNgrams,
			WordOnly:    opts.Profile.WordOnly,
		}),
		ranker:  rank.New(opts.TopK),
		workers: opts.Workers,
	}
}

// Input is one raw record to process.
type Input struct {
	ID   string
	Text string
}

// Result pairs a processed document with its document-scoped error.
// Only engine failures populate Err; every other condition degrades
// inside the document itself.
type Result struct {
	Doc document.Doc
	Err error
}

// ProcessDocument runs a single document through every per-document
// stage. It is a pure function of its input and safe to call from
// concurrent goroutines.
func (e *Extractor) ProcessDocument(ctx context.Context, id, text string) (document.Doc, error) {
	doc := document.Doc{ID: id, RawText: text}

	doc.NormalizedText = e.norm.Normalize(text)
	pre := e.pre.Preprocess(doc.NormalizedText)

	morphs, tokenizable, err := e.adapter.Tokenize(ctx, pre)
	doc.Tokenizable = tokenizable
	if err != nil {
		return doc, err
	}
	if !tokenizable || len(morphs) == 0 {
		doc.Candidates = e.gen.Generate(nil)
		return doc, nil
	}

	morphs = grammar.Chain(e.rules, morphs)
	morphs = e.dict.ApplyPhrases(morphs)

	surfaces := make([]string, len(morphs))
	for i, m := range morphs {
		surfaces[i] = m.Text
	}
	spans := align.Align(doc.NormalizedText, surfaces)

	doc.Tokens = make([]document.Token, len(morphs))
	for i, m := range morphs {
		doc.Tokens[i] = document.Token{
			DocID:  id,
			Offset: i,
			Span:   spans[i],
			Text:   m.Text,
			Tags:   map[string]string{document.TagPOS: m.Tag},
		}
	}

	doc.Candidates = e.gen.Generate(doc.Tokens)
	return doc, nil
}

// Process maps the per-document pipeline over a batch. Documents are
// independent, so the map runs on Workers goroutines; results keep the
// input order. A failing document never aborts its siblings.
func (e *Extractor) Process(ctx context.Context, inputs []Input) []Result {
	results := make([]Result, len(inputs))

	if e.workers <= 1 {
		for i, in := range inputs {
			doc, err := e.ProcessDocument(ctx, in.ID, in.Text)
			results[i] = Result{Doc: doc, Err: err}
		}
		return results
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				doc, err := e.ProcessDocument(ctx, inputs[i].ID, inputs[i].Text)
				results[i] = Result{Doc: doc, Err: err}
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// Extract processes the batch and ranks the pooled candidates. The
// ranking pass is a blocking reduce: it observes every document's
// candidates (or their empty terminal state) before building the
// vocabulary. Failed documents contribute nothing to the corpus.
func (e *Extractor) Extract(ctx context.Context, inputs []Input) ([]rank.TermScore, []Result) {
	results := e.Process(ctx, inputs)

	bags := make([]map[string]int, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		bags = append(bags, res.Doc.BagOfTerms())
	}

	return e.ranker.Rank(bags), results
}
