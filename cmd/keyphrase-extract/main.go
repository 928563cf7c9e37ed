package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/keyphrase/internal/corpus"
	"github.com/cognicore/keyphrase/pkg/keyphrase"
	"github.com/cognicore/keyphrase/pkg/keyphrase/config"
	"github.com/cognicore/keyphrase/pkg/keyphrase/segment"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store/sqlite"
)

func main() {
	var (
		dataPath     = flag.String("data", "", "Input JSONL file (required)")
		configPath   = flag.String("config", "", "Pipeline YAML config (optional)")
		stoplistPath = flag.String("stoplist", "", "Stoplist YAML file (optional)")
		dictPath     = flag.String("dict", "", "Custom dictionary file (optional)")
		dbPath       = flag.String("db", "", "SQLite database path (optional)")
		runName      = flag.String("run", "default", "Extraction run name for persistence")
		topK         = flag.Int("top-k", 0, "Override ranked output size")
	)
	flag.Parse()

	if *dataPath == "" {
		log.Fatal("--data required")
	}

	ctx := context.Background()

	loader := config.Loader{
		PipelinePath: *configPath,
		StoplistPath: *stoplistPath,
		DictPath:     *dictPath,
	}

	// The whitespace engine stands in until a morphological engine is
	// plugged via the library API.
	opts, err := loader.Load(segment.Whitespace())
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if *topK > 0 {
		opts.TopK = *topK
	}

	extractor := keyphrase.New(opts)

	records, err := corpus.LoadFromJSONL(*dataPath)
	if err != nil {
		log.Fatal("Failed to load documents:", err)
	}
	log.Printf("Loaded %d documents from %s", len(records), *dataPath)

	entropy := ulid.Monotonic(rand.Reader, 0)
	inputs := make([]keyphrase.Input, len(records))
	for i, rec := range records {
		id := rec.ID
		if id == "" {
			id = ulid.MustNew(ulid.Now(), entropy).String()
		}
		inputs[i] = keyphrase.Input{ID: id, Text: rec.Text()}
	}

	scores, results := extractor.Extract(ctx, inputs)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			log.Printf("Failed to process document %s: %v", res.Doc.ID, res.Err)
		}
	}
	log.Printf("Processed %d documents (%d failed), %d ranked terms", len(results), failed, len(scores))

	for _, ts := range scores {
		fmt.Printf("%s\t%.6f\n", ts.Term, ts.Score)
	}

	if *dbPath == "" {
		return
	}

	db, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if err := db.UpsertDoc(ctx, toStoreDoc(res)); err != nil {
			log.Printf("Failed to persist document %s: %v", res.Doc.ID, err)
		}
	}

	stored := make([]store.TermScore, len(scores))
	for i, ts := range scores {
		stored[i] = store.TermScore{Term: ts.Term, Score: ts.Score}
	}
	if err := db.SaveScores(ctx, *runName, stored); err != nil {
		log.Fatal("Failed to persist scores:", err)
	}

	log.Printf("Persisted run %q to %s", *runName, *dbPath)
}

func toStoreDoc(res keyphrase.Result) store.Doc {
	doc := store.Doc{
		ID:             res.Doc.ID,
		RawText:        res.Doc.RawText,
		NormalizedText: res.Doc.NormalizedText,
		Tokenizable:    res.Doc.Tokenizable,
	}
	for _, tok := range res.Doc.Tokens {
		doc.Tokens = append(doc.Tokens, store.Token{
			Text:  tok.Text,
			Tag:   tok.POS(),
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	return doc
}
