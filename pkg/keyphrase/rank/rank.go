// Package rank aggregates per-document candidate counts into a
// corpus-wide document-term matrix and scores terms with smoothed
// TF-IDF.
package rank

import (
	"math"
	"sort"
)

// TermScore is one ranked vocabulary term.
type TermScore struct {
	Term  string
	Score float64
}

// Ranker scores a corpus of per-document term bags. TopK limits the
// output; when zero, the smallest integer covering 20% of the
// vocabulary is used.
type Ranker struct {
	TopK int
}

// New creates a ranker. topK <= 0 selects the default truncation.
func New(topK int) *Ranker {
	return &Ranker{TopK: topK}
}

// Rank builds the vocabulary and sparse document-term matrix, applies
// the TF-IDF transform, sums each term's weighted frequency across the
// corpus and returns terms in descending score order, ties broken
// lexicographically. An empty corpus or vocabulary yields an empty
// result, not an error.
//
// Per-document L2 normalization is intentionally not applied: longer
// and denser documents contribute proportionally more mass. This is a
// documented tunable, not a bug.
func (r *Ranker) Rank(bags []map[string]int) []TermScore {
	vocab, index := buildVocabulary(bags)
	if len(vocab) == 0 {
		return nil
	}

	dtm := buildMatrix(bags, index)
	dtm.applyTFIDF(documentFrequencies(dtm, len(vocab)))

	scores := dtm.columnSums(len(vocab))

	order := make([]int, len(vocab))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b] // vocabulary is sorted, so index order is lexicographic
	})

	topK := r.TopK
	if topK <= 0 {
		topK = int(math.Ceil(float64(len(vocab)) * 0.2))
	}
	if topK > len(order) {
		topK = len(order)
	}

	ranked := make([]TermScore, 0, topK)
	for _, col := range order[:topK] {
		ranked = append(ranked, TermScore{Term: vocab[col], Score: scores[col]})
	}
	return ranked
}

// buildVocabulary collects every observed term into a sorted list and
// a stable term-to-column mapping.
func buildVocabulary(bags []map[string]int) ([]string, map[string]int) {
	seen := make(map[string]struct{})
	for _, bag := range bags {
		for term := range bag {
			seen[term] = struct{}{}
		}
	}

	vocab := make([]string, 0, len(seen))
	for term := range seen {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}
	return vocab, index
}

// documentFrequencies counts, per column, the documents with a
// non-zero entry, then converts to smoothed IDF:
//
//	idf = ln((1+N) / (1+df)) + 1
func documentFrequencies(m *sparseMatrix, cols int) []float64 {
	df := make([]int, cols)
	for _, row := range m.rows {
		for col := range row {
			df[col]++
		}
	}

	n := float64(len(m.rows))
	idf := make([]float64, cols)
	for col, d := range df {
		idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}
	return idf
}
