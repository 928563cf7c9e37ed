package candidate

import (
	"testing"

	"github.com/cognicore/keyphrase/pkg/keyphrase/document"
)

func tok(offset int, text, pos string) document.Token {
	return document.Token{
		Offset: offset,
		Text:   text,
		Tags:   map[string]string{document.TagPOS: pos},
	}
}

func TestGenerateFiltersByTag(t *testing.T) {
	g := New(Options{AllowedTags: []string{"n", "v"}, MaxNgram: 1})

	tokens := []document.Token{
		tok(0, "产品", "n"),
		tok(1, "的", "u"),
		tok(2, "使用", "v"),
		tok(3, "  ", "n"),
	}

	groups := g.Generate(tokens)

	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	unigrams := groups[0]
	if len(unigrams) != 2 || unigrams[0].Text != "产品" || unigrams[1].Text != "使用" {
		t.Errorf("Filter wrong: %v", unigrams)
	}
}

func TestGenerateNgramCounts(t *testing.T) {
	g := New(Options{AllowedTags: []string{"n"}, MaxNgram: 4, Joined: true})

	tokens := make([]document.Token, 5)
	texts := []string{"一", "二", "三", "四", "五"}
	for i, s := range texts {
		tokens[i] = tok(i, s, "n")
	}

	groups := g.Generate(tokens)

	// len(candidates[n]) == max(0, L-n+1) for L=5
	wantLens := []int{5, 4, 3, 2}
	for n, want := range wantLens {
		if len(groups[n]) != want {
			t.Errorf("Order %d: expected %d candidates, got %d", n+1, want, len(groups[n]))
		}
	}
}

func TestGenerateNgramTooShort(t *testing.T) {
	g := New(Options{AllowedTags: []string{"n"}, MaxNgram: 3, Joined: true})

	groups := g.Generate([]document.Token{tok(0, "一", "n")})

	if len(groups[0]) != 1 {
		t.Errorf("Expected 1 unigram, got %d", len(groups[0]))
	}
	for n := 1; n < 3; n++ {
		if len(groups[n]) != 0 {
			t.Errorf("Order %d should be empty for a single unigram, got %v", n+1, groups[n])
		}
	}
}

func TestGenerateJoinedConcatenation(t *testing.T) {
	g := New(Options{AllowedTags: []string{"n"}, MaxNgram: 2, Joined: true})

	groups := g.Generate([]document.Token{tok(0, "深度", "n"), tok(1, "学习", "n")})

	if groups[1][0].Text != "深度学习" {
		t.Errorf("Joined bigram should concatenate, got %q", groups[1][0].Text)
	}
}

func TestGenerateTupleKeepsOffsets(t *testing.T) {
	g := New(Options{AllowedTags: []string{"L"}, MaxNgram: 2})

	groups := g.Generate([]document.Token{tok(3, "쿠팡", "L"), tok(5, "후기", "L")})

	bigram := groups[1][0]
	if bigram.Text != "쿠팡 후기" {
		t.Errorf("Tuple bigram should space-join, got %q", bigram.Text)
	}
	if len(bigram.Offsets) != 2 || bigram.Offsets[0] != 3 || bigram.Offsets[1] != 5 {
		t.Errorf("Member offsets should be recoverable, got %v", bigram.Offsets)
	}
}

func TestGenerateStopwords(t *testing.T) {
	g := New(Options{AllowedTags: []string{"n"}, Stopwords: []string{"产品"}, MaxNgram: 1})

	groups := g.Generate([]document.Token{tok(0, "产品", "n"), tok(1, "质量", "n")})

	if len(groups[0]) != 1 || groups[0][0].Text != "质量" {
		t.Errorf("Stopword should be dropped, got %v", groups[0])
	}
}

func TestGenerateWordOnly(t *testing.T) {
	g := New(Options{AllowedTags: []string{"L"}, MaxNgram: 1, WordOnly: true})

	groups := g.Generate([]document.Token{tok(0, "...", "L"), tok(1, "후기", "L")})

	if len(groups[0]) != 1 || groups[0][0].Text != "후기" {
		t.Errorf("Non-word candidates should be dropped, got %v", groups[0])
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	g := New(Options{AllowedTags: []string{"n"}, MaxNgram: 3})

	groups := g.Generate(nil)

	if len(groups) != 3 {
		t.Fatalf("Expected a group per order, got %d", len(groups))
	}
	for n, group := range groups {
		if len(group) != 0 {
			t.Errorf("Order %d should be empty, got %v", n+1, group)
		}
	}
}
