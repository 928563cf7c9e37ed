// Package store defines persistence for processed documents and
// extraction runs. The pipeline itself never touches storage; only
// drivers around it do.
package store

import "context"

// Store persists pipeline output across extraction runs.
type Store interface {
	Close() error

	// Docs. GetDoc reports a missing id with
	// internalerr.ErrNotFound.
	UpsertDoc(ctx context.Context, d Doc) error
	GetDoc(ctx context.Context, id string) (Doc, error)
	CountDocs(ctx context.Context) (int64, error)

	// Keyphrases
	SaveScores(ctx context.Context, run string, scores []TermScore) error
	TopScores(ctx context.Context, run string, limit int) ([]TermScore, error)
}

// Doc is a stored processed document.
type Doc struct {
	ID             string
	RawText        string
	NormalizedText string
	Tokenizable    bool
	Tokens         []Token
}

// Token is a stored aligned token.
type Token struct {
	Text  string
	Tag   string
	Start int
	End   int
}

// TermScore is one ranked term of an extraction run.
type TermScore struct {
	Term  string
	Score float64
}
