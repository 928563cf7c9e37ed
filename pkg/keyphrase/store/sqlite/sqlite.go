// Package sqlite implements the Store interface on SQLite via the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite database with WAL mode
// enabled and the schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	raw_text TEXT NOT NULL,
	normalized_text TEXT NOT NULL,
	tokenizable INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS doc_tokens (
	doc_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	text TEXT NOT NULL,
	tag TEXT NOT NULL,
	start_pos INTEGER NOT NULL,
	end_pos INTEGER NOT NULL,
	PRIMARY KEY(doc_id, seq),
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS keyphrases (
	run TEXT NOT NULL,
	term TEXT NOT NULL,
	score REAL NOT NULL,
	UNIQUE(run, term)
);

CREATE INDEX IF NOT EXISTS idx_keyphrases_run_score
	ON keyphrases(run, score DESC);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) UpsertDoc(ctx context.Context, d store.Doc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO docs (id, raw_text, normalized_text, tokenizable)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			raw_text = excluded.raw_text,
			normalized_text = excluded.normalized_text,
			tokenizable = excluded.tokenizable`,
		d.ID, d.RawText, d.NormalizedText, boolToInt(d.Tokenizable))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM doc_tokens WHERE doc_id = ?`, d.ID); err != nil {
		return err
	}
	for i, tok := range d.Tokens {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO doc_tokens (doc_id, seq, text, tag, start_pos, end_pos)
			VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, i, tok.Text, tok.Tag, tok.Start, tok.End)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *sqliteStore) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	var d store.Doc
	var tokenizable int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, raw_text, normalized_text, tokenizable
		FROM docs WHERE id = ?`, id).
		Scan(&d.ID, &d.RawText, &d.NormalizedText, &tokenizable)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Doc{}, fmt.Errorf("%w: doc %s", internalerr.ErrNotFound, id)
	}
	if err != nil {
		return store.Doc{}, err
	}
	d.Tokenizable = tokenizable != 0

	rows, err := s.db.QueryContext(ctx, `
		SELECT text, tag, start_pos, end_pos FROM doc_tokens
		WHERE doc_id = ? ORDER BY seq`, id)
	if err != nil {
		return store.Doc{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var tok store.Token
		if err := rows.Scan(&tok.Text, &tok.Tag, &tok.Start, &tok.End); err != nil {
			return store.Doc{}, err
		}
		d.Tokens = append(d.Tokens, tok)
	}
	if err := rows.Err(); err != nil {
		return store.Doc{}, err
	}

	return d, nil
}

func (s *sqliteStore) CountDocs(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM docs`).Scan(&n)
	return n, err
}

func (s *sqliteStore) SaveScores(ctx context.Context, run string, scores []store.TermScore) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM keyphrases WHERE run = ?`, run); err != nil {
		return err
	}
	for _, ts := range scores {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO keyphrases (run, term, score) VALUES (?, ?, ?)`,
			run, ts.Term, ts.Score)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *sqliteStore) TopScores(ctx context.Context, run string, limit int) ([]store.TermScore, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT term, score FROM keyphrases
		WHERE run = ? ORDER BY score DESC, term ASC LIMIT ?`, run, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []store.TermScore
	for rows.Next() {
		var ts store.TermScore
		if err := rows.Scan(&ts.Term, &ts.Score); err != nil {
			return nil, err
		}
		scores = append(scores, ts)
	}
	return scores, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
