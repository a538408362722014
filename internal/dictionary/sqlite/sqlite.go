// Package sqlite persists a dictionary corpus in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jusunglee/kanainput/internal/dictionary"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const (
	formKanji   = "kanji"
	formReading = "reading"
)

// Store reads and writes dictionary entries.
type Store struct {
	db *sql.DB
}

// New opens the database at dbPath, creating the schema when the file does
// not exist yet.
func New(ctx context.Context, dbPath string) (*Store, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// Pragmas are per connection, and every :memory: connection is its own database.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if isNew {
		if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
			sqliteDB.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Store{db: sqliteDB}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Import writes every entry of src in one transaction. Entries with an id
// already in the store replace the stored entry; entries without an id get
// the next free one.
func (s *Store) Import(ctx context.Context, src dictionary.Source) (int, error) {
	n, _, err := s.importTx(ctx, src, false)
	return n, err
}

// Replace swaps the whole store for src. The old entries are removed in the
// import transaction, so a failed or canceled import leaves them in place.
func (s *Store) Replace(ctx context.Context, src dictionary.Source) (imported int, removed int64, err error) {
	return s.importTx(ctx, src, true)
}

func (s *Store) importTx(ctx context.Context, src dictionary.Source, replace bool) (int, int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	var removed int64
	if replace {
		if removed, err = clearAll(ctx, tx); err != nil {
			return 0, 0, fmt.Errorf("clearing entries: %w", err)
		}
	}

	n := 0
	for e := range src.Entries() {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		if err := insertEntry(ctx, tx, e); err != nil {
			return 0, 0, fmt.Errorf("importing entry %d (%s): %w", e.ID, e.Headword(), err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing import: %w", err)
	}
	return n, removed, nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, e dictionary.Entry) error {
	id := e.ID
	if id != 0 {
		for _, table := range []string{"forms", "senses"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE entry_id = ?", id); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO entries (id) VALUES (?)", id); err != nil {
			return err
		}
	} else {
		result, err := tx.ExecContext(ctx, "INSERT INTO entries DEFAULT VALUES")
		if err != nil {
			return err
		}
		if id, err = result.LastInsertId(); err != nil {
			return err
		}
	}

	for kind, forms := range map[string][]string{formKanji: e.Kanji, formReading: e.Readings} {
		for i, text := range forms {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO forms (entry_id, kind, position, text)
				VALUES (?, ?, ?, ?)
			`, id, kind, i, text); err != nil {
				return err
			}
		}
	}

	for i, sense := range e.Senses {
		glosses, err := json.Marshal(sense.Glosses)
		if err != nil {
			return err
		}
		pos, err := json.Marshal(sense.PartsOfSpeech)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO senses (entry_id, position, glosses, pos)
			VALUES (?, ?, ?, ?)
		`, id, i, string(glosses), string(pos)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the whole store in id order. An empty store returns
// dictionary.ErrEmptyCorpus.
func (s *Store) Load(ctx context.Context) (dictionary.Corpus, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	var corpus dictionary.Corpus
	index := make(map[int64]int)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		index[id] = len(corpus)
		corpus = append(corpus, dictionary.Entry{ID: id})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return nil, dictionary.ErrEmptyCorpus
	}

	if err := s.loadForms(ctx, corpus, index); err != nil {
		return nil, err
	}
	if err := s.loadSenses(ctx, corpus, index); err != nil {
		return nil, err
	}
	return corpus, nil
}

func (s *Store) loadForms(ctx context.Context, corpus dictionary.Corpus, index map[int64]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT entry_id, kind, text
		FROM forms
		ORDER BY entry_id, kind, position
	`)
	if err != nil {
		return fmt.Errorf("querying forms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         int64
			kind, text string
		)
		if err := rows.Scan(&id, &kind, &text); err != nil {
			return err
		}
		i, ok := index[id]
		if !ok {
			continue
		}
		switch kind {
		case formKanji:
			corpus[i].Kanji = append(corpus[i].Kanji, text)
		case formReading:
			corpus[i].Readings = append(corpus[i].Readings, text)
		}
	}
	return rows.Err()
}

func (s *Store) loadSenses(ctx context.Context, corpus dictionary.Corpus, index map[int64]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT entry_id, glosses, pos
		FROM senses
		ORDER BY entry_id, position
	`)
	if err != nil {
		return fmt.Errorf("querying senses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           int64
			glosses, pos string
			sense        dictionary.Sense
		)
		if err := rows.Scan(&id, &glosses, &pos); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(glosses), &sense.Glosses); err != nil {
			return fmt.Errorf("decoding glosses of entry %d: %w", id, err)
		}
		if err := json.Unmarshal([]byte(pos), &sense.PartsOfSpeech); err != nil {
			return fmt.Errorf("decoding parts of speech of entry %d: %w", id, err)
		}
		if i, ok := index[id]; ok {
			corpus[i].Senses = append(corpus[i].Senses, sense)
		}
	}
	return rows.Err()
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count)
	return count, err
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	return clearAll(ctx, s.db)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func clearAll(ctx context.Context, db execer) (int64, error) {
	for _, table := range []string{"forms", "senses"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return 0, err
		}
	}
	result, err := db.ExecContext(ctx, `DELETE FROM entries`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
