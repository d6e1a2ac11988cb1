// internal/words/sql.go
//
// SQLDictionary serves lookups from a `words` table so large dictionaries do
// not have to live in memory. The table is created by sql/001_words.sql.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Schema matches sql/001_words.sql.
const Schema = `CREATE TABLE IF NOT EXISTS words (word TEXT PRIMARY KEY);`

type SQLDictionary struct {
	db *sql.DB
}

func NewSQLDictionary(db *sql.DB) *SQLDictionary { return &SQLDictionary{db: db} }

// Contains treats query failures as a miss; they are logged, not returned,
// because the engine only needs a yes or no.
func (d *SQLDictionary) Contains(word string) bool {
	var one int
	err := d.db.QueryRow(`SELECT 1 FROM words WHERE word=?`, strings.ToLower(strings.TrimSpace(word))).Scan(&one)
	if err != nil && err != sql.ErrNoRows {
		log.Warn().Err(err).Str("word", word).Msg("dictionary lookup")
	}
	return err == nil
}

func (d *SQLDictionary) Len() int {
	n, err := d.Count(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("dictionary count")
	}
	return n
}

func (d *SQLDictionary) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Seed inserts every word of l inside one transaction. Existing rows are kept.
func (d *SQLDictionary) Seed(ctx context.Context, l List) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(word) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()
	for w := range l.set {
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("seed %q: %w", w, err)
		}
	}
	return tx.Commit()
}
