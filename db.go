// db.go
//
// Dictionary selection and database helpers.
// Responsibilities:
//   - Picking the word-battle dictionary from config (SQLite, file, embedded).
//   - Opening SQLite database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying migrations from ./sql/*.sql (idempotent, recorded in _migrations).
//   - Seeding an empty words table from the embedded list.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/duelarcade/internal/config"
	"github.com/robalobadob/duelarcade/internal/words"
)

// openDictionary returns the configured dictionary and a func releasing it.
func openDictionary(ctx context.Context, cfg *config.Config) (words.Dictionary, func(), error) {
	switch {
	case cfg.DictionaryDSN != "":
		db, err := openDB(cfg.DictionaryDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		d := words.NewSQLDictionary(db)
		n, err := d.Count(ctx)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("count words: %w", err)
		}
		if n == 0 {
			log.Info().Str("dsn", cfg.DictionaryDSN).Msg("seeding empty words table")
			if err := d.Seed(ctx, words.Embedded()); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		return d, func() { _ = db.Close() }, nil

	case cfg.WordsFile != "":
		l, err := words.ReadFile(cfg.WordsFile)
		if err != nil {
			return nil, nil, err
		}
		return l, func() {}, nil

	default:
		return words.Embedded(), func() {}, nil
	}
}

/**
 * openDB opens (and creates if missing) a SQLite database file.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/words.db).
 * - Configures busy timeout and WAL journaling mode.
 * - Enforces foreign keys.
 */
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	return withPragmas(db)
}

// withPragmas enables foreign keys and WAL. db is closed if that fails.
func withPragmas(db *sql.DB) (*sql.DB, error) {
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies SQL migrations from ./sql directory.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each *.sql file in lexical order inside its own transaction.
 * - Skips if already applied.
 * - A missing ./sql directory falls back to the built-in words schema.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	root := "sql"
	if _, err := os.Stat(root); os.IsNotExist(err) {
		log.Warn().Str("dir", root).Msg("no migrations directory, using built-in schema")
		if _, err := db.Exec(words.Schema); err != nil {
			return fmt.Errorf("apply built-in schema: %w", err)
		}
		return nil
	}

	var files []string
	if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk sql dir: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}
