// internal/db/db.go
//
// SQLite helpers for the scramble server.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Round history: round rows, accepted words, per-owner listings.
//
// History writes are best effort from the caller's point of view: the HTTP
// layer logs failures and never changes a game result because of them.

package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens (and creates if missing) a SQLite database file.
// The parent directory of dsn is created for relative paths like ./data/app.db.
func Open(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dsn, err)
	}
	return db, nil
}

// Migrate applies the embedded migrations in lexical order, each in its
// own transaction. Applied files are tracked in a _migrations table.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		name := filepath.Base(f)

		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		sqlText := string(sqlBytes)

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(sqlText); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("applied")
	}
	return nil
}

/* ---------------------------- Round history ----------------------------- */

// RoundRow is the persisted header of a round. Exactly one of UserID and
// AnonymousID is expected to be set.
type RoundRow struct {
	ID          string
	UserID      string
	AnonymousID string
	BaseWord    string
	DailyDate   string // empty for regular rounds
	StartedAt   time.Time
}

// RoundSummary is a listing row for a player's history.
type RoundSummary struct {
	ID        string `json:"id"`
	BaseWord  string `json:"baseWord"`
	Daily     string `json:"daily,omitempty"`
	Words     int    `json:"words"`
	StartedAt string `json:"startedAt"`
}

// InsertRound stores a new round header.
func InsertRound(ctx context.Context, db *sql.DB, r RoundRow) error {
	_, err := db.ExecContext(ctx, `
        INSERT INTO rounds (id, user_id, anonymous_id, base_word, daily_date, started_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, nullable(r.UserID), nullable(r.AnonymousID), r.BaseWord,
		nullable(r.DailyDate), r.StartedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert round %s: %w", r.ID, err)
	}
	return nil
}

// RecordWord stores an accepted word and bumps the round's word count.
// Recording the same word twice is a no-op.
func RecordWord(ctx context.Context, db *sql.DB, roundID, word string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
        INSERT OR IGNORE INTO round_words (round_id, word, accepted_at)
        VALUES (?, ?, ?)`, roundID, word, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert word: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		if _, err := tx.ExecContext(ctx, `UPDATE rounds SET words = words + 1 WHERE id=?`, roundID); err != nil {
			return fmt.Errorf("bump round words: %w", err)
		}
	}
	return tx.Commit()
}

// RoundWords returns the accepted words of a round, newest first.
func RoundWords(ctx context.Context, db *sql.DB, roundID string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT word FROM round_words WHERE round_id=?
        ORDER BY accepted_at DESC, rowid DESC`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// ListUserRounds returns a user's most recent rounds.
// Default limit is 50 if not specified.
func ListUserRounds(ctx context.Context, db *sql.DB, userID string, limit int) ([]RoundSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, `
        SELECT id, base_word, COALESCE(daily_date,''), words, started_at
        FROM rounds WHERE user_id=?
        ORDER BY started_at DESC, rowid DESC
        LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoundSummary, 0, limit)
	for rows.Next() {
		var s RoundSummary
		if err := rows.Scan(&s.ID, &s.BaseWord, &s.Daily, &s.Words, &s.StartedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ClaimAnonRounds moves an anonymous player's rounds onto a user account.
func ClaimAnonRounds(ctx context.Context, db *sql.DB, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := db.ExecContext(ctx,
		`UPDATE rounds SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
