package daily

import (
	"context"
	"database/sql"
	"time"
)

// Result is one player's progress on a date's base word.
type Result struct {
	UserID   string `json:"userId"`
	Date     string `json:"date"`
	BaseWord string `json:"baseWord"`
	Words    int    `json:"words"`
	Letters  int    `json:"letters"`
}

// Store persists daily results in the daily_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Upsert records r, replacing any earlier progress for the same user and date.
func (s *Store) Upsert(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO daily_results (user_id, date, base_word, words, letters, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(user_id, date) DO UPDATE SET
            words      = excluded.words,
            letters    = excluded.letters,
            updated_at = excluded.updated_at`,
		r.UserID, r.Date, r.BaseWord, r.Words, r.Letters, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// LBRow is a leaderboard entry.
type LBRow struct {
	UserID  string `json:"userId"`
	Words   int    `json:"words"`
	Letters int    `json:"letters"`
}

// Leaderboard returns the top players for date: most words, then most
// letters, then whoever got there first. Default limit is 20.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT user_id, words, letters
        FROM daily_results
        WHERE date=? AND words > 0
        ORDER BY words DESC, letters DESC, updated_at ASC
        LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Words, &r.Letters); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
