// Package daily derives the shared base word of the day and keeps the
// per-date leaderboard.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % listLen.
func WordIndex(date time.Time, salt string, listLen int) int {
	if listLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(listLen))
}

// BaseWord picks the day's base word from list.
func BaseWord(date time.Time, salt string, list []string) (string, int) {
	if len(list) == 0 {
		return "", 0
	}
	idx := WordIndex(date, salt, len(list))
	return list[idx], idx
}
