// internal/game/engine.go
//
// Round controller and validator for the word scramble game.
// Responsibilities:
//   - Start rounds on a random (or forced) base word, clearing used words.
//   - Run submissions through feasibility → originality → realness, in that order.
//   - Record accepted words newest first.
//
// Notes:
//   - Realness is delegated to a spell.Checker for English.
//   - Base word selection comes from the words package.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/robalobadob/scramble/internal/spell"
	"github.com/robalobadob/scramble/internal/words"
)

// minWordLen is the shortest word the realness check accepts.
const minWordLen = 3

// Lang is the language submissions are spell checked in.
var Lang = language.English

// NewRound constructs a round that checks spelling with checker.
// The round has no base word until Start or StartWith is called.
func NewRound(checker spell.Checker) *Round {
	return &Round{
		ID:        randomID(),
		UsedWords: []string{},
		checker:   checker,
	}
}

// Start picks a base word uniformly at random from list and clears
// the used words. An empty list starts on words.Fallback.
func (r *Round) Start(list []string) {
	r.StartWith(words.Random(list))
}

// StartWith starts a round on a fixed base word.
func (r *Round) StartWith(base string) {
	r.BaseWord = strings.ToLower(base)
	r.UsedWords = r.UsedWords[:0]
	r.StartedAt = time.Now().UTC()
}

// Submit lowercases raw and evaluates it against the round.
// Only an Accepted result mutates the round.
func (r *Round) Submit(raw string) Result {
	word := strings.ToLower(raw)
	res := Result{Word: word, BaseWord: r.BaseWord}

	switch {
	case !IsPossible(word, r.BaseWord):
		res.Outcome = WordNotPossible
	case !r.IsOriginal(word):
		res.Outcome = WordAlreadyUsed
	case !IsReal(r.checker, word):
		res.Outcome = WordNotRecognized
	default:
		r.UsedWords = append([]string{word}, r.UsedWords...)
		res.Outcome = Accepted
	}
	return res
}

// IsOriginal reports whether word is neither the base word nor already used.
func (r *Round) IsOriginal(word string) bool {
	return IsOriginal(word, r.BaseWord, r.UsedWords)
}

// Used returns a copy of the accepted words, newest first.
func (r *Round) Used() []string {
	return append([]string{}, r.UsedWords...)
}

// Score totals the accepted words and their letters.
func (r *Round) Score() Score {
	s := Score{Words: len(r.UsedWords)}
	for _, w := range r.UsedWords {
		s.Letters += utf8.RuneCountInString(w)
	}
	return s
}

// Suggester offers dictionary words close to a misspelling.
type Suggester interface {
	Suggest(word string, n int) []string
}

// Suggest asks s for words near word and keeps up to n that this round
// would accept on letters and originality.
func (r *Round) Suggest(s Suggester, word string, n int) []string {
	if s == nil || n <= 0 {
		return nil
	}
	var out []string
	for _, cand := range s.Suggest(strings.ToLower(word), n*4) {
		if utf8.RuneCountInString(cand) < minWordLen {
			continue
		}
		if !IsPossible(cand, r.BaseWord) || !r.IsOriginal(cand) {
			continue
		}
		out = append(out, cand)
		if len(out) == n {
			break
		}
	}
	return out
}

// IsPossible reports whether every letter of word can be drawn from
// base, consuming the first matching occurrence each time. Both are
// compared case-insensitively.
func IsPossible(word, base string) bool {
	pool := []rune(strings.ToLower(base))
	for _, letter := range strings.ToLower(word) {
		i := indexRune(pool, letter)
		if i < 0 {
			return false
		}
		pool = append(pool[:i], pool[i+1:]...)
	}
	return true
}

// IsOriginal reports whether word differs from base and does not
// appear in used.
func IsOriginal(word, base string, used []string) bool {
	if word == base {
		return false
	}
	for _, u := range used {
		if u == word {
			return false
		}
	}
	return true
}

// IsReal reports whether word has at least three letters and checker
// recognizes it as English. A nil checker recognizes nothing.
func IsReal(checker spell.Checker, word string) bool {
	if utf8.RuneCountInString(word) < minWordLen {
		return false
	}
	if checker == nil {
		return false
	}
	return checker.Recognized(word, Lang)
}

func indexRune(rs []rune, r rune) int {
	for i, x := range rs {
		if x == r {
			return i
		}
	}
	return -1
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
