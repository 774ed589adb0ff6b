// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Outcome: result kind of a single submission.
//   - Result: outcome plus the words involved, with user-facing text.
//   - Round: state of one round (base word + accepted words).
//   - Score: running totals for a round.

package game

import (
	"fmt"
	"time"

	"github.com/robalobadob/scramble/internal/spell"
)

// Outcome is the evaluation result of a submitted word.
type Outcome string

const (
	Accepted          Outcome = "accepted"
	WordNotPossible   Outcome = "word_not_possible"
	WordAlreadyUsed   Outcome = "word_already_used"
	WordNotRecognized Outcome = "word_not_recognized"
)

// Result is returned by Round.Submit. Rejections are ordinary results,
// not errors; the round is unchanged when Outcome != Accepted.
type Result struct {
	Outcome  Outcome `json:"outcome"`
	Word     string  `json:"word"`     // normalized submission
	BaseWord string  `json:"baseWord"` // base word at submission time
}

// OK reports whether the word was accepted.
func (r Result) OK() bool { return r.Outcome == Accepted }

// Title is the short user-facing heading for a rejection.
func (r Result) Title() string {
	switch r.Outcome {
	case WordNotPossible:
		return "Word not possible"
	case WordAlreadyUsed:
		return "Word already used"
	case WordNotRecognized:
		return "Word not recognized"
	}
	return ""
}

// Message is the user-facing explanation for a rejection.
func (r Result) Message() string {
	switch r.Outcome {
	case WordNotPossible:
		return fmt.Sprintf("You can't spell that word from %s.", r.BaseWord)
	case WordAlreadyUsed:
		return "Be more original!"
	case WordNotRecognized:
		return "You can't just make them up, you know!"
	}
	return ""
}

// Score summarizes accepted words in a round.
type Score struct {
	Words   int `json:"words"`
	Letters int `json:"letters"`
}

// Round holds the state of a single round. A Round is not safe for
// concurrent use; callers serialize access (see store.Store.Update).
type Round struct {
	ID        string    // random hex identifier
	BaseWord  string    // lowercase, fixed until the next Start
	UsedWords []string  // accepted words, newest first
	StartedAt time.Time // set by Start / StartWith
	Owner     string    // player the round belongs to; empty when unowned
	DailyDate string    // date key for Daily Challenge rounds, else empty

	checker spell.Checker
}
