// internal/spell/spell.go
//
// Spelling oracle used by the realness check.
//
// Defines:
//   - Checker: "is this a recognized word in language L".
//   - CheckerFunc: adapter for plain functions (handy in tests).
//   - Dictionary: word-list backed Checker for a single language,
//     with Levenshtein-based suggestions for unrecognized words.
//
// Dictionaries load from a file on disk or from the embedded dictionary.txt.

package spell

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/language"

	"github.com/robalobadob/scramble/assets"
)

// Checker reports whether word is spelled correctly in lang.
type Checker interface {
	Recognized(word string, lang language.Tag) bool
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(word string, lang language.Tag) bool

// Recognized calls f(word, lang).
func (f CheckerFunc) Recognized(word string, lang language.Tag) bool { return f(word, lang) }

// Dictionary is an in-memory word set for one language.
// It is read-only after construction and safe for concurrent use.
type Dictionary struct {
	lang  language.Tag
	words map[string]struct{}
	list  []string // sorted, for deterministic suggestions
}

// NewDictionary builds a dictionary for lang from words.
// Entries are trimmed and lowercased; blanks are ignored.
func NewDictionary(lang language.Tag, words []string) *Dictionary {
	d := &Dictionary{lang: lang, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := d.words[w]; dup {
			continue
		}
		d.words[w] = struct{}{}
		d.list = append(d.list, w)
	}
	sort.Strings(d.list)
	return d
}

// LoadDictionary reads an English dictionary from path, or from the
// embedded list when path is empty.
func LoadDictionary(path string) (*Dictionary, error) {
	var (
		lines []string
		err   error
	)
	if path == "" {
		lines, err = assets.DictionaryWords()
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err == nil {
			defer f.Close()
			lines, err = assets.ReadLines(f)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load dictionary %q: %w", path, err)
	}
	d := NewDictionary(language.English, lines)
	if d.Len() == 0 {
		return nil, fmt.Errorf("load dictionary %q: no words", path)
	}
	return d, nil
}

// Recognized reports whether word is in the dictionary and lang shares
// the dictionary's base language ("en-GB" matches an "en" dictionary).
func (d *Dictionary) Recognized(word string, lang language.Tag) bool {
	if !sameBase(d.lang, lang) {
		return false
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }

// Language returns the dictionary's language tag.
func (d *Dictionary) Language() language.Tag { return d.lang }

// Suggest returns up to n dictionary words closest to word by edit
// distance. Ties are broken alphabetically. Only words within half
// the input length in runes (at least one edit) are offered.
func (d *Dictionary) Suggest(word string, n int) []string {
	word = strings.ToLower(word)
	if n <= 0 || word == "" {
		return nil
	}
	size := utf8.RuneCountInString(word)
	maxDist := max(size/2, 1)

	type candidate struct {
		word string
		dist int
	}
	var cands []candidate
	for _, w := range d.list {
		if w == word || abs(utf8.RuneCountInString(w)-size) > maxDist {
			continue
		}
		dist := levenshtein.ComputeDistance(word, w)
		if dist <= maxDist {
			cands = append(cands, candidate{w, dist})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.word
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sameBase(a, b language.Tag) bool {
	ab, _ := a.Base()
	bb, _ := b.Base()
	return ab == bb
}
