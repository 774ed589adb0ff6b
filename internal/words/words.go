// internal/words/words.go
//
// Word source for new rounds.
//
// Responsibilities:
//   - Load the base word list from a configured file or the embedded start.txt.
//   - Normalize entries (trim, English lowercase) and drop blank lines.
//   - Degrade to the single fallback word when nothing usable was loaded.
//   - Pick a base word uniformly at random.
//
// Resolution order (Load):
//   1. If path is set, read it. Any read error or an empty result yields [Fallback].
//   2. Otherwise read the embedded start.txt, with the same fallback rule.
//
// Load never returns an error; failures are logged at warn level.

package words

import (
	"crypto/rand"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/scramble/assets"
)

// Fallback is the base word used when no word list could be loaded.
const Fallback = "silkworm"

// Load returns the base word list. It always returns at least one word.
func Load(path string) []string {
	var (
		raw []string
		err error
	)
	if path != "" {
		raw, err = readWordFile(path)
	} else {
		raw, err = assets.StartWords()
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("word list unreadable, using fallback")
		return []string{Fallback}
	}

	list := Normalize(raw)
	if len(list) == 0 {
		log.Warn().Str("path", path).Msg("word list empty, using fallback")
		return []string{Fallback}
	}
	log.Debug().Int("count", len(list)).Str("path", path).Msg("word list loaded")
	return list
}

// readWordFile loads one word per line from a file on disk.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// Normalize trims and lowercases every entry and drops blanks.
// Duplicates are kept so that selection stays uniform over lines.
func Normalize(lines []string) []string {
	lower := cases.Lower(language.English)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w := lower.String(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Random returns a cryptographically random element of list.
// An empty list yields Fallback.
func Random(list []string) string {
	if len(list) == 0 {
		return Fallback
	}
	return list[RandomIndex(len(list))]
}

// RandomIndex returns a uniform index in [0, n). n must be positive.
func RandomIndex(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}
