// assets/embed.go
//
// Embedded word resources shipped with the binary.
//   - start.txt:      candidate base words for new rounds.
//   - dictionary.txt: English words accepted by the realness check.
//
// Blank lines and lines starting with '#' are skipped by ReadLines.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

// ReadLines scans r line by line, trimming whitespace and dropping
// blank and comment lines. Case is left untouched.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// StartWords returns the embedded base word list.
func StartWords() ([]string, error) {
	return readEmbedded("start.txt")
}

// DictionaryWords returns the embedded English dictionary.
func DictionaryWords() ([]string, error) {
	return readEmbedded("dictionary.txt")
}
