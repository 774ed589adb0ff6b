package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/robalobadob/scramble/internal/spell"
)

func TestPlay(t *testing.T) {
	dict := spell.NewDictionary(language.English, []string{"work", "worm", "milk"})
	in := strings.NewReader(strings.Join([]string{
		"work",
		"WORK",
		"worms",
		"mil",
		"",
		":used",
		":new",
		":used",
		":quit",
		"worm",
	}, "\n"))
	var out bytes.Buffer

	p := NewPlayer(in, &out, []string{"silkworm"}, dict)
	p.Suggester = dict
	require.NoError(t, p.Run())

	got := out.String()
	assert.Contains(t, got, "Base word: SILKWORM")
	assert.Contains(t, got, "✓ work")
	assert.Contains(t, got, "(1 words, 4 letters)")
	assert.Contains(t, got, "Word already used: Be more original!")
	assert.Contains(t, got, "Word not possible: You can't spell that word from silkworm.")
	assert.Contains(t, got, "Word not recognized: You can't just make them up, you know!")
	assert.Contains(t, got, "did you mean: milk")
	assert.Contains(t, got, "  work\n")
	assert.Contains(t, got, "no words yet", ":new clears the used words")
	assert.NotContains(t, got, "✓ worm", "input after :quit is ignored")
	assert.Equal(t, 2, strings.Count(got, "Base word:"))
}

func TestPlayEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPlayer(strings.NewReader(""), &out, nil, dict0())
	require.NoError(t, p.Run())
	assert.Contains(t, out.String(), "Base word: SILKWORM")
}

func dict0() *spell.Dictionary {
	return spell.NewDictionary(language.English, nil)
}
