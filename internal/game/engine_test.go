package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/robalobadob/scramble/assets"
	"github.com/robalobadob/scramble/internal/spell"
)

// acceptAll recognizes every English word.
var acceptAll = spell.CheckerFunc(func(_ string, lang language.Tag) bool { return lang == language.English })

func newSilkworm(t *testing.T, checker spell.Checker) *Round {
	t.Helper()
	r := NewRound(checker)
	r.Start([]string{"silkworm"})
	require.Equal(t, "silkworm", r.BaseWord)
	return r
}

func TestIsPossible(t *testing.T) {
	cases := []struct {
		word, base string
		want       bool
	}{
		{"worm", "silkworm", true},
		{"worms", "silkworm", false},
		{"silk", "silkworm", true},
		{"milks", "silkworm", false},
		{"WORK", "silkworm", true},
		{"work", "SilkWorm", true},
		{"", "silkworm", true},
		{"silkworm", "silkworm", true},
		{"silkwormm", "silkworm", false},
		{"apple", "silkworm", false},
		{"aa", "a", false},
		{"aa", "banana", true},
	}
	for _, tc := range cases {
		t.Run(tc.word+"/"+tc.base, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPossible(tc.word, tc.base))
		})
	}
}

func TestIsOriginal(t *testing.T) {
	assert.False(t, IsOriginal("silkworm", "silkworm", nil))
	assert.False(t, IsOriginal("worm", "silkworm", []string{"silk", "worm"}))
	assert.True(t, IsOriginal("work", "silkworm", []string{"silk", "worm"}))
}

func TestIsReal(t *testing.T) {
	assert.False(t, IsReal(acceptAll, "ab"), "short words are never real")
	assert.False(t, IsReal(acceptAll, ""))
	assert.True(t, IsReal(acceptAll, "owl"))
	assert.False(t, IsReal(nil, "owl"))

	rejectAll := spell.CheckerFunc(func(string, language.Tag) bool { return false })
	assert.False(t, IsReal(rejectAll, "work"))
}

func TestSubmitOrder(t *testing.T) {
	dict := spell.NewDictionary(language.English, []string{"work", "worm", "silk", "worms", "ilk"})

	cases := []struct {
		name  string
		used  []string
		input string
		want  Outcome
	}{
		{"accepted", nil, "work", Accepted},
		{"uppercase accepted", nil, "WoRk", Accepted},
		{"not possible wins over unknown word", nil, "zzz", WordNotPossible},
		{"not possible wins over dictionary", nil, "worms", WordNotPossible},
		{"base word is not original", nil, "silkworm", WordAlreadyUsed},
		{"already used", []string{"worm"}, "worm", WordAlreadyUsed},
		{"short word not recognized", nil, "ow", WordNotRecognized},
		{"unknown word not recognized", nil, "mil", WordNotRecognized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newSilkworm(t, dict)
			r.UsedWords = append(r.UsedWords, tc.used...)
			before := r.Used()

			res := r.Submit(tc.input)
			assert.Equal(t, tc.want, res.Outcome)
			assert.Equal(t, "silkworm", res.BaseWord)
			if tc.want != Accepted {
				assert.Equal(t, before, r.UsedWords, "rejections leave the round unchanged")
			}
		})
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	r := newSilkworm(t, acceptAll)

	res := r.Submit("work")
	require.True(t, res.OK())
	assert.Equal(t, "work", res.Word)
	assert.Equal(t, []string{"work"}, r.UsedWords)

	res = r.Submit("worm")
	require.True(t, res.OK())
	assert.Equal(t, []string{"worm", "work"}, r.UsedWords, "newest first")

	res = r.Submit("worm")
	assert.Equal(t, WordAlreadyUsed, res.Outcome)
	assert.Equal(t, Score{Words: 2, Letters: 8}, r.Score())
}

func TestStartClearsUsedWords(t *testing.T) {
	r := newSilkworm(t, acceptAll)
	require.True(t, r.Submit("silk").OK())
	require.True(t, r.Submit("owl").OK())
	id := r.ID

	r.Start([]string{"silkworm"})
	assert.Empty(t, r.UsedWords)
	assert.Equal(t, id, r.ID)
	assert.True(t, r.Submit("silk").OK(), "words are available again after a restart")
}

func TestStartPicksFromList(t *testing.T) {
	list := []string{"alphabet", "painting", "mountain"}
	r := NewRound(acceptAll)
	for i := 0; i < 20; i++ {
		r.Start(list)
		assert.Contains(t, list, r.BaseWord)
	}

	r.Start(nil)
	assert.Equal(t, "silkworm", r.BaseWord)
}

func TestResultText(t *testing.T) {
	res := Result{Outcome: WordNotPossible, BaseWord: "silkworm"}
	assert.Equal(t, "Word not possible", res.Title())
	assert.Equal(t, "You can't spell that word from silkworm.", res.Message())

	assert.Equal(t, "Word already used", Result{Outcome: WordAlreadyUsed}.Title())
	assert.Equal(t, "Word not recognized", Result{Outcome: WordNotRecognized}.Title())
	assert.Empty(t, Result{Outcome: Accepted}.Title())
	assert.Empty(t, Result{Outcome: Accepted}.Message())
}

func TestSuggest(t *testing.T) {
	dict := spell.NewDictionary(language.English, []string{"work", "worm", "word", "silk"})
	r := newSilkworm(t, dict)
	require.True(t, r.Submit("worm").OK())

	got := r.Suggest(dict, "wrok", 3)
	assert.Contains(t, got, "work")
	assert.NotContains(t, got, "worm", "already used")
	assert.NotContains(t, got, "word", "needs a d")

	assert.Nil(t, r.Suggest(nil, "wrok", 3))
}

func TestEmbeddedDictionaryAcceptsCommonWords(t *testing.T) {
	dict, err := spell.LoadDictionary("")
	require.NoError(t, err)

	common := map[string][]string{
		"silkworm":  {"work", "worm", "silk", "milk", "owl", "slow"},
		"alphabet":  {"eat", "tea", "tape", "beat", "belt", "bat", "ape", "lap"},
		"painting":  {"paint", "tin", "pant", "giant"},
		"mountain":  {"mount", "moan", "unit", "aunt"},
		"triangle":  {"angle", "train", "alert", "grain"},
		"sunlight":  {"light", "sung", "hint", "slug"},
		"notebook":  {"note", "book", "boot", "tone"},
		"keyboard":  {"key", "board", "bread", "drake"},
		"daughter":  {"hater", "trade", "heard", "guard"},
		"hospital":  {"host", "spit", "pilot", "hats"},
		"elephant":  {"leap", "plant", "panel", "help"},
		"treasure":  {"tear", "rate", "seat", "tree"},
		"strength":  {"test", "then", "rent", "stern"},
		"question":  {"quest", "quiet", "stone", "onset"},
		"computer":  {"compute", "cute", "route", "tempo"},
		"marching":  {"charm", "chain", "grim", "ranch"},
		"pleasant":  {"plant", "salt", "petal", "least"},
		"carpenter": {"carpet", "parent", "trace", "crate"},
		"festival":  {"vital", "feast", "vest", "life"},
		"generate":  {"great", "rent", "green", "eager"},
	}

	bases, err := assets.StartWords()
	require.NoError(t, err)
	for _, base := range bases {
		t.Run(base, func(t *testing.T) {
			ws, ok := common[base]
			require.True(t, ok, "no common words listed for base %q", base)
			r := NewRound(dict)
			r.StartWith(base)
			for _, w := range ws {
				assert.Equal(t, Accepted, r.Submit(w).Outcome, w)
			}
		})
	}
}
