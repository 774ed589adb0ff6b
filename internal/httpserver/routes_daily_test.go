package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/scramble/internal/daily"
	"github.com/robalobadob/scramble/internal/game"
)

func TestDailyFlow(t *testing.T) {
	e := newTestEnv(t)
	alice := e.client(t)
	bob := e.client(t)

	var first, again dailyRes
	require.Equal(t, http.StatusOK, e.post(t, alice, "/daily/new", struct{}{}, &first))
	assert.Equal(t, "silkworm", first.BaseWord)
	assert.Equal(t, daily.DateKey(e.srv.now()), first.Date)

	require.Equal(t, http.StatusOK, e.post(t, alice, "/daily/new", struct{}{}, &again))
	assert.Equal(t, first.RoundID, again.RoundID, "same player resumes the same round")

	var bobs dailyRes
	require.Equal(t, http.StatusOK, e.post(t, bob, "/daily/new", struct{}{}, &bobs))
	assert.NotEqual(t, first.RoundID, bobs.RoundID)
	assert.Equal(t, first.BaseWord, bobs.BaseWord, "everyone shares the base word")

	for _, w := range []string{"work", "worm", "worm"} {
		var res submitRes
		require.Equal(t, http.StatusOK, e.post(t, alice, "/daily/submit", submitReq{RoundID: first.RoundID, Word: w}, &res))
		if w == "work" {
			assert.Equal(t, game.Accepted, res.Outcome)
		}
	}
	var res submitRes
	require.Equal(t, http.StatusOK, e.post(t, bob, "/daily/submit", submitReq{RoundID: bobs.RoundID, Word: "silk"}, &res))
	require.Equal(t, game.Accepted, res.Outcome)

	// bob cannot submit into alice's round
	assert.Equal(t, http.StatusConflict, e.post(t, bob, "/daily/submit", submitReq{RoundID: first.RoundID, Word: "owl"}, nil))

	var lb lbRes
	require.Equal(t, http.StatusOK, e.get(t, alice, "/daily/leaderboard", &lb))
	require.Len(t, lb.Top, 2)
	assert.Equal(t, 2, lb.Top[0].Words)
	assert.Equal(t, 8, lb.Top[0].Letters)
	assert.Equal(t, 1, lb.Top[1].Words)

	require.Equal(t, http.StatusOK, e.get(t, alice, "/daily/leaderboard?date=1999-01-01", &lb))
	assert.Empty(t, lb.Top)
}

func TestDailySubmitWithoutSession(t *testing.T) {
	e := newTestEnv(t)
	c := e.client(t)
	assert.Equal(t, http.StatusConflict, e.post(t, c, "/daily/submit", submitReq{RoundID: "abc", Word: "work"}, nil))
	assert.Equal(t, http.StatusBadRequest, e.post(t, c, "/daily/submit", "nope", nil))
}

func TestDailyRoundRejectedOnRoundSubmit(t *testing.T) {
	e := newTestEnv(t)
	alice := e.client(t)
	bob := e.client(t)

	var today dailyRes
	require.Equal(t, http.StatusOK, e.post(t, alice, "/daily/new", struct{}{}, &today))

	req := submitReq{RoundID: today.RoundID, Word: "work"}
	assert.Equal(t, http.StatusForbidden, e.post(t, bob, "/round/submit", req, nil))
	assert.Equal(t, http.StatusConflict, e.post(t, alice, "/round/submit", req, nil))

	var v roundView
	require.Equal(t, http.StatusOK, e.get(t, alice, "/round/"+today.RoundID, &v))
	assert.Empty(t, v.UsedWords)

	var lb lbRes
	require.Equal(t, http.StatusOK, e.get(t, alice, "/daily/leaderboard", &lb))
	assert.Empty(t, lb.Top)
}
