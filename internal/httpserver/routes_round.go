package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scramble/internal/game"
	"github.com/robalobadob/scramble/internal/store"
)

// suggestionCount caps suggestions returned with a not-recognized result.
const suggestionCount = 3

// roundView is the public shape of a round.
type roundView struct {
	RoundID   string     `json:"roundId"`
	BaseWord  string     `json:"baseWord"`
	UsedWords []string   `json:"usedWords"`
	Score     game.Score `json:"score"`
}

func viewOf(rd *game.Round) roundView {
	return roundView{
		RoundID:   rd.ID,
		BaseWord:  rd.BaseWord,
		UsedWords: rd.Used(),
		Score:     rd.Score(),
	}
}

// newRoundReq is the body of POST /round/new.
type newRoundReq struct {
	BaseWord string `json:"baseWord"` // optional fixed base word (testing)
}

// handleNewRound starts a round on a random base word, stores it in
// memory and writes a history row for its owner.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	o := s.ownerOf(w, r)
	rd := game.NewRound(s.checker)
	rd.Owner = o.id()
	if base := strings.TrimSpace(req.BaseWord); base != "" {
		rd.StartWith(base)
	} else {
		rd.Start(s.words)
	}
	if err := s.rounds.Save(r.Context(), rd); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.recordRound(r.Context(), o, rd, "")

	log.Debug().Str("roundId", rd.ID).Str("baseWord", rd.BaseWord).Msg("round started")
	writeJSON(w, viewOf(rd))
}

// submitReq is the body of POST /round/submit and POST /daily/submit.
type submitReq struct {
	RoundID string `json:"roundId"`
	Word    string `json:"word"`
}

// submitRes reports the outcome of a submission and the round afterwards.
type submitRes struct {
	Outcome     game.Outcome `json:"outcome"`
	Word        string       `json:"word"`
	Title       string       `json:"title,omitempty"`
	Message     string       `json:"message,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	roundView
}

var (
	errNotOwner   = errors.New("round belongs to another player")
	errWrongRoute = errors.New("round mode does not match route")
)

// submit applies word to a stored round under its lock. Only the round's
// owner may submit, and daily rounds only accept words through /daily.
func (s *Server) submit(r *http.Request, o owner, roundID, word string, daily bool) (submitRes, error) {
	var out submitRes
	err := s.rounds.Update(r.Context(), roundID, func(rd *game.Round) error {
		if !s.owns(r, o, rd) {
			return errNotOwner
		}
		if (rd.DailyDate != "") != daily {
			return errWrongRoute
		}
		res := rd.Submit(strings.TrimSpace(word))
		out = submitRes{
			Outcome: res.Outcome,
			Word:    res.Word,
			Title:   res.Title(),
			Message: res.Message(),
		}
		if res.Outcome == game.WordNotRecognized && s.suggester != nil {
			out.Suggestions = rd.Suggest(s.suggester, res.Word, suggestionCount)
		}
		out.roundView = viewOf(rd)
		return nil
	})
	return out, err
}

// handleSubmit runs a word through the round's validator. Rejections are
// regular 200 responses carrying the outcome and its message.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.RoundID == "" {
		writeError(w, http.StatusBadRequest, "missing_round")
		return
	}

	o := s.ownerOf(w, r)
	res, err := s.submit(r, o, req.RoundID, req.Word, false)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, errNotOwner):
		writeError(w, http.StatusForbidden, "not_owner")
		return
	case errors.Is(err, errWrongRoute):
		writeError(w, http.StatusConflict, "daily_round")
		return
	case err != nil:
		log.Error().Err(err).Str("roundId", req.RoundID).Msg("submit")
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	if res.Outcome == game.Accepted {
		s.recordAccepted(r.Context(), o, req.RoundID, res.Word, res.Score.Words)
	}
	writeJSON(w, res)
}

// owns reports whether the caller may play rd. A guest round stays
// playable after its player logs in, via the anonymous cookie.
func (s *Server) owns(r *http.Request, o owner, rd *game.Round) bool {
	if rd.Owner == "" || rd.Owner == o.id() {
		return true
	}
	c, err := r.Cookie(anonCookieName)
	return err == nil && c.Value == rd.Owner
}

// handleGetRound returns the current state of a round.
func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	var v roundView
	err := s.rounds.View(r.Context(), chi.URLParam(r, "id"), func(rd *game.Round) error {
		v = viewOf(rd)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, v)
}
