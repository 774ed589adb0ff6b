// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start (or resume) today's round on the shared base word
//   - POST /daily/submit      → submit a word into today's round
//   - GET  /daily/leaderboard → top 20 for today (or a given date)
//
// Each player keeps one round per date (in-memory session); progress is
// upserted to daily_results after every accepted word.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scramble/internal/daily"
	"github.com/robalobadob/scramble/internal/game"
	"github.com/robalobadob/scramble/internal/store"
	"github.com/robalobadob/scramble/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	sessions map[string]string // userID|date → round ID
	mu       sync.Mutex        // guards sessions
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		sessions: make(map[string]string),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/submit", dd.handleSubmit)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// today returns today's date key and base word.
func (d *dailyServer) today() (date, base string) {
	now := d.srv.now()
	base, _ = daily.BaseWord(now, d.srv.cfg.DailySalt, d.srv.words)
	if base == "" {
		base = words.Fallback
	}
	return daily.DateKey(now), base
}

// dailyRes is returned by /daily/new.
type dailyRes struct {
	Date string `json:"date"`
	roundView
}

// handleNew resumes the caller's round for today or starts one.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	o := d.srv.ownerOf(w, r)
	date, base := d.today()
	key := o.id() + "|" + date

	d.mu.Lock()
	defer d.mu.Unlock()

	if id, ok := d.sessions[key]; ok {
		var v roundView
		err := d.srv.rounds.View(r.Context(), id, func(rd *game.Round) error {
			v = viewOf(rd)
			return nil
		})
		if err == nil {
			writeJSON(w, dailyRes{Date: date, roundView: v})
			return
		}
	}

	rd := game.NewRound(d.srv.checker)
	rd.Owner = o.id()
	rd.DailyDate = date
	rd.StartWith(base)
	if err := d.srv.rounds.Save(r.Context(), rd); err != nil {
		log.Error().Err(err).Msg("save daily round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	d.sessions[key] = rd.ID
	d.srv.recordRound(r.Context(), o, rd, date)

	writeJSON(w, dailyRes{Date: date, roundView: viewOf(rd)})
}

// handleSubmit applies a word to the caller's round for today.
func (d *dailyServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	o := d.srv.ownerOf(w, r)
	date, _ := d.today()
	key := o.id() + "|" + date

	d.mu.Lock()
	id, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || id != req.RoundID {
		writeError(w, http.StatusConflict, "no_session")
		return
	}

	res, err := d.srv.submit(r, o, id, req.Word, true)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, errNotOwner) || errors.Is(err, errWrongRoute) {
		writeError(w, http.StatusConflict, "no_session")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	if res.Outcome == game.Accepted {
		d.srv.recordAccepted(r.Context(), o, id, res.Word, res.Score.Words)
		if err := d.store.Upsert(r.Context(), daily.Result{
			UserID:   o.id(),
			Date:     date,
			BaseWord: res.BaseWord,
			Words:    res.Score.Words,
			Letters:  res.Score.Letters,
		}); err != nil {
			log.Warn().Err(err).Str("roundId", id).Msg("upsert daily result")
		}
	}
	writeJSON(w, res)
}

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _ = d.today()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, lbRes{Date: date, Top: rows})
}
