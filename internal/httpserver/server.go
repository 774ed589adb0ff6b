// internal/httpserver/server.go
//
// HTTP server wiring for the scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints (optional auth): POST /round/new, POST /round/submit, GET /round/{id}.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /rounds/mine.
//
// Notes:
//   - Live rounds sit in a store.Store; the database only keeps history.
//   - History writes are best effort and never change a submission result.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scramble/internal/config"
	"github.com/robalobadob/scramble/internal/db"
	"github.com/robalobadob/scramble/internal/game"
	"github.com/robalobadob/scramble/internal/spell"
	"github.com/robalobadob/scramble/internal/store"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Rounds    store.Store
	DB        *sql.DB
	Words     []string       // base word list
	Checker   spell.Checker  // realness oracle
	Suggester game.Suggester // optional; nil disables suggestions
}

// Server bundles the router and its dependencies.
type Server struct {
	r         *chi.Mux
	cfg       config.Config
	rounds    store.Store
	db        *sql.DB
	words     []string
	checker   spell.Checker
	suggester game.Suggester
	now       func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, d Deps) *Server {
	s := &Server{
		r:         chi.NewRouter(),
		cfg:       cfg,
		rounds:    d.Rounds,
		db:        d.DB,
		words:     d.Words,
		checker:   d.Checker,
		suggester: d.Suggester,
		now:       time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"service":   "scramble-go",
			"endpoints": []string{"/health", "POST /round/new", "POST /round/submit", "/daily/*", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		out := map[string]any{"baseWords": len(s.words)}
		if d, ok := s.checker.(*spell.Dictionary); ok {
			out["dictionary"] = d.Len()
			out["language"] = d.Language().String()
		}
		writeJSON(w, out)
	})

	// Rounds: OPTIONAL AUTH (guests can play)
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/round/new", s.handleNewRound)
		r.Post("/round/submit", s.handleSubmit)
		r.Get("/round/{id}", s.handleGetRound)
		s.mountDaily(r)
	})

	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr until ctx is canceled.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------- history -----------------------------------

// recordRound persists a new round header for its owner.
func (s *Server) recordRound(ctx context.Context, o owner, rd *game.Round, dailyDate string) {
	row := db.RoundRow{
		ID:          rd.ID,
		UserID:      o.userID,
		AnonymousID: o.anonID,
		BaseWord:    rd.BaseWord,
		DailyDate:   dailyDate,
		StartedAt:   rd.StartedAt,
	}
	if err := db.InsertRound(ctx, s.db, row); err != nil {
		log.Warn().Err(err).Str("roundId", rd.ID).Msg("insert round row")
	}
	if o.userID != "" {
		if err := db.BumpRoundsPlayed(ctx, s.db, o.userID); err != nil {
			log.Warn().Err(err).Str("user", o.userID).Msg("bump rounds played")
		}
	}
}

// recordAccepted persists an accepted word and updates user stats.
func (s *Server) recordAccepted(ctx context.Context, o owner, roundID, word string, roundWords int) {
	if err := db.RecordWord(ctx, s.db, roundID, word); err != nil {
		log.Warn().Err(err).Str("roundId", roundID).Msg("record word")
	}
	if o.userID != "" {
		if err := db.BumpWordsFound(ctx, s.db, o.userID, roundWords); err != nil {
			log.Warn().Err(err).Str("user", o.userID).Msg("bump words found")
		}
	}
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": code})
}
