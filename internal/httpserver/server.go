// Package httpserver exposes guess-the-number sessions over a JSON API.
//
// Routes:
//   - GET  /health
//   - POST /game/new    start a session (random or daily puzzle)
//   - POST /game/guess  apply the current input text to a session
//   - GET  /game/{id}   current visible state
//
// Every guess response carries the full visible state, so clients can send
// the input on every keystroke and simply re-render.
package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/tatianab/number-game/internal/engine"
	"github.com/tatianab/number-game/internal/models"
	"github.com/tatianab/number-game/internal/store"
)

// Server bundles the router, the session store and the puzzle engine.
type Server struct {
	r         *chi.Mux
	store     store.Store
	engine    *engine.Engine
	dailySalt string
	now       func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(eng *engine.Engine, st store.Store, dailySalt string, logger zerolog.Logger) *Server {
	s := &Server{
		r:         chi.NewRouter(),
		store:     st,
		engine:    eng,
		dailySalt: dailySalt,
		now:       time.Now,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(logger))
	s.r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", d).
			Msg("request")
	}))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

type newGameReq struct {
	Daily bool `json:"daily"`
}

type gameRes struct {
	GameID   string          `json:"gameId"`
	Accepted bool            `json:"accepted"`
	State    models.Snapshot `json:"state"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body starts a random game.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		session *engine.Session
		err     error
	)
	if req.Daily {
		session, err = s.engine.NewDailySession(r.Context(), s.dailySalt, s.now())
	} else {
		session, err = s.engine.NewSession(r.Context())
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("new session")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}

	id, err := s.store.Add(r.Context(), session)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	hlog.FromRequest(r).Info().Str("gameId", id).Bool("daily", req.Daily).Msg("game started")

	_ = json.NewEncoder(w).Encode(gameRes{GameID: id, Accepted: true, State: session.Snapshot()})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// handleGuess applies raw input text. Text that is not a number is not an
// HTTP error: the response has accepted=false and the unchanged state.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	res := gameRes{GameID: req.GameID}
	err := s.store.Update(r.Context(), req.GameID, func(session *engine.Session) error {
		snap, err := session.OnGuess(req.Guess)
		res.State = snap
		res.Accepted = err == nil
		if errors.Is(err, engine.ErrParse) {
			return nil
		}
		return err
	})
	if !s.checkStoreErr(w, r, err) {
		return
	}
	if res.State.Won {
		hlog.FromRequest(r).Info().Str("gameId", req.GameID).Msg("game won")
	}

	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := gameRes{GameID: id, Accepted: true}
	err := s.store.Update(r.Context(), id, func(session *engine.Session) error {
		res.State = session.Snapshot()
		return nil
	})
	if !s.checkStoreErr(w, r, err) {
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// checkStoreErr writes the error response for err and reports whether the
// handler may continue.
func (s *Server) checkStoreErr(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("update session")
		writeError(w, http.StatusInternalServerError, "guess_failed")
	}
	return false
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
