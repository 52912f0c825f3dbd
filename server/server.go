package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"chessbot/bots"
	"chessbot/config"
	"chessbot/engine"
	"chessbot/position"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/notnil/chess"
)

// Server exposes move selection over HTTP.
type Server struct {
	cfg    config.Config
	router chi.Router
}

// MoveResponse is the body of GET /move.
type MoveResponse struct {
	FEN     string       `json:"fen"`
	Move    string       `json:"move"`
	Score   bots.Score   `json:"score"`
	Depth   int          `json:"depth"`
	Backend string       `json:"backend"`
	Stats   engine.Stats `json:"stats"`
}

func New(cfg config.Config) *Server {
	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/move", s.handleMove)
	r.Get("/ws/selfplay", s.handleSelfPlay)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.router,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	log.Printf("[server] listening on %s", s.cfg.Addr)
	var runErr error
	select {
	case <-ctx.Done():
		log.Printf("[server] shutdown requested: %v", ctx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[server] forced close failed: %v", closeErr)
		}
	}
	return runErr
}

// searchRequest holds the query parameters shared by /move and /ws/selfplay.
type searchRequest struct {
	game    *chess.Game
	depth   int
	backend string
}

func (s *Server) parseSearch(r *http.Request) (searchRequest, error) {
	q := r.URL.Query()
	req := searchRequest{depth: s.cfg.Depth, backend: s.cfg.Backend}

	if raw := q.Get("depth"); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid depth %q", raw)
		}
		req.depth = depth
	}
	if req.depth < 1 || req.depth > s.cfg.MaxDepth {
		return req, fmt.Errorf("depth must be between 1 and %d", s.cfg.MaxDepth)
	}
	if raw := q.Get("backend"); raw != "" {
		if !config.ValidBackend(raw) {
			return req, fmt.Errorf("unknown backend %q", raw)
		}
		req.backend = raw
	}

	game, err := position.NewGame(q.Get("fen"))
	if err != nil {
		return req, err
	}
	req.game = game
	return req, nil
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSearch(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	analyzer, err := bots.NewAnalyzer(req.backend, req.depth, s.cfg.LogSearchStats)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	_, rep, err := analyzer.Analyze(req.game)
	if errors.Is(err, engine.ErrNoMove) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no legal move: game is over"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, MoveResponse{
		FEN:     req.game.Position().String(),
		Move:    rep.Move,
		Score:   rep.Score,
		Depth:   rep.Depth,
		Backend: rep.Backend,
		Stats:   rep.Stats,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
