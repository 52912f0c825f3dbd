package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"chessbot/bots"

	"github.com/gorilla/websocket"
)

type wsMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type endPayload struct {
	Outcome string `json:"outcome"`
	Method  string `json:"method"`
	Plies   int    `json:"plies"`
	PGN     string `json:"pgn"`
	Error   string `json:"error,omitempty"`
}

// handleSelfPlay streams an engine-vs-engine game: one "ply" message per
// half-move and a final "end" message.
func (s *Server) handleSelfPlay(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSearch(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	plies := s.cfg.MaxPlies
	if raw := r.URL.Query().Get("plies"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > s.cfg.MaxPlies {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("plies must be between 1 and %d", s.cfg.MaxPlies),
			})
			return
		}
		plies = n
	}
	engineBot, err := bots.NewAnalyzer(req.backend, req.depth, s.cfg.LogSearchStats)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var writeErr error
	playErr := bots.Play(ctx, req.game, engineBot, engineBot, plies, func(p bots.Ply) {
		if writeErr != nil {
			return
		}
		if writeErr = conn.WriteJSON(wsMessage{Type: "ply", Payload: p}); writeErr != nil {
			cancel()
		}
	})
	if writeErr != nil {
		log.Printf("[server] selfplay stream closed: %v", writeErr)
		return
	}

	end := endPayload{
		Outcome: string(req.game.Outcome()),
		Method:  fmt.Sprint(req.game.Method()),
		Plies:   len(req.game.Moves()),
		PGN:     req.game.String(),
	}
	if playErr != nil {
		end.Error = playErr.Error()
	}
	if err := conn.WriteJSON(wsMessage{Type: "end", Payload: end}); err != nil {
		log.Printf("[server] selfplay stream closed: %v", err)
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
