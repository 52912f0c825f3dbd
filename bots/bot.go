// bot.go
package bots

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"chessbot/config"
	"chessbot/engine"

	"github.com/notnil/chess"
)

// ChessBot is implemented by every bot that can play a game.
type ChessBot interface {
	BestMove(game *chess.Game) *chess.Move
	Name() string
}

// Report describes one engine search.
type Report struct {
	Move    string       `json:"move"`
	Score   Score        `json:"score"`
	Depth   int          `json:"depth"`
	Backend string       `json:"backend"`
	Stats   engine.Stats `json:"stats"`
}

// Score is a white-relative score that survives JSON encoding. Forced
// mates are infinite and are written as the strings "+inf" and "-inf".
type Score float64

func (s Score) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsInf(float64(s), 1):
		return []byte(`"+inf"`), nil
	case math.IsInf(float64(s), -1):
		return []byte(`"-inf"`), nil
	}
	return json.Marshal(float64(s))
}

// Analyzer is a bot that can explain its choice.
type Analyzer interface {
	ChessBot
	Analyze(game *chess.Game) (*chess.Move, Report, error)
}

// New builds a bot by name: "minimax" (same as "notnil"), "dragon",
// "newborn" or "random".
func New(name string, cfg config.Config) (ChessBot, error) {
	switch name = strings.ToLower(name); name {
	case "minimax", config.BackendNotnil, config.BackendDragon:
		if name == "minimax" {
			name = config.BackendNotnil
		}
		a, err := NewAnalyzer(name, cfg.Depth, cfg.LogSearchStats)
		if err != nil {
			return nil, err
		}
		return a, nil
	case "newborn":
		return NewNewbornBot(), nil
	case "random":
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return NewRandomBot(seed), nil
	}
	return nil, fmt.Errorf("bots: unknown bot %q", name)
}

// NewAnalyzer returns the engine bot for a backend name.
func NewAnalyzer(backend string, depth int, logStats bool) (Analyzer, error) {
	switch backend {
	case config.BackendNotnil:
		return &MinimaxBot{Depth: depth, LogStats: logStats}, nil
	case config.BackendDragon:
		return &DragonBot{Depth: depth, LogStats: logStats}, nil
	}
	return nil, fmt.Errorf("bots: unknown backend %q", backend)
}
