package bots

import (
	"fmt"
	"log"

	"chessbot/config"
	"chessbot/engine"
	"chessbot/position"

	"github.com/notnil/chess"
)

// MinimaxBot searches the game's own notnil positions.
type MinimaxBot struct {
	Depth    int
	LogStats bool
}

func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{Depth: depth}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestMove(game *chess.Game) *chess.Move {
	move, _, err := b.Analyze(game)
	if err != nil {
		log.Printf("[bot] %s: %v", b.Name(), err)
		return nil
	}
	return move
}

func (b *MinimaxBot) Analyze(game *chess.Game) (*chess.Move, Report, error) {
	if game == nil {
		return nil, Report{}, fmt.Errorf("bots: nil game")
	}

	pos, err := position.ChessFromGame(game)
	if err != nil {
		return nil, Report{}, err
	}

	var s engine.Searcher[*chess.Move]
	res, err := s.Select(pos, b.Depth)
	rep := Report{Score: Score(res.Score), Depth: b.Depth, Backend: config.BackendNotnil, Stats: s.Stats}
	if err != nil {
		return nil, rep, err
	}
	rep.Move = res.Move.String()
	if b.LogStats {
		logReport(rep)
	}
	return res.Move, rep, nil
}

func logReport(rep Report) {
	log.Printf("[bot] %s depth=%d move=%s score=%v nodes=%d leaves=%d cutoffs=%d",
		rep.Backend, rep.Depth, rep.Move, rep.Score, rep.Stats.Nodes, rep.Stats.Leaves, rep.Stats.Cutoffs)
}
