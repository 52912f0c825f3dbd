package bots

import (
	"fmt"
	"log"

	"chessbot/config"
	"chessbot/engine"
	"chessbot/position"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

// DragonBot runs the same search over a dragontoothmg bitboard built from
// the game's FEN, then plays the matching move in the game.
type DragonBot struct {
	Depth    int
	LogStats bool
}

func NewDragonBot(depth int) *DragonBot {
	return &DragonBot{Depth: depth}
}

func (b *DragonBot) Name() string {
	return fmt.Sprintf("Dragon Bot (depth %d)", b.Depth)
}

func (b *DragonBot) BestMove(game *chess.Game) *chess.Move {
	move, _, err := b.Analyze(game)
	if err != nil {
		log.Printf("[bot] %s: %v", b.Name(), err)
		return nil
	}
	return move
}

func (b *DragonBot) Analyze(game *chess.Game) (*chess.Move, Report, error) {
	if game == nil {
		return nil, Report{}, fmt.Errorf("bots: nil game")
	}
	pos, err := position.DragonFromFEN(game.Position().String())
	if err != nil {
		return nil, Report{}, err
	}

	var s engine.Searcher[dragontoothmg.Move]
	res, err := s.Select(pos, b.Depth)
	rep := Report{Score: Score(res.Score), Depth: b.Depth, Backend: config.BackendDragon, Stats: s.Stats}
	if err != nil {
		return nil, rep, err
	}
	rep.Move = position.MoveString(res.Move)

	move := findMove(game, rep.Move)
	if move == nil {
		return nil, rep, fmt.Errorf("bots: %s is not legal in %s", rep.Move, game.Position())
	}
	if b.LogStats {
		logReport(rep)
	}
	return move, rep, nil
}

func findMove(game *chess.Game, uci string) *chess.Move {
	for _, m := range game.ValidMoves() {
		if m.String() == uci {
			return m
		}
	}
	return nil
}
