package bots

import (
	"chessbot/engine"
	"chessbot/position"

	"github.com/notnil/chess"
)

// NewbornBot does not search. It plays the head of the engine's move
// ordering: a check if it has one, else a capture, else the first quiet move.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil || game.Outcome() != chess.NoOutcome {
		return nil
	}
	pos, err := position.ChessFromGame(game)
	if err != nil {
		return nil
	}
	if moves := engine.OrderMoves[*chess.Move](pos); len(moves) > 0 {
		return moves[0]
	}
	return nil
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
