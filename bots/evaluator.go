package bots

import (
	"chessbot/engine"
	"chessbot/position"

	"github.com/notnil/chess"
)

// Evaluate scores the game's current position from white's point of view.
func Evaluate(game *chess.Game) float64 {
	return engine.Evaluate(position.BoardOf(game.Position()))
}
