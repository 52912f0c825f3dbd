package bots

import (
	"context"
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// ErrNoMove is returned by Play when a bot has nothing to play in an
// unfinished game.
var ErrNoMove = errors.New("bots: bot returned no move")

// Ply is one half-move of a played game.
type Ply struct {
	Number int    `json:"ply"`
	Color  string `json:"color"`
	Bot    string `json:"bot"`
	Move   string `json:"move"`
	FEN    string `json:"fen"`
	Eval   Score  `json:"eval"`
}

// Play lets white and black alternate on game until it ends, maxPlies
// half-moves have been played, or ctx is cancelled. onPly, if set, sees
// every ply after it has been made.
func Play(ctx context.Context, game *chess.Game, white, black ChessBot, maxPlies int, onPly func(Ply)) error {
	for n := 1; n <= maxPlies && game.Outcome() == chess.NoOutcome; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		bot := white
		if game.Position().Turn() == chess.Black {
			bot = black
		}
		color := game.Position().Turn().Name()

		move := bot.BestMove(game)
		if move == nil {
			return fmt.Errorf("%w: %s as %s", ErrNoMove, bot.Name(), color)
		}
		if err := game.Move(move); err != nil {
			return fmt.Errorf("bots: %s played %s: %w", bot.Name(), move, err)
		}
		if onPly != nil {
			onPly(Ply{
				Number: n,
				Color:  color,
				Bot:    bot.Name(),
				Move:   move.String(),
				FEN:    game.Position().String(),
				Eval:   Score(Evaluate(game)),
			})
		}
	}
	return nil
}
