package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"chessbot/bots"
	"chessbot/config"

	"github.com/notnil/chess"
)

// playHuman runs a terminal game: the human enters moves in UCI or
// algebraic notation and the engine answers.
func playHuman(ctx context.Context, game *chess.Game, cfg config.Config, side string, in io.Reader, out io.Writer) error {
	var human chess.Color
	switch strings.ToLower(side) {
	case "white", "w":
		human = chess.White
	case "black", "b":
		human = chess.Black
	default:
		return fmt.Errorf("-play must be white or black, got %q", side)
	}
	engineBot, err := bots.NewAnalyzer(cfg.Backend, cfg.Depth, cfg.LogSearchStats)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for game.Outcome() == chess.NoOutcome {
		if err := ctx.Err(); err != nil {
			return err
		}
		if game.Position().Turn() != human {
			move, rep, err := engineBot.Analyze(game)
			if err != nil {
				return err
			}
			if err := game.Move(move); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s plays %s (score %v)\n", engineBot.Name(), move, float64(rep.Score))
			continue
		}

		fmt.Fprintln(out, game.Position().Board().Draw())
		fmt.Fprint(out, "your move: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return nil
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "quit" || text == "resign" {
			game.Resign(human)
			break
		}
		move := findMove(game, text)
		if move == nil {
			fmt.Fprintf(out, "illegal move %q\n", text)
			continue
		}
		if err := game.Move(move); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, game.Position().Board().Draw())
	fmt.Fprintf(out, "result: %s (%v)\n", game.Outcome(), game.Method())
	return nil
}

func findMove(game *chess.Game, text string) *chess.Move {
	var san chess.AlgebraicNotation
	pos := game.Position()
	for _, m := range game.ValidMoves() {
		if m.String() == text || san.Encode(pos, m) == text {
			return m
		}
	}
	return nil
}
