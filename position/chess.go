package position

import (
	"errors"
	"fmt"

	"chessbot/engine"

	"github.com/notnil/chess"
)

// ErrInvalidFEN is returned for starting positions that cannot be parsed.
var ErrInvalidFEN = errors.New("position: invalid FEN")

var chessKinds = map[chess.PieceType]engine.Kind{
	chess.Pawn:   engine.Pawn,
	chess.Knight: engine.Knight,
	chess.Bishop: engine.Bishop,
	chess.Rook:   engine.Rook,
	chess.Queen:  engine.Queen,
	chess.King:   engine.King,
}

// Chess walks notnil/chess positions for the search. notnil positions are
// immutable, so Push keeps the successor on a stack and Pop drops it.
type Chess struct {
	stack     []*chess.Position
	moves     []*chess.Move
	rootCheck bool
}

// NewChess starts a walk at pos.
func NewChess(pos *chess.Position) (*Chess, error) {
	check, err := rootInCheck(pos)
	if err != nil {
		return nil, err
	}
	return &Chess{stack: []*chess.Position{pos}, rootCheck: check}, nil
}

// ChessFromGame starts a walk at the current position of g. The check flag
// comes from the last move's tag when the game has a history.
func ChessFromGame(g *chess.Game) (*Chess, error) {
	moves := g.Moves()
	if len(moves) == 0 {
		return NewChess(g.Position())
	}
	return &Chess{
		stack:     []*chess.Position{g.Position()},
		rootCheck: moves[len(moves)-1].HasTag(chess.Check),
	}, nil
}

// BoardOf is a read-only view of pos for evaluation. It does not know
// whether the side to move is in check.
func BoardOf(pos *chess.Position) engine.Board {
	return &Chess{stack: []*chess.Position{pos}}
}

// *chess.Position exposes no in-check query, so a position without a move
// history is asked through the bitboard.
func rootInCheck(pos *chess.Position) (bool, error) {
	if pos.Status() == chess.Checkmate {
		return true, nil
	}
	d, err := DragonFromFEN(pos.String())
	if err != nil {
		return false, err
	}
	return d.InCheck(), nil
}

// ChessFromFEN parses fen and starts a walk at it.
func ChessFromFEN(fen string) (*Chess, error) {
	g, err := NewGame(fen)
	if err != nil {
		return nil, err
	}
	return ChessFromGame(g)
}

// NewGame builds a notnil game from a FEN string, or the standard starting
// position when fen is empty.
func NewGame(fen string) (*chess.Game, error) {
	if fen == "" {
		return chess.NewGame(), nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	return chess.NewGame(opt), nil
}

// Position returns the notnil position currently on top of the stack.
func (c *Chess) Position() *chess.Position {
	return c.stack[len(c.stack)-1]
}

func (c *Chess) LegalMoves() []*chess.Move {
	return c.Position().ValidMoves()
}

func (c *Chess) IsGameOver() bool {
	return c.Position().Status() != chess.NoMethod
}

func (c *Chess) IsCheckmate() bool {
	return c.Position().Status() == chess.Checkmate
}

// InCheck reports whether the side to move is in check. Below the root this
// is the check tag of the move that was pushed.
func (c *Chess) InCheck() bool {
	if n := len(c.moves); n > 0 {
		return c.moves[n-1].HasTag(chess.Check)
	}
	return c.rootCheck
}

func (c *Chess) IsCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

func (c *Chess) Push(m *chess.Move) {
	c.stack = append(c.stack, c.Position().Update(m))
	c.moves = append(c.moves, m)
}

func (c *Chess) Pop() {
	if len(c.moves) == 0 {
		panic("position: Pop without matching Push")
	}
	c.stack[len(c.stack)-1] = nil
	c.stack = c.stack[:len(c.stack)-1]
	c.moves = c.moves[:len(c.moves)-1]
}

func (c *Chess) Turn() engine.Color {
	if c.Position().Turn() == chess.White {
		return engine.White
	}
	return engine.Black
}

func (c *Chess) PieceAt(sq engine.Square) (engine.Piece, bool) {
	p := c.Position().Board().Piece(chess.Square(sq))
	if p == chess.NoPiece {
		return engine.Piece{}, false
	}
	color := engine.White
	if p.Color() == chess.Black {
		color = engine.Black
	}
	return engine.Piece{Kind: chessKinds[p.Type()], Color: color}, true
}
