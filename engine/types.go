package engine

import "errors"

// Color is the side a piece belongs to. White is the maximizer.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind is a piece type.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

const numKinds = 6

var kindNames = [numKinds]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if int(k) < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Piece is a kind and a color. Pieces have no identity of their own.
type Piece struct {
	Kind  Kind
	Color Color
}

// Square indexes the 64 board cells rank-major from A1 (0) to H8 (63).
type Square uint8

const NumSquares = 64

var (
	// ErrNoMove is returned when a search finishes without a move to play.
	ErrNoMove = errors.New("engine: no move found")
	// ErrInvalidDepth is returned for search depths that cannot yield a move.
	ErrInvalidDepth = errors.New("engine: invalid search depth")
)

// Board is the read-only view the evaluator needs.
type Board interface {
	Turn() Color
	PieceAt(sq Square) (Piece, bool)
	IsCheckmate() bool
}

// Position is the rules engine consumed by the search. M is the engine's
// own move token; the search only compares, applies and returns it.
//
// Push and Pop must be strictly paired: Pop restores exactly the state
// before the matching Push.
type Position[M comparable] interface {
	Board
	LegalMoves() []M
	IsGameOver() bool
	InCheck() bool
	IsCapture(m M) bool
	Push(m M)
	Pop()
}

// Result is the outcome of a search call. HasMove is false at leaves.
type Result[M comparable] struct {
	Score   float64
	Move    M
	HasMove bool
}
