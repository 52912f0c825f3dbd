package position

import (
	"fmt"

	"chessbot/engine"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

// Dragon walks a dragontoothmg bitboard in place. Push keeps the unapply
// closure returned by Apply and Pop runs it.
type Dragon struct {
	board  dragontoothmg.Board
	undo   []func()
	legal  []dragontoothmg.Move
	cached bool
}

// DragonFromFEN parses fen into a bitboard. The FEN is checked with notnil
// first since the bitboard parser does not report malformed input.
func DragonFromFEN(fen string) (d *Dragon, err error) {
	if _, err := chess.FEN(fen); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	defer func() {
		if r := recover(); r != nil {
			d, err = nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, r)
		}
	}()
	return &Dragon{board: dragontoothmg.ParseFen(fen)}, nil
}

func (d *Dragon) LegalMoves() []dragontoothmg.Move {
	if !d.cached {
		d.legal = d.board.GenerateLegalMoves()
		d.cached = true
	}
	return d.legal
}

func (d *Dragon) IsGameOver() bool {
	return len(d.LegalMoves()) == 0
}

func (d *Dragon) IsCheckmate() bool {
	return d.IsGameOver() && d.board.OurKingInCheck()
}

func (d *Dragon) InCheck() bool {
	return d.board.OurKingInCheck()
}

func (d *Dragon) sides() (ours, theirs *dragontoothmg.Bitboards) {
	if d.board.Wtomove {
		return &d.board.White, &d.board.Black
	}
	return &d.board.Black, &d.board.White
}

// IsCapture reports whether m takes a piece, en passant included.
func (d *Dragon) IsCapture(m dragontoothmg.Move) bool {
	from, to := m.From(), m.To()
	ours, theirs := d.sides()
	if theirs.All&(uint64(1)<<to) != 0 {
		return true
	}
	return ours.Pawns&(uint64(1)<<from) != 0 && from%8 != to%8
}

func (d *Dragon) Push(m dragontoothmg.Move) {
	d.undo = append(d.undo, d.board.Apply(m))
	d.cached = false
}

func (d *Dragon) Pop() {
	n := len(d.undo)
	if n == 0 {
		panic("position: Pop without matching Push")
	}
	unapply := d.undo[n-1]
	d.undo[n-1] = nil
	d.undo = d.undo[:n-1]
	unapply()
	d.cached = false
}

func (d *Dragon) Turn() engine.Color {
	if d.board.Wtomove {
		return engine.White
	}
	return engine.Black
}

func (d *Dragon) PieceAt(sq engine.Square) (engine.Piece, bool) {
	bit := uint64(1) << sq
	if k, ok := kindAt(&d.board.White, bit); ok {
		return engine.Piece{Kind: k, Color: engine.White}, true
	}
	if k, ok := kindAt(&d.board.Black, bit); ok {
		return engine.Piece{Kind: k, Color: engine.Black}, true
	}
	return engine.Piece{}, false
}

func kindAt(bb *dragontoothmg.Bitboards, bit uint64) (engine.Kind, bool) {
	switch {
	case bb.All&bit == 0:
		return 0, false
	case bb.Pawns&bit != 0:
		return engine.Pawn, true
	case bb.Knights&bit != 0:
		return engine.Knight, true
	case bb.Bishops&bit != 0:
		return engine.Bishop, true
	case bb.Rooks&bit != 0:
		return engine.Rook, true
	case bb.Queens&bit != 0:
		return engine.Queen, true
	case bb.Kings&bit != 0:
		return engine.King, true
	}
	return 0, false
}

// MoveString renders m in UCI long algebraic form, e.g. "e7e8q".
func MoveString(m dragontoothmg.Move) string {
	return m.String()
}
