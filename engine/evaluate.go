package engine

import "math"

// Evaluate scores a position from white's point of view: positive favors
// white, negative favors black. A checkmated side to move scores as an
// infinite loss for that side. Stalemate and other draws are not special
// cased and score on material like any other position.
func Evaluate(b Board) float64 {
	if b.IsCheckmate() {
		if b.Turn() == Black {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}

	total := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		p, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		v := materialValue[p.Kind] + PositionalScore(p, sq)
		if p.Color == White {
			total += v
		} else {
			total -= v
		}
	}
	return float64(total)
}
