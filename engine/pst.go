package engine

// Material weights in centipawns. The king weight only keeps the material
// sum well defined; mate is scored separately by Evaluate.
var materialValue = [numKinds]int{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// Piece-square tables from white's point of view, indexed A1..H8.
var (
	pawnTable = [NumSquares]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightTable = [NumSquares]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}

	bishopTable = [NumSquares]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}

	rookTable = [NumSquares]int{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	queenTable = [NumSquares]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}

	kingTable = [NumSquares]int{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
)

// pieceSquare holds one table per (color, kind). Black's pawn, bishop, rook
// and king tables are white's reversed; knight and queen share one table.
var pieceSquare = buildPieceSquare()

func buildPieceSquare() (t [2][numKinds][NumSquares]int) {
	t[White] = [numKinds][NumSquares]int{
		Pawn:   pawnTable,
		Knight: knightTable,
		Bishop: bishopTable,
		Rook:   rookTable,
		Queen:  queenTable,
		King:   kingTable,
	}
	t[Black] = [numKinds][NumSquares]int{
		Pawn:   reversed(pawnTable),
		Knight: knightTable,
		Bishop: reversed(bishopTable),
		Rook:   reversed(rookTable),
		Queen:  queenTable,
		King:   reversed(kingTable),
	}
	return t
}

func reversed(src [NumSquares]int) (dst [NumSquares]int) {
	for i, v := range src {
		dst[NumSquares-1-i] = v
	}
	return dst
}

// PositionalScore returns the piece-square bonus for p standing on sq.
func PositionalScore(p Piece, sq Square) int {
	return pieceSquare[p.Color][p.Kind][sq]
}

// MaterialValue returns the material weight of a piece kind.
func MaterialValue(k Kind) int {
	return materialValue[k]
}
