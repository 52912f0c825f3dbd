package engine

import "math/rand"

// treeNode is a hand-built game tree node used as a stand-in rules engine.
type treeNode struct {
	turn     Color
	mate     bool
	over     bool
	inCheck  bool
	pieces   map[Square]Piece
	children []treeEdge
}

type treeEdge struct {
	move    int
	capture bool
	to      *treeNode
}

// treePos walks a treeNode graph with push/pop and records how it was used.
type treePos struct {
	path   []*treeNode
	pushes int
	pops   int
	gens   int
}

func newTreePos(root *treeNode) *treePos {
	return &treePos{path: []*treeNode{root}}
}

func (t *treePos) cur() *treeNode { return t.path[len(t.path)-1] }

func (t *treePos) Turn() Color { return t.cur().turn }

func (t *treePos) PieceAt(sq Square) (Piece, bool) {
	p, ok := t.cur().pieces[sq]
	return p, ok
}

func (t *treePos) IsCheckmate() bool { return t.cur().mate }
func (t *treePos) IsGameOver() bool  { return t.cur().over || t.cur().mate }
func (t *treePos) InCheck() bool     { return t.cur().inCheck || t.cur().mate }

func (t *treePos) LegalMoves() []int {
	t.gens++
	moves := make([]int, 0, len(t.cur().children))
	for _, e := range t.cur().children {
		moves = append(moves, e.move)
	}
	return moves
}

func (t *treePos) edge(m int) treeEdge {
	for _, e := range t.cur().children {
		if e.move == m {
			return e
		}
	}
	panic("treePos: illegal move")
}

func (t *treePos) IsCapture(m int) bool { return t.edge(m).capture }

func (t *treePos) Push(m int) {
	t.pushes++
	t.path = append(t.path, t.edge(m).to)
}

func (t *treePos) Pop() {
	if len(t.path) == 1 {
		panic("treePos: pop at root")
	}
	t.pops++
	t.path = t.path[:len(t.path)-1]
}

// leaf builds a node whose Evaluate score is exactly score, rounded toward
// zero to whole pawns. Pawns stand on the back ranks where every pawn table
// entry is zero, white on rank 1 and black on rank 8, so at most eight each.
func leaf(turn Color, score int) *treeNode {
	n := &treeNode{turn: turn, pieces: map[Square]Piece{}}
	for sq := Square(0); score >= 100; score -= 100 {
		n.pieces[sq] = Piece{Kind: Pawn, Color: White}
		sq++
	}
	for sq := Square(56); score <= -100; score += 100 {
		n.pieces[sq] = Piece{Kind: Pawn, Color: Black}
		sq++
	}
	return n
}

func inner(turn Color, children ...*treeNode) *treeNode {
	n := &treeNode{turn: turn, pieces: map[Square]Piece{}}
	for i, c := range children {
		n.children = append(n.children, treeEdge{move: i + 1, to: c})
	}
	return n
}

// randomTree grows a tree of the given depth with random material at the
// leaves, the occasional checkmate, and random check/capture flags.
func randomTree(r *rand.Rand, turn Color, depth int) *treeNode {
	if depth == 0 {
		n := &treeNode{turn: turn, pieces: map[Square]Piece{}}
		for i := r.Intn(6); i > 0; i-- {
			n.pieces[Square(r.Intn(NumSquares))] = Piece{
				Kind:  Kind(r.Intn(numKinds)),
				Color: Color(r.Intn(2)),
			}
		}
		return n
	}
	if r.Intn(12) == 0 {
		return &treeNode{turn: turn, mate: true, over: true}
	}
	n := &treeNode{turn: turn, pieces: map[Square]Piece{}}
	for i := 1 + r.Intn(4); i > 0; i-- {
		child := randomTree(r, turn.Other(), depth-1)
		child.inCheck = child.inCheck || r.Intn(4) == 0
		n.children = append(n.children, treeEdge{
			move:    len(n.children) + 1,
			capture: r.Intn(3) == 0,
			to:      child,
		})
	}
	return n
}
