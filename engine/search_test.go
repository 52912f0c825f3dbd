package engine

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// minimax is an unpruned, unordered reference search.
func minimax(pos *treePos, depth int) float64 {
	if depth <= 0 || pos.IsGameOver() {
		return Evaluate(pos)
	}
	maximizing := pos.Turn() == White
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, m := range pos.LegalMoves() {
		pos.Push(m)
		v := minimax(pos, depth-1)
		pos.Pop()
		if maximizing {
			best = math.Max(best, v)
		} else {
			best = math.Min(best, v)
		}
	}
	return best
}

func TestSearchDepthZeroEvaluatesOnly(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		pos := newTreePos(randomTree(r, Color(i%2), 3))
		want := Evaluate(pos)
		for _, depth := range []int{0, -1, -5} {
			res := Search[int](pos, depth, math.Inf(-1), math.Inf(1))
			if res.Score != want {
				t.Fatalf("tree %d depth %d: search %v, evaluate %v", i, depth, res.Score, want)
			}
			if res.HasMove {
				t.Fatalf("tree %d depth %d: leaf returned a move", i, depth)
			}
		}
		if pos.pushes != 0 || pos.gens != 0 {
			t.Fatalf("tree %d: depth zero generated %d move lists and %d pushes", i, pos.gens, pos.pushes)
		}
	}
}

func TestSearchMatchesMinimax(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		depth := 1 + r.Intn(4)
		root := randomTree(r, Color(r.Intn(2)), depth)

		want := minimax(newTreePos(root), depth)
		pos := newTreePos(root)
		var s Searcher[int]
		got := s.Search(pos, depth, math.Inf(-1), math.Inf(1))
		if got.Score != want {
			t.Fatalf("tree %d depth %d: alpha-beta %v, minimax %v", i, depth, got.Score, want)
		}
		if pos.pushes != pos.pops || len(pos.path) != 1 {
			t.Fatalf("tree %d: unbalanced push/pop (%d/%d)", i, pos.pushes, pos.pops)
		}
	}
}

func TestSearchBestMoveMatchesScore(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		depth := 1 + r.Intn(3)
		root := randomTree(r, Color(r.Intn(2)), depth)
		pos := newTreePos(root)
		res := Search[int](pos, depth, math.Inf(-1), math.Inf(1))
		if !res.HasMove {
			continue
		}
		pos.Push(res.Move)
		v := minimax(pos, depth-1)
		pos.Pop()
		if v != res.Score {
			t.Fatalf("tree %d: move %d is worth %v but search reported %v", i, res.Move, v, res.Score)
		}
	}
}

func TestSearchPrunes(t *testing.T) {
	root := inner(White,
		inner(Black, leaf(White, 300), leaf(White, 500)),
		inner(Black, leaf(White, 200), leaf(White, 800)),
	)
	var s Searcher[int]
	res := s.Search(newTreePos(root), 2, math.Inf(-1), math.Inf(1))
	if res.Score != 300 || res.Move != 1 {
		t.Fatalf("got score %v move %d, want 300 move 1", res.Score, res.Move)
	}
	if s.Stats.Cutoffs != 1 {
		t.Fatalf("expected one cutoff in the second reply, got %d", s.Stats.Cutoffs)
	}
	if s.Stats.Leaves != 3 {
		t.Fatalf("expected the 800 leaf to be pruned, evaluated %d leaves", s.Stats.Leaves)
	}
}

func TestSelectMoveMaximizer(t *testing.T) {
	mate := &treeNode{turn: Black, mate: true}
	root := inner(White, leaf(Black, 300), mate, leaf(Black, 500))
	m, err := SelectMove[int](newTreePos(root), 1)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if m != 2 {
		t.Fatalf("expected the mating move 2, got %d", m)
	}
}

func TestSelectMoveMinimizer(t *testing.T) {
	root := inner(Black, leaf(White, -200), leaf(White, 100), leaf(White, -700))
	var s Searcher[int]
	res, err := s.Select(newTreePos(root), 1)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if res.Move != 3 || res.Score != -700 {
		t.Fatalf("got move %d score %v, want move 3 score -700", res.Move, res.Score)
	}
}

func TestSelectMoveKeepsFirstOfEqualMoves(t *testing.T) {
	root := inner(White, leaf(Black, 100), leaf(Black, 100), leaf(Black, 0))
	m, err := SelectMove[int](newTreePos(root), 1)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if m != 1 {
		t.Fatalf("expected first of the tied moves, got %d", m)
	}
}

func TestSelectMoveWhenEveryMoveLoses(t *testing.T) {
	lost := func() *treeNode { return &treeNode{turn: White, mate: true} }
	root := inner(White, lost(), lost())
	var s Searcher[int]
	res, err := s.Select(newTreePos(root), 1)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !math.IsInf(res.Score, -1) || res.Move != 1 {
		t.Fatalf("got move %d score %v, want move 1 at -Inf", res.Move, res.Score)
	}
}

func TestSelectMoveInvalidDepth(t *testing.T) {
	for _, depth := range []int{0, -3} {
		pos := newTreePos(inner(White, leaf(Black, 0)))
		_, err := SelectMove[int](pos, depth)
		if !errors.Is(err, ErrInvalidDepth) {
			t.Fatalf("depth %d: expected ErrInvalidDepth, got %v", depth, err)
		}
		if pos.pushes != 0 {
			t.Fatalf("depth %d: rejected search applied moves", depth)
		}
	}
}

func TestSelectMoveNoLegalMoves(t *testing.T) {
	var s Searcher[int]
	res, err := s.Select(newTreePos(&treeNode{turn: White}), 2)
	if !errors.Is(err, ErrNoMove) {
		t.Fatalf("expected ErrNoMove, got %v", err)
	}
	if !math.IsInf(res.Score, -1) {
		t.Fatalf("degenerate root should keep its sentinel score, got %v", res.Score)
	}

	_, err = SelectMove[int](newTreePos(&treeNode{turn: Black, mate: true}), 2)
	if !errors.Is(err, ErrNoMove) {
		t.Fatalf("expected ErrNoMove on a finished game, got %v", err)
	}
}
