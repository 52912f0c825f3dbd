package engine

import "math"

// Stats counts the work done by a Searcher.
type Stats struct {
	Nodes   int `json:"nodes"`   // positions visited, leaves included
	Leaves  int `json:"leaves"`  // positions scored by Evaluate
	Cutoffs int `json:"cutoffs"` // move loops abandoned by alpha-beta
}

// Searcher runs depth-limited minimax with alpha-beta pruning over a
// Position. The zero value is ready to use; it is not safe for concurrent
// use because the position is walked in place.
type Searcher[M comparable] struct {
	Stats Stats
}

// Search returns the minimax value of pos searched to depth plies inside
// the (alpha, beta) window, along with the move that reaches it.
//
// Scores are absolute: white maximizes and black minimizes at every level.
// A depth of zero or less, or a finished game, evaluates pos as it stands
// without generating or applying any move.
func (s *Searcher[M]) Search(pos Position[M], depth int, alpha, beta float64) Result[M] {
	s.Stats.Nodes++
	if depth <= 0 || pos.IsGameOver() {
		s.Stats.Leaves++
		return Result[M]{Score: Evaluate(pos)}
	}

	maximizing := pos.Turn() == White
	best := Result[M]{Score: math.Inf(1)}
	if maximizing {
		best.Score = math.Inf(-1)
	}

	for _, m := range OrderMoves(pos) {
		value := s.child(pos, m, depth-1, alpha, beta)
		if maximizing {
			if !best.HasMove || value > best.Score {
				best = Result[M]{Score: value, Move: m, HasMove: true}
			}
			alpha = math.Max(alpha, value)
		} else {
			if !best.HasMove || value < best.Score {
				best = Result[M]{Score: value, Move: m, HasMove: true}
			}
			beta = math.Min(beta, value)
		}
		if beta <= alpha {
			s.Stats.Cutoffs++
			break
		}
	}
	return best
}

// child applies m, searches the resulting position and retracts m again,
// whichever way the recursion returns.
func (s *Searcher[M]) child(pos Position[M], m M, depth int, alpha, beta float64) float64 {
	pos.Push(m)
	defer pos.Pop()
	return s.Search(pos, depth, alpha, beta).Score
}

// Search runs a fresh Searcher over pos. See Searcher.Search.
func Search[M comparable](pos Position[M], depth int, alpha, beta float64) Result[M] {
	var s Searcher[M]
	return s.Search(pos, depth, alpha, beta)
}
