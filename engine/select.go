package engine

import (
	"fmt"
	"math"
)

// Select searches pos from the root with an open window and returns the
// full result. depth must be at least one ply.
func (s *Searcher[M]) Select(pos Position[M], depth int) (Result[M], error) {
	if depth < 1 {
		return Result[M]{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	res := s.Search(pos, depth, math.Inf(-1), math.Inf(1))
	if !res.HasMove {
		return res, ErrNoMove
	}
	return res, nil
}

// SelectMove returns the move the search prefers for the side to move.
func SelectMove[M comparable](pos Position[M], depth int) (M, error) {
	var s Searcher[M]
	res, err := s.Select(pos, depth)
	return res.Move, err
}
