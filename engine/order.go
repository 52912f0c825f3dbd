package engine

// OrderMoves returns the legal moves of pos with checking moves first, then
// captures, then everything else. Each band keeps the rules engine's order,
// and a move that both checks and captures goes in the check band.
func OrderMoves[M comparable](pos Position[M]) []M {
	moves := pos.LegalMoves()
	checks := make([]M, 0, len(moves))
	captures := make([]M, 0, len(moves))
	quiet := make([]M, 0, len(moves))
	for _, m := range moves {
		switch {
		case givesCheck(pos, m):
			checks = append(checks, m)
		case pos.IsCapture(m):
			captures = append(captures, m)
		default:
			quiet = append(quiet, m)
		}
	}
	ordered := append(checks, captures...)
	return append(ordered, quiet...)
}

func givesCheck[M comparable](pos Position[M], m M) bool {
	pos.Push(m)
	defer pos.Pop()
	return pos.InCheck()
}
