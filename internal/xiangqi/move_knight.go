package xiangqi

// knightStep pairs a destination offset with the orthogonal "leg" cell
// that blocks it when occupied (the blocked-horse rule).
type knightStep struct {
	dest Pos
	leg  Pos
}

var knightSteps = [8]knightStep{
	{dest: Pos{Row: -2, Col: -1}, leg: Pos{Row: -1, Col: 0}},
	{dest: Pos{Row: -2, Col: 1}, leg: Pos{Row: -1, Col: 0}},
	{dest: Pos{Row: 2, Col: -1}, leg: Pos{Row: 1, Col: 0}},
	{dest: Pos{Row: 2, Col: 1}, leg: Pos{Row: 1, Col: 0}},
	{dest: Pos{Row: -1, Col: -2}, leg: Pos{Row: 0, Col: -1}},
	{dest: Pos{Row: 1, Col: -2}, leg: Pos{Row: 0, Col: -1}},
	{dest: Pos{Row: -1, Col: 2}, leg: Pos{Row: 0, Col: 1}},
	{dest: Pos{Row: 1, Col: 2}, leg: Pos{Row: 0, Col: 1}},
}

func genKnightMoves(b *Board, from Pos, side Side, out *[]Move) {
	for _, s := range knightSteps {
		legPos := step(from, s.leg)
		if b.Get(legPos) != Empty {
			continue // blocked horse leg
		}
		to := step(from, s.dest)
		if acceptable(b, to, side) {
			*out = append(*out, Move{From: from, To: to})
		}
	}
}
