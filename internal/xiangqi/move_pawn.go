package xiangqi

func genPawnMoves(b *Board, from Pos, side Side, out *[]Move) {
	forward := Pos{Row: 1, Col: 0}
	crossed := from.Row > RIVER_UP
	if side == Lower {
		forward = Pos{Row: -1, Col: 0}
		crossed = from.Row < RIVER_DOWN
	}

	to := step(from, forward)
	if acceptable(b, to, side) {
		*out = append(*out, Move{From: from, To: to})
	}

	if !crossed {
		return
	}
	for _, dc := range [2]int{-1, 1} {
		to := Pos{Row: from.Row, Col: from.Col + dc}
		if acceptable(b, to, side) {
			*out = append(*out, Move{From: from, To: to})
		}
	}
}
