package xiangqi

// PseudoMoves scans every interior cell and, for each piece belonging to
// side, dispatches to its piece-specific generator. Results respect
// movement geometry and capture rules but do not filter moves that leave
// the mover's own general exposed — the flying-general rule in
// genGeneralMoves is what punishes that, one ply later, during search.
//
// side must be Upper or Lower; any other value is a programmer error.
func PseudoMoves(b *Board, side Side) []Move {
	if side != Upper && side != Lower {
		panic("xiangqi: PseudoMoves called with invalid side")
	}
	var moves []Move
	for r := ROW_BEGIN; r <= ROW_END; r++ {
		for c := COL_BEGIN; c <= COL_END; c++ {
			from := Pos{Row: r, Col: c}
			pc := b.Get(from)
			if pc == Empty || pc.Side() != side {
				continue
			}
			switch pc.Kind() {
			case Pawn:
				genPawnMoves(b, from, side, &moves)
			case Cannon:
				genCannonMoves(b, from, side, &moves)
			case Rook:
				genRookMoves(b, from, side, &moves)
			case Knight:
				genKnightMoves(b, from, side, &moves)
			case Bishop:
				genBishopMoves(b, from, side, &moves)
			case Advisor:
				genAdvisorMoves(b, from, side, &moves)
			case General:
				genGeneralMoves(b, from, side, &moves)
			}
		}
	}
	return moves
}

// IsWin reports whether side has won: side's general is on the board and
// the opponent's is not. Mutual absence cannot occur under these rules —
// a general is only ever removed by a move that lands on its square, and
// at most one move is applied at a time.
func IsWin(b *Board, side Side) bool {
	return generalPresent(b, side) && !generalPresent(b, Opposite(side))
}

func generalPresent(b *Board, side Side) bool {
	top, bottom := NINE_PALACE_UP_TOP, NINE_PALACE_UP_BOTTOM
	if side == Lower {
		top, bottom = NINE_PALACE_DOWN_TOP, NINE_PALACE_DOWN_BOTTOM
	}
	want := MakePiece(side, General)
	for r := top; r <= bottom; r++ {
		for c := NINE_PALACE_LEFT; c <= NINE_PALACE_RIGHT; c++ {
			if b.Get(Pos{Row: r, Col: c}) == want {
				return true
			}
		}
	}
	return false
}
