package xiangqi

import "testing"

func emptyBoard() *Board {
	b := &Board{}
	b.Reset()
	for r := ROW_BEGIN; r <= ROW_END; r++ {
		for c := COL_BEGIN; c <= COL_END; c++ {
			b.squares[r][c] = Empty
		}
	}
	b.history = nil
	return b
}

func hasMove(moves []Move, m Move) bool {
	for _, mv := range moves {
		if mv == m {
			return true
		}
	}
	return false
}

func TestCannonCapturesOnlyPastScreen(t *testing.T) {
	b := emptyBoard()
	cannon := Pos{Row: ROW_BEGIN + 4, Col: COL_BEGIN + 1}
	screen := Pos{Row: ROW_BEGIN + 4, Col: COL_BEGIN + 3}
	rook := Pos{Row: ROW_BEGIN + 4, Col: COL_BEGIN + 5}
	b.set(cannon, UpperCannon)
	b.set(screen, LowerPawn)
	b.set(rook, LowerRook)
	b.set(Pos{Row: NINE_PALACE_UP_TOP, Col: NINE_PALACE_LEFT + 1}, UpperGeneral)
	b.set(Pos{Row: NINE_PALACE_DOWN_TOP, Col: NINE_PALACE_LEFT + 1}, LowerGeneral)

	var moves []Move
	genCannonMoves(b, cannon, Upper, &moves)

	if hasMove(moves, Move{From: cannon, To: screen}) {
		t.Fatalf("cannon must not capture its own screen: %+v", moves)
	}
	if !hasMove(moves, Move{From: cannon, To: rook}) {
		t.Fatalf("cannon should capture past the screen: %+v", moves)
	}
	ride := Pos{Row: cannon.Row, Col: cannon.Col + 1}
	if !hasMove(moves, Move{From: cannon, To: ride}) {
		t.Fatalf("expected non-capturing ride move to %+v, got %+v", ride, moves)
	}
}

func TestKnightBlockedLeg(t *testing.T) {
	b := emptyBoard()
	knight := Pos{Row: ROW_BEGIN + 2, Col: COL_BEGIN + 2}
	leg := Pos{Row: ROW_BEGIN + 3, Col: COL_BEGIN + 2}
	b.set(knight, UpperKnight)
	b.set(leg, UpperPawn)

	var moves []Move
	genKnightMoves(b, knight, Upper, &moves)

	blocked := []Pos{
		{Row: knight.Row + 2, Col: knight.Col - 1},
		{Row: knight.Row + 2, Col: knight.Col + 1},
	}
	for _, dst := range blocked {
		if hasMove(moves, Move{From: knight, To: dst}) {
			t.Fatalf("leg-blocked destination %+v should not be reachable: %+v", dst, moves)
		}
	}
	if len(moves) != 6 {
		t.Fatalf("expected the 3 unblocked legs to give 6 destinations, got %d: %+v", len(moves), moves)
	}
}

func TestBishopCannotCrossRiver(t *testing.T) {
	b := emptyBoard()
	bishop := Pos{Row: RIVER_UP, Col: COL_BEGIN + 2}
	b.set(bishop, UpperBishop)

	var moves []Move
	genBishopMoves(b, bishop, Upper, &moves)

	for _, m := range moves {
		if m.To.Row > RIVER_UP {
			t.Fatalf("upper bishop must not cross the river: %+v", m)
		}
	}
}

func TestAdvisorMoveCounts(t *testing.T) {
	b := emptyBoard()
	center := Pos{Row: NINE_PALACE_UP_TOP + 1, Col: NINE_PALACE_LEFT + 1}
	b.set(center, UpperAdvisor)
	var moves []Move
	genAdvisorMoves(b, center, Upper, &moves)
	if len(moves) != 4 {
		t.Fatalf("advisor at palace center should have 4 moves, got %d", len(moves))
	}

	b2 := emptyBoard()
	corner := Pos{Row: NINE_PALACE_UP_TOP, Col: NINE_PALACE_LEFT}
	b2.set(corner, UpperAdvisor)
	var moves2 []Move
	genAdvisorMoves(b2, corner, Upper, &moves2)
	if len(moves2) != 1 {
		t.Fatalf("advisor at palace corner should have 1 move, got %d", len(moves2))
	}
}

func TestFlyingGeneralCapture(t *testing.T) {
	b := emptyBoard()
	upperGeneral := Pos{Row: ROW_BEGIN + 2, Col: COL_BEGIN + 5}
	lowerGeneral := Pos{Row: ROW_END, Col: COL_BEGIN + 5}
	b.set(upperGeneral, UpperGeneral)
	b.set(lowerGeneral, LowerGeneral)

	moves := PseudoMoves(b, Upper)
	if !hasMove(moves, Move{From: upperGeneral, To: lowerGeneral}) {
		t.Fatalf("expected flying-general capture move, got %+v", moves)
	}
}

func TestWinDetection(t *testing.T) {
	b := emptyBoard()
	b.set(Pos{Row: NINE_PALACE_UP_TOP, Col: NINE_PALACE_LEFT}, UpperGeneral)
	if !IsWin(b, Upper) {
		t.Fatalf("upper should win while its general is present and lower's is absent")
	}

	b.set(Pos{Row: NINE_PALACE_DOWN_TOP, Col: NINE_PALACE_LEFT}, LowerGeneral)
	if IsWin(b, Upper) || IsWin(b, Lower) {
		t.Fatalf("neither side should be winning while both generals are present")
	}

	b.set(Pos{Row: NINE_PALACE_DOWN_TOP, Col: NINE_PALACE_LEFT}, Empty)
	if !IsWin(b, Upper) {
		t.Fatalf("upper should win once lower's general is gone")
	}
	if IsWin(b, Lower) {
		t.Fatalf("lower should not be reported as winning")
	}
}

func TestOpeningFirstPseudoMoveIsNonTerminal(t *testing.T) {
	b := NewBoard()
	moves := PseudoMoves(b, Lower)
	if len(moves) == 0 {
		t.Fatalf("opening position must have pseudo moves for lower")
	}
	b.Apply(moves[0])
	if IsWin(b, Upper) || IsWin(b, Lower) {
		t.Fatalf("a single opening move must not end the game")
	}
}
