package xiangqi

import "strings"

// Board geometry. The interior is 10 rows by 9 columns; a two-cell
// sentinel border surrounds it on every side so neighborhood probes up to
// two cells away (knight, bishop) never need a bounds check — any
// off-board lookup returns Sentinel, which fails every "empty" or
// "same side" test a generator performs.
const (
	borderWidth = 2

	ROW_BEGIN = borderWidth
	ROW_END   = ROW_BEGIN + 9 // 10 interior rows: ROW_BEGIN..ROW_END inclusive
	COL_BEGIN = borderWidth
	COL_END   = COL_BEGIN + 8 // 9 interior cols: COL_BEGIN..COL_END inclusive

	storageRows = ROW_END + 1 + borderWidth
	storageCols = COL_END + 1 + borderWidth

	// River splits the interior in half between RIVER_UP and RIVER_DOWN.
	RIVER_UP   = (ROW_BEGIN + ROW_END) / 2     // Upper has crossed once row > RIVER_UP
	RIVER_DOWN = RIVER_UP + 1                  // Lower has crossed once row < RIVER_DOWN

	nineWidth = 3
	palaceMidCol       = (COL_BEGIN + COL_END) / 2
	NINE_PALACE_UP_TOP      = ROW_BEGIN
	NINE_PALACE_UP_BOTTOM   = ROW_BEGIN + nineWidth - 1
	NINE_PALACE_DOWN_TOP    = ROW_END - nineWidth + 1
	NINE_PALACE_DOWN_BOTTOM = ROW_END
	NINE_PALACE_LEFT        = palaceMidCol - 1
	NINE_PALACE_RIGHT       = palaceMidCol + 1
)

// Board is a fixed-size sentinel-bordered grid of pieces plus move
// history.
type Board struct {
	squares [storageRows][storageCols]Piece
	history []historyEntry
}

type historyEntry struct {
	move      Move
	fromPiece Piece
	toPiece   Piece
}

// NewBoard returns a Board set to the standard Xiangqi opening position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Get returns the piece at pos, including sentinel cells. Off-border
// lookups (further than the two-cell border) are a programmer error; the
// generators never produce them because every candidate position is
// reached by single-cell or two-cell steps from an interior cell.
func (b *Board) Get(pos Pos) Piece {
	return b.squares[pos.Row][pos.Col]
}

func (b *Board) set(pos Pos, p Piece) {
	b.squares[pos.Row][pos.Col] = p
}

// Place sets an interior cell directly, bypassing history. Used to build
// custom positions (tests, fixtures) — never by move generation or
// search, which only ever go through Apply/Undo.
func (b *Board) Place(pos Pos, p Piece) {
	b.set(pos, p)
}

// Apply writes move unconditionally: it does not validate legality. It
// records the move and the pre-move contents of both cells into history,
// empties from, and places the moved piece on to.
func (b *Board) Apply(move Move) {
	fromPiece := b.Get(move.From)
	toPiece := b.Get(move.To)
	b.history = append(b.history, historyEntry{move: move, fromPiece: fromPiece, toPiece: toPiece})
	b.set(move.From, Empty)
	b.set(move.To, fromPiece)
}

// Undo pops the last history record and restores both of its cells.
// No-op when history is empty.
func (b *Board) Undo() {
	n := len(b.history)
	if n == 0 {
		return
	}
	rec := b.history[n-1]
	b.history = b.history[:n-1]
	b.set(rec.move.From, rec.fromPiece)
	b.set(rec.move.To, rec.toPiece)
}

// Clone returns a deep, independent copy of the board, used by the
// parallel root split to hand each chunk its own board.
func (b *Board) Clone() *Board {
	nb := &Board{squares: b.squares}
	nb.history = append([]historyEntry(nil), b.history...)
	return nb
}

// initialRanks is the standard Xiangqi opening position, Upper's back
// rank first, read top to bottom the way the board is stored.
var initialRanks = []string{
	"RNBAGABNR",
	".........",
	".C.....C.",
	"P.P.P.P.P",
	".........",
	".........",
	"p.p.p.p.p",
	".c.....c.",
	".........",
	"rnbagabnr",
}

var letterToKind = map[byte]Kind{
	'r': Rook, 'n': Knight, 'b': Bishop, 'a': Advisor, 'g': General,
	'c': Cannon, 'p': Pawn,
}

// Reset reinstalls the opening position and empties history. The
// sentinel border is (re)written on every cell the interior does not
// cover, and is never touched afterwards.
func (b *Board) Reset() {
	for r := 0; r < storageRows; r++ {
		for c := 0; c < storageCols; c++ {
			if r < ROW_BEGIN || r > ROW_END || c < COL_BEGIN || c > COL_END {
				b.squares[r][c] = Sentinel
			} else {
				b.squares[r][c] = Empty
			}
		}
	}
	for i, rank := range initialRanks {
		row := ROW_BEGIN + i
		for j := 0; j < len(rank); j++ {
			ch := rank[j]
			if ch == '.' {
				continue
			}
			kind, ok := letterToKind[lower(ch)]
			if !ok {
				panic("xiangqi: bad initial rank character " + string(ch))
			}
			side := Upper
			if isLower(ch) {
				side = Lower
			}
			b.squares[row][COL_BEGIN+j] = MakePiece(side, kind)
		}
	}
	b.history = nil
}

func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
func lower(ch byte) byte {
	if isLower(ch) {
		return ch
	}
	return ch - 'A' + 'a'
}

var kindToLetter = map[Kind]byte{
	Rook: 'r', Knight: 'n', Bishop: 'b', Advisor: 'a', General: 'g',
	Cannon: 'c', Pawn: 'p',
}

// String renders the interior board as a 10x9 character grid, Upper's
// pieces uppercase, for debug logging. Not part of the frontend wire
// contract (that is the 4-character move string in internal/frontend).
func (b *Board) String() string {
	var sb strings.Builder
	for r := ROW_BEGIN; r <= ROW_END; r++ {
		for c := COL_BEGIN; c <= COL_END; c++ {
			p := b.squares[r][c]
			if p == Empty {
				sb.WriteByte('.')
				continue
			}
			ch := kindToLetter[p.Kind()]
			if p.Side() == Upper {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
