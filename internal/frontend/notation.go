package frontend

import (
	"fmt"

	"xionghan/internal/xiangqi"
)

// ErrBadMoveString is wrapped into every ParseMoveString failure.
var ErrBadMoveString = fmt.Errorf("frontend: malformed move string")

// colToFile and fileToCol convert between interior columns and the
// a..i file letters used on the wire, column 0 of the interior mapping
// to 'a'.
func colToFile(col int) byte { return byte('a' + (col - xiangqi.COL_BEGIN)) }
func fileToCol(file byte) (int, bool) {
	if file < 'a' || file > 'i' {
		return 0, false
	}
	return xiangqi.COL_BEGIN + int(file-'a'), true
}

// rowToRank and rankToRow convert between interior rows and the 0..9
// rank digits, rank 0 being the row nearest the Lower player — the
// bottom of storage order, i.e. ROW_END.
func rowToRank(row int) byte { return byte('0' + (xiangqi.ROW_END - row)) }
func rankToRow(rank byte) (int, bool) {
	if rank < '0' || rank > '9' {
		return 0, false
	}
	return xiangqi.ROW_END - int(rank-'0'), true
}

// FormatMoveString renders m as the 4-character wire form
// <file><rank><file><rank>.
func FormatMoveString(m xiangqi.Move) string {
	return string([]byte{
		colToFile(m.From.Col), rowToRank(m.From.Row),
		colToFile(m.To.Col), rowToRank(m.To.Row),
	})
}

// ParseMoveString parses the 4-character wire form into a Move. It
// validates only the textual shape (file/rank ranges); it does not
// check that the move is legal or pseudo-legal — that is
// LegalUserMove's job.
func ParseMoveString(s string) (xiangqi.Move, error) {
	if len(s) != 4 {
		return xiangqi.Move{}, fmt.Errorf("%w: %q: want exactly 4 characters", ErrBadMoveString, s)
	}
	fromCol, ok := fileToCol(s[0])
	if !ok {
		return xiangqi.Move{}, fmt.Errorf("%w: %q: bad from-file %q", ErrBadMoveString, s, s[0])
	}
	fromRow, ok := rankToRow(s[1])
	if !ok {
		return xiangqi.Move{}, fmt.Errorf("%w: %q: bad from-rank %q", ErrBadMoveString, s, s[1])
	}
	toCol, ok := fileToCol(s[2])
	if !ok {
		return xiangqi.Move{}, fmt.Errorf("%w: %q: bad to-file %q", ErrBadMoveString, s, s[2])
	}
	toRow, ok := rankToRow(s[3])
	if !ok {
		return xiangqi.Move{}, fmt.Errorf("%w: %q: bad to-rank %q", ErrBadMoveString, s, s[3])
	}
	return xiangqi.Move{
		From: xiangqi.Pos{Row: fromRow, Col: fromCol},
		To:   xiangqi.Pos{Row: toRow, Col: toCol},
	}, nil
}
