package engine

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"xionghan/internal/xiangqi"
)

// ErrLoad wraps every failure to load a weight file: missing, unreadable,
// or a short read. Fatal to the caller of Load — the engine cannot start
// without its tables.
var ErrLoad = errors.New("engine: failed to load evaluator weights")

const numPieceValues = int(xiangqi.LowerGeneral) + 1

// Evaluator holds the two process-scoped mappings the spec describes,
// bundled into a value loaded once and then passed around read-only —
// concurrent reads from every parallel search chunk are safe without
// locking because nothing ever mutates an Evaluator after Load returns.
type Evaluator struct {
	baseValue [numPieceValues]int32
	posValue  [numPieceValues][10][9]int32
}

var kindFileName = map[xiangqi.Kind]string{
	xiangqi.Pawn: "pawn", xiangqi.Cannon: "cannon", xiangqi.Rook: "rook",
	xiangqi.Knight: "knight", xiangqi.Bishop: "bishop", xiangqi.Advisor: "advisor",
	xiangqi.General: "general",
}

var pieceLoadOrder = [14]xiangqi.Piece{
	xiangqi.UpperPawn, xiangqi.UpperCannon, xiangqi.UpperRook, xiangqi.UpperKnight,
	xiangqi.UpperBishop, xiangqi.UpperAdvisor, xiangqi.UpperGeneral,
	xiangqi.LowerPawn, xiangqi.LowerCannon, xiangqi.LowerRook, xiangqi.LowerKnight,
	xiangqi.LowerBishop, xiangqi.LowerAdvisor, xiangqi.LowerGeneral,
}

// Load reads piece_value.txt and the 14 piece_pos_value_<side>_<type>.txt
// files from dir and populates e. Candidate directories are tried the
// way resolveWeightFile does: dir itself, then the directory the running
// executable lives in, mirroring the teacher's resolveModelPath fallback.
func (e *Evaluator) Load(dir string) error {
	path, err := resolveWeightFile(dir, "piece_value.txt")
	if err != nil {
		return err
	}
	values, err := readInts(path, 14)
	if err != nil {
		return err
	}
	for i, pc := range pieceLoadOrder {
		e.baseValue[pc] = int32(values[i])
	}

	for _, pc := range pieceLoadOrder {
		side := "up"
		if pc.Side() == xiangqi.Lower {
			side = "down"
		}
		name := fmt.Sprintf("piece_pos_value_%s_%s.txt", side, kindFileName[pc.Kind()])
		path, err := resolveWeightFile(dir, name)
		if err != nil {
			return err
		}
		values, err := readInts(path, 90)
		if err != nil {
			return err
		}
		for i, v := range values {
			e.posValue[pc][i/9][i%9] = int32(v)
		}
	}
	return nil
}

// resolveWeightFile looks for name in dir, then next to the running
// executable — the same candidate-search idiom the teacher uses to find
// its ONNX model file.
func resolveWeightFile(dir, name string) (string, error) {
	candidates := []string{filepath.Join(dir, name)}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), name))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s not found in %v", ErrLoad, name, candidates)
}

func readInts(path string, want int) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	defer f.Close()

	var values []int
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad integer %q: %v", ErrLoad, path, sc.Text(), err)
		}
		values = append(values, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	if len(values) < want {
		return nil, fmt.Errorf("%w: %s: short read, want %d integers got %d", ErrLoad, path, want, len(values))
	}
	return values[:want], nil
}

// Evaluate sums, over every non-empty interior cell, baseValue[piece] +
// posValue[piece][r'][c']. Upper values are loaded as negative quantities
// and Lower as positive, so higher scores favor Lower. Purely static: no
// mobility term, no king safety.
func (e *Evaluator) Evaluate(b *xiangqi.Board) int32 {
	var score int32
	for r := xiangqi.ROW_BEGIN; r <= xiangqi.ROW_END; r++ {
		for c := xiangqi.COL_BEGIN; c <= xiangqi.COL_END; c++ {
			pc := b.Get(xiangqi.Pos{Row: r, Col: c})
			if pc == xiangqi.Empty {
				continue
			}
			score += e.baseValue[pc] + e.posValue[pc][r-xiangqi.ROW_BEGIN][c-xiangqi.COL_BEGIN]
		}
	}
	return score
}
