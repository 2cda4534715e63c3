package engine

import (
	"os"
	"path/filepath"
	"testing"

	"xionghan/internal/xiangqi"
)

func testEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	dir := t.TempDir()
	writeWeightFiles(t, dir)
	var ev Evaluator
	if err := ev.Load(dir); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return &ev
}

func TestMinimaxDeterministic(t *testing.T) {
	ev := testEvaluator(t)
	b := xiangqi.NewBoard()
	a := Minimax(ev, b, 2, scoreMin, scoreMax, true)
	c := Minimax(ev, b, 2, scoreMin, scoreMax, true)
	if a != c {
		t.Fatalf("minimax should be deterministic: got %d and %d", a, c)
	}
}

func TestMinimaxNegativeDepthPanics(t *testing.T) {
	ev := testEvaluator(t)
	b := xiangqi.NewBoard()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for negative depth")
		}
	}()
	Minimax(ev, b, -1, scoreMin, scoreMax, true)
}

func TestBestMoveOpeningReturnsLegalMove(t *testing.T) {
	ev := testEvaluator(t)
	b := xiangqi.NewBoard()
	mv, _ := BestMove(ev, b, xiangqi.Lower, 2)

	legal := false
	for _, m := range xiangqi.PseudoMoves(b, xiangqi.Lower) {
		if m == mv {
			legal = true
			break
		}
	}
	if !legal {
		t.Fatalf("best move %+v is not among lower's pseudo moves", mv)
	}

	b.Apply(mv)
	if xiangqi.IsWin(b, xiangqi.Upper) || xiangqi.IsWin(b, xiangqi.Lower) {
		t.Fatalf("a single opening reply must not end the game")
	}
}

func TestParallelAndSequentialBestMoveAgreeOnScore(t *testing.T) {
	ev := testEvaluator(t)
	for _, side := range []xiangqi.Side{xiangqi.Upper, xiangqi.Lower} {
		b := xiangqi.NewBoard()
		_, seqScore := BestMove(ev, b, side, 2)
		_, parScore := ParallelBestMove(ev, b, side, 2)
		if seqScore != parScore {
			t.Fatalf("side %v: sequential score %d != parallel score %d", side, seqScore, parScore)
		}
	}
}

func TestSplitChunksCoversEveryMoveExactlyOnce(t *testing.T) {
	ev := testEvaluator(t)
	_ = ev
	b := xiangqi.NewBoard()
	moves := xiangqi.PseudoMoves(b, xiangqi.Lower)
	chunks := splitChunks(moves, SplitChunks)

	seen := make(map[xiangqi.Move]int)
	for _, chunk := range chunks {
		for _, m := range chunk {
			seen[m]++
		}
	}
	if len(seen) != len(moves) {
		t.Fatalf("expected %d distinct moves across chunks, got %d", len(moves), len(seen))
	}
	for m, n := range seen {
		if n != 1 {
			t.Fatalf("move %+v appeared %d times across chunks", m, n)
		}
	}
}

func TestResolveWeightFileFallsBackToExecutableDir(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Skip("os.Executable unavailable in this environment")
	}
	exeDir := filepath.Dir(exe)
	name := "xiangqi_test_weight_probe.txt"
	path := filepath.Join(exeDir, name)
	if err := os.WriteFile(path, []byte("1"), 0o644); err != nil {
		t.Skip("cannot write next to the test binary")
	}
	defer os.Remove(path)

	got, err := resolveWeightFile(t.TempDir(), name)
	if err != nil {
		t.Fatalf("resolveWeightFile: %v", err)
	}
	if got != path {
		t.Fatalf("expected fallback to executable dir %s, got %s", path, got)
	}
}
