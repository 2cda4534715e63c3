package engine

import (
	"math"

	"golang.org/x/sync/errgroup"

	"xionghan/internal/xiangqi"
)

// SearchDepth is the fixed ply depth explored beneath each root move.
// There is no iterative deepening and no time management: every search
// runs to exactly this depth.
const SearchDepth = 3

// SplitChunks is the maximum number of contiguous chunks the parallel
// root split divides the root move list into.
const SplitChunks = 32

const (
	scoreMax = math.MaxInt32
	scoreMin = -math.MaxInt32
)

// Minimax is the alpha-beta recursive contract: Lower is the maximizer,
// Upper is the minimizer. Depth 0 returns the static evaluation. Move
// order is always the generator's order — no sorting, no killer moves,
// no transposition table.
func Minimax(ev *Evaluator, b *xiangqi.Board, depth int, alpha, beta int32, maximizing bool) int32 {
	if depth < 0 {
		panic("engine: Minimax called with negative depth")
	}
	if depth == 0 {
		return ev.Evaluate(b)
	}

	side := xiangqi.Upper
	if maximizing {
		side = xiangqi.Lower
	}
	moves := xiangqi.PseudoMoves(b, side)

	if maximizing {
		best := int32(scoreMin)
		for _, mv := range moves {
			b.Apply(mv)
			score := Minimax(ev, b, depth-1, alpha, beta, false)
			b.Undo()
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := int32(scoreMax)
	for _, mv := range moves {
		b.Apply(mv)
		score := Minimax(ev, b, depth-1, alpha, beta, true)
		b.Undo()
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// nextIsMaximizing reports whether the side to move after side has
// played is Lower (the maximizer): after Upper moves it is Lower's turn,
// which is a maximizing node, and vice versa.
func nextIsMaximizing(side xiangqi.Side) bool {
	return xiangqi.Opposite(side) == xiangqi.Lower
}

// BestMove enumerates pseudo-moves for side, scores each by recursing
// into Minimax, and returns the one side prefers: the minimum score for
// Upper, the maximum for Lower. Ties are broken by latest-in-generation-
// order because the comparisons use <=/>=. The caller must not invoke
// this in a terminal position — the return value is unspecified if moves
// is empty.
func BestMove(ev *Evaluator, b *xiangqi.Board, side xiangqi.Side, depth int) (xiangqi.Move, int32) {
	if side != xiangqi.Upper && side != xiangqi.Lower {
		panic("engine: BestMove called with invalid side")
	}
	moves := xiangqi.PseudoMoves(b, side)
	maximizing := nextIsMaximizing(side)

	var bestMove xiangqi.Move
	var bestScore int32
	if side == xiangqi.Upper {
		bestScore = scoreMax
	} else {
		bestScore = scoreMin
	}

	for _, mv := range moves {
		b.Apply(mv)
		score := Minimax(ev, b, depth, scoreMin, scoreMax, maximizing)
		b.Undo()

		if side == xiangqi.Upper {
			if score <= bestScore {
				bestScore = score
				bestMove = mv
			}
		} else {
			if score >= bestScore {
				bestScore = score
				bestMove = mv
			}
		}
	}
	return bestMove, bestScore
}

// ParallelBestMove partitions the root move list into up to SplitChunks
// contiguous chunks and searches each chunk independently on a cloned
// board, with its own fresh alpha/beta window — no sharing across
// chunks, matching the teacher's per-goroutine board-cloning rationale
// ("每个 goroutine 用自己的 Engine/TT，避免加锁和 map 竞争"). errgroup.Group
// drives the fan-out/join instead of a bare sync.WaitGroup; nothing here
// can fail, so Wait's error return is always nil.
//
// The source engine this was distilled from passes maximizing=true to
// every chunk regardless of which side the root search is for, which is
// only correct for Upper. This implementation instead reuses the
// sequential BestMove's nextIsMaximizing(side) convention for both
// sides, per the resolution recorded in DESIGN.md.
func ParallelBestMove(ev *Evaluator, b *xiangqi.Board, side xiangqi.Side, depth int) (xiangqi.Move, int32) {
	if side != xiangqi.Upper && side != xiangqi.Lower {
		panic("engine: ParallelBestMove called with invalid side")
	}
	moves := xiangqi.PseudoMoves(b, side)
	if len(moves) == 0 {
		var zero xiangqi.Move
		return zero, 0
	}

	chunks := splitChunks(moves, SplitChunks)
	type chunkResult struct {
		move  xiangqi.Move
		score int32
	}
	results := make([]chunkResult, len(chunks))

	var g errgroup.Group
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			board := b.Clone()
			move, score := bestMoveAmong(ev, board, side, depth, chunk)
			results[i] = chunkResult{move: move, score: score}
			return nil
		})
	}
	_ = g.Wait()

	var bestMove xiangqi.Move
	var bestScore int32
	if side == xiangqi.Upper {
		bestScore = scoreMax
	} else {
		bestScore = scoreMin
	}
	for _, r := range results {
		if side == xiangqi.Upper {
			if r.score <= bestScore {
				bestScore = r.score
				bestMove = r.move
			}
		} else {
			if r.score >= bestScore {
				bestScore = r.score
				bestMove = r.move
			}
		}
	}
	return bestMove, bestScore
}

// bestMoveAmong runs the sequential root-reduction rule over a
// caller-supplied subset of the root moves, against a private board.
func bestMoveAmong(ev *Evaluator, b *xiangqi.Board, side xiangqi.Side, depth int, moves []xiangqi.Move) (xiangqi.Move, int32) {
	maximizing := nextIsMaximizing(side)
	var bestMove xiangqi.Move
	var bestScore int32
	if side == xiangqi.Upper {
		bestScore = scoreMax
	} else {
		bestScore = scoreMin
	}
	for _, mv := range moves {
		b.Apply(mv)
		score := Minimax(ev, b, depth, scoreMin, scoreMax, maximizing)
		b.Undo()
		if side == xiangqi.Upper {
			if score <= bestScore {
				bestScore = score
				bestMove = mv
			}
		} else {
			if score >= bestScore {
				bestScore = score
				bestMove = mv
			}
		}
	}
	return bestMove, bestScore
}

// splitChunks divides moves into up to n contiguous chunks of size
// floor(len(moves)/n), the last chunk taking any remainder; if that
// size would be zero, each move gets its own chunk.
func splitChunks(moves []xiangqi.Move, n int) [][]xiangqi.Move {
	size := len(moves) / n
	if size == 0 {
		chunks := make([][]xiangqi.Move, len(moves))
		for i, mv := range moves {
			chunks[i] = []xiangqi.Move{mv}
		}
		return chunks
	}
	var chunks [][]xiangqi.Move
	for start := 0; start < len(moves); start += size {
		end := start + size
		if end > len(moves) || len(moves)-end < size || len(chunks) == n-1 {
			end = len(moves)
		}
		chunks = append(chunks, moves[start:end])
		if end == len(moves) {
			break
		}
	}
	return chunks
}
