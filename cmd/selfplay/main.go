// Command selfplay drives the engine against itself to a fixed move
// cap, printing the chosen move, its score, and the search duration at
// every turn. It exists to exercise and profile BestMove/ParallelBestMove
// across many positions, not to play interesting games.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/pkg/profile"

	"xionghan/internal/engine"
	"xionghan/internal/xiangqi"
)

func main() {
	weightsDir := flag.String("weights", ".", "directory containing the evaluator weight files")
	depth := flag.Int("depth", engine.SearchDepth, "search depth")
	maxMoves := flag.Int("maxmoves", 60, "max half-moves to play before stopping")
	parallel := flag.Bool("parallel", false, "use the parallel root-split search instead of the sequential one")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile for this run")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	var ev engine.Evaluator
	if err := ev.Load(*weightsDir); err != nil {
		log.Fatalf("loading evaluator weights: %v", err)
	}

	b := xiangqi.NewBoard()
	side := xiangqi.Lower

	for ply := 0; ply < *maxMoves; ply++ {
		start := time.Now()
		var mv xiangqi.Move
		var score int32
		if *parallel {
			mv, score = engine.ParallelBestMove(&ev, b, side, *depth)
		} else {
			mv, score = engine.BestMove(&ev, b, side, *depth)
		}
		elapsed := time.Since(start)

		moves := xiangqi.PseudoMoves(b, side)
		if len(moves) == 0 {
			log.Printf("ply %d: %v has no moves, stopping", ply, side)
			break
		}

		fmt.Printf("ply %d: %v plays %+v score=%d took=%v\n", ply, side, mv, score, elapsed)
		b.Apply(mv)

		if xiangqi.IsWin(b, side) {
			log.Printf("ply %d: %v wins", ply, side)
			break
		}
		side = xiangqi.Opposite(side)
	}

	log.Println("selfplay finished")
}
