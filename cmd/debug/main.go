package main

import (
	"flag"
	"fmt"
	"log"

	"xionghan/internal/engine"
	"xionghan/internal/xiangqi"
)

func main() {
	weightsDir := flag.String("weights", ".", "directory containing the evaluator weight files")
	flag.Parse()

	b := xiangqi.NewBoard()
	fmt.Println(b.String())

	for _, side := range []xiangqi.Side{xiangqi.Upper, xiangqi.Lower} {
		moves := xiangqi.PseudoMoves(b, side)
		fmt.Printf("%v pseudo moves: %d\n", side, len(moves))
	}

	var ev engine.Evaluator
	if err := ev.Load(*weightsDir); err != nil {
		log.Printf("weights not loaded (%v); skipping evaluation", err)
		return
	}
	fmt.Printf("opening evaluation: %d\n", ev.Evaluate(b))
}
