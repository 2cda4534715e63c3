// Command console is the thinnest possible frontend: a stdin/stdout
// loop with no coloring and no help command; it prints only the board's
// plain debug grid and a one-line usage prompt. It exists to exercise
// internal/frontend's session API, not to be a pleasant way to play.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"xionghan/internal/engine"
	"xionghan/internal/frontend"
	"xionghan/internal/xiangqi"
)

func main() {
	weightsDir := flag.String("weights", ".", "directory containing the evaluator weight files")
	userSide := flag.String("side", "lower", "side the user plays: upper or lower")
	flag.Parse()

	var ev engine.Evaluator
	if err := ev.Load(*weightsDir); err != nil {
		log.Fatalf("loading evaluator weights: %v", err)
	}

	side := xiangqi.Lower
	if *userSide == "upper" {
		side = xiangqi.Upper
	}
	session := frontend.NewGame(&ev, side)

	fmt.Println(session.Board().String())
	fmt.Println("enter moves as <file><rank><file><rank>, e.g. c3c4; 'hint', 'undo', 'reset', or 'quit'")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		switch line {
		case "quit":
			return
		case "hint":
			mv, d := session.Hint()
			fmt.Printf("hint: %s (%v)\n", frontend.FormatMoveString(mv), d)
			continue
		case "undo":
			session.UndoPair()
			fmt.Println(session.Board().String())
			continue
		case "reset":
			session.Reset()
			fmt.Println(session.Board().String())
			continue
		}

		mv, err := frontend.ParseMoveString(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		res := session.ApplyUserMove(mv)
		switch res.Outcome {
		case frontend.NotYourPiece:
			fmt.Println("that is not your piece")
		case frontend.Illegal:
			fmt.Println("illegal move")
		case frontend.UserWins:
			fmt.Println(session.Board().String())
			fmt.Println("you win")
			return
		case frontend.Continue:
			fmt.Printf("engine plays %s (%v)\n", frontend.FormatMoveString(res.EngineMove), res.EngineDuration)
			fmt.Println(session.Board().String())
			if res.EngineWins {
				fmt.Println("engine wins")
				return
			}
		}
	}
}
