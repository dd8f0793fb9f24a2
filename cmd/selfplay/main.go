// Command selfplay plays a random legal game against itself and prints the
// final board and FEN. It is a demonstration front-end for the rules engine,
// not part of the library surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blamedcloud/ChessAI/internal/engine"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for move selection")
	maxPlies := flag.Int("max-plies", 200, "stop after this many half-moves")
	verbose := flag.Bool("v", false, "print every move as it is played")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	game := engine.NewGame()

	plies := 0
	for plies < *maxPlies {
		moves := game.LegalMoves()
		if len(moves) == 0 {
			break
		}
		move := moves[rng.Intn(len(moves))]
		if *verbose {
			fmt.Printf("%3d. %v %v\n", game.FullmoveNumber(), game.Active(), move)
		}
		if err := game.Apply(move); err != nil {
			log.Fatalf("apply %v: %v", move, err)
		}
		plies++
	}

	fmt.Print(game.Board())
	fmt.Println(game.FEN())
	if result, ok := game.Result(); ok {
		fmt.Printf("result: %v after %d plies\n", result, plies)
	} else {
		fmt.Printf("no result after %d plies\n", plies)
	}
}
