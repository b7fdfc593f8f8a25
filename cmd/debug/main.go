package main

import (
	"flag"
	"fmt"
	"os"

	"othello/internal/engine"
	"othello/internal/othello"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: opening)")
	depth := flag.Int("depth", 4, "alpha-beta depth")
	flag.Parse()

	pos := othello.NewInitialPosition()
	if *fen != "" {
		p, err := othello.DecodePosition(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pos = p
	}

	e := engine.NewEngine()
	fmt.Println(pos.String())
	fmt.Println("FEN:", pos.Encode())
	moves := pos.LegalMoves()
	fmt.Println("Legal moves:", len(moves), moves)
	fmt.Printf("Eval: %.2f  Alt eval: %.2f  Stability: %d\n",
		e.Evaluate(pos, false), e.Evaluate(pos, true), engine.Stability(pos))

	res := e.Search(pos, engine.SearchConfig{MaxDepth: *depth})
	fmt.Printf("Best: %v value=%.2f nodes=%d time=%v\n", res.Move, res.Value, res.Nodes, res.TimeUsed)
}
