package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"othello/internal/config"
	"othello/internal/engine"
	"othello/internal/othello"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	logLevel := flag.String("log-level", "", "log level (overrides config)")
	blackName := flag.String("black", "alphabeta", "strategy for black")
	whiteName := flag.String("white", "hillclimb", "strategy for white")
	games := flag.Int("games", 10, "number of games to play")
	workers := flag.Int("workers", runtime.NumCPU(), "games played in parallel")
	depth := flag.Int("depth", 0, "alpha-beta depth (0 keeps config)")
	swap := flag.Bool("swap", true, "swap colours every other game")
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level := file.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	config.SetupLogging(level)

	cfg := file.Engine()
	if *depth > 0 {
		cfg.Search.MaxDepth = *depth
	}
	black, err := engine.ParseStrategy(*blackName)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -black")
	}
	white, err := engine.ParseStrategy(*whiteName)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -white")
	}

	log.Info().
		Str("black", string(black)).
		Str("white", string(white)).
		Int("games", *games).
		Int("workers", *workers).
		Int("depth", cfg.Search.MaxDepth).
		Msg("selfplay starting")

	results := make([]matchResult, *games)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i := 0; i < *games; i++ {
		b, w := black, white
		if *swap && i%2 == 1 {
			b, w = white, black
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := playGame(b, w, cfg)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			log.Info().
				Int("game", i+1).
				Str("black", string(res.Black)).
				Str("white", string(res.White)).
				Int("black_disks", res.BlackDisks).
				Int("white_disks", res.WhiteDisks).
				Str("winner", res.Winner.String()).
				Msg("game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}

	wins, draws := tally(results)
	fmt.Printf("\n=== Final Score ===\n")
	for _, s := range []engine.Strategy{black, white} {
		fmt.Printf("%s: %d\n", s, wins[s])
		if black == white {
			break
		}
	}
	fmt.Printf("Draws: %d\n", draws)
}

// tally 按策略统计胜局
func tally(results []matchResult) (map[engine.Strategy]int, int) {
	wins := make(map[engine.Strategy]int)
	draws := 0
	for _, r := range results {
		switch r.Winner {
		case othello.PlayerA:
			wins[r.Black]++
		case othello.PlayerB:
			wins[r.White]++
		default:
			draws++
		}
	}
	return wins, draws
}
