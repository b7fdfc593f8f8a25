package main

import (
	"fmt"

	"othello/internal/engine"
	"othello/internal/othello"
)

// 一盘棋最多 60 手落子，加上 pass 也不会超过这个数
const maxPlies = 128

type matchResult struct {
	Black, White engine.Strategy
	Winner       othello.Cell
	BlackDisks   int
	WhiteDisks   int
	Plies        int
}

// playGame 两个策略对下一盘，各用各的引擎
func playGame(black, white engine.Strategy, cfg engine.Config, opts ...engine.Option) (matchResult, error) {
	pos := othello.NewPosition(othello.ModeSelf)
	engines := map[othello.Cell]*engine.Engine{
		othello.PlayerA: engine.NewEngine(append([]engine.Option{engine.WithConfig(cfg)}, opts...)...),
		othello.PlayerB: engine.NewEngine(append([]engine.Option{engine.WithConfig(cfg)}, opts...)...),
	}
	strategies := map[othello.Cell]engine.Strategy{
		othello.PlayerA: black,
		othello.PlayerB: white,
	}

	plies := 0
	for ; plies < maxPlies && !pos.IsGameOver(); plies++ {
		if len(pos.LegalMoves()) == 0 {
			pos.Pass()
			continue
		}
		side := pos.Current
		mv := engines[side].SelectMove(pos, strategies[side])
		if !pos.MakeMove(mv) {
			return matchResult{}, fmt.Errorf("%s (%s) played %v: %w", strategies[side], side, mv, othello.ErrIllegalMove)
		}
	}

	return matchResult{
		Black:      black,
		White:      white,
		Winner:     pos.Winner(),
		BlackDisks: pos.Count(othello.PlayerA),
		WhiteDisks: pos.Count(othello.PlayerB),
		Plies:      plies,
	}, nil
}
