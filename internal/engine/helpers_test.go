package engine

import (
	"math/rand/v2"
	"testing"

	"othello/internal/othello"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

func newTestEngine(seed uint64, opts ...Option) *Engine {
	return NewEngine(append([]Option{WithRand(seeded(seed))}, opts...)...)
}

func mustDecode(t *testing.T, s string) *othello.Position {
	t.Helper()
	pos, err := othello.DecodePosition(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return pos
}

// playoutPositions 随机对弈，收集途中所有轮到有棋可走一方的局面
func playoutPositions(seed uint64, games int) []*othello.Position {
	rng := seeded(seed)
	var out []*othello.Position
	for g := 0; g < games; g++ {
		pos := othello.NewInitialPosition()
		for !pos.IsGameOver() {
			moves := pos.LegalMoves()
			if len(moves) == 0 {
				pos.Pass()
				continue
			}
			out = append(out, pos.Copy())
			pos.MakeMove(moves[rng.IntN(len(moves))])
		}
	}
	return out
}

func containsMove(moves []othello.Move, m othello.Move) bool {
	for _, mv := range moves {
		if mv == m {
			return true
		}
	}
	return false
}
