package engine

import (
	"errors"
	"testing"

	"othello/internal/othello"
)

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
	}{
		{"", StrategyAlphaBeta},
		{"alphabeta", StrategyAlphaBeta},
		{" AlphaBeta-Alt ", StrategyAlphaBetaAlt},
		{"genetic", StrategyGenetic},
		{"hillclimb", StrategyHillClimb},
	}
	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseStrategy(%q)=%q,%v want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseStrategy("mcts"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestSelectMoveEveryStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.MaxDepth = 2
	pos := othello.NewInitialPosition()
	legal := pos.LegalMoves()
	for _, s := range Strategies {
		t.Run(string(s), func(t *testing.T) {
			got := newTestEngine(1, WithConfig(cfg)).SelectMove(pos, s)
			if !containsMove(legal, got) {
				t.Fatalf("%s picked %v, legal %v", s, got, legal)
			}
		})
	}
}
