package engine

import (
	"testing"
	"time"

	"othello/internal/othello"
)

func TestHillClimbNoMoves(t *testing.T) {
	pos := mustDecode(t, "XO6/8/8/8/8/8/8/8 w")
	if got := newTestEngine(1).HillClimb(pos, DefaultHillClimbConfig()); got != othello.NoMove {
		t.Fatalf("expected NoMove, got %v", got)
	}
}

func TestHillClimbZeroBudgetStillMoves(t *testing.T) {
	pos := othello.NewInitialPosition()
	legal := pos.LegalMoves()
	for seed := uint64(0); seed < 5; seed++ {
		got := newTestEngine(seed).HillClimb(pos, HillClimbConfig{TimeBudget: 0})
		if !containsMove(legal, got) {
			t.Fatalf("zero budget returned %v, want one of %v", got, legal)
		}
	}
}

func TestHillClimbPicksTheOnlyImprovingMove(t *testing.T) {
	found := 0
	for _, pos := range playoutPositions(77, 40) {
		start := Evaluate(pos, DefaultWeights())
		var better []othello.Move
		worse := 0
		moves := pos.LegalMoves()
		for _, mv := range moves {
			child, _ := pos.Play(mv)
			switch s := Evaluate(child, DefaultWeights()); {
			case s > start:
				better = append(better, mv)
			case s < start:
				worse++
			}
		}
		if len(better) != 1 || worse != len(moves)-1 {
			continue
		}
		found++
		got := newTestEngine(uint64(found)).HillClimb(pos, HillClimbConfig{TimeBudget: time.Minute})
		if got != better[0] {
			t.Fatalf("%s: hill climb picked %v, the only improving move is %v", pos.Encode(), got, better[0])
		}
	}
	if found == 0 {
		t.Fatalf("no position with exactly one improving move in the sample")
	}
	t.Logf("checked %d positions", found)
}

func TestHillClimbTiesKeepLastMove(t *testing.T) {
	// 权重全 0：每一步都和起点同分，>= 会一路采纳到最后一步
	cfg := DefaultConfig()
	cfg.Weights = Weights{}
	e := newTestEngine(1, WithConfig(cfg))
	pos := othello.NewInitialPosition()
	legal := pos.LegalMoves()
	if got := e.HillClimb(pos, HillClimbConfig{TimeBudget: time.Minute}); got != legal[len(legal)-1] {
		t.Fatalf("got %v want last tied move %v", got, legal[len(legal)-1])
	}
}

func TestHillClimbFallsBackToRandomLegalMove(t *testing.T) {
	// 开局每一步评估都比起点差，只能随机
	pos := othello.NewInitialPosition()
	legal := pos.LegalMoves()
	seen := map[othello.Move]bool{}
	for seed := uint64(0); seed < 40; seed++ {
		got := newTestEngine(seed).HillClimb(pos, HillClimbConfig{TimeBudget: time.Minute})
		if !containsMove(legal, got) {
			t.Fatalf("fallback returned illegal move %v", got)
		}
		seen[got] = true
	}
	if len(seen) < 2 {
		t.Fatalf("random fallback always returned the same move: %v", seen)
	}
}
