package engine

import (
	"testing"

	"othello/internal/othello"
)

// 角：(0,0)=O (0,7)=O (7,0)=X (7,7)=O；边：(0,1)=X (0,6)=X
const cornersFEN = "OX4XO/8/8/3OX3/3XO3/8/8/X6O"

func TestPrimaryCornerAndEdgeAreSignedSums(t *testing.T) {
	for _, side := range []string{" b", " w"} {
		pos := mustDecode(t, cornersFEN+side)
		f := PrimaryFeatures(pos)
		if f.Corner != -2 {
			t.Fatalf("%s: corner term=%v want -2 (raw cell sum)", side, f.Corner)
		}
		if f.Edge != 2 {
			t.Fatalf("%s: edge term=%v want 2", side, f.Edge)
		}
	}
}

func TestAlternativeCornerAndEdgeCountOwnDisks(t *testing.T) {
	cases := []struct {
		side          string
		corner, edges float64
	}{
		{" b", 1, 2},
		{" w", 3, 0},
	}
	for _, tc := range cases {
		pos := mustDecode(t, cornersFEN+tc.side)
		f := AlternativeFeatures(pos)
		if f.Corner != tc.corner || f.Edge != tc.edges {
			t.Fatalf("%s: corner=%v edge=%v want %v/%v", tc.side, f.Corner, f.Edge, tc.corner, tc.edges)
		}
	}
}

func TestAlternativeCornerAlwaysInRange(t *testing.T) {
	for _, pos := range playoutPositions(7, 20) {
		c := AlternativeFeatures(pos).Corner
		if c < 0 || c > 4 {
			t.Fatalf("alternative corner term %v out of [0,4] for %s", c, pos.Encode())
		}
	}
}

func TestOpeningEvaluations(t *testing.T) {
	pos := othello.NewInitialPosition()
	if got := Evaluate(pos, DefaultWeights()); got != 0 {
		t.Fatalf("primary eval of the opening=%v want 0", got)
	}
	// 中心 2 子 *2.0 + 潜在行动力 10 格 *1.5
	if got := EvaluateAlternative(pos, DefaultAlternativeWeights()); got != 19 {
		t.Fatalf("alternative eval of the opening=%v want 19", got)
	}
	f := AlternativeFeatures(pos)
	if f.Center != 2 || f.PotentialMobility != 10 {
		t.Fatalf("center=%v potential=%v", f.Center, f.PotentialMobility)
	}
}

func TestMobilityUsesOpponentViewOfSameBoard(t *testing.T) {
	// 白无棋可走，黑只有一步
	pos := mustDecode(t, "XO6/8/8/8/8/8/8/8 b")
	if got := PrimaryFeatures(pos).Mobility; got != 1 {
		t.Fatalf("mobility=%v want 1", got)
	}
	if got := PrimaryFeatures(pos.ForPlayer(othello.PlayerB)).Mobility; got != -1 {
		t.Fatalf("mobility from white=%v want -1", got)
	}
}

func TestWeightsAreConfigurable(t *testing.T) {
	pos := mustDecode(t, cornersFEN+" b")
	w := Weights{Corner: 1}
	if got := Evaluate(pos, w); got != -2 {
		t.Fatalf("corner-only eval=%v want -2", got)
	}
	if got := Evaluate(pos, Weights{}); got != 0 {
		t.Fatalf("zero weights should give 0, got %v", got)
	}
}

func TestEngineEvaluateMatchesPureFunctions(t *testing.T) {
	e := newTestEngine(1)
	for _, pos := range playoutPositions(3, 5) {
		want := Evaluate(pos, DefaultWeights())
		wantAlt := EvaluateAlternative(pos, DefaultAlternativeWeights())
		// 两次：第二次走缓存
		for i := 0; i < 2; i++ {
			if got := e.Evaluate(pos, false); got != want {
				t.Fatalf("primary: got %v want %v", got, want)
			}
			if got := e.Evaluate(pos, true); got != wantAlt {
				t.Fatalf("alternative: got %v want %v", got, wantAlt)
			}
		}
	}
}

func TestEvalCacheResetsWhenFull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EvalCacheSize = 4
	e := newTestEngine(1, WithConfig(cfg))
	for _, pos := range playoutPositions(5, 2) {
		e.Evaluate(pos, false)
		if len(e.evalCache) > cfg.EvalCacheSize {
			t.Fatalf("cache grew past its cap: %d", len(e.evalCache))
		}
	}
}

func TestEvalCacheSeesDirectBoardEdits(t *testing.T) {
	e := newTestEngine(1)
	pos := othello.NewInitialPosition()
	if got := e.Evaluate(pos, false); got != 0 {
		t.Fatalf("opening eval=%v want 0", got)
	}

	// 直接改盘面，Hash 没有跟着更新
	pos.Board[0][0] = othello.PlayerA
	want := Evaluate(pos, DefaultWeights())
	if want == 0 {
		t.Fatalf("edited position should not score 0")
	}
	if got := e.Evaluate(pos, false); got != want {
		t.Fatalf("after board edit: got %v want %v", got, want)
	}

	pos.Current = othello.PlayerB
	if got, want := e.Evaluate(pos, true), EvaluateAlternative(pos, DefaultAlternativeWeights()); got != want {
		t.Fatalf("after side edit: got %v want %v", got, want)
	}
}
