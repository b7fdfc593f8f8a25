package othello

import "testing"

func TestHashInitializedFromInitialAndEncoding(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash, pos.CalculateHash())
	}

	decoded, err := DecodePosition(pos.Encode())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Hash != decoded.CalculateHash() {
		t.Fatalf("decoded hash mismatch: got=%d want=%d", decoded.Hash, decoded.CalculateHash())
	}
}

func TestMakeMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	pos := NewInitialPosition()
	for ply := 0; ply < 40; ply++ {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			if pos.IsGameOver() {
				return
			}
			pos.Pass()
			continue
		}
		mv := moves[len(moves)/2]
		if !pos.MakeMove(mv) {
			t.Fatalf("make move failed at ply %d: %+v", ply, mv)
		}
		if got, want := pos.Hash, pos.CalculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%+v", ply, got, want, mv)
		}
	}
}

func TestHashDependsOnSideToMove(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash == pos.ForPlayer(PlayerB).Hash {
		t.Fatalf("side to move should change the hash")
	}
}
