package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"othello/internal/othello"
)

type HillClimbConfig struct {
	// 每评估完一步检查一次；<=0 表示评估完第一步就停
	TimeBudget time.Duration `json:"time_budget"`
}

func DefaultHillClimbConfig() HillClimbConfig {
	return HillClimbConfig{TimeBudget: 5 * time.Second}
}

// HillClimb 贪心地看一层：起点分数是当前局面的主评估值，
// 不低于当前最好分数的着法都会被采纳（同分时后者胜出）。
// 一步都没采纳（包括超时）就随机走一步；无棋可走返回 NoMove。
func (e *Engine) HillClimb(pos *othello.Position, cfg HillClimbConfig) othello.Move {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return othello.NoMove
	}
	start := time.Now()

	bestScore := e.eval(pos, false)
	bestMove := othello.NoMove
	evaluated := 0
	for _, mv := range moves {
		score := e.scoreMove(pos, mv)
		evaluated++
		if score >= bestScore {
			bestScore = score
			bestMove = mv
		}
		if budgetExceeded(start, cfg.TimeBudget) {
			break
		}
	}

	fallback := !bestMove.IsValid()
	if fallback {
		bestMove = moves[e.rng.IntN(len(moves))]
	}
	log.Debug().
		Int("legal", len(moves)).
		Int("evaluated", evaluated).
		Bool("random_fallback", fallback).
		Interface("move", bestMove).
		Dur("took", time.Since(start)).
		Msg("hillclimb-search")
	return bestMove
}
