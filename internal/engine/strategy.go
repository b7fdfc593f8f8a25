package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"othello/internal/othello"
)

type Strategy string

const (
	StrategyAlphaBeta    Strategy = "alphabeta"
	StrategyAlphaBetaAlt Strategy = "alphabeta-alt"
	StrategyGenetic      Strategy = "genetic"
	StrategyHillClimb    Strategy = "hillclimb"
)

var Strategies = []Strategy{
	StrategyAlphaBeta,
	StrategyAlphaBetaAlt,
	StrategyGenetic,
	StrategyHillClimb,
}

var ErrUnknownStrategy = errors.New("unknown strategy")

func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	if st == "" {
		return StrategyAlphaBeta, nil
	}
	if !lo.Contains(Strategies, st) {
		return "", fmt.Errorf("%w %q (want one of %v)", ErrUnknownStrategy, s, Strategies)
	}
	return st, nil
}

// SelectMove 按策略挑一步，参数取引擎配置
func (e *Engine) SelectMove(pos *othello.Position, s Strategy) othello.Move {
	switch s {
	case StrategyAlphaBetaAlt:
		cfg := e.cfg.Search
		cfg.UseAlternativeEval = true
		return e.Search(pos, cfg).Move
	case StrategyGenetic:
		return e.Genetic(pos, e.cfg.Genetic)
	case StrategyHillClimb:
		return e.HillClimb(pos, e.cfg.HillClimb)
	default:
		return e.Search(pos, e.cfg.Search).Move
	}
}
