package engine

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"othello/internal/othello"
)

// 搜索配置
type SearchConfig struct {
	MaxDepth           int  `json:"max_depth"`            // 最大搜索深度（ply）
	UseAlternativeEval bool `json:"use_alternative_eval"` // 叶子节点用备用评估函数
}

// 搜索结果
type SearchResult struct {
	Move     othello.Move  // 最佳着法；无棋可走或深度为 0 时是 NoMove
	Value    float64       // 评估值（根节点行棋方视角，越大越好）
	Depth    int           // 搜索深度
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间
}

// Search 根节点搜索。根节点总是极大层，所以要在 AI 行棋时调用。
func (e *Engine) Search(pos *othello.Position, cfg SearchConfig) SearchResult {
	start := time.Now()
	e.nodes = 0

	value, move := e.AlphaBeta(pos, cfg.MaxDepth, true, math.Inf(-1), math.Inf(1), cfg.UseAlternativeEval)

	res := SearchResult{
		Move:     move,
		Value:    value,
		Depth:    cfg.MaxDepth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
	}
	log.Debug().
		Int("depth", res.Depth).
		Bool("alternative", cfg.UseAlternativeEval).
		Int64("nodes", res.Nodes).
		Float64("value", res.Value).
		Interface("move", res.Move).
		Dur("took", res.TimeUsed).
		Msg("alphabeta-search")
	return res
}

// BestMove 只要着法，不要分数
func (e *Engine) BestMove(pos *othello.Position, maxDepth int, alternative bool) othello.Move {
	return e.Search(pos, SearchConfig{MaxDepth: maxDepth, UseAlternativeEval: alternative}).Move
}

// AlphaBeta 标准 minimax + alpha-beta 剪枝。
// 着法顺序就是规则层给出的顺序；每个子节点都在副本上走，pos 本身不会被修改。
// 无棋可走（pass）和深度耗尽一样直接返回静态评估。
func (e *Engine) AlphaBeta(pos *othello.Position, depth int, maximizing bool, alpha, beta float64, alternative bool) (float64, othello.Move) {
	e.nodes++

	if depth <= 0 || pos.IsGameOver() {
		return e.eval(pos, alternative), othello.NoMove
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return e.eval(pos, alternative), othello.NoMove
	}

	bestMove := othello.NoMove
	if maximizing {
		maxEval := math.Inf(-1)
		for _, mv := range moves {
			child := pos.Copy()
			child.MakeMove(mv)

			score, _ := e.AlphaBeta(child, depth-1, false, alpha, beta, alternative)
			// 严格大于才替换：同分保留先找到的
			if score > maxEval {
				maxEval = score
				bestMove = mv
			}
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return maxEval, bestMove
	}

	minEval := math.Inf(1)
	for _, mv := range moves {
		child := pos.Copy()
		child.MakeMove(mv)

		score, _ := e.AlphaBeta(child, depth-1, true, alpha, beta, alternative)
		if score < minEval {
			minEval = score
			bestMove = mv
		}
		beta = math.Min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return minEval, bestMove
}
