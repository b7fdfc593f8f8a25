package engine

import "othello/internal/othello"

// Weights 各评估项的权重。主评估函数不使用 Center / PotentialMobility。
type Weights struct {
	CoinParity        float64 `json:"coin_parity"`
	Mobility          float64 `json:"mobility"`
	Corner            float64 `json:"corner"`
	Stability         float64 `json:"stability"`
	Edge              float64 `json:"edge"`
	Center            float64 `json:"center"`
	PotentialMobility float64 `json:"potential_mobility"`
}

func DefaultWeights() Weights {
	return Weights{
		CoinParity: 1.0,
		Mobility:   2.0,
		Corner:     5.0,
		Stability:  3.0,
		Edge:       2.5,
	}
}

func DefaultAlternativeWeights() Weights {
	return Weights{
		CoinParity:        1.5,
		Mobility:          2.0,
		Corner:            6.0,
		Stability:         3.5,
		Edge:              2.0,
		Center:            2.0,
		PotentialMobility: 1.5,
	}
}

// Features 是各评估项的原始值（未加权）
type Features struct {
	CoinParity        float64
	Mobility          float64
	Corner            float64
	Stability         float64
	Edge              float64
	Center            float64
	PotentialMobility float64
}

func (f Features) Score(w Weights) float64 {
	return f.CoinParity*w.CoinParity +
		f.Mobility*w.Mobility +
		f.Corner*w.Corner +
		f.Stability*w.Stability +
		f.Edge*w.Edge +
		f.Center*w.Center +
		f.PotentialMobility*w.PotentialMobility
}

// Evaluate 主评估函数，从 pos.Current 的视角打分
func Evaluate(pos *othello.Position, w Weights) float64 {
	return PrimaryFeatures(pos).Score(w)
}

// EvaluateAlternative 备用评估函数
func EvaluateAlternative(pos *othello.Position, w Weights) float64 {
	return AlternativeFeatures(pos).Score(w)
}

// PrimaryFeatures 角和边按格子原值求和（对手占角是负数），不区分行棋方
func PrimaryFeatures(pos *othello.Position) Features {
	f := Features{
		CoinParity: coinParity(pos),
		Mobility:   mobility(pos),
		Stability:  float64(Stability(pos)),
	}
	for _, sq := range othello.Corners {
		f.Corner += float64(pos.Board[sq.Row][sq.Col])
	}
	for _, sq := range othello.Edges {
		f.Edge += float64(pos.Board[sq.Row][sq.Col])
	}
	return f
}

// AlternativeFeatures 角、边只数当前方的子，外加中心控制和潜在行动力
func AlternativeFeatures(pos *othello.Position) Features {
	me := pos.Current
	f := Features{
		CoinParity:        coinParity(pos),
		Mobility:          mobility(pos),
		Stability:         float64(Stability(pos)),
		Center:            float64(countOwned(pos, othello.InnerRegion, me)),
		PotentialMobility: float64(potentialMobility(pos)),
	}
	f.Corner = float64(countOwned(pos, othello.Corners[:], me))
	f.Edge = float64(countOwned(pos, othello.Edges, me))
	return f
}

func coinParity(pos *othello.Position) float64 {
	me := pos.Current
	return float64(pos.Count(me) - pos.Count(othello.Opponent(me)))
}

// 对手的行动力用同一盘面、换边后的视图来算
func mobility(pos *othello.Position) float64 {
	mine := len(pos.LegalMoves())
	theirs := len(pos.ForPlayer(othello.Opponent(pos.Current)).LegalMoves())
	return float64(mine - theirs)
}

func countOwned(pos *othello.Position, cells []othello.Move, side othello.Cell) int {
	n := 0
	for _, sq := range cells {
		if pos.Board[sq.Row][sq.Col] == side {
			n++
		}
	}
	return n
}

// 与对手棋子相邻的空格数
func potentialMobility(pos *othello.Position) int {
	opp := othello.Opponent(pos.Current)
	n := 0
	for r := 0; r < othello.Size; r++ {
		for c := 0; c < othello.Size; c++ {
			if pos.Board[r][c] != othello.Empty {
				continue
			}
			adjacent := false
			othello.ForEachNeighbor(r, c, func(nr, nc int) {
				if pos.Board[nr][nc] == opp {
					adjacent = true
				}
			})
			if adjacent {
				n++
			}
		}
	}
	return n
}
