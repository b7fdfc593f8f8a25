package othello

import "errors"

var ErrIllegalMove = errors.New("illegal move")

// Copy 深拷贝（Board 是数组，直接赋值即可）
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// ForPlayer 返回同一盘面、但由 side 行棋的视图，不改动 p
func (p *Position) ForPlayer(side Cell) *Position {
	cp := p.Copy()
	if cp.Current != side {
		cp.Current = side
		cp.Hash = cp.CalculateHash()
	}
	return cp
}

// MakeMove 原地落子：放子、翻子、换边。不合法时返回 false，盘面不变。
func (p *Position) MakeMove(m Move) bool {
	flips := p.Board.Flips(m.Row, m.Col, p.Current)
	if len(flips) == 0 {
		return false
	}
	p.EnsureHash()
	side := p.Current
	p.Board[m.Row][m.Col] = side
	p.Hash ^= cellHashKey(side, m.Row, m.Col)
	for _, f := range flips {
		// 翻子 = 去掉对方 + 放上己方
		p.Hash ^= cellHashKey(-side, f.Row, f.Col)
		p.Board[f.Row][f.Col] = side
		p.Hash ^= cellHashKey(side, f.Row, f.Col)
	}
	p.Current = Opponent(side)
	p.Hash ^= zobristSide
	return true
}

// Play 在副本上落子，p 本身不动
func (p *Position) Play(m Move) (*Position, bool) {
	child := p.Copy()
	if !child.MakeMove(m) {
		return nil, false
	}
	return child, true
}

// Pass 当前方无棋可走时让出一手
func (p *Position) Pass() {
	p.EnsureHash()
	p.Current = Opponent(p.Current)
	p.Hash ^= zobristSide
}

// IsGameOver 双方都没有合法着法（盘满也包含在内）
func (p *Position) IsGameOver() bool {
	return !p.hasMoves(PlayerA) && !p.hasMoves(PlayerB)
}

// Count 数 side 的棋子数
func (p *Position) Count(side Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.Board[r][c] == side {
				n++
			}
		}
	}
	return n
}

// Winner 按子数判胜负；平局返回 Empty。不检查是否终局。
func (p *Position) Winner() Cell {
	a, b := p.Count(PlayerA), p.Count(PlayerB)
	switch {
	case a > b:
		return PlayerA
	case b > a:
		return PlayerB
	default:
		return Empty
	}
}
