package othello

// flipsInDir 返回在 (row,col) 落 side 子时，沿 d 方向会被翻的子
func (b *Board) flipsInDir(row, col int, side Cell, d [2]int) []Move {
	opp := Opponent(side)
	var flips []Move
	r, c := row+d[0], col+d[1]
	for onBoard(r, c) && b[r][c] == opp {
		flips = append(flips, Move{r, c})
		r += d[0]
		c += d[1]
	}
	if len(flips) == 0 || !onBoard(r, c) || b[r][c] != side {
		return nil
	}
	return flips
}

// Flips 返回落子后会被翻转的全部棋子；空切片表示这一步不合法
func (b *Board) Flips(row, col int, side Cell) []Move {
	if !onBoard(row, col) || b[row][col] != Empty || side == Empty {
		return nil
	}
	var all []Move
	for _, d := range directions {
		all = append(all, b.flipsInDir(row, col, side, d)...)
	}
	return all
}

// 只判断能不能翻，不分配
func (b *Board) canFlip(row, col int, side Cell) bool {
	if b[row][col] != Empty {
		return false
	}
	opp := Opponent(side)
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		seen := false
		for onBoard(r, c) && b[r][c] == opp {
			seen = true
			r += d[0]
			c += d[1]
		}
		if seen && onBoard(r, c) && b[r][c] == side {
			return true
		}
	}
	return false
}

// LegalMovesFor 生成 side 的全部合法着法，按行优先顺序
func (p *Position) LegalMovesFor(side Cell) []Move {
	if side == Empty {
		return nil
	}
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.Board.canFlip(r, c, side) {
				moves = append(moves, Move{r, c})
			}
		}
	}
	return moves
}

// LegalMoves 当前行棋方的合法着法
func (p *Position) LegalMoves() []Move {
	return p.LegalMovesFor(p.Current)
}

func (p *Position) hasMoves(side Cell) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.Board.canFlip(r, c, side) {
				return true
			}
		}
	}
	return false
}

// IsLegal 判断某一步对当前行棋方是否合法
func (p *Position) IsLegal(m Move) bool {
	return m.IsValid() && p.Board.canFlip(m.Row, m.Col, p.Current)
}
