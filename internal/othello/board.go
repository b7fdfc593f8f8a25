package othello

const (
	Size       = 8
	NumSquares = Size * Size
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// 八个方向
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Corners 四个角
var Corners = [4]Move{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// Edges 边（不含角）：上下两行在前，左右两列在后
var Edges = func() []Move {
	out := make([]Move, 0, 24)
	for _, r := range []int{0, Size - 1} {
		for c := 1; c < Size-1; c++ {
			out = append(out, Move{r, c})
		}
	}
	for r := 1; r < Size-1; r++ {
		for _, c := range []int{0, Size - 1} {
			out = append(out, Move{r, c})
		}
	}
	return out
}()

// InnerRegion 中间 4x4（行列 2..5）
var InnerRegion = func() []Move {
	out := make([]Move, 0, 16)
	for r := 2; r < Size-2; r++ {
		for c := 2; c < Size-2; c++ {
			out = append(out, Move{r, c})
		}
	}
	return out
}()

func IsCorner(row, col int) bool {
	return (row == 0 || row == Size-1) && (col == 0 || col == Size-1)
}

// IsEdge 在边上但不是角
func IsEdge(row, col int) bool {
	if !onBoard(row, col) || IsCorner(row, col) {
		return false
	}
	return row == 0 || row == Size-1 || col == 0 || col == Size-1
}

// ForEachNeighbor 遍历 (row,col) 周围在棋盘内的 8 邻格
func ForEachNeighbor(row, col int, fn func(r, c int)) {
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		if onBoard(r, c) {
			fn(r, c)
		}
	}
}

// 标准开局：中间四子，黑先
func initialBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = PlayerB, PlayerB
	b[mid-1][mid], b[mid][mid-1] = PlayerA, PlayerA
	return b
}

// NewPosition 返回指定模式下的开局局面
func NewPosition(mode PlayerMode) *Position {
	pos := &Position{
		Board:   initialBoard(),
		Current: PlayerA,
		Mode:    mode,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

func NewInitialPosition() *Position {
	return NewPosition(ModeAI)
}
