package engine

import "othello/internal/othello"

// Stability 粗略数当前方的“稳定子”：只看角、边、中间 4x4 三个区域；
// 边角上的子直接算稳定，中间区域要求 8 邻全是己方。
// 这是启发式，不是严格意义上的稳定子。
func Stability(pos *othello.Position) int {
	me := pos.Current
	regions := [][]othello.Move{othello.Corners[:], othello.Edges, othello.InnerRegion}

	count := 0
	for _, region := range regions {
		for _, sq := range region {
			if pos.Board[sq.Row][sq.Col] == me && isStableDisk(pos, sq.Row, sq.Col, me) {
				count++
			}
		}
	}
	return count
}

func isStableDisk(pos *othello.Position, row, col int, me othello.Cell) bool {
	if othello.IsCorner(row, col) || othello.IsEdge(row, col) {
		return true
	}
	surrounded := true
	othello.ForEachNeighbor(row, col, func(r, c int) {
		if pos.Board[r][c] != me {
			surrounded = false
		}
	})
	return surrounded
}
