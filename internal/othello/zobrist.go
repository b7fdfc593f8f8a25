package othello

import "sync"

var (
	zobristOnce sync.Once

	zobristCells [2][NumSquares]uint64
	zobristSide  uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		// splitmix64，固定种子，保证各进程哈希一致
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for sq := 0; sq < NumSquares; sq++ {
				zobristCells[side][sq] = next()
			}
		}
		zobristSide = next()
	})
}

func cellHashKey(c Cell, row, col int) uint64 {
	if !onBoard(row, col) {
		return 0
	}
	sq := row*Size + col
	switch c {
	case PlayerA:
		return zobristCells[0][sq]
	case PlayerB:
		return zobristCells[1][sq]
	default:
		return 0
	}
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			h ^= cellHashKey(p.Board[r][c], r, c)
		}
	}
	if p.Current == PlayerB {
		h ^= zobristSide
	}
	return h
}

// EnsureHash 确保 Position.Hash 已初始化；返回当前哈希值。
func (p *Position) EnsureHash() uint64 {
	initZobrist()
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
