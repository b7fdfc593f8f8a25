package othello

// Cell 是棋盘格的取值：0=空，+1=黑(先手)，-1=白
type Cell int8

const (
	Empty   Cell = 0
	PlayerA Cell = 1  // 黑
	PlayerB Cell = -1 // 白
)

// Opponent 返回对手；Empty 仍然是 Empty
func Opponent(p Cell) Cell {
	return -p
}

func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "black"
	case PlayerB:
		return "white"
	default:
		return "empty"
	}
}

// PlayerMode 只是对局模式的标签，跟着 Position 一起复制，规则层不读它
type PlayerMode string

const (
	ModeFriend PlayerMode = "friend" // 人 vs 人
	ModeAI     PlayerMode = "ai"     // 人 vs AI
	ModeSelf   PlayerMode = "self"   // AI vs AI
)

type Board [Size][Size]Cell

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove 表示“没有着法”，所有选择器在无棋可走时返回它
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsValid() bool {
	return onBoard(m.Row, m.Col)
}

// Position = 棋盘 + 轮到谁走
type Position struct {
	Board   Board
	Current Cell
	Mode    PlayerMode
	Hash    uint64
}
