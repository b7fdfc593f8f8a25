package httpserver

import (
	"github.com/samber/lo"

	"othello/internal/othello"
)

// 前端用的着法结构
type MoveDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func dtoToMove(m MoveDTO) othello.Move {
	return othello.Move{Row: m.Row, Col: m.Col}
}

func moveToDTO(m othello.Move) MoveDTO {
	return MoveDTO{Row: m.Row, Col: m.Col}
}

func movesToDTO(ms []othello.Move) []MoveDTO {
	return lo.Map(ms, func(m othello.Move, _ int) MoveDTO { return moveToDTO(m) })
}

// 1=黑, -1=白
func sideToInt(c othello.Cell) int {
	return int(c)
}

// NewGame 请求
type NewGameRequest struct {
	Mode     string `json:"mode"`     // friend / ai / self
	Strategy string `json:"strategy"` // 人机对局里 AI 的策略
}

// NewGame / State / Play / Pass 的返回
type GameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"` // FEN-like 字符串
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
	Black      int       `json:"black"`
	White      int       `json:"white"`
	Strategy   string    `json:"strategy"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// AiMoveRequest 请求让 AI 为局面想一步（只思考不落子）
type AiMoveRequest struct {
	GameID   string `json:"game_id"`  // 给了就用对局里的局面和策略
	Position string `json:"position"` // 没有 game_id 时用这个局面
	Strategy string `json:"strategy"`

	MaxDepth    int   `json:"max_depth"`
	TimeMs      int64 `json:"time_ms"`     // 遗传/爬山的时间预算
	Generations int   `json:"generations"` // 遗传算法代数
}

type AiMoveResponse struct {
	BestMove MoveDTO `json:"best_move"` // 无棋可走时是 {-1,-1}
	Score    float64 `json:"score"`     // 只有 alpha-beta 有意义
	Strategy string  `json:"strategy"`
	Nodes    int64   `json:"nodes"`
	Depth    int     `json:"depth"` // 实际搜索深度（已按空格数和上限截断）
	Position string  `json:"position"`
	ToMove   int     `json:"to_move"`
	Status   string  `json:"status"` // "ok" / "no_moves"
	TimeMs   int64   `json:"time_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}
