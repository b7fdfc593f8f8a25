package game

import (
	"fmt"
	"time"

	"othello/internal/engine"
	"othello/internal/othello"
)

const (
	StatusOngoing   = "ongoing"
	StatusMustPass  = "must_pass" // 当前方无棋可走，需要 pass
	StatusBlackWins = "black_wins"
	StatusWhiteWins = "white_wins"
	StatusDraw      = "draw"
)

type GameState struct {
	ID        string
	Pos       *othello.Position
	Strategy  engine.Strategy // 人机对局里 AI 用的策略
	History   []othello.Move  // NoMove 表示 pass
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status 根据局面给出对局状态
func Status(pos *othello.Position) string {
	if pos.IsGameOver() {
		switch pos.Winner() {
		case othello.PlayerA:
			return StatusBlackWins
		case othello.PlayerB:
			return StatusWhiteWins
		default:
			return StatusDraw
		}
	}
	if len(pos.LegalMoves()) == 0 {
		return StatusMustPass
	}
	return StatusOngoing
}

// apply 在副本上走一步，成功后替换 g.Pos
func (g *GameState) apply(m othello.Move) error {
	if !g.Pos.IsLegal(m) {
		return fmt.Errorf("%w: %d,%d", othello.ErrIllegalMove, m.Row, m.Col)
	}
	next, _ := g.Pos.Play(m)
	g.Pos = next
	g.History = append(g.History, m)
	g.UpdatedAt = time.Now()
	return nil
}

func (g *GameState) pass() error {
	if len(g.Pos.LegalMoves()) != 0 || g.Pos.IsGameOver() {
		return ErrCannotPass
	}
	next := g.Pos.Copy()
	next.Pass()
	g.Pos = next
	g.History = append(g.History, othello.NoMove)
	g.UpdatedAt = time.Now()
	return nil
}

// snapshot 返回一份拷贝，调用方可以在锁外随便用
func (g *GameState) snapshot() *GameState {
	cp := *g
	cp.Pos = g.Pos.Copy()
	cp.History = append([]othello.Move(nil), g.History...)
	return &cp
}
