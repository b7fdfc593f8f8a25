package othello

import (
	"errors"
	"strings"
)

// 简单 FEN-like：8 行用“/”隔开，空位用数字压缩；X=黑，O=白；空格后 b/w 表示轮到谁
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Size; c++ {
			cell := p.Board[r][c]
			if cell == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(cellToChar(cell))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.Current == PlayerB {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

var ErrInvalidPosition = errors.New("invalid position string")

func cellToChar(c Cell) byte {
	switch c {
	case PlayerA:
		return 'X'
	case PlayerB:
		return 'O'
	default:
		return '.'
	}
}

// DecodePosition 解析 Encode 的输出；'.' 也可以表示单个空格
func DecodePosition(s string) (*Position, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, ErrInvalidPosition
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return nil, ErrInvalidPosition
	}
	var b Board
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Size {
				return nil, ErrInvalidPosition
			}
			switch {
			case ch >= '1' && ch <= '8':
				c += int(ch - '0')
				continue
			case ch == '.':
			case ch == 'X' || ch == 'x':
				b[r][c] = PlayerA
			case ch == 'O' || ch == 'o':
				b[r][c] = PlayerB
			default:
				return nil, ErrInvalidPosition
			}
			c++
		}
		if c != Size {
			return nil, ErrInvalidPosition
		}
	}
	var side Cell
	switch parts[1] {
	case "b":
		side = PlayerA
	case "w":
		side = PlayerB
	default:
		return nil, ErrInvalidPosition
	}
	pos := &Position{
		Board:   b,
		Current: side,
		Mode:    ModeAI,
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}

// String 多行文本，调试用
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("  01234567\n")
	for r := 0; r < Size; r++ {
		sb.WriteByte(byte('0' + r))
		sb.WriteByte(' ')
		for c := 0; c < Size; c++ {
			sb.WriteByte(cellToChar(p.Board[r][c]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("to move: ")
	sb.WriteString(p.Current.String())
	return sb.String()
}
