package board

import (
	"errors"
	"strings"
	"unicode"
)

// 简单 FEN-like：8 行用“/”隔开，第 0 行在前；空位用数字压缩或用“.”。
// 大写为白方，小写为黑方。不包含轮到谁走。
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Squares[r][c]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

var ErrInvalidNotation = errors.New("invalid board notation")

func Decode(s string) (Position, error) {
	var pos Position
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Rows {
		return Position{}, ErrInvalidNotation
	}
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return Position{}, ErrInvalidNotation
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			k, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return Position{}, ErrInvalidNotation
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = White
			}
			pos.Squares[r][c] = MakePiece(side, k)
			c++
		}
		if c != Cols {
			return Position{}, ErrInvalidNotation
		}
	}
	return pos, nil
}
