package board

import (
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func (p *Position) At(sq Square) Piece {
	return p.Squares[sq.Row][sq.Col]
}

func (p *Position) Set(sq Square, pc Piece) {
	p.Squares[sq.Row][sq.Col] = pc
}

// Apply 返回走子后的新局面，p 本身不变。
// 不做合法性检查，由上层保证 m 来自 GenerateMoves。
func (p Position) Apply(m Move) Position {
	p.Squares[m.To.Row][m.To.Col] = p.Squares[m.From.Row][m.From.Col]
	p.Squares[m.From.Row][m.From.Col] = Piece{}
	return p
}

// SwapSides 交换所有棋子的归属
func (p Position) SwapSides() Position {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := p.Squares[r][c]
			if pc.IsEmpty() {
				continue
			}
			p.Squares[r][c] = MakePiece(pc.Side.Opposite(), pc.Kind)
		}
	}
	return p
}

func (p *Position) KingExists(side Side) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := p.Squares[r][c]
			if pc.Kind == King && pc.Side == side {
				return true
			}
		}
	}
	return false
}

var letterToKind = map[rune]Kind{
	'k': King,
	'q': Queen,
	'r': Rook,
	'n': Knight,
	'b': Bishop,
	'p': Pawn,
}

// Letter 返回白方的大写字母，空格为 '.'
func (k Kind) Letter() rune {
	switch k {
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Rook:
		return 'R'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Pawn:
		return 'P'
	}
	return '.'
}

func pieceToChar(pc Piece) rune {
	ch := pc.Kind.Letter()
	if pc.IsEmpty() || pc.Side == White {
		return ch
	}
	return unicode.ToLower(ch)
}

// 初始摆法：白方在第 0、1 行，黑方在第 6、7 行
const initialBoardString = `RNBQKBNR
PPPPPPPP
........
........
........
........
pppppppp
rnbqkbnr`

func NewInitialPosition() Position {
	pos, err := Decode(strings.ReplaceAll(initialBoardString, "\n", "/"))
	if err != nil {
		panic("initialBoardString: " + err.Error())
	}
	return pos
}

// String 按行打印棋盘，坐标从 1 开始，和控制台输入保持一致
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("  1  2  3  4  5  6  7  8\n")
	for r := 0; r < Rows; r++ {
		sb.WriteByte(byte('1' + r))
		sb.WriteByte(' ')
		for c := 0; c < Cols; c++ {
			pc := p.Squares[r][c]
			if pc.IsEmpty() {
				sb.WriteString("-- ")
				continue
			}
			if pc.Side == White {
				sb.WriteByte('w')
			} else {
				sb.WriteByte('b')
			}
			sb.WriteRune(pc.Kind.Letter())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
