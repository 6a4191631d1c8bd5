package board

// Side 为 true 的一方先走（White）。
type Side bool

const (
	White Side = true
	Black Side = false
)

func (s Side) Opposite() Side { return !s }

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

type Kind int8

const (
	None Kind = iota
	King
	Queen
	Rook
	Knight
	Bishop
	Pawn

	kindCount
)

func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// Piece 是值类型；Kind == None 表示空格，此时 Side 无意义。
type Piece struct {
	Kind Kind
	Side Side
}

func MakePiece(side Side, k Kind) Piece {
	if k == None {
		return Piece{}
	}
	return Piece{Kind: k, Side: side}
}

func (p Piece) IsEmpty() bool { return p.Kind == None }

// BelongsTo 空格不属于任何一方
func (p Piece) BelongsTo(side Side) bool {
	return p.Kind != None && p.Side == side
}

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) OnBoard() bool {
	return onBoard(s.Row, s.Col)
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// NoMove 表示“没有可走的棋”，调用方必须先检查再落子。
var NoMove = Move{From: Square{-1, -1}, To: Square{-1, -1}}

func (m Move) IsNone() bool { return m == NoMove }

// Position 是 8x8 定长数组，赋值即深拷贝，搜索中每个分支各持一份。
type Position struct {
	Squares [Rows][Cols]Piece
}
