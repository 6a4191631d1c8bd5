package game

import (
	"time"

	"kingsearch/internal/board"
)

type Status string

const (
	StatusOngoing      Status = "ongoing"
	StatusNoMoves      Status = "no_moves"
	StatusKingCaptured Status = "king_captured"
)

// HistoryEntry 记录一步棋以及是否由引擎走出
type HistoryEntry struct {
	Move  board.Move `json:"move"`
	Side  board.Side `json:"side"`
	IsAI  bool       `json:"is_ai"`
	Score int        `json:"score,omitempty"`
	Nodes int64      `json:"nodes,omitempty"`
}

type GameState struct {
	ID        string
	Pos       board.Position
	ToMove    board.Side
	Human     board.Side
	Status    Status
	History   []HistoryEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot 拷贝一份给调用方，History 不与管理器共享底层数组
func (g *GameState) Snapshot() GameState {
	out := *g
	out.History = append([]HistoryEntry(nil), g.History...)
	return out
}

func statusOf(pos *board.Position, toMove board.Side) Status {
	if !pos.KingExists(board.White) || !pos.KingExists(board.Black) {
		return StatusKingCaptured
	}
	if len(board.GenerateMoves(pos, toMove)) == 0 {
		return StatusNoMoves
	}
	return StatusOngoing
}
