package httpserver

import (
	"kingsearch/internal/board"
	"kingsearch/internal/server/game"
)

// NewGameRequest 里 FEN 与 Position 二选一，都为空时使用默认开局
type NewGameRequest struct {
	FEN       string `json:"fen"`
	Position  string `json:"position"`
	ToMove    int    `json:"to_move"` // 只对 position 生效，FEN 自带行棋方
	HumanSide int    `json:"human_side"` // 0=白, 1=黑
}

type GameResponse struct {
	GameID     string              `json:"game_id"`
	Position   string              `json:"position"` // board.Encode()
	FEN        string              `json:"fen"`
	ToMove     int                 `json:"to_move"`
	Human      int                 `json:"human"`
	LegalMoves []board.Move        `json:"legal_moves"`
	Status     game.Status         `json:"status"`
	History    []game.HistoryEntry `json:"history"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type PlayRequest struct {
	GameID string     `json:"game_id"`
	Move   board.Move `json:"move"`
}

// AiMoveRequest 带 game_id 时引擎在该局落子；否则只分析 position 或 fen，不落子
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
	FEN      string `json:"fen"`
	ToMove   int    `json:"to_move"`
	MaxDepth int    `json:"max_depth"`
	NoMoves  string `json:"no_moves"` // static / stalemate / loss
}

type AiMoveResponse struct {
	BestMove board.Move    `json:"best_move"` // 无棋可走时为 (-1,-1)->(-1,-1)
	Score    int           `json:"score"`
	Depth    int           `json:"depth"`
	Nodes    int64         `json:"nodes"`
	Cutoffs  int64         `json:"cutoffs"`
	TimeMs   int64         `json:"time_ms"`
	Status   string        `json:"status"` // "ok" / "no_moves"
	Game     *GameResponse `json:"game,omitempty"`
}

type EvaluateRequest struct {
	Position string `json:"position"`
	FEN      string `json:"fen"`
}

type EvaluateResponse struct {
	Score int `json:"score"` // 白方视角
}

func sideToInt(s board.Side) int {
	if s == board.White {
		return 0
	}
	return 1
}

func intToSide(v int) board.Side {
	if v == 1 {
		return board.Black
	}
	return board.White
}
