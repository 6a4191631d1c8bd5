package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"kingsearch/internal/board"
	"kingsearch/internal/chessfen"
	"kingsearch/internal/engine"
	"kingsearch/internal/server/game"
)

// MaxSearchDepth 是请求里 max_depth 的上限，超出的按上限搜索
const MaxSearchDepth = 8

// Handler 持有对局和默认搜索配置；每个请求新建 Engine，统计互不干扰
type Handler struct {
	games *game.Manager
	cfg   engine.SearchConfig
}

func NewHandler(cfg engine.SearchConfig) *Handler {
	if cfg.Depth <= 0 {
		cfg.Depth = engine.DefaultDepth
	}
	return &Handler{
		games: game.NewManager(),
		cfg:   cfg,
	}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	start, toMove, err := startPosition(req.FEN, req.Position, req.ToMove)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}

	g := h.games.NewGame(start, toMove, intToSide(req.HumanSide))
	writeJSON(w, http.StatusOK, gameToResponse(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameToResponse(g))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.games.Play(req.GameID, req.Move)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameToResponse(g))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cfg := h.cfg
	if req.MaxDepth > 0 {
		cfg.Depth = min(req.MaxDepth, MaxSearchDepth)
	}
	if req.NoMoves != "" {
		cfg.NoMoves = engine.ParseNoMovesRule(req.NoMoves)
	}
	eng := engine.NewEngineWithConfig(cfg)

	// ===== 1. 对局内：引擎替轮到的一方落子 =====
	if req.GameID != "" {
		g, res, err := h.games.EngineMove(req.GameID, eng, cfg.Depth)
		if err != nil {
			writeGameError(w, err)
			return
		}
		resp := resultToResponse(res)
		gr := gameToResponse(g)
		resp.Game = &gr
		writeJSON(w, http.StatusOK, resp)
		return
	}

	// ===== 2. 无状态分析：只思考不落子 =====
	if strings.TrimSpace(req.Position) == "" && strings.TrimSpace(req.FEN) == "" {
		http.Error(w, "missing position", http.StatusBadRequest)
		return
	}
	pos, side, err := startPosition(req.FEN, req.Position, req.ToMove)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}
	res := eng.Search(&pos, side, cfg.Depth)
	writeJSON(w, http.StatusOK, resultToResponse(res))
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pos, _, err := startPosition(req.FEN, req.Position, 0)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, EvaluateResponse{Score: engine.Evaluate(&pos)})
}

// startPosition 解析请求里的局面。position 没有行棋方字段，用 toMove；
// FEN 自带行棋方，以 FEN 为准
func startPosition(fen, position string, toMove int) (board.Position, board.Side, error) {
	switch {
	case strings.TrimSpace(position) != "":
		pos, err := board.Decode(position)
		return pos, intToSide(toMove), err
	case strings.TrimSpace(fen) != "":
		return chessfen.Parse(fen)
	default:
		return chessfen.Parse(chessfen.KingsAndPawnsFEN)
	}
}

func gameToResponse(g game.GameState) GameResponse {
	legal := board.GenerateMoves(&g.Pos, g.ToMove)
	if legal == nil {
		legal = []board.Move{}
	}
	return GameResponse{
		GameID:     g.ID,
		Position:   g.Pos.Encode(),
		FEN:        chessfen.Format(g.Pos, g.ToMove),
		ToMove:     sideToInt(g.ToMove),
		Human:      sideToInt(g.Human),
		LegalMoves: legal,
		Status:     g.Status,
		History:    g.History,
	}
}

func resultToResponse(res engine.SearchResult) AiMoveResponse {
	status := "ok"
	if res.BestMove.IsNone() {
		status = "no_moves"
	}
	return AiMoveResponse{
		BestMove: res.BestMove,
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		Cutoffs:  res.Cutoffs,
		TimeMs:   res.TimeUsed.Milliseconds(),
		Status:   status,
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	case errors.Is(err, game.ErrIllegalMove):
		http.Error(w, "illegal move", http.StatusBadRequest)
	case errors.Is(err, game.ErrWrongTurn), errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrGameChanged):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("game error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
