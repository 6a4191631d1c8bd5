package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kingsearch/internal/board"
	"kingsearch/internal/engine"
	"kingsearch/internal/server/game"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewHandler(engine.SearchConfig{Depth: 2})))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any, out any) int {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestGameFlow(t *testing.T) {
	srv := newTestServer(t)

	var g GameResponse
	if code := postJSON(t, srv, "/api/new_game", NewGameRequest{}, &g); code != http.StatusOK {
		t.Fatalf("new_game status %d", code)
	}
	if g.GameID == "" || g.Status != game.StatusOngoing || g.ToMove != 0 || len(g.LegalMoves) == 0 {
		t.Fatalf("unexpected new game %+v", g)
	}

	var played GameResponse
	code := postJSON(t, srv, "/api/play", PlayRequest{GameID: g.GameID, Move: g.LegalMoves[0]}, &played)
	if code != http.StatusOK {
		t.Fatalf("play status %d", code)
	}
	if played.ToMove != 1 || len(played.History) != 1 {
		t.Fatalf("unexpected state after play %+v", played)
	}

	// 轮到引擎，人类再走应当冲突
	if code := postJSON(t, srv, "/api/play", PlayRequest{GameID: g.GameID, Move: g.LegalMoves[0]}, nil); code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}

	var ai AiMoveResponse
	if code := postJSON(t, srv, "/api/ai_move", AiMoveRequest{GameID: g.GameID}, &ai); code != http.StatusOK {
		t.Fatalf("ai_move status %d", code)
	}
	if ai.Status != "ok" || ai.BestMove.IsNone() || ai.Game == nil || ai.Game.ToMove != 0 {
		t.Fatalf("unexpected ai response %+v", ai)
	}

	var state GameResponse
	if code := postJSON(t, srv, "/api/state", StateRequest{GameID: g.GameID}, &state); code != http.StatusOK {
		t.Fatalf("state status %d", code)
	}
	if len(state.History) != 2 || state.Position != ai.Game.Position {
		t.Fatalf("state does not reflect engine move %+v", state)
	}
}

func TestPlayErrors(t *testing.T) {
	srv := newTestServer(t)

	if code := postJSON(t, srv, "/api/state", StateRequest{GameID: "nope"}, nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}

	var g GameResponse
	postJSON(t, srv, "/api/new_game", NewGameRequest{}, &g)
	bad := board.Move{From: board.Square{Row: 3, Col: 3}, To: board.Square{Row: 4, Col: 4}}
	if code := postJSON(t, srv, "/api/play", PlayRequest{GameID: g.GameID, Move: bad}, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	if code := postJSON(t, srv, "/api/new_game", NewGameRequest{Position: "bogus"}, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad position, got %d", code)
	}
}

func TestStatelessAiMove(t *testing.T) {
	srv := newTestServer(t)

	var ai AiMoveResponse
	req := AiMoveRequest{Position: "8/8/8/3Kk3/8/8/8/8", ToMove: 0, MaxDepth: 1}
	if code := postJSON(t, srv, "/api/ai_move", req, &ai); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	want := board.Move{From: board.Square{Row: 3, Col: 3}, To: board.Square{Row: 3, Col: 4}}
	if ai.BestMove != want || ai.Score != 10000 || ai.Game != nil {
		t.Fatalf("unexpected response %+v", ai)
	}

	req = AiMoveRequest{Position: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", ToMove: 1}
	if code := postJSON(t, srv, "/api/ai_move", req, &ai); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if ai.Status != "no_moves" || !ai.BestMove.IsNone() {
		t.Fatalf("expected sentinel move, got %+v", ai)
	}
	if ai.BestMove.From.Row != -1 || ai.BestMove.To.Col != -1 {
		t.Fatalf("sentinel must be -1 on the wire: %+v", ai.BestMove)
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var out EvaluateResponse
	req := EvaluateRequest{FEN: "4k3/8/8/8/8/8/8/4K2R w - - 0 1"}
	if code := postJSON(t, srv, "/api/evaluate", req, &out); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if out.Score != 500 {
		t.Fatalf("expected 500, got %d", out.Score)
	}
}

func TestNewGameKeepsFENSideToMove(t *testing.T) {
	srv := newTestServer(t)

	var g GameResponse
	req := NewGameRequest{FEN: "4k3/8/8/8/8/8/8/4K3 b - - 0 1"}
	if code := postJSON(t, srv, "/api/new_game", req, &g); code != http.StatusOK {
		t.Fatalf("new_game status %d", code)
	}
	if g.ToMove != 1 || !strings.HasSuffix(g.FEN, " b - - 0 1") {
		t.Fatalf("expected black to move, got to_move=%d fen=%q", g.ToMove, g.FEN)
	}
	for _, mv := range g.LegalMoves {
		if mv.From != (board.Square{Row: 7, Col: 4}) {
			t.Fatalf("legal move for the wrong side: %+v", mv)
		}
	}

	// 人类执白，轮到黑方时应由引擎走
	var ai AiMoveResponse
	if code := postJSON(t, srv, "/api/ai_move", AiMoveRequest{GameID: g.GameID}, &ai); code != http.StatusOK {
		t.Fatalf("ai_move status %d", code)
	}
	if ai.Game == nil || ai.Game.ToMove != 0 || ai.BestMove.From != (board.Square{Row: 7, Col: 4}) {
		t.Fatalf("engine did not move black: %+v", ai)
	}
}

func TestStatelessAiMoveFromFEN(t *testing.T) {
	srv := newTestServer(t)

	// 同一摆法，FEN 的行棋方决定谁走
	var ai AiMoveResponse
	req := AiMoveRequest{FEN: "8/8/8/8/3Kk3/8/8/8 w - - 0 1", MaxDepth: 1}
	if code := postJSON(t, srv, "/api/ai_move", req, &ai); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	want := board.Move{From: board.Square{Row: 3, Col: 3}, To: board.Square{Row: 3, Col: 4}}
	if ai.BestMove != want || ai.Score != 10000 {
		t.Fatalf("unexpected white reply %+v", ai)
	}

	req.FEN = "8/8/8/8/3Kk3/8/8/8 b - - 0 1"
	if code := postJSON(t, srv, "/api/ai_move", req, &ai); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	want = board.Move{From: board.Square{Row: 3, Col: 4}, To: board.Square{Row: 3, Col: 3}}
	if ai.BestMove != want || ai.Score != 10000 {
		t.Fatalf("unexpected black reply %+v", ai)
	}

	if code := postJSON(t, srv, "/api/ai_move", AiMoveRequest{FEN: "not a fen"}, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad fen, got %d", code)
	}
	if code := postJSON(t, srv, "/api/ai_move", AiMoveRequest{}, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 without position, got %d", code)
	}
}

func TestAiMoveDepthIsCapped(t *testing.T) {
	srv := newTestServer(t)

	var ai AiMoveResponse
	req := AiMoveRequest{Position: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", ToMove: 1, MaxDepth: 1000}
	if code := postJSON(t, srv, "/api/ai_move", req, &ai); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if ai.Depth != MaxSearchDepth {
		t.Fatalf("expected depth capped at %d, got %d", MaxSearchDepth, ai.Depth)
	}
}
