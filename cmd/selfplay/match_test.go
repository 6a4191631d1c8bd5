package main

import (
	"testing"

	"kingsearch/internal/board"
	"kingsearch/internal/engine"
)

func TestPlayGameCapturesKing(t *testing.T) {
	pos, err := board.Decode("8/8/8/3Kk3/8/8/8/8")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	p := player{Name: "d1", Cfg: engine.SearchConfig{Depth: 1}}
	if got := playGame(pos, board.White, p, p, 10); got != whiteWins {
		t.Fatalf("white to move should capture, got %v", got)
	}
	if got := playGame(pos, board.Black, p, p, 10); got != blackWins {
		t.Fatalf("black to move should capture, got %v", got)
	}
}

func TestPlayGameNoMovesIsDraw(t *testing.T) {
	p := player{Name: "d2", Cfg: engine.SearchConfig{Depth: 2}}
	if got := playGame(board.NewInitialPosition(), board.White, p, p, 10); got != draw {
		t.Fatalf("expected draw, got %v", got)
	}
}

func TestRunMatch(t *testing.T) {
	pos, err := board.Decode("4k3/8/8/8/8/8/8/4K3")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	a := player{Name: "a", Cfg: engine.SearchConfig{Depth: 1}}
	b := player{Name: "b", Cfg: engine.SearchConfig{Depth: 2}}
	if err := runMatch(pos, board.White, a, b, 4, 6, 2); err != nil {
		t.Fatalf("match failed: %v", err)
	}
}
