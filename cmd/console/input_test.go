package main

import (
	"errors"
	"testing"

	"kingsearch/internal/board"
)

func TestParseMoveInput(t *testing.T) {
	m, err := parseMoveInput("1 5 2,5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := board.Move{From: board.Square{Row: 0, Col: 4}, To: board.Square{Row: 1, Col: 4}}
	if m != want {
		t.Fatalf("got %+v want %+v", m, want)
	}
	if got := formatMove(m); got != "Row: 1 Column: 5 -> Row: 2 Column: 5" {
		t.Fatalf("unexpected format %q", got)
	}

	for _, s := range []string{"", "1 2 3", "0 1 1 1", "1 1 1 9", "a b c d", "1 1 1 1 1"} {
		if _, err := parseMoveInput(s); !errors.Is(err, errBadInput) {
			t.Errorf("parseMoveInput(%q): expected errBadInput, got %v", s, err)
		}
	}
}
