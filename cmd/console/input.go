package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kingsearch/internal/board"
)

var errBadInput = errors.New("enter four numbers 1-8: row col row col")

// parseMoveInput 解析 "r1 c1 r2 c2"，坐标从 1 开始，返回 0 起的 Move
func parseMoveInput(s string) (board.Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 4 {
		return board.NoMove, errBadInput
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > 8 {
			return board.NoMove, fmt.Errorf("%w: %q", errBadInput, f)
		}
		v[i] = n - 1
	}
	return board.Move{
		From: board.Square{Row: v[0], Col: v[1]},
		To:   board.Square{Row: v[2], Col: v[3]},
	}, nil
}

func formatMove(m board.Move) string {
	return fmt.Sprintf("Row: %d Column: %d -> Row: %d Column: %d",
		m.From.Row+1, m.From.Col+1, m.To.Row+1, m.To.Col+1)
}
