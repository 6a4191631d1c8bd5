package main

import (
	"flag"
	"fmt"
	"log"

	"kingsearch/internal/board"
	"kingsearch/internal/chessfen"
	"kingsearch/internal/engine"
)

func main() {
	fen := flag.String("fen", chessfen.StartFEN, "position to inspect (standard FEN)")
	flag.Parse()

	pos, toMove, err := chessfen.Parse(*fen)
	if err != nil {
		log.Fatalf("bad -fen: %v", err)
	}
	fmt.Print(pos.String())
	fmt.Println("Notation:", pos.Encode())
	fmt.Println("FEN:", chessfen.Format(pos, toMove))
	fmt.Println("Evaluate:", engine.Evaluate(&pos))
	for _, side := range []board.Side{board.White, board.Black} {
		moves := board.GenerateMoves(&pos, side)
		fmt.Printf("Pseudo legal moves for %v: %d\n", side, len(moves))
		for _, m := range moves {
			fmt.Printf("  (%d,%d) -> (%d,%d)\n", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
		}
	}
}
