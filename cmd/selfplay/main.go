package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"kingsearch/internal/board"
	"kingsearch/internal/chessfen"
	"kingsearch/internal/engine"
)

func main() {
	fen := flag.String("fen", chessfen.KingsAndPawnsFEN, "start position (standard FEN)")
	depth := flag.Int("depth", engine.DefaultDepth, "search depth for a single game")
	maxMoves := flag.Int("maxmoves", 40, "max plies to play")
	games := flag.Int("games", 0, "if > 0, play a match of this many games between -depth-a and -depth-b")
	depthA := flag.Int("depth-a", 2, "match: depth of player A")
	depthB := flag.Int("depth-b", 4, "match: depth of player B")
	workers := flag.Int("workers", 4, "match: games played concurrently")
	flag.Parse()

	start, toMove, err := chessfen.Parse(*fen)
	if err != nil {
		log.Fatalf("bad -fen: %v", err)
	}

	if *games > 0 {
		a := player{Name: fmt.Sprintf("depth %d", *depthA), Cfg: engine.SearchConfig{Depth: *depthA}}
		b := player{Name: fmt.Sprintf("depth %d", *depthB), Cfg: engine.SearchConfig{Depth: *depthB}}
		if err := runMatch(start, toMove, a, b, *games, *maxMoves, *workers); err != nil {
			log.Fatalf("match failed: %v", err)
		}
		return
	}

	e := engine.NewEngineWithConfig(engine.SearchConfig{Depth: *depth})
	pos := start
	for i := 0; i < *maxMoves; i++ {
		log.Printf("--- Move %d, Side: %v ---", i+1, toMove)

		res := e.Search(&pos, toMove, 0)
		if res.BestMove.IsNone() {
			log.Printf("Game over: no moves.")
			break
		}

		fmt.Printf("BestMove: %+v, Score: %d, Nodes: %d, Cutoffs: %d, Time: %v\n",
			res.BestMove, res.Score, res.Nodes, res.Cutoffs, res.TimeUsed)

		pos = pos.Apply(res.BestMove)
		toMove = toMove.Opposite()

		if !pos.KingExists(board.White) || !pos.KingExists(board.Black) {
			log.Printf("Game over: king captured.")
			break
		}
	}

	fmt.Print(pos.String())
	log.Println("Selfplay finished.")
	os.Exit(0)
}
