package main

import (
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"kingsearch/internal/board"
	"kingsearch/internal/engine"
)

type player struct {
	Name string
	Cfg  engine.SearchConfig
}

type outcome int

const (
	draw outcome = iota
	whiteWins
	blackWins
)

// playGame 从 start 开始对弈，first 先走。吃王或一方无棋可走即结束，超过 maxMoves 判和。
func playGame(start board.Position, first board.Side, white, black player, maxMoves int) outcome {
	engines := map[board.Side]*engine.Engine{
		board.White: engine.NewEngineWithConfig(white.Cfg),
		board.Black: engine.NewEngineWithConfig(black.Cfg),
	}
	pos := start
	side := first
	for ply := 0; ply < maxMoves; ply++ {
		res := engines[side].Search(&pos, side, 0)
		if res.BestMove.IsNone() {
			return draw
		}
		pos = pos.Apply(res.BestMove)
		if !pos.KingExists(side.Opposite()) {
			if side == board.White {
				return whiteWins
			}
			return blackWins
		}
		side = side.Opposite()
	}
	return draw
}

func runMatch(start board.Position, first board.Side, a, b player, games, maxMoves, workers int) error {
	var (
		mu                  sync.Mutex
		winsA, winsB, draws int
	)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			// 轮流执白
			aIsWhite := i%2 == 0
			white, black := a, b
			if !aIsWhite {
				white, black = b, a
			}
			res := playGame(start, first, white, black, maxMoves)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case res == draw:
				draws++
			case (res == whiteWins) == aIsWhite:
				winsA++
			default:
				winsB++
			}
			log.Printf("game %d: %s (white) vs %s (black) -> %v", i+1, white.Name, black.Name, res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("result: %s %d, %s %d, draws %d", a.Name, winsA, b.Name, winsB, draws)
	return nil
}

func (o outcome) String() string {
	switch o {
	case whiteWins:
		return "white wins"
	case blackWins:
		return "black wins"
	default:
		return "draw"
	}
}
