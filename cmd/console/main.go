package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"kingsearch/internal/board"
	"kingsearch/internal/chessfen"
	"kingsearch/internal/engine"
)

func main() {
	fen := flag.String("fen", chessfen.KingsAndPawnsFEN, "start position (standard FEN)")
	depth := flag.Int("depth", engine.DefaultDepth, "engine search depth (ply)")
	noMoves := flag.String("no-moves", "static", "score for a side without moves: static, stalemate or loss")
	flag.Parse()

	pos, toMove, err := chessfen.Parse(*fen)
	if err != nil {
		log.Fatalf("bad -fen: %v", err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer s.Fini()

	ui := &console{
		screen: s,
		pos:    pos,
		toMove: toMove,
		human:  board.White,
		eng: engine.NewEngineWithConfig(engine.SearchConfig{
			Depth:   *depth,
			NoMoves: engine.ParseNoMovesRule(*noMoves),
		}),
	}
	ui.run()
}

type console struct {
	screen tcell.Screen
	pos    board.Position
	toMove board.Side
	human  board.Side
	eng    *engine.Engine

	input  []rune
	status string
	last   string
}

var (
	styleText  = tcell.StyleDefault
	styleWhite = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBlack = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEmpty = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// run 是人机轮流的主循环：人类输入坐标，引擎用 Search 应手
func (c *console) run() {
	for {
		if over, msg := c.gameOver(); over {
			c.status = msg + " Press any key to quit."
			c.draw()
			c.waitKey()
			return
		}

		if c.toMove != c.human {
			c.status = "Engine is thinking..."
			c.draw()
			res := c.eng.Search(&c.pos, c.toMove, 0)
			if res.BestMove.IsNone() {
				continue
			}
			c.last = fmt.Sprintf("Engine: %s (score %d, nodes %d)", formatMove(res.BestMove), res.Score, res.Nodes)
			c.apply(res.BestMove)
			c.status = ""
			continue
		}

		mv, quit := c.readMove()
		if quit {
			return
		}
		if !board.IsLegal(&c.pos, c.toMove, mv) {
			c.status = "Illegal move, try again."
			continue
		}
		c.last = "You: " + formatMove(mv)
		c.apply(mv)
		c.status = ""
	}
}

func (c *console) apply(mv board.Move) {
	c.pos = c.pos.Apply(mv)
	c.toMove = c.toMove.Opposite()
}

func (c *console) gameOver() (bool, string) {
	switch {
	case !c.pos.KingExists(board.White):
		return true, "Black captured the white king."
	case !c.pos.KingExists(board.Black):
		return true, "White captured the black king."
	case len(board.GenerateMoves(&c.pos, c.toMove)) == 0:
		return true, fmt.Sprintf("%v has no moves.", c.toMove)
	}
	return false, ""
}

// readMove 收集一行输入，回车提交，Esc / Ctrl-C 退出
func (c *console) readMove() (board.Move, bool) {
	c.input = c.input[:0]
	for {
		c.draw()
		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return board.NoMove, true
			case tcell.KeyEnter:
				mv, err := parseMoveInput(string(c.input))
				if err != nil {
					c.status = err.Error()
					c.input = c.input[:0]
					continue
				}
				return mv, false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(c.input) > 0 {
					c.input = c.input[:len(c.input)-1]
				}
			case tcell.KeyRune:
				c.input = append(c.input, ev.Rune())
			}
		}
	}
}

func (c *console) waitKey() {
	for {
		switch c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			c.screen.Sync()
			c.draw()
		}
	}
}

func (c *console) draw() {
	s := c.screen
	s.Clear()

	y := 0
	c.text(0, y, "   1  2  3  4  5  6  7  8", styleText)
	y++
	for r := 0; r < board.Rows; r++ {
		c.text(0, y, fmt.Sprintf("%d ", r+1), styleText)
		for col := 0; col < board.Cols; col++ {
			x := 3 + col*3
			pc := c.pos.Squares[r][col]
			if pc.IsEmpty() {
				c.text(x, y, "--", styleEmpty)
				continue
			}
			st, prefix := styleBlack, "b"
			if pc.Side == board.White {
				st, prefix = styleWhite, "w"
			}
			c.text(x, y, prefix+string(pc.Kind.Letter()), st)
		}
		y++
	}

	y++
	c.text(0, y, fmt.Sprintf("Eval (white): %d   To move: %v", engine.Evaluate(&c.pos), c.toMove), styleText)
	y++
	c.text(0, y, c.last, styleText)
	y++
	c.text(0, y, c.status, styleText)
	y++
	c.text(0, y, "Enter start and end coordinates: "+string(c.input), styleText)
	s.Show()
}

func (c *console) text(x, y int, str string, st tcell.Style) {
	for _, r := range str {
		c.screen.SetContent(x, y, r, nil, st)
		x++
	}
}
