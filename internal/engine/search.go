package engine

import (
	"sync/atomic"
	"time"

	"kingsearch/internal/board"
)

const (
	// 当成正负无穷；64 格全是王也只有 640000，不会截断真实分数
	Infinity = 1_000_000

	DefaultDepth = 3
)

// NoMovesRule 决定一方无棋可走时的得分
type NoMovesRule int

const (
	// NoMovesStatic 按静态子力评估（从无棋方视角）
	NoMovesStatic NoMovesRule = iota
	// NoMovesStalemate 记为 0
	NoMovesStalemate
	// NoMovesLoss 记为输棋，越早输分越低
	NoMovesLoss
)

func (r NoMovesRule) String() string {
	switch r {
	case NoMovesStalemate:
		return "stalemate"
	case NoMovesLoss:
		return "loss"
	default:
		return "static"
	}
}

// ParseNoMovesRule 供命令行和 HTTP 参数使用，未知值回退到 static
func ParseNoMovesRule(s string) NoMovesRule {
	switch s {
	case "stalemate":
		return NoMovesStalemate
	case "loss":
		return NoMovesLoss
	default:
		return NoMovesStatic
	}
}

// 搜索配置
type SearchConfig struct {
	Depth   int         // 搜索深度（ply）
	NoMoves NoMovesRule // 无棋可走时的记分方式
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{Depth: DefaultDepth, NoMoves: NoMovesStatic}
}

// 搜索结果
type SearchResult struct {
	BestMove board.Move    // 最佳着法，无棋可走时为 board.NoMove
	Score    int           // side 视角的分数
	Depth    int           // 搜索深度
	Nodes    int64         // 节点数
	Cutoffs  int64         // beta 剪枝次数
	TimeUsed time.Duration // 花费时间
}

// Search 选出 side 的最佳着法并附带统计。depth <= 0 时使用引擎配置的深度。
func (e *Engine) Search(pos *board.Position, side board.Side, depth int) SearchResult {
	if depth <= 0 {
		depth = e.cfg.Depth
	}
	start := time.Now()
	e.ResetStats()

	best, score := e.selectBestMove(pos, depth, side)
	if best.IsNone() {
		score = e.noMovesScore(pos, side, 0)
	}

	return SearchResult{
		BestMove: best,
		Score:    score,
		Depth:    depth,
		Nodes:    e.Nodes(),
		Cutoffs:  e.Cutoffs(),
		TimeUsed: time.Since(start),
	}
}

// SelectBestMove 根节点：对每个着法做完整窗口搜索，分数严格更大才替换，
// 同分保留先生成的着法。无着法时返回 board.NoMove。
func (e *Engine) SelectBestMove(pos *board.Position, depth int, side board.Side) board.Move {
	best, _ := e.selectBestMove(pos, depth, side)
	return best
}

func (e *Engine) selectBestMove(pos *board.Position, depth int, side board.Side) (board.Move, int) {
	if depth < 1 {
		depth = 1
	}
	atomic.AddInt64(&e.nodes, 1)

	bestMove := board.NoMove
	bestScore := -Infinity
	for _, mv := range board.GenerateMoves(pos, side) {
		child := pos.Apply(mv)
		score := -e.alphaBeta(&child, depth-1, -Infinity, Infinity, side.Opposite(), 1)
		if bestMove.IsNone() || score > bestScore {
			bestScore = score
			bestMove = mv
		}
	}
	return bestMove, bestScore
}

// AlphaBeta 负极大值 + alpha-beta，返回 side 走棋时 side 视角下的最好分数。
// pos 不会被修改，每个子节点都是独立拷贝。
func (e *Engine) AlphaBeta(pos *board.Position, depth, alpha, beta int, side board.Side) int {
	return e.alphaBeta(pos, depth, alpha, beta, side, 0)
}

func (e *Engine) alphaBeta(pos *board.Position, depth, alpha, beta int, side board.Side, ply int) int {
	atomic.AddInt64(&e.nodes, 1)

	if depth <= 0 {
		return Score(pos, side)
	}

	moves := board.GenerateMoves(pos, side)
	if len(moves) == 0 {
		return e.noMovesScore(pos, side, ply)
	}

	bestScore := -Infinity
	for _, mv := range moves {
		child := pos.Apply(mv)
		score := -e.alphaBeta(&child, depth-1, -beta, -alpha, side.Opposite(), ply+1)
		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			atomic.AddInt64(&e.cutoffs, 1)
			break
		}
	}
	return bestScore
}

func (e *Engine) noMovesScore(pos *board.Position, side board.Side, ply int) int {
	switch e.cfg.NoMoves {
	case NoMovesStalemate:
		return 0
	case NoMovesLoss:
		return -Infinity + 1 + ply
	default:
		return Score(pos, side)
	}
}
