package engine

import "kingsearch/internal/board"

// 基础子力估值
var pieceValue = [...]int{
	board.None:   0,
	board.King:   10000,
	board.Queen:  900,
	board.Rook:   500,
	board.Knight: 320,
	board.Bishop: 330,
	board.Pawn:   100,
}

func PieceValue(k board.Kind) int {
	if k < 0 || int(k) >= len(pieceValue) {
		return 0
	}
	return pieceValue[k]
}

// Evaluate 从白方视角：score = 白方子力 - 黑方子力。
// 与轮到谁走无关。
func Evaluate(pos *board.Position) int {
	score := 0
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			pc := pos.Squares[r][c]
			if pc.IsEmpty() {
				continue
			}
			if pc.Side == board.White {
				score += PieceValue(pc.Kind)
			} else {
				score -= PieceValue(pc.Kind)
			}
		}
	}
	return score
}

// Score 把 Evaluate 转成 side 视角，负极大值搜索的叶子用它
func Score(pos *board.Position, side board.Side) int {
	if side == board.White {
		return Evaluate(pos)
	}
	return -Evaluate(pos)
}
