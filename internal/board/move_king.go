package board

// 王：周围八格，先行偏移再列偏移
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func genKingMoves(p *Position, from Square, moves []Move) []Move {
	for _, d := range kingOffsets {
		to := Square{Row: from.Row + d[0], Col: from.Col + d[1]}
		if !to.OnBoard() {
			continue
		}
		if kingMoveValid(p, from, to) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func kingMoveValid(p *Position, from, to Square) bool {
	dr := abs(from.Row - to.Row)
	dc := abs(from.Col - to.Col)
	if (dr == 1 && dc <= 1) || (dr <= 1 && dc == 1) {
		return canLandOn(p, p.At(from), to)
	}
	return false
}
